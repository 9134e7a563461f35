package models

// QueryAnalysis classifies a query along four heuristic axes. Derived
// synchronously from the query text and recomputed on every call.
type QueryAnalysis struct {
	RequiresCurrentData bool    `json:"requires_current_data"`
	IsFactualQuery      bool    `json:"is_factual_query"`
	IsComplexQuery      bool    `json:"is_complex_query"`
	HasVisualElements   bool    `json:"has_visual_elements"`
	Confidence          float64 `json:"confidence"`
}

// RetrievalOptions controls the web retrieval path for a single query.
type RetrievalOptions struct {
	UseWebSearch              bool `json:"use_web_search"`
	MaxWebResults             int  `json:"max_web_results"`
	VerifyWithMultipleSources bool `json:"verify_with_multiple_sources"`
	IncludeScreenshots        bool `json:"include_screenshots"`
}

// QueryOptions are caller-supplied overrides passed to the middleware.
// UseWebSearch nil means "not specified" and defaults to enabled.
type QueryOptions struct {
	Model        string `json:"model,omitempty"`
	UseWebSearch *bool  `json:"use_web_search,omitempty"`
}

// VerificationResult is the outcome of cross-source corroboration.
type VerificationResult struct {
	Verified        bool    `json:"verified"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// RetrievalBundle is the merged static + web result set for a query.
// Degraded is set when a pipeline failure forced a static-only fallback,
// so callers can distinguish fallback data from a genuine static-only path.
type RetrievalBundle struct {
	StaticResults []QAPair            `json:"static_results"`
	WebResults    []QAPair            `json:"web_results"`
	Verification  *VerificationResult `json:"verification,omitempty"`
	Degraded      bool                `json:"degraded,omitempty"`
}

// QueryEnvelope is the middleware response: the sole payload the chat UI
// receives per user message.
type QueryEnvelope struct {
	Query            string           `json:"query"`
	Analysis         QueryAnalysis    `json:"analysis"`
	RetrievalOptions RetrievalOptions `json:"retrieval_options"`
	Results          RetrievalBundle  `json:"results"`
	Model            string           `json:"model"`
}
