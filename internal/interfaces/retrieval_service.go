package interfaces

import (
	"context"

	"github.com/ternarybob/responsa/internal/models"
)

// RetrievalService merges static knowledge matches with web retrieval and
// cross-source verification for a query. It never returns an error to the
// caller: pipeline failures degrade to a static-only bundle.
type RetrievalService interface {
	// Retrieve runs the full pipeline for a query.
	Retrieve(ctx context.Context, query string, opts models.RetrievalOptions) *models.RetrievalBundle
}

// ContentProcessor turns fetched pages into scored, cacheable content.
type ContentProcessor interface {
	// ExtractMainContent strips scripts, styles and chrome from HTML and
	// returns collapsed plain text.
	ExtractMainContent(html string) string

	// ScoreRelevance scores text against a query in matches per kilobyte.
	// Empty or non-matching content scores the neutral prior 0.5.
	ScoreRelevance(text, query string) float64

	// ProcessURL fetches a URL and returns processed content. On failure it
	// returns synthesized fallback content rather than an error.
	ProcessURL(ctx context.Context, url, query string) *models.ProcessedContent

	// ToQAPair wraps processed content into QAPair shape for result merging.
	ToQAPair(content *models.ProcessedContent, query string) models.QAPair
}

// RetrievalCache is the time-expiring per-query cache of processed web
// content. Stale entries are treated as a miss and overwritten by the next
// store for the same query.
type RetrievalCache interface {
	Get(query string) ([]*models.ProcessedContent, bool)
	Put(query string, entries []*models.ProcessedContent)
	Len() int
}

// VerificationService cross-checks key phrases across multiple web results.
type VerificationService interface {
	Verify(results []*models.ProcessedContent) models.VerificationResult
}

// ClassifierService derives a retrieval strategy from the query text.
type ClassifierService interface {
	Analyze(query string) models.QueryAnalysis
	DeriveOptions(analysis models.QueryAnalysis, overrides *models.QueryOptions) models.RetrievalOptions
}
