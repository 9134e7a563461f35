// Package classifier derives a retrieval strategy from the query text using
// fixed regular-expression heuristics. The pattern groups are deliberately
// frozen: retrieval decisions must be reproducible for the same query.
package classifier

import (
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// confidenceWebSearchThreshold gates web search: below it, static knowledge
// alone is not trusted to answer the query.
const confidenceWebSearchThreshold = 0.7

var (
	currentDataPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)current|latest|recent|today|now|update`),
		regexp.MustCompile(`(?i)news|event|happen`),
		regexp.MustCompile(`(?i)price|stock|market|weather`),
		regexp.MustCompile(`\b202[3-5]\b`), // Years 2023-2025
	}

	factualPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)what is|who is|when|where|why|how|explain`),
		regexp.MustCompile(`(?i)define|meaning|definition`),
		regexp.MustCompile(`(?i)fact|true|false`),
	}

	complexPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)compare|difference|versus|vs`),
		regexp.MustCompile(`(?i)analyze|analysis|evaluate`),
		regexp.MustCompile(`(?i)relationship|between|correlation`),
		regexp.MustCompile(`(?i)impact|effect|affect|influence`),
	}

	visualPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)show|image|picture|photo|diagram|chart|graph`),
		regexp.MustCompile(`(?i)visual|visually|look like`),
		regexp.MustCompile(`(?i)screenshot|interface|design`),
	}
)

// Service classifies queries. Stateless; safe for concurrent use.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new classifier service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Analyze classifies a query along four independent boolean axes and
// computes a confidence for the classification. Confidence starts at 0.5,
// gains 0.2 when current data is required and 0.1 per other true flag,
// capped at 1.0.
func (s *Service) Analyze(query string) models.QueryAnalysis {
	analysis := models.QueryAnalysis{
		RequiresCurrentData: matchesAny(currentDataPatterns, query),
		IsFactualQuery:      matchesAny(factualPatterns, query),
		HasVisualElements:   matchesAny(visualPatterns, query),
	}
	analysis.IsComplexQuery = matchesAny(complexPatterns, query) || len(strings.Split(query, " ")) > 10

	confidence := 0.5
	if analysis.RequiresCurrentData {
		confidence += 0.2
	}
	if analysis.IsFactualQuery {
		confidence += 0.1
	}
	if analysis.IsComplexQuery {
		confidence += 0.1
	}
	if analysis.HasVisualElements {
		confidence += 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	analysis.Confidence = confidence

	return analysis
}

// DeriveOptions combines the analysis with caller overrides into concrete
// retrieval options. Web search defaults to enabled and is only used when
// the query needs current data or the classification confidence is low.
func (s *Service) DeriveOptions(analysis models.QueryAnalysis, overrides *models.QueryOptions) models.RetrievalOptions {
	useWebSearch := true
	if overrides != nil && overrides.UseWebSearch != nil {
		useWebSearch = *overrides.UseWebSearch
	}

	maxWebResults := 3
	if analysis.IsComplexQuery {
		maxWebResults = 5
	}

	return models.RetrievalOptions{
		UseWebSearch:              useWebSearch && (analysis.RequiresCurrentData || analysis.Confidence < confidenceWebSearchThreshold),
		MaxWebResults:             maxWebResults,
		VerifyWithMultipleSources: analysis.IsFactualQuery,
		IncludeScreenshots:        analysis.HasVisualElements,
	}
}

func matchesAny(patterns []*regexp.Regexp, query string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(query) {
			return true
		}
	}
	return false
}

// Ensure Service implements ClassifierService interface
var _ interfaces.ClassifierService = (*Service)(nil)
