// Package retrieval orchestrates the query pipeline: static knowledge
// lookup, optional web retrieval with caching, and cross-source
// verification.
package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// earlyExitMinStatic is the number of static matches that, combined with a
// keyword hit on the top match, makes web retrieval unnecessary.
const earlyExitMinStatic = 2

// Service merges static knowledge-base matches with live web results.
// Web retrieval failures degrade to static-only results rather than
// failing the query.
type Service struct {
	knowledge interfaces.KnowledgeService
	fetcher   interfaces.WebFetcher
	processor interfaces.ContentProcessor
	cache     interfaces.RetrievalCache
	verifier  interfaces.VerificationService
	logger    arbor.ILogger

	staticLimit int
}

// NewService creates the retrieval orchestrator.
func NewService(
	knowledge interfaces.KnowledgeService,
	fetcher interfaces.WebFetcher,
	processor interfaces.ContentProcessor,
	cache interfaces.RetrievalCache,
	verifier interfaces.VerificationService,
	staticLimit int,
	logger arbor.ILogger,
) *Service {
	if staticLimit <= 0 {
		staticLimit = 3
	}
	return &Service{
		knowledge:   knowledge,
		fetcher:     fetcher,
		processor:   processor,
		cache:       cache,
		verifier:    verifier,
		staticLimit: staticLimit,
		logger:      logger,
	}
}

// Retrieve runs the full pipeline for a query. It always returns a bundle;
// the Degraded flag marks results assembled after a web retrieval failure.
func (s *Service) Retrieve(ctx context.Context, query string, opts models.RetrievalOptions) *models.RetrievalBundle {
	bundle := &models.RetrievalBundle{
		StaticResults: s.knowledge.FindRelevant(query, s.staticLimit),
		WebResults:    []models.QAPair{},
	}

	if !opts.UseWebSearch {
		return bundle
	}

	if s.staticResultsSufficient(query, bundle.StaticResults) {
		s.logger.Debug().Str("query", query).Msg("Static results sufficient, skipping web retrieval")
		return bundle
	}

	processed, degraded := s.webResults(ctx, query, opts)
	bundle.Degraded = degraded
	if len(processed) == 0 {
		return bundle
	}

	for _, content := range processed {
		bundle.WebResults = append(bundle.WebResults, s.processor.ToQAPair(content, query))
	}

	if opts.VerifyWithMultipleSources && len(processed) >= 2 {
		verification := s.verifier.Verify(processed)
		bundle.Verification = &verification
	}

	return bundle
}

// staticResultsSufficient reports whether the knowledge base alone answers
// the query: at least two matches, with the top match's keywords containing
// one of the query's tokens.
func (s *Service) staticResultsSufficient(query string, static []models.QAPair) bool {
	if len(static) < earlyExitMinStatic {
		return false
	}
	tokens := strings.Fields(strings.ToLower(query))
	for _, keyword := range static[0].Keywords {
		for _, token := range tokens {
			if keyword == token {
				return true
			}
		}
	}
	return false
}

// webResults returns processed web content for the query, from cache when
// fresh. Each search hit is fetched and scored through the processor, which
// supplies fallback content per URL on fetch failure. A search failure or
// panic yields no results and the degraded flag.
func (s *Service) webResults(ctx context.Context, query string, opts models.RetrievalOptions) (processed []*models.ProcessedContent, degraded bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("query", query).Str("panic", fmt.Sprintf("%v", r)).Msg("Web retrieval panicked, degrading to static results")
			processed = nil
			degraded = true
		}
	}()

	if cached, ok := s.cache.Get(query); ok {
		s.logger.Debug().Str("query", query).Int("results", len(cached)).Msg("Web results served from cache")
		return cached, false
	}

	results, err := s.fetcher.Search(ctx, query, interfaces.WebSearchOptions{
		NumResults:         opts.MaxWebResults,
		CaptureScreenshots: opts.IncludeScreenshots,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("Web search failed, degrading to static results")
		return nil, true
	}

	for _, result := range results {
		processed = append(processed, s.processor.ProcessURL(ctx, result.Metadata.URL, query))
	}

	sort.SliceStable(processed, func(i, j int) bool {
		return processed[i].RelevanceScore > processed[j].RelevanceScore
	})

	s.cache.Put(query, processed)
	return processed, false
}

// Ensure Service implements RetrievalService interface
var _ interfaces.RetrievalService = (*Service)(nil)
