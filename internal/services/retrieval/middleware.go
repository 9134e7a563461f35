package retrieval

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// Middleware is the single entry point the query handler calls per user
// message: it classifies the query, derives retrieval options, runs the
// pipeline and assembles the response envelope.
type Middleware struct {
	classifier   interfaces.ClassifierService
	retrieval    interfaces.RetrievalService
	knowledge    interfaces.KnowledgeService
	staticLimit  int
	defaultModel string
	logger       arbor.ILogger
}

// NewMiddleware creates the query middleware.
func NewMiddleware(
	classifier interfaces.ClassifierService,
	retrieval interfaces.RetrievalService,
	knowledge interfaces.KnowledgeService,
	staticLimit int,
	defaultModel string,
	logger arbor.ILogger,
) *Middleware {
	if staticLimit <= 0 {
		staticLimit = 3
	}
	return &Middleware{
		classifier:   classifier,
		retrieval:    retrieval,
		knowledge:    knowledge,
		staticLimit:  staticLimit,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

// Process runs the full query pipeline and never fails: an unexpected
// panic yields a degraded envelope that still carries the classifier
// analysis and the static knowledge-base matches, with every retrieval
// option turned off.
func (m *Middleware) Process(ctx context.Context, query string, opts *models.QueryOptions) (envelope *models.QueryEnvelope) {
	model := m.defaultModel
	if opts != nil && opts.Model != "" {
		model = opts.Model
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Str("query", query).Str("panic", fmt.Sprintf("%v", r)).Msg("Query pipeline panicked")
			static := m.knowledge.FindRelevant(query, m.staticLimit)
			if static == nil {
				static = []models.QAPair{}
			}
			envelope = &models.QueryEnvelope{
				Query:            query,
				Analysis:         m.classifier.Analyze(query),
				RetrievalOptions: models.RetrievalOptions{},
				Results: models.RetrievalBundle{
					StaticResults: static,
					WebResults:    []models.QAPair{},
					Degraded:      true,
				},
				Model: model,
			}
		}
	}()

	analysis := m.classifier.Analyze(query)
	retrievalOpts := m.classifier.DeriveOptions(analysis, opts)
	bundle := m.retrieval.Retrieve(ctx, query, retrievalOpts)

	m.logger.Info().
		Str("query", query).
		Int("static_results", len(bundle.StaticResults)).
		Int("web_results", len(bundle.WebResults)).
		Bool("degraded", bundle.Degraded).
		Msg("Query processed")

	return &models.QueryEnvelope{
		Query:            query,
		Analysis:         analysis,
		RetrievalOptions: retrievalOpts,
		Results:          *bundle,
		Model:            model,
	}
}
