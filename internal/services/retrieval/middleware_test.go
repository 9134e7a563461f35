package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/models"
	"github.com/ternarybob/responsa/internal/services/classifier"
	"github.com/ternarybob/responsa/internal/services/knowledge"
)

// panicRetrieval always panics, standing in for an unexpected pipeline bug
type panicRetrieval struct{}

func (panicRetrieval) Retrieve(ctx context.Context, query string, opts models.RetrievalOptions) *models.RetrievalBundle {
	panic("pipeline bug")
}

func newTestMiddleware(t *testing.T) *Middleware {
	t.Helper()
	logger := arbor.NewLogger()
	kb := knowledge.NewServiceFromEntries(staticEntries(), logger)
	svc := newTestService(staticEntries(), &mockFetcher{})
	return NewMiddleware(classifier.NewService(logger), svc, kb, 3, "gpt-4o", logger)
}

func TestProcessAssemblesEnvelope(t *testing.T) {
	mw := newTestMiddleware(t)

	envelope := mw.Process(context.Background(), "What are goroutines?", nil)

	require.NotNil(t, envelope)
	assert.Equal(t, "What are goroutines?", envelope.Query)
	assert.True(t, envelope.Analysis.IsFactualQuery)
	assert.Equal(t, "gpt-4o", envelope.Model)
	assert.NotEmpty(t, envelope.Results.StaticResults)
}

func TestProcessModelOverride(t *testing.T) {
	mw := newTestMiddleware(t)

	envelope := mw.Process(context.Background(), "What are goroutines?", &models.QueryOptions{Model: "gpt-4o-mini"})
	assert.Equal(t, "gpt-4o-mini", envelope.Model)
}

func TestProcessDegradedEnvelopeOnPanic(t *testing.T) {
	logger := arbor.NewLogger()
	kb := knowledge.NewServiceFromEntries(staticEntries(), logger)
	mw := NewMiddleware(classifier.NewService(logger), panicRetrieval{}, kb, 3, "gpt-4o", logger)

	envelope := mw.Process(context.Background(), "What are goroutines?", nil)

	require.NotNil(t, envelope)
	assert.True(t, envelope.Results.Degraded)
	assert.Empty(t, envelope.Results.WebResults)
	assert.Equal(t, "gpt-4o", envelope.Model)

	// The failure envelope still carries the classifier's view of the query
	// and the knowledge-base matches, with all retrieval options off.
	assert.True(t, envelope.Analysis.IsFactualQuery)
	require.NotEmpty(t, envelope.Results.StaticResults)
	assert.Equal(t, "go-1", envelope.Results.StaticResults[0].ID)
	assert.False(t, envelope.RetrievalOptions.UseWebSearch)
	assert.False(t, envelope.RetrievalOptions.VerifyWithMultipleSources)
	assert.False(t, envelope.RetrievalOptions.IncludeScreenshots)
	assert.Zero(t, envelope.RetrievalOptions.MaxWebResults)
}

func TestProcessDegradedEnvelopeWithoutMatches(t *testing.T) {
	logger := arbor.NewLogger()
	kb := knowledge.NewServiceFromEntries(nil, logger)
	mw := NewMiddleware(classifier.NewService(logger), panicRetrieval{}, kb, 3, "gpt-4o", logger)

	envelope := mw.Process(context.Background(), "trigger the bug", nil)

	require.NotNil(t, envelope)
	assert.True(t, envelope.Results.Degraded)
	assert.NotNil(t, envelope.Results.StaticResults)
	assert.Empty(t, envelope.Results.StaticResults)
}
