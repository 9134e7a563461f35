package fetcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/interfaces"
)

func simulationService(t *testing.T) *Service {
	t.Helper()
	return NewService(common.WebSearchConfig{Mode: "simulation"}, true, arbor.NewLogger())
}

func TestModeSelection(t *testing.T) {
	logger := arbor.NewLogger()

	// Explicit mode wins over credentials.
	svc := NewService(common.WebSearchConfig{Mode: "simulation", APIKey: "key"}, false, logger)
	assert.Equal(t, interfaces.FetchModeSimulation, svc.Mode())

	// API key outside development selects the API backend.
	svc = NewService(common.WebSearchConfig{APIKey: "key"}, false, logger)
	assert.Equal(t, interfaces.FetchModeAPI, svc.Mode())

	// Development forces simulation even with a key.
	svc = NewService(common.WebSearchConfig{APIKey: "key"}, true, logger)
	assert.Equal(t, interfaces.FetchModeSimulation, svc.Mode())

	// No key, no mode: simulation.
	svc = NewService(common.WebSearchConfig{}, false, logger)
	assert.Equal(t, interfaces.FetchModeSimulation, svc.Mode())
}

func TestSimulatedSessionLifecycle(t *testing.T) {
	svc := simulationService(t)
	ctx := context.Background()

	sessionID, err := svc.OpenSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, simulationSessionID, sessionID)
	assert.NoError(t, svc.CloseSession(ctx, sessionID))
}

func TestSimulatedNavigateIsDeterministic(t *testing.T) {
	svc := simulationService(t)
	ctx := context.Background()

	first, err := svc.Navigate(ctx, simulationSessionID, "https://example.com/page", interfaces.NavigateOptions{})
	require.NoError(t, err)
	second, err := svc.Navigate(ctx, simulationSessionID, "https://example.com/page", interfaces.NavigateOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.Contains(t, first.Content, "example.com")
	assert.Contains(t, first.Content, "https://example.com/page")
	assert.Equal(t, "https://example.com/page", first.Metadata.URL)
	assert.Equal(t, "text/html", first.Metadata.ContentType)
}

func TestSimulatedSearch(t *testing.T) {
	svc := simulationService(t)

	results, err := svc.Search(context.Background(), "golang concurrency", interfaces.WebSearchOptions{NumResults: 3})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, result := range results {
		assert.Contains(t, result.Content, "golang concurrency")
		assert.Contains(t, result.Content, "Important fact #1")
		assert.Contains(t, result.Metadata.URL, "golang-concurrency")
		assert.Contains(t, result.Metadata.Title, "golang concurrency")
	}

	assert.Equal(t, "https://example.com/result-1-golang-concurrency", results[0].Metadata.URL)
}

func TestSimulatedSearchDefaultCount(t *testing.T) {
	svc := simulationService(t)

	results, err := svc.Search(context.Background(), "golang", interfaces.WebSearchOptions{})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestBuildSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/search?q=go+testing",
		buildSearchURL("https://www.google.com/search?q=%s", "go testing"))

	assert.Equal(t,
		"https://duckduckgo.com/?q=go+testing",
		buildSearchURL("https://duckduckgo.com/?q=", "go testing"))
}
