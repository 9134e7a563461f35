package retrieval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
	"github.com/ternarybob/responsa/internal/services/knowledge"
	"github.com/ternarybob/responsa/internal/services/processor"
	"github.com/ternarybob/responsa/internal/services/verification"
	"github.com/ternarybob/responsa/internal/services/webcache"
)

// mockFetcher implements interfaces.WebFetcher with call counters and a
// fixed page map served by Navigate
type mockFetcher struct {
	searchCalls   int
	openCalls     int
	navigateCalls int
	searchFunc    func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error)
	pages         map[string]*models.FetchResult
}

func (m *mockFetcher) OpenSession(ctx context.Context) (string, error) {
	m.openCalls++
	return "test-session", nil
}

func (m *mockFetcher) Navigate(ctx context.Context, sessionID, url string, opts interfaces.NavigateOptions) (*models.FetchResult, error) {
	m.navigateCalls++
	if page, ok := m.pages[url]; ok {
		return page, nil
	}
	return nil, errors.New("no page for " + url)
}

func (m *mockFetcher) Search(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
	m.searchCalls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, opts)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFetcher) CloseSession(ctx context.Context, sessionID string) error {
	return nil
}

func (m *mockFetcher) Mode() interfaces.FetchMode {
	return interfaces.FetchModeSimulation
}

func fetchResult(url, title, body string) *models.FetchResult {
	return &models.FetchResult{
		Content: "<html><body><p>" + body + "</p></body></html>",
		Metadata: models.PageMetadata{
			URL:       url,
			Title:     title,
			Timestamp: time.Now().UTC(),
		},
	}
}

func staticEntries() []models.QAPair {
	return []models.QAPair{
		{
			ID:       "go-1",
			Question: "What are goroutines?",
			Answer:   "Goroutines are lightweight threads managed by the runtime.",
			Keywords: []string{"goroutines", "concurrency"},
			Category: "golang",
		},
		{
			ID:       "go-2",
			Question: "How do goroutines communicate?",
			Answer:   "Through channels.",
			Keywords: []string{"channels"},
			Category: "golang",
		},
	}
}

func newTestService(entries []models.QAPair, fetcher interfaces.WebFetcher) *Service {
	logger := arbor.NewLogger()
	proc := processor.NewService(fetcher, logger)
	return NewService(
		knowledge.NewServiceFromEntries(entries, logger),
		fetcher,
		proc,
		webcache.NewService(time.Hour, logger),
		verification.NewService(logger),
		3,
		logger,
	)
}

func TestRetrieveStaticOnlyWhenWebSearchDisabled(t *testing.T) {
	fetcher := &mockFetcher{}
	svc := newTestService(staticEntries(), fetcher)

	bundle := svc.Retrieve(context.Background(), "goroutines", models.RetrievalOptions{UseWebSearch: false})

	assert.NotEmpty(t, bundle.StaticResults)
	assert.Empty(t, bundle.WebResults)
	assert.False(t, bundle.Degraded)
	assert.Zero(t, fetcher.searchCalls)
}

func TestRetrieveEarlyExitOnStrongStaticMatch(t *testing.T) {
	fetcher := &mockFetcher{}
	svc := newTestService(staticEntries(), fetcher)

	// Both entries match and the top entry's keywords contain the query
	// token, so web retrieval is skipped entirely.
	bundle := svc.Retrieve(context.Background(), "goroutines", models.RetrievalOptions{
		UseWebSearch:  true,
		MaxWebResults: 3,
	})

	require.Len(t, bundle.StaticResults, 2)
	assert.Equal(t, "go-1", bundle.StaticResults[0].ID)
	assert.Empty(t, bundle.WebResults)
	assert.Zero(t, fetcher.searchCalls)
}

func TestRetrieveDegradesOnSearchFailure(t *testing.T) {
	fetcher := &mockFetcher{
		searchFunc: func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
			return nil, errors.New("backend unavailable")
		},
	}
	svc := newTestService(staticEntries(), fetcher)

	bundle := svc.Retrieve(context.Background(), "channels", models.RetrievalOptions{
		UseWebSearch:  true,
		MaxWebResults: 3,
	})

	assert.True(t, bundle.Degraded)
	assert.NotEmpty(t, bundle.StaticResults)
	assert.Empty(t, bundle.WebResults)
	assert.Nil(t, bundle.Verification)
}

func TestRetrieveMergesWebResultsAndVerifies(t *testing.T) {
	pageA := fetchResult("https://example.com/a", "Scheduler Internals",
		"The scheduler multiplexes goroutines onto operating system threads efficiently.")
	pageB := fetchResult("https://example.com/b", "Runtime Guide",
		"The scheduler multiplexes goroutines onto operating system threads for concurrency.")
	fetcher := &mockFetcher{
		searchFunc: func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
			return []*models.FetchResult{pageA, pageB}, nil
		},
		pages: map[string]*models.FetchResult{
			"https://example.com/a": pageA,
			"https://example.com/b": pageB,
		},
	}
	svc := newTestService(nil, fetcher)

	bundle := svc.Retrieve(context.Background(), "scheduler internals", models.RetrievalOptions{
		UseWebSearch:              true,
		MaxWebResults:             3,
		VerifyWithMultipleSources: true,
	})

	assert.False(t, bundle.Degraded)
	require.Len(t, bundle.WebResults, 2)
	assert.Equal(t, models.CategoryWebContent, bundle.WebResults[0].Category)
	assert.Contains(t, bundle.WebResults[0].Answer, "Source: https://example.com/")

	require.NotNil(t, bundle.Verification)
	assert.True(t, bundle.Verification.Verified)
}

func TestRetrieveFetchesEachResultURL(t *testing.T) {
	pageA := fetchResult("https://example.com/a", "A", "Detailed coverage of compilers and their optimization passes.")
	pageB := fetchResult("https://example.com/b", "B", "More notes on compilers and linkers in modern toolchains.")
	fetcher := &mockFetcher{
		searchFunc: func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
			return []*models.FetchResult{pageA, pageB}, nil
		},
		pages: map[string]*models.FetchResult{
			"https://example.com/a": pageA,
			"https://example.com/b": pageB,
		},
	}
	svc := newTestService(nil, fetcher)

	bundle := svc.Retrieve(context.Background(), "compilers", models.RetrievalOptions{
		UseWebSearch:  true,
		MaxWebResults: 3,
	})

	// Every search hit is fetched individually through its own session.
	require.Len(t, bundle.WebResults, 2)
	assert.Equal(t, 2, fetcher.openCalls)
	assert.Equal(t, 2, fetcher.navigateCalls)
}

func TestRetrieveSubstitutesFallbackOnFetchFailure(t *testing.T) {
	fetcher := &mockFetcher{
		searchFunc: func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
			return []*models.FetchResult{
				fetchResult("https://example.com/gone", "Gone", "ignored"),
			}, nil
		},
	}
	svc := newTestService(nil, fetcher)

	bundle := svc.Retrieve(context.Background(), "vanished page", models.RetrievalOptions{
		UseWebSearch:  true,
		MaxWebResults: 3,
	})

	// The page cannot be fetched, so its slot carries synthesized content
	// rather than dropping the result or degrading the whole bundle.
	assert.False(t, bundle.Degraded)
	require.Len(t, bundle.WebResults, 1)
	assert.Contains(t, bundle.WebResults[0].Answer, "The actual content could not be retrieved")
	assert.Contains(t, bundle.WebResults[0].Answer, "https://example.com/gone")
}

func TestRetrieveServesRepeatQueriesFromCache(t *testing.T) {
	page := fetchResult("https://example.com/a", "A", "Go compilers are fast and produce static binaries.")
	fetcher := &mockFetcher{
		searchFunc: func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
			return []*models.FetchResult{page}, nil
		},
		pages: map[string]*models.FetchResult{"https://example.com/a": page},
	}
	svc := newTestService(nil, fetcher)
	opts := models.RetrievalOptions{UseWebSearch: true, MaxWebResults: 3}

	first := svc.Retrieve(context.Background(), "compilers", opts)
	second := svc.Retrieve(context.Background(), "compilers", opts)

	assert.Equal(t, 1, fetcher.searchCalls)
	require.Len(t, first.WebResults, 1)
	require.Len(t, second.WebResults, 1)
	assert.Contains(t, second.WebResults[0].Answer, "static binaries")
}

func TestRetrieveSkipsVerificationForSingleResult(t *testing.T) {
	page := fetchResult("https://example.com/a", "A", "Only one source discusses this topic.")
	fetcher := &mockFetcher{
		searchFunc: func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
			return []*models.FetchResult{page}, nil
		},
		pages: map[string]*models.FetchResult{"https://example.com/a": page},
	}
	svc := newTestService(nil, fetcher)

	bundle := svc.Retrieve(context.Background(), "singular topic", models.RetrievalOptions{
		UseWebSearch:              true,
		MaxWebResults:             3,
		VerifyWithMultipleSources: true,
	})

	require.Len(t, bundle.WebResults, 1)
	assert.Nil(t, bundle.Verification)
}

func TestRetrieveOrdersWebResultsByRelevance(t *testing.T) {
	weak := fetchResult("https://example.com/weak", "Weak", "Barely mentions benchmarks once in passing text.")
	strong := fetchResult("https://example.com/strong", "Strong", "Benchmarks benchmarks benchmarks.")
	fetcher := &mockFetcher{
		searchFunc: func(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
			return []*models.FetchResult{weak, strong}, nil
		},
		pages: map[string]*models.FetchResult{
			"https://example.com/weak":   weak,
			"https://example.com/strong": strong,
		},
	}
	svc := newTestService(nil, fetcher)

	bundle := svc.Retrieve(context.Background(), "benchmarks", models.RetrievalOptions{
		UseWebSearch:  true,
		MaxWebResults: 3,
	})

	require.Len(t, bundle.WebResults, 2)
	assert.Contains(t, bundle.WebResults[0].Answer, "https://example.com/strong")
}
