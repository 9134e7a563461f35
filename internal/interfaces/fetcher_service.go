package interfaces

import (
	"context"

	"github.com/ternarybob/responsa/internal/models"
)

// FetchMode identifies the backing implementation of a WebFetcher.
type FetchMode string

const (
	// FetchModeSimulation serves deterministic synthetic content with no
	// network access.
	FetchModeSimulation FetchMode = "simulation"
	// FetchModeAPI uses a session-based browser-automation HTTP API.
	FetchModeAPI FetchMode = "api"
	// FetchModeBrowser drives a local headless Chrome via chromedp.
	FetchModeBrowser FetchMode = "browser"
)

// NavigateOptions controls a single page navigation.
type NavigateOptions struct {
	CaptureScreenshot bool
}

// WebSearchOptions controls a web search.
type WebSearchOptions struct {
	NumResults         int
	CaptureScreenshots bool
}

// WebFetcher abstracts the browser-automation backend used to fetch page
// content. Implementations never hard-fail: on backend errors they degrade
// to simulated output so the retrieval pipeline always receives content.
type WebFetcher interface {
	// OpenSession initializes a browser session and returns its handle.
	OpenSession(ctx context.Context) (string, error)

	// Navigate loads a URL in the session and returns the page content.
	Navigate(ctx context.Context, sessionID, url string, opts NavigateOptions) (*models.FetchResult, error)

	// Search performs a web search and returns page content for the top
	// results, at most opts.NumResults.
	Search(ctx context.Context, query string, opts WebSearchOptions) ([]*models.FetchResult, error)

	// CloseSession releases the session. Safe to call on failed sessions.
	CloseSession(ctx context.Context, sessionID string) error

	// Mode reports the currently active backend.
	Mode() FetchMode
}
