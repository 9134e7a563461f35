// Package fetcher abstracts the browser-automation backend that retrieves
// web page content for the retrieval pipeline. Three backends are supported:
// a deterministic simulation, a session-based browser-automation HTTP API,
// and a local headless Chrome via chromedp. Backend failures never surface
// to callers; the fetcher degrades to simulated output instead, because the
// chat experience must never hard-fail on retrieval.
package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// Service is the WebFetcher facade. Mode is fixed at construction.
type Service struct {
	mode      interfaces.FetchMode
	config    common.WebSearchConfig
	simulator simulator
	api       *apiClient
	browser   *browserFetcher
	logger    arbor.ILogger
}

// NewService selects a backend from configuration. An explicit mode wins;
// otherwise the API backend is used when a credential is configured and the
// environment is not development, and simulation in every other case.
func NewService(config common.WebSearchConfig, isDevelopment bool, logger arbor.ILogger) *Service {
	mode := interfaces.FetchMode(config.Mode)
	if mode == "" {
		if config.APIKey != "" && !isDevelopment {
			mode = interfaces.FetchModeAPI
		} else {
			mode = interfaces.FetchModeSimulation
		}
	}

	s := &Service{
		mode:   mode,
		config: config,
		logger: logger,
	}

	switch mode {
	case interfaces.FetchModeAPI:
		s.api = newAPIClient(config, logger)
	case interfaces.FetchModeBrowser:
		s.browser = newBrowserFetcher(config, logger)
	case interfaces.FetchModeSimulation:
		logger.Warn().Msg("Web search is running in simulation mode; search results will be simulated")
	}

	logger.Info().Str("mode", string(mode)).Msg("Web content fetcher initialized")
	return s
}

// Mode reports the active backend.
func (s *Service) Mode() interfaces.FetchMode {
	return s.mode
}

// OpenSession initializes a browser session.
func (s *Service) OpenSession(ctx context.Context) (string, error) {
	switch s.mode {
	case interfaces.FetchModeAPI:
		sessionID, err := s.api.openSession(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Falling back to simulation session after API error")
			return simulationSessionID, nil
		}
		return sessionID, nil
	case interfaces.FetchModeBrowser:
		sessionID, err := s.browser.openSession(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Falling back to simulation session after browser error")
			return simulationSessionID, nil
		}
		return sessionID, nil
	default:
		return simulationSessionID, nil
	}
}

// Navigate loads a URL in the session and returns the page content. On any
// backend failure the simulated page for the URL is returned instead.
func (s *Service) Navigate(ctx context.Context, sessionID, targetURL string, opts interfaces.NavigateOptions) (*models.FetchResult, error) {
	if sessionID == simulationSessionID {
		return s.simulator.simulateNavigate(targetURL), nil
	}

	var result *models.FetchResult
	var err error
	switch s.mode {
	case interfaces.FetchModeAPI:
		result, err = s.api.navigate(ctx, sessionID, targetURL, opts.CaptureScreenshot)
	case interfaces.FetchModeBrowser:
		result, err = s.browser.navigate(ctx, sessionID, targetURL, opts.CaptureScreenshot)
	default:
		return s.simulator.simulateNavigate(targetURL), nil
	}

	if err != nil {
		s.logger.Warn().Err(err).Str("url", targetURL).Msg("Navigation failed, serving simulated content")
		return s.simulator.simulateNavigate(targetURL), nil
	}
	return result, nil
}

// Search performs a web search and returns page content for the top results.
// The real backends drive a search-engine results page and visit each
// outbound link; failures degrade to simulated results.
func (s *Service) Search(ctx context.Context, query string, opts interfaces.WebSearchOptions) ([]*models.FetchResult, error) {
	numResults := opts.NumResults
	if numResults <= 0 {
		numResults = 3
	}

	if s.mode == interfaces.FetchModeSimulation {
		return s.simulator.simulateSearch(query, numResults), nil
	}

	results, err := s.searchReal(ctx, query, numResults, opts.CaptureScreenshots)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("Web search failed, serving simulated results")
		return s.simulator.simulateSearch(query, numResults), nil
	}
	if len(results) == 0 {
		return s.simulator.simulateSearch(query, numResults), nil
	}
	return results, nil
}

func (s *Service) searchReal(ctx context.Context, query string, numResults int, captureScreenshots bool) ([]*models.FetchResult, error) {
	sessionID, err := s.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	defer s.CloseSession(ctx, sessionID)

	if sessionID == simulationSessionID {
		return s.simulator.simulateSearch(query, numResults), nil
	}

	searchURL := buildSearchURL(s.config.SearchURL, query)

	var links []string
	switch s.mode {
	case interfaces.FetchModeAPI:
		if _, err := s.api.navigate(ctx, sessionID, searchURL, false); err != nil {
			return nil, err
		}
		links, err = s.api.extractLinks(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	case interfaces.FetchModeBrowser:
		page, err := s.browser.navigate(ctx, sessionID, searchURL, false)
		if err != nil {
			return nil, err
		}
		links, err = s.browser.extractResultLinks(page.Content, numResults)
		if err != nil {
			return nil, err
		}
	}

	if len(links) > numResults {
		links = links[:numResults]
	}

	results := make([]*models.FetchResult, 0, len(links))
	for _, link := range links {
		page, err := s.Navigate(ctx, sessionID, link, interfaces.NavigateOptions{CaptureScreenshot: captureScreenshots})
		if err != nil {
			// Navigate already degrades internally; this only fires on
			// context cancellation.
			continue
		}
		results = append(results, page)
	}

	return results, nil
}

// CloseSession releases the session. Cleanup failures are logged, not
// returned: a leaked remote session must not fail a query.
func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	if sessionID == simulationSessionID {
		return nil
	}

	var err error
	switch s.mode {
	case interfaces.FetchModeAPI:
		err = s.api.closeSession(ctx, sessionID)
	case interfaces.FetchModeBrowser:
		err = s.browser.closeSession(sessionID)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to close session")
	}
	return nil
}

// buildSearchURL builds the search-engine results URL for a query.
func buildSearchURL(searchURL, query string) string {
	if strings.Contains(searchURL, "%s") {
		return fmt.Sprintf(searchURL, url.QueryEscape(query))
	}
	return searchURL + url.QueryEscape(query)
}

// Ensure Service implements WebFetcher interface
var _ interfaces.WebFetcher = (*Service)(nil)
