package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/models"
)

// apiClient talks to a session-based browser-automation HTTP API with
// bearer-token authentication.
type apiClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     arbor.ILogger
}

func newAPIClient(config common.WebSearchConfig, logger arbor.ILogger) *apiClient {
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rps := config.RateLimit
	if rps <= 0 {
		rps = 5
	}

	return &apiClient{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

type navigateRequest struct {
	URL               string `json:"url"`
	CaptureScreenshot bool   `json:"captureScreenshot"`
}

type navigateResponse struct {
	Content  string `json:"content"`
	Metadata struct {
		URL         string `json:"url"`
		Title       string `json:"title"`
		Timestamp   string `json:"timestamp"`
		ContentType string `json:"contentType"`
	} `json:"metadata"`
	Screenshots []string `json:"screenshots,omitempty"`
}

type executeRequest struct {
	Script string `json:"script"`
}

type executeResponse struct {
	Result string `json:"result"`
}

// openSession initializes a remote browser session.
func (c *apiClient) openSession(ctx context.Context) (string, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/sessions", nil, &resp); err != nil {
		return "", fmt.Errorf("failed to initialize browser session: %w", err)
	}
	return resp.SessionID, nil
}

// navigate loads a URL in the session and returns the page content.
func (c *apiClient) navigate(ctx context.Context, sessionID, targetURL string, captureScreenshot bool) (*models.FetchResult, error) {
	req := navigateRequest{URL: targetURL, CaptureScreenshot: captureScreenshot}

	var resp navigateResponse
	path := fmt.Sprintf("/sessions/%s/navigate", sessionID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", targetURL, err)
	}

	timestamp, err := time.Parse(time.RFC3339, resp.Metadata.Timestamp)
	if err != nil {
		timestamp = time.Now().UTC()
	}

	return &models.FetchResult{
		Content: resp.Content,
		Metadata: models.PageMetadata{
			URL:         resp.Metadata.URL,
			Title:       resp.Metadata.Title,
			Timestamp:   timestamp,
			ContentType: resp.Metadata.ContentType,
		},
		Screenshots: resp.Screenshots,
	}, nil
}

// extractLinks runs a script in the session that collects outbound result
// links from the current page, one per line.
func (c *apiClient) extractLinks(ctx context.Context, sessionID string) ([]string, error) {
	req := executeRequest{
		Script: `const elements = document.querySelectorAll('a[href^="http"]:not([href^="https://www.google.com"])');
return Array.from(elements).map(el => el.href).join('\n');`,
	}

	var resp executeResponse
	path := fmt.Sprintf("/sessions/%s/execute", sessionID)
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to extract links: %w", err)
	}

	var links []string
	for _, line := range strings.Split(resp.Result, "\n") {
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "http") {
			links = append(links, trimmed)
		}
	}
	return links, nil
}

// closeSession releases the remote session.
func (c *apiClient) closeSession(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/sessions/%s", sessionID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

// do executes a rate-limited, authenticated JSON request against the API.
func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
