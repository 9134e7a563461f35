package fetcher

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/responsa/internal/models"
)

// simulationSessionID is the fixed handle returned for simulated sessions.
const simulationSessionID = "simulation-session-id"

// simulator produces deterministic synthetic content with no network access.
// Given the same URL or query, the generated HTML is byte-for-byte identical,
// so content processing and tests behave predictably.
type simulator struct{}

// simulateNavigate builds a synthetic page for a URL, embedding its domain.
func (simulator) simulateNavigate(rawURL string) *models.FetchResult {
	domain := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Hostname() != "" {
		domain = parsed.Hostname()
	}

	content := fmt.Sprintf(
		"<html><body><h1>Simulated content for %s</h1>"+
			"<p>This is simulated content for %s because web search is in simulation mode.</p>"+
			"<p>In a real implementation, this would contain the actual HTML content of the page.</p>"+
			"</body></html>",
		domain, rawURL)

	return &models.FetchResult{
		Content: content,
		Metadata: models.PageMetadata{
			URL:         rawURL,
			Title:       fmt.Sprintf("Simulated page for %s", domain),
			Timestamp:   time.Now().UTC(),
			ContentType: "text/html",
		},
	}
}

// simulateSearch builds numResults synthetic result pages for a query.
func (simulator) simulateSearch(query string, numResults int) []*models.FetchResult {
	results := make([]*models.FetchResult, 0, numResults)

	slug := strings.ToLower(strings.Join(strings.Fields(query), "-"))
	for i := 1; i <= numResults; i++ {
		content := fmt.Sprintf(
			"<html><body>"+
				"<h1>Search Result %d for %q</h1>"+
				"<div class=\"content\">"+
				"<p>This is simulated content for a search result about %s.</p>"+
				"<p>In a real implementation, this would contain actual content from a web page.</p>"+
				"<p>The content would be relevant to your query about %s.</p>"+
				"<p>Here are some key points about %s:</p>"+
				"<ul>"+
				"<li>Important fact #1 about %s</li>"+
				"<li>Important fact #2 about %s</li>"+
				"<li>Important fact #3 about %s</li>"+
				"</ul>"+
				"</div>"+
				"</body></html>",
			i, query, query, query, query, query, query, query)

		results = append(results, &models.FetchResult{
			Content: content,
			Metadata: models.PageMetadata{
				URL:         fmt.Sprintf("https://example.com/result-%d-%s", i, slug),
				Title:       fmt.Sprintf("%s - Search Result %d", query, i),
				Timestamp:   time.Now().UTC(),
				ContentType: "text/html",
			},
		})
	}

	return results
}
