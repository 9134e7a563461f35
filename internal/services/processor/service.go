// Package processor turns fetched web pages into scored, cacheable content
// and wraps it into QAPair shape for result merging.
package processor

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// neutralRelevance is the score assigned when content is empty or contains
// no query tokens. A neutral prior rather than zero: empty content must not
// rank as equally bad as truly irrelevant content.
const neutralRelevance = 0.5

var (
	scriptPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	stylePattern  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	navPattern    = regexp.MustCompile(`(?is)<nav\b.*?</nav>`)
	headerPattern = regexp.MustCompile(`(?is)<header\b.*?</header>`)
	footerPattern = regexp.MustCompile(`(?is)<footer\b.*?</footer>`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Service processes fetched HTML into plain text with a relevance score.
type Service struct {
	fetcher interfaces.WebFetcher
	logger  arbor.ILogger
}

// NewService creates a content processor backed by the given fetcher.
func NewService(fetcher interfaces.WebFetcher, logger arbor.ILogger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// ExtractMainContent strips script, style, nav, header and footer blocks,
// removes remaining tags, and collapses whitespace.
func (s *Service) ExtractMainContent(html string) string {
	clean := scriptPattern.ReplaceAllString(html, "")
	clean = stylePattern.ReplaceAllString(clean, "")
	clean = navPattern.ReplaceAllString(clean, "")
	clean = headerPattern.ReplaceAllString(clean, "")
	clean = footerPattern.ReplaceAllString(clean, "")

	text := tagPattern.ReplaceAllString(clean, " ")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ScoreRelevance counts case-insensitive occurrences of query tokens longer
// than 3 characters and normalizes to matches per kilobyte of text. Empty or
// non-matching content scores the neutral prior 0.5.
func (s *Service) ScoreRelevance(text, query string) float64 {
	if len(text) == 0 {
		return neutralRelevance
	}

	lowerText := strings.ToLower(text)
	score := 0
	for _, word := range strings.Split(strings.ToLower(query), " ") {
		if len(word) <= 3 {
			continue
		}
		score += strings.Count(lowerText, word)
	}

	if score == 0 {
		return neutralRelevance
	}
	return float64(score) / (float64(len(text)) / 1000.0)
}

// ProcessURL fetches a URL and returns processed, scored content. On any
// failure it returns synthesized fallback content embedding the query and
// URL; processing a URL never aborts the caller's batch.
func (s *Service) ProcessURL(ctx context.Context, url, query string) *models.ProcessedContent {
	sessionID, err := s.fetcher.OpenSession(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("Failed to open session for URL processing")
		return s.fallbackContent(url, query)
	}
	defer s.fetcher.CloseSession(ctx, sessionID)

	result, err := s.fetcher.Navigate(ctx, sessionID, url, interfaces.NavigateOptions{})
	if err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("Failed to fetch URL")
		return s.fallbackContent(url, query)
	}

	text := s.ExtractMainContent(result.Content)

	return &models.ProcessedContent{
		Text:           text,
		Title:          result.Metadata.Title,
		URL:            result.Metadata.URL,
		Timestamp:      result.Metadata.Timestamp,
		RelevanceScore: s.ScoreRelevance(text, query),
	}
}

// ToQAPair wraps processed content into QAPair shape. The answer carries a
// source attribution footer; keywords are the query tokens longer than 4
// characters.
func (s *Service) ToQAPair(content *models.ProcessedContent, query string) models.QAPair {
	var keywords []string
	for _, word := range strings.Split(strings.ToLower(query), " ") {
		if len(word) > 4 {
			keywords = append(keywords, word)
		}
	}

	return models.QAPair{
		ID:       fmt.Sprintf("web-%d-%d", time.Now().UnixMilli(), rand.Intn(1000)),
		Question: query,
		Answer: fmt.Sprintf("%s\n\nSource: %s (Retrieved on %s)",
			content.Text, content.URL, time.Now().UTC().Format("2006-01-02")),
		Keywords: keywords,
		Category: models.CategoryWebContent,
	}
}

// ToMarkdown converts page HTML to markdown for persisted snapshots.
func (s *Service) ToMarkdown(html, sourceURL string) (string, error) {
	converter := md.NewConverter(sourceURL, true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

func (s *Service) fallbackContent(url, query string) *models.ProcessedContent {
	return &models.ProcessedContent{
		Text:           fmt.Sprintf("This is simulated content for %s related to %q. The actual content could not be retrieved.", url, query),
		Title:          fmt.Sprintf("Page about %s", query),
		URL:            url,
		Timestamp:      time.Now().UTC(),
		RelevanceScore: neutralRelevance,
	}
}

// Ensure Service implements ContentProcessor interface
var _ interfaces.ContentProcessor = (*Service)(nil)
