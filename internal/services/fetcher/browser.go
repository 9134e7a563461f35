package fetcher

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/models"
)

const browserNavigateTimeout = 45 * time.Second

// browserFetcher drives a local headless Chrome via chromedp. Each session
// is a dedicated browser context torn down on CloseSession.
type browserFetcher struct {
	config   common.WebSearchConfig
	logger   arbor.ILogger
	mu       sync.Mutex
	sessions map[string]*browserSession
}

type browserSession struct {
	ctx             context.Context
	cancel          context.CancelFunc
	allocatorCancel context.CancelFunc
}

func newBrowserFetcher(config common.WebSearchConfig, logger arbor.ILogger) *browserFetcher {
	return &browserFetcher{
		config:   config,
		logger:   logger,
		sessions: make(map[string]*browserSession),
	}
}

// openSession allocates a headless Chrome context and verifies it starts.
func (b *browserFetcher) openSession(ctx context.Context) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.UserAgent(b.config.UserAgent),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocatorCtx, allocatorCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx,
		chromedp.WithLogf(func(s string, i ...interface{}) {
			b.logger.Debug().Msgf("chromedp: "+s, i...)
		}),
	)

	testCtx, testCancel := context.WithTimeout(browserCtx, 30*time.Second)
	defer testCancel()
	if err := chromedp.Run(testCtx, chromedp.Navigate("about:blank")); err != nil {
		browserCancel()
		allocatorCancel()
		return "", fmt.Errorf("browser failed startup test: %w", err)
	}

	sessionID := uuid.New().String()
	b.mu.Lock()
	b.sessions[sessionID] = &browserSession{
		ctx:             browserCtx,
		cancel:          browserCancel,
		allocatorCancel: allocatorCancel,
	}
	b.mu.Unlock()

	b.logger.Debug().Str("session_id", sessionID).Msg("Browser session opened")
	return sessionID, nil
}

// navigate loads a URL, waits for the body, and captures the rendered HTML.
func (b *browserFetcher) navigate(ctx context.Context, sessionID, targetURL string, captureScreenshot bool) (*models.FetchResult, error) {
	session, err := b.session(sessionID)
	if err != nil {
		return nil, err
	}

	navCtx, cancel := context.WithTimeout(session.ctx, browserNavigateTimeout)
	defer cancel()

	var html, title string
	actions := []chromedp.Action{
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
		chromedp.Title(&title),
	}

	var screenshot []byte
	if captureScreenshot {
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			screenshot, err = page.CaptureScreenshot().Do(ctx)
			return err
		}))
	}

	if err := chromedp.Run(navCtx, actions...); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", targetURL, err)
	}

	result := &models.FetchResult{
		Content: html,
		Metadata: models.PageMetadata{
			URL:         targetURL,
			Title:       title,
			Timestamp:   time.Now().UTC(),
			ContentType: "text/html",
		},
	}
	if len(screenshot) > 0 {
		result.Screenshots = []string{base64.StdEncoding.EncodeToString(screenshot)}
	}
	return result, nil
}

// extractResultLinks parses a search results page and returns outbound links.
func (b *browserFetcher) extractResultLinks(html string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, exists := s.Attr("href")
		if !exists || !strings.HasPrefix(href, "http") {
			return true
		}
		// Skip links back into the search engine itself.
		if strings.Contains(href, "google.com") {
			return true
		}
		if !seen[href] {
			seen[href] = true
			links = append(links, href)
		}
		return len(links) < limit
	})

	return links, nil
}

// closeSession tears down the session's browser context.
func (b *browserFetcher) closeSession(sessionID string) error {
	b.mu.Lock()
	session, exists := b.sessions[sessionID]
	delete(b.sessions, sessionID)
	b.mu.Unlock()

	if !exists {
		return nil
	}
	session.cancel()
	session.allocatorCancel()
	b.logger.Debug().Str("session_id", sessionID).Msg("Browser session closed")
	return nil
}

func (b *browserFetcher) session(sessionID string) (*browserSession, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	session, exists := b.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("unknown browser session: %s", sessionID)
	}
	return session, nil
}
