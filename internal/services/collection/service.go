// Package collection periodically gathers web content for configured
// topics and persists it as markdown document snapshots.
package collection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/common"
	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// collectionTimeout bounds a full scheduled pass across all topics.
const collectionTimeout = 10 * time.Minute

// markdownConverter is the slice of the content processor the collector
// needs beyond the ContentProcessor interface.
type markdownConverter interface {
	ToMarkdown(html, sourceURL string) (string, error)
}

// Service collects topic snapshots on a cron schedule.
type Service struct {
	config    common.CollectionConfig
	fetcher   interfaces.WebFetcher
	processor interfaces.ContentProcessor
	converter markdownConverter
	storage   interfaces.DocumentStorage
	logger    arbor.ILogger

	cron    *cron.Cron
	entryID cron.EntryID

	mu        sync.Mutex
	running   bool
	lastRun   time.Time
	lastError string
	collected int
}

// NewService creates the topic collector. The converter is typically the
// same value as the processor.
func NewService(
	config common.CollectionConfig,
	fetcher interfaces.WebFetcher,
	processor interfaces.ContentProcessor,
	converter markdownConverter,
	storage interfaces.DocumentStorage,
	logger arbor.ILogger,
) *Service {
	return &Service{
		config:    config,
		fetcher:   fetcher,
		processor: processor,
		converter: converter,
		storage:   storage,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start registers the cron schedule and starts the scheduler.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Info().Msg("Topic collection disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), collectionTimeout)
		defer cancel()
		if err := s.CollectNow(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Scheduled collection skipped")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register collection schedule %q: %w", s.config.Schedule, err)
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info().
		Str("schedule", s.config.Schedule).
		Int("topics", len(s.config.Topics)).
		Msg("Topic collection scheduled")
	return nil
}

// Stop halts the scheduler and waits for any running job to complete.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// CollectNow runs one pass over every configured topic. Topic failures are
// recorded and do not abort the pass.
func (s *Service) CollectNow(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("collection already running")
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastRun = time.Now()
		s.mu.Unlock()
	}()

	var lastErr string
	total := 0
	for _, topic := range s.config.Topics {
		count, err := s.collectTopic(ctx, topic)
		total += count
		if err != nil {
			lastErr = err.Error()
			s.logger.Warn().Err(err).Str("topic", topic).Msg("Topic collection failed")
		}
	}

	s.mu.Lock()
	s.collected += total
	s.lastError = lastErr
	s.mu.Unlock()

	s.logger.Info().Int("documents", total).Int("topics", len(s.config.Topics)).Msg("Collection pass complete")
	return nil
}

// CollectTopic collects documents for a single topic immediately and
// returns the number stored.
func (s *Service) CollectTopic(ctx context.Context, topic string) (int, error) {
	count, err := s.collectTopic(ctx, topic)

	s.mu.Lock()
	s.collected += count
	s.lastRun = time.Now()
	if err != nil {
		s.lastError = err.Error()
	}
	s.mu.Unlock()

	return count, err
}

func (s *Service) collectTopic(ctx context.Context, topic string) (int, error) {
	results, err := s.fetcher.Search(ctx, topic, interfaces.WebSearchOptions{
		NumResults: s.config.MaxResults,
	})
	if err != nil {
		return 0, fmt.Errorf("search failed for topic %q: %w", topic, err)
	}

	stored := 0
	for _, result := range results {
		text := s.processor.ExtractMainContent(result.Content)

		markdown, err := s.converter.ToMarkdown(result.Content, result.Metadata.URL)
		if err != nil {
			s.logger.Warn().Err(err).Str("url", result.Metadata.URL).Msg("Markdown conversion failed, storing plain text")
			markdown = text
		}

		doc := &models.Document{
			ID:              "doc_" + uuid.New().String(),
			Topic:           topic,
			Title:           result.Metadata.Title,
			ContentMarkdown: markdown,
			ContentText:     text,
			URL:             result.Metadata.URL,
			RelevanceScore:  s.processor.ScoreRelevance(text, topic),
			CollectedAt:     time.Now().UTC(),
		}

		if err := s.storage.SaveDocument(doc); err != nil {
			s.logger.Warn().Err(err).Str("url", doc.URL).Msg("Failed to store collected document")
			continue
		}
		stored++
	}

	return stored, nil
}

// Status returns a snapshot of the collector state.
func (s *Service) Status() models.CollectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.CollectionStatus{
		Enabled:            s.config.Enabled,
		Schedule:           s.config.Schedule,
		Topics:             s.config.Topics,
		Running:            s.running,
		LastRun:            s.lastRun,
		LastError:          s.lastError,
		DocumentsCollected: s.collected,
	}

	if s.config.Enabled && s.entryID != 0 {
		status.NextRun = s.cron.Entry(s.entryID).Next
	}
	return status
}

// Ensure Service implements CollectionService interface
var _ interfaces.CollectionService = (*Service)(nil)
