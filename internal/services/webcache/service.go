// Package webcache provides an in-memory per-query cache for processed web
// content. Entries expire after a configurable TTL.
package webcache

import (
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
	"github.com/ternarybob/responsa/internal/models"
)

// Service caches processed web results keyed by normalized query text.
// Freshness is judged by the timestamp of the first entry in a cached set,
// which is the retrieval time of the whole batch.
type Service struct {
	mu      sync.Mutex
	entries map[string][]*models.ProcessedContent
	ttl     time.Duration
	now     func() time.Time
	logger  arbor.ILogger
}

// NewService creates a cache with the given TTL.
func NewService(ttl time.Duration, logger arbor.ILogger) *Service {
	return &Service{
		entries: make(map[string][]*models.ProcessedContent),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// NewServiceWithClock creates a cache with an injected clock for tests.
func NewServiceWithClock(ttl time.Duration, now func() time.Time, logger arbor.ILogger) *Service {
	svc := NewService(ttl, logger)
	svc.now = now
	return svc
}

// Get returns the cached results for a query when present and fresh.
// Stale entries are left in place and reported as a miss, so a later Put
// for the same query simply overwrites them.
func (s *Service) Get(query string) ([]*models.ProcessedContent, bool) {
	key := cacheKey(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok := s.entries[key]
	if !ok || len(cached) == 0 {
		return nil, false
	}

	if s.now().Sub(cached[0].Timestamp) >= s.ttl {
		s.logger.Debug().Str("query", query).Msg("Cached results stale, treating as miss")
		return nil, false
	}

	return cached, true
}

// Put stores results for a query. Empty result sets are not cached so a
// failed retrieval does not suppress a later retry.
func (s *Service) Put(query string, results []*models.ProcessedContent) {
	if len(results) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[cacheKey(query)] = results
}

// Len returns the number of cached queries, including stale entries.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Ensure Service implements RetrievalCache interface
var _ interfaces.RetrievalCache = (*Service)(nil)
