package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
)

// StatusHandler handles HTTP requests for application and collector status
type StatusHandler struct {
	collection interfaces.CollectionService
	cache      interfaces.RetrievalCache
	knowledge  interfaces.KnowledgeService
	fetcher    interfaces.WebFetcher
	documents  interfaces.DocumentStorage
	started    time.Time
	logger     arbor.ILogger
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(
	collection interfaces.CollectionService,
	cache interfaces.RetrievalCache,
	knowledge interfaces.KnowledgeService,
	fetcher interfaces.WebFetcher,
	documents interfaces.DocumentStorage,
	logger arbor.ILogger,
) *StatusHandler {
	return &StatusHandler{
		collection: collection,
		cache:      cache,
		knowledge:  knowledge,
		fetcher:    fetcher,
		documents:  documents,
		started:    time.Now(),
		logger:     logger,
	}
}

// GetStatusHandler handles GET /api/status
func (h *StatusHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	documentCount, err := h.documents.CountDocuments()
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to count documents for status")
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"fetch_mode":        h.fetcher.Mode(),
		"knowledge_entries": len(h.knowledge.AllEntries()),
		"cached_queries":    h.cache.Len(),
		"documents":         documentCount,
		"collection":        h.collection.Status(),
		"uptime":            time.Since(h.started).Round(time.Second).String(),
	})
}

// TriggerCollectionHandler handles POST /api/collection/trigger and
// POST /api/collection/trigger?topic=...
func (h *StatusHandler) TriggerCollectionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	if topic := strings.TrimSpace(r.URL.Query().Get("topic")); topic != "" {
		count, err := h.collection.CollectTopic(r.Context(), topic)
		if err != nil {
			h.logger.Warn().Err(err).Str("topic", topic).Msg("Manual topic collection failed")
			WriteError(w, http.StatusInternalServerError, "Collection failed")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "success",
			"topic":     topic,
			"documents": count,
		})
		return
	}

	if err := h.collection.CollectNow(r.Context()); err != nil {
		WriteError(w, http.StatusConflict, err.Error())
		return
	}
	WriteSuccess(w, "Collection pass complete")
}
