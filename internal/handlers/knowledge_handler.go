package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
)

// KnowledgeHandler exposes the static knowledge base over HTTP
type KnowledgeHandler struct {
	knowledge interfaces.KnowledgeService
	logger    arbor.ILogger
}

// NewKnowledgeHandler creates a new KnowledgeHandler
func NewKnowledgeHandler(knowledge interfaces.KnowledgeService, logger arbor.ILogger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledge: knowledge,
		logger:    logger,
	}
}

// ListHandler handles GET /api/knowledge
func (h *KnowledgeHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	entries := h.knowledge.AllEntries()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}

// SearchHandler handles GET /api/knowledge/search?q=...&limit=...
func (h *KnowledgeHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		WriteError(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	limit := GetIntParam(r, "limit", 3)
	results := h.knowledge.FindRelevant(query, limit)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}
