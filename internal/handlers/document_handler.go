package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/interfaces"
)

// DocumentHandler handles HTTP requests for collected documents
type DocumentHandler struct {
	storage interfaces.DocumentStorage
	logger  arbor.ILogger
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(storage interfaces.DocumentStorage, logger arbor.ILogger) *DocumentHandler {
	return &DocumentHandler{
		storage: storage,
		logger:  logger,
	}
}

// ListHandler handles GET /api/documents?topic=...&limit=...&offset=...
func (h *DocumentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	opts := &interfaces.ListOptions{
		Topic:  r.URL.Query().Get("topic"),
		Limit:  GetIntParam(r, "limit", 20),
		Offset: GetIntParam(r, "offset", 0),
	}

	docs, err := h.storage.ListDocuments(opts)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to list documents")
		WriteError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	total, err := h.storage.CountDocuments()
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to count documents")
		total = len(docs)
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(docs),
		"total":     total,
		"documents": docs,
	})
}

// DocumentRoutes handles GET/DELETE /api/documents/{id}
func (h *DocumentHandler) DocumentRoutes(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/documents/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		doc, err := h.storage.GetDocument(id)
		if err != nil {
			WriteError(w, http.StatusNotFound, "Document not found")
			return
		}
		WriteJSON(w, http.StatusOK, doc)
	case http.MethodDelete:
		if err := h.storage.DeleteDocument(id); err != nil {
			h.logger.Warn().Err(err).Str("id", id).Msg("Failed to delete document")
			WriteError(w, http.StatusInternalServerError, "Failed to delete document")
			return
		}
		WriteSuccess(w, "Document deleted")
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
