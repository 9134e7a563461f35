package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/responsa/internal/models"
	"github.com/ternarybob/responsa/internal/services/retrieval"
)

// QueryHandler handles HTTP requests for the query pipeline
type QueryHandler struct {
	middleware *retrieval.Middleware
	logger     arbor.ILogger
}

// NewQueryHandler creates a new QueryHandler
func NewQueryHandler(middleware *retrieval.Middleware, logger arbor.ILogger) *QueryHandler {
	return &QueryHandler{
		middleware: middleware,
		logger:     logger,
	}
}

type queryRequest struct {
	Query   string               `json:"query"`
	Options *models.QueryOptions `json:"options,omitempty"`
}

// QueryHandler handles POST /api/query
func (h *QueryHandler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		WriteError(w, http.StatusBadRequest, "Query is required")
		return
	}

	envelope := h.middleware.Process(r.Context(), req.Query, req.Options)
	WriteJSON(w, http.StatusOK, envelope)
}
