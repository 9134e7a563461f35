package server

import "net/http"

// setupRoutes registers all API routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Query pipeline
	mux.HandleFunc("/api/query", s.app.QueryHandler.QueryHandler) // POST - run the retrieval pipeline

	// Knowledge base
	mux.HandleFunc("/api/knowledge", s.app.KnowledgeHandler.ListHandler)          // GET - all entries
	mux.HandleFunc("/api/knowledge/search", s.app.KnowledgeHandler.SearchHandler) // GET - scored search

	// Collected documents
	mux.HandleFunc("/api/documents", s.app.DocumentHandler.ListHandler)    // GET - list with filters
	mux.HandleFunc("/api/documents/", s.app.DocumentHandler.DocumentRoutes) // GET/DELETE /{id}

	// Collection control
	mux.HandleFunc("/api/collection/trigger", s.app.StatusHandler.TriggerCollectionHandler) // POST

	// Status and diagnostics
	mux.HandleFunc("/api/status", s.app.StatusHandler.GetStatusHandler) // GET - application status
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Catch remaining /api/* routes with JSON 404
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
