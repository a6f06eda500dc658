package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Search
	mux.HandleFunc("/api/search", s.searchHandler.SearchHandler)   // POST - run a restaurant search
	mux.HandleFunc("/api/metrics", s.searchHandler.MetricsHandler) // GET - performance snapshot

	// API routes - Service
	mux.HandleFunc("/api/version", s.apiHandler.VersionHandler)
	mux.HandleFunc("/health", s.apiHandler.HealthHandler)

	// Everything else is a JSON 404
	mux.HandleFunc("/", s.apiHandler.NotFoundHandler)

	return mux
}
