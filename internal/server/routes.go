package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - AI query (natural language -> CRUD operations)
	mux.HandleFunc("/api/ai/query", s.app.AIHandler.QueryHandler)
	mux.HandleFunc("/api/ai/health", s.app.AIHandler.HealthHandler)

	// API routes - Items (direct CRUD over the same collection)
	mux.HandleFunc("/api/items/stats", s.app.ItemHandler.StatsHandler)
	mux.HandleFunc("/api/items", s.handleItemsRoute)  // GET (list), POST (create)
	mux.HandleFunc("/api/items/", s.handleItemRoutes) // GET/PUT/DELETE /{id}

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// handleItemsRoute routes collection-level item requests by method
func (s *Server) handleItemsRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.app.ItemHandler.ListHandler(w, r)
	case http.MethodPost:
		s.app.ItemHandler.CreateHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleItemRoutes routes /api/items/{id} requests by method
func (s *Server) handleItemRoutes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.app.ItemHandler.GetHandler(w, r)
	case http.MethodPut:
		s.app.ItemHandler.UpdateHandler(w, r)
	case http.MethodDelete:
		s.app.ItemHandler.DeleteHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
