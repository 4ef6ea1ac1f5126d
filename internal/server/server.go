package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ternarybob/mandatum/internal/app"
)

// The write timeout has to cover a full model round trip, which dominates
// the request latency budget.
const (
	readTimeout  = 15 * time.Second
	writeTimeout = 2 * time.Minute
	idleTimeout  = 60 * time.Second
)

// Server binds the application's handlers to an http.Server.
type Server struct {
	app    *app.App
	addr   string
	server *http.Server
}

// New creates the HTTP server for the given application
func New(application *app.App) *Server {
	s := &Server{
		app:  application,
		addr: fmt.Sprintf("%s:%d", application.Config.Server.Host, application.Config.Server.Port),
	}

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.withMiddleware(s.setupRoutes()),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.addr
}

// Start serves requests until Shutdown is called
func (s *Server) Start() error {
	s.app.Logger.Info().Str("address", s.addr).Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.app.Logger.Info().Str("address", s.addr).Msg("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.app.Logger.Info().Msg("HTTP server stopped")
	return nil
}
