// Package httpserver provides the HTTP server for the CW20 ledger service.
package httpserver

import (
	"context"
	"net/http"
	"time"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
}

// New creates a new HTTP server.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		handler: handler,
	}
}

// SetTimeouts configures the read and write timeouts. Zero values leave
// the corresponding timeout unset.
func (s *Server) SetTimeouts(read, write time.Duration) {
	s.httpServer.ReadTimeout = read
	s.httpServer.WriteTimeout = write
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
