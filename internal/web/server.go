package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dreamware/swatch/internal/favorite"
)

// Renderer produces an HTML body from a template name and its parameters.
// *render.Renderer satisfies it.
type Renderer interface {
	Render(w io.Writer, name string, params map[string]string) error
}

// Server is the swatch HTTP server and the owner of the favorite color.
type Server struct {
	renderer Renderer
	favorite *favorite.Cell
	logger   *slog.Logger
	router   *mux.Router
	server   *http.Server
	addr     string
}

// NewServer creates a server listening on addr once started.
// The favorite color starts out unset.
func NewServer(addr string, renderer Renderer, logger *slog.Logger) *Server {
	s := &Server{
		addr:     addr,
		renderer: renderer,
		favorite: favorite.NewCell(),
		logger:   logger,
		router:   mux.NewRouter().UseEncodedPath(),
	}

	s.registerRoutes()

	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.applyMiddleware(s.router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Favorite exposes the server's favorite color cell.
func (s *Server) Favorite() *favorite.Cell {
	return s.favorite
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("swatch listening", "addr", s.addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("swatch listening", "addr", l.Addr().String())

	if err := s.server.Serve(l); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("swatch stopped")
	return nil
}

// ServeHTTP implements http.Handler with the full middleware chain.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps handler so that RequestID runs first and Recovery last.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	return handler
}
