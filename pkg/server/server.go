// Package server implements the coverforge HTTP service.
//
// The service exposes the same pipeline as the CLI over two routes:
//
//	POST /covers   render a cover for the posted text
//	GET  /healthz  liveness probe
//
// Rendering is deterministic, so responses are aggressively cacheable:
// the service shares the Runner's artifact cache and reports hits via
// the X-Cache header.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/coverforge/coverforge/pkg/config"
	"github.com/coverforge/coverforge/pkg/pipeline"
)

// maxBodyBytes bounds the posted text size. One megabyte is far beyond
// any blog post and keeps analysis time predictable.
const maxBodyBytes = 1 << 20

// Server wires the pipeline runner into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	cfg    config.Config
	logger *log.Logger
}

// New creates a server around an existing runner.
func New(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: runner,
		cfg:    cfg,
		logger: logger,
	}
}

// Handler builds the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/covers", s.handleCover)

	return r
}

// ListenAndServe runs the HTTP server until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", s.cfg.Server.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
