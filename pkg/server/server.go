// Package server exposes layout computation over HTTP.
//
// # Routes
//
//	POST /v1/layout   lay out a graph, respond with a graph.Layout document
//	POST /v1/axes     project cached axis info onto a viewport
//	GET  /healthz     liveness and build information
//	GET  /metrics     Prometheus metrics (when a registry is configured)
//
// Errors are JSON objects carrying the machine-readable code from
// pkg/errors; the HTTP status is derived from it with errors.HTTPStatus.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/nodescape/pkg/buildinfo"
	"github.com/matzehuels/nodescape/pkg/config"
	"github.com/matzehuels/nodescape/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP API.
type Server struct {
	cfg     *config.Config
	logger  *log.Logger
	metrics *metrics.Registry
	router  chi.Router
	started time.Time
}

// New builds a server. A nil cfg uses config.Default(); a nil logger uses
// log.Default(); a nil registry disables /metrics.
func New(cfg *config.Config, logger *log.Logger, reg *metrics.Registry) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: reg,
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/axes", s.handleAxes)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, r, errNotFound(r))
	})
	s.router = r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
