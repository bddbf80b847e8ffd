// Package server assembles the HTTP server, routes, and middleware.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fablemock/fable/internal/api"
	"github.com/fablemock/fable/internal/config"
	"github.com/fablemock/fable/internal/observability"
)

// Server hosts the mock endpoint.
type Server struct {
	cfg      config.ServerConfig
	logger   *zap.Logger
	handlers *api.Handlers
	httpSrv  *http.Server
}

// New creates a server from configuration. audit may be nil.
func New(cfg config.ServerConfig, logger *zap.Logger, audit *observability.AuditLogger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		handlers: api.NewHandlers(logger, audit),
	}
	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Routes returns the handler tree with middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/responses", s.handlers.Responses)
	mux.HandleFunc("/v1/health", s.handlers.Health)
	mux.Handle("/metrics", observability.MetricsHandler())
	return s.instrument(mux)
}

// ListenAndServe starts serving. It returns http.ErrServerClosed after
// a graceful Shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// instrument wraps the mux with request logging, tracing, and metrics.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, span := observability.StartRequestSpan(r.Context(), r.Method, r.URL.Path)
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		elapsed := time.Since(start)
		observability.RecordRequest(r.URL.Path, rec.status, elapsed)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed),
		)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
