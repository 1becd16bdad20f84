// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	handler "github.com/newthinker/overlay/internal/api/handler/api"
	"github.com/newthinker/overlay/internal/api/response"
	"github.com/newthinker/overlay/internal/backtest"
	"github.com/newthinker/overlay/internal/config"
	"github.com/newthinker/overlay/internal/core"
	"github.com/newthinker/overlay/internal/metrics"
	"github.com/newthinker/overlay/internal/storage/archive"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server represents the HTTP server for the report service
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	router     *chi.Mux
}

// Config holds server configuration
type Config struct {
	Host        string
	Port        int
	CORSOrigins []string
	MetricsPath string // empty disables the metrics endpoint
}

// Dependencies holds the collaborators the handlers need.
type Dependencies struct {
	Runner  backtest.Runner
	Options config.Options
	Metrics *metrics.Registry // optional
	Store   archive.Storage   // optional, enables GET /api/bundles
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	if deps.Runner == nil {
		return nil, fmt.Errorf("runner is required")
	}

	router := chi.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
		router: router,
	}

	s.setupMiddleware(cfg, deps)
	s.setupRoutes(cfg, deps)

	return s, nil
}

func (s *Server) setupMiddleware(cfg Config, deps Dependencies) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(metrics.LoggingMiddleware(s.logger))
	if deps.Metrics != nil {
		s.router.Use(metrics.HTTPMiddleware(deps.Metrics))
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", metrics.RequestIDHeader},
		ExposedHeaders: []string{metrics.RequestIDHeader},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes(cfg Config, deps Dependencies) {
	reports := handler.NewReportHandler(deps.Runner, deps.Options, deps.Metrics, s.logger)
	options := handler.NewOptionsHandler(deps.Options)

	s.router.Post("/run_backtest", reports.Run)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/options", options.List)
		if deps.Store != nil {
			r.Get("/bundles", handler.NewBundlesHandler(deps.Store, deps.Options).List)
		}
	})

	if deps.Metrics != nil && cfg.MetricsPath != "" {
		s.router.Handle(cfg.MetricsPath, promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, core.WrapError(core.ErrRequestInvalid,
			fmt.Errorf("no route for %s", r.URL.Path)))
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, core.WrapError(core.ErrRequestInvalid,
			fmt.Errorf("method %s not allowed on %s", r.Method, r.URL.Path)))
	})
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
