// Package server provides the HTTP REST API for job search and recommendations.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/recommend"
	"github.com/jonathan/job-matcher/internal/search"
	"github.com/jonathan/job-matcher/internal/server/middleware"
	"github.com/jonathan/job-matcher/internal/server/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 30 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	search      *search.Service
	engine      *recommend.Engine
	rateLimiter *ratelimit.Limiter
	logger      *zap.Logger
	cfg         Config
}

// Config holds server configuration
type Config struct {
	Port int

	RecommendDefaultLimit int
	RecommendMaxLimit     int
	TrendingLimit         int
	TrendingTimeframeDays int

	// RateLimit overrides the RATE_LIMIT_* environment configuration when set.
	RateLimit *ratelimit.Config
}

// New creates a new server instance over a search service and a recommendation engine.
func New(cfg Config, svc *search.Service, engine *recommend.Engine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.RecommendDefaultLimit <= 0 {
		cfg.RecommendDefaultLimit = recommend.DefaultLimit
	}
	if cfg.RecommendMaxLimit < cfg.RecommendDefaultLimit {
		cfg.RecommendMaxLimit = max(cfg.RecommendDefaultLimit, search.MaxPageSize)
	}
	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		search:      svc,
		engine:      engine,
		rateLimiter: ratelimit.NewLimiter(rateConfig),
		logger:      log,
		cfg:         cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /query/parse", s.handleParseQuery)

	// Search
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/search/nlp", s.handleSearchNLP)
	mux.HandleFunc("GET /jobs/search/suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /jobs/trending", s.handleTrending)
	mux.HandleFunc("GET /jobs/insights", s.handleInsights)

	// Single jobs
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("POST /jobs/{id}/interactions", s.handleRecordInteraction)

	// Recommendations
	mux.HandleFunc("POST /recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /salary/predict", s.handlePredictSalary)

	s.httpServer = &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: middleware.Chain(mux,
			middleware.RequestID,
			s.withRateLimit,
			s.withLogging,
			s.withRecover,
			s.withCORS,
		),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is canceled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return err
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failRequest maps err to a status and writes it. Internal errors are logged
// and their details withheld from the client.
func (s *Server) failRequest(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String(logger.FieldRequest, middleware.RequestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message = "internal server error"
	}
	s.errorResponse(w, status, message)
}
