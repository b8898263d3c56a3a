package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/relief-analyzer-service/internal/report"
)

// ReportService is the analyzer surface the HTTP layer exposes.
type ReportService interface {
	Report(ctx context.Context) (*report.Envelope, error)
	CheckReadiness(ctx context.Context) error
	Cache() *report.Cache
	ClearCache()
	MonitoredLocationCount() int
}

// Server exposes the relief distribution feed plus health and metrics endpoints.
type Server struct {
	httpServer *http.Server
	service    ReportService
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewServer creates the HTTP server and routes. Pass a fake clock in tests.
func NewServer(addr string, service ReportService, clock clockwork.Clock, logger *slog.Logger) *Server {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: mux,
			// The stale path runs both upstream fetches inline (15s + 10s
			// worst case), so the write timeout must outlast them.
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		service: service,
		clock:   clock,
		logger:  logger,
	}

	mux.HandleFunc("GET /relief-distribution", s.handleReliefDistribution)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /cache/clear", s.handleCacheClear)
	mux.HandleFunc("GET /healthz", s.handleLiveness)
	mux.HandleFunc("GET /readyz", s.handleReadiness)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleReliefDistribution(w http.ResponseWriter, r *http.Request) {
	envelope, err := s.service.Report(r.Context())
	if err != nil {
		s.logger.Error("report generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, report.ErrorResponse{
			Success:   false,
			Error:     "failed to generate relief distribution report",
			Details:   err.Error(),
			Timestamp: s.clock.Now().UTC(),
		})
		return
	}
	writeJSON(w, http.StatusOK, envelope)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	cache := s.service.Cache()
	age, active := cache.Age()

	body := map[string]any{
		"status":              "healthy",
		"cache_active":        active,
		"monitored_locations": s.service.MonitoredLocationCount(),
	}
	if active {
		body["cache_age_seconds"] = int(age.Seconds())
		remaining := cache.TTL() - age
		if remaining < 0 {
			remaining = 0
		}
		body["cache_expires_in_seconds"] = int(remaining.Seconds())
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleCacheClear(w http.ResponseWriter, _ *http.Request) {
	s.service.ClearCache()
	s.logger.Info("cache cleared by administrative request")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "report cache cleared",
	})
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.service.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
