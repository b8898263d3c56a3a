package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/relief-analyzer-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/relief-analyzer-service/internal/adapter/kafka"
	"github.com/couchcryptid/relief-analyzer-service/internal/adapter/phivolcs"
	"github.com/couchcryptid/relief-analyzer-service/internal/adapter/usgs"
	"github.com/couchcryptid/relief-analyzer-service/internal/config"
	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
	"github.com/couchcryptid/relief-analyzer-service/internal/fetch"
	"github.com/couchcryptid/relief-analyzer-service/internal/observability"
	"github.com/couchcryptid/relief-analyzer-service/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	primary := phivolcs.NewClient(cfg, logger, metrics)
	secondary := usgs.NewClient(cfg, clock, logger)
	orchestrator := fetch.NewOrchestrator(primary, secondary, logger, metrics)

	// Alert publishing is feature-flagged via KAFKA_BROKERS / KAFKA_ALERTS_ENABLED.
	var publisher report.AlertPublisher
	var kafkaWriter *kafkaadapter.Writer
	if cfg.KafkaAlertsEnabled {
		kafkaWriter = kafkaadapter.NewWriter(cfg, logger)
		publisher = kafkaWriter
		metrics.AlertsEnabled.Set(1)
		logger.Info("kafka alert publishing enabled", "topic", cfg.KafkaAlertTopic)
	} else {
		logger.Info("kafka alert publishing disabled")
	}

	cache := report.NewCache(cfg.CacheTTL, clock)
	service := report.NewService(orchestrator, cache, publisher, domain.MonitoredLocations(), clock, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, service, clock, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
