package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
	"github.com/couchcryptid/relief-analyzer-service/internal/observability"
)

// ErrAllSourcesFailed is returned when neither the primary nor the secondary
// source produced events.
var ErrAllSourcesFailed = errors.New("all seismic data sources failed")

// Source is an upstream provider of recent seismic events for the region of
// interest. Implementations return normalized events or an error; they never
// return partially-parsed garbage.
type Source interface {
	Name() string
	FetchEvents(ctx context.Context) ([]domain.SeismicEvent, error)
}

// Orchestrator tries the primary source and falls back to the secondary on
// any failure. Strictly either/or within one cycle; no merging.
type Orchestrator struct {
	primary   Source
	secondary Source
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewOrchestrator creates an Orchestrator over the two sources.
func NewOrchestrator(primary, secondary Source, logger *slog.Logger, metrics *observability.Metrics) *Orchestrator {
	return &Orchestrator{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
		metrics:   metrics,
	}
}

// FetchEvents returns events from the first source that succeeds, along with
// that source's name. When both fail the errors are joined under
// ErrAllSourcesFailed.
func (o *Orchestrator) FetchEvents(ctx context.Context) ([]domain.SeismicEvent, string, error) {
	events, err := o.attempt(ctx, o.primary)
	if err == nil {
		return events, o.primary.Name(), nil
	}
	o.logger.Warn("primary source failed, falling back",
		"source", o.primary.Name(),
		"fallback", o.secondary.Name(),
		"error", err,
	)

	events, err2 := o.attempt(ctx, o.secondary)
	if err2 == nil {
		return events, o.secondary.Name(), nil
	}
	o.logger.Error("secondary source failed", "source", o.secondary.Name(), "error", err2)

	return nil, "", fmt.Errorf("%w: %w", ErrAllSourcesFailed, errors.Join(err, err2))
}

func (o *Orchestrator) attempt(ctx context.Context, src Source) ([]domain.SeismicEvent, error) {
	start := time.Now()
	events, err := src.FetchEvents(ctx)
	o.metrics.FetchDuration.WithLabelValues(src.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		o.metrics.FetchAttempts.WithLabelValues(src.Name(), "error").Inc()
		return nil, err
	}
	o.metrics.FetchAttempts.WithLabelValues(src.Name(), "success").Inc()
	return events, nil
}
