// Package report computes and caches the relief deployment priority feed:
// fetch events, sort, aggregate against monitored locations, summarize, and
// serve from a time-boxed cache.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
	"github.com/couchcryptid/relief-analyzer-service/internal/observability"
)

// Fetcher produces the cycle's events and the name of the source that
// supplied them. fetch.Orchestrator implements it.
type Fetcher interface {
	FetchEvents(ctx context.Context) ([]domain.SeismicEvent, string, error)
}

// AlertPublisher pushes severe affected-area records to downstream
// consumers. Publishing is best-effort; failures never fail the report.
type AlertPublisher interface {
	PublishAlerts(ctx context.Context, records []domain.AffectedAreaRecord) error
}

// Service assembles reports on demand and serves them through the cache.
type Service struct {
	fetcher   Fetcher
	cache     *Cache
	publisher AlertPublisher // nil when alert publishing is disabled
	locations []domain.MonitoredLocation
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics

	// recomputeMu serializes the stale path so concurrent requests during a
	// stale window trigger a single upstream fetch instead of a herd.
	recomputeMu sync.Mutex
	ready       atomic.Bool
}

// NewService wires the report pipeline. publisher may be nil.
func NewService(fetcher Fetcher, cache *Cache, publisher AlertPublisher, locations []domain.MonitoredLocation, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		fetcher:   fetcher,
		cache:     cache,
		publisher: publisher,
		locations: locations,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once the first report has been computed.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no report computed yet")
	}
	return nil
}

// Cache exposes the underlying cache for health reporting.
func (s *Service) Cache() *Cache { return s.cache }

// ClearCache force-invalidates the cached report. The next request always
// recomputes.
func (s *Service) ClearCache() {
	s.cache.Clear()
	s.metrics.CacheClears.Inc()
}

// MonitoredLocationCount reports the size of the location registry.
func (s *Service) MonitoredLocationCount() int { return len(s.locations) }

// Report serves the cached payload when fresh, otherwise runs the full
// fetch-aggregate cycle and caches the result. When every data source is
// down it still produces and caches a valid degraded payload so the feed
// stays available; only cancellation aborts the cycle with an error.
func (s *Service) Report(ctx context.Context) (*Envelope, error) {
	if payload, age, ok := s.cache.Get(); ok {
		s.metrics.CacheHits.Inc()
		return annotate(payload, true, age.Seconds()), nil
	}

	s.recomputeMu.Lock()
	defer s.recomputeMu.Unlock()

	// A concurrent request may have recomputed while this one waited.
	if payload, age, ok := s.cache.Get(); ok {
		s.metrics.CacheHits.Inc()
		return annotate(payload, true, age.Seconds()), nil
	}
	s.metrics.CacheMisses.Inc()

	payload, err := s.compute(ctx)
	if err != nil {
		s.metrics.ReportFailures.Inc()
		return nil, err
	}

	s.cache.Set(payload)
	s.ready.Store(true)
	s.publishAlerts(ctx, payload.AffectedAreas)

	return annotate(payload, false, 0), nil
}

// compute runs one fetch-sort-aggregate-summarize cycle.
func (s *Service) compute(ctx context.Context) (*Payload, error) {
	events, source, err := s.fetcher.FetchEvents(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("report cycle aborted: %w", err)
		}
		// Both sources down: degrade to an empty, clearly-labeled payload
		// rather than taking the feed offline.
		s.logger.Error("all data sources failed, serving degraded report", "error", err)
		s.metrics.ReportFailures.Inc()
		events, source = nil, dataSourceExhausted
	}

	domain.SortEventsByRecency(events)
	records := domain.Aggregate(events, s.locations)

	s.metrics.ReportsComputed.Inc()
	s.metrics.AffectedLocations.Set(float64(len(records)))
	s.logger.Info("report computed",
		"source", source,
		"events", len(events),
		"affected_locations", len(records),
	)

	return buildPayload(events, records, source, s.clock.Now().UTC(), s.cache.TTL()), nil
}

// publishAlerts sends CRITICAL and SEVERE records downstream, best-effort.
func (s *Service) publishAlerts(ctx context.Context, records []domain.AffectedAreaRecord) {
	if s.publisher == nil {
		return
	}

	var urgent []domain.AffectedAreaRecord
	for _, r := range records {
		if r.Assessment.Severity == domain.SeverityCritical || r.Assessment.Severity == domain.SeveritySevere {
			urgent = append(urgent, r)
		}
	}
	if len(urgent) == 0 {
		return
	}

	if err := s.publisher.PublishAlerts(ctx, urgent); err != nil {
		s.logger.Warn("alert publishing failed", "areas", len(urgent), "error", err)
		return
	}
	s.metrics.AlertsPublished.Add(float64(len(urgent)))
}

func annotate(payload *Payload, cached bool, ageSeconds float64) *Envelope {
	freshness := "live"
	if cached {
		freshness = "cached"
	}
	return &Envelope{
		Payload:         *payload,
		Cached:          cached,
		CacheAgeSeconds: int(ageSeconds),
		DataFreshness:   freshness,
	}
}
