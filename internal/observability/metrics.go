package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the analyzer.
type Metrics struct {
	FetchAttempts *prometheus.CounterVec   // labels: source={phivolcs,usgs}, outcome={success,error}
	FetchDuration *prometheus.HistogramVec // labels: source={phivolcs,usgs}

	ReportsComputed    prometheus.Counter
	ReportFailures     prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheClears        prometheus.Counter
	TimestampFallbacks prometheus.Counter
	AffectedLocations  prometheus.Gauge

	AlertsPublished prometheus.Counter
	AlertsEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all analyzer metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FetchAttempts,
		m.FetchDuration,
		m.ReportsComputed,
		m.ReportFailures,
		m.CacheHits,
		m.CacheMisses,
		m.CacheClears,
		m.TimestampFallbacks,
		m.AffectedLocations,
		m.AlertsPublished,
		m.AlertsEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "fetch_attempts_total",
			Help:      "Upstream fetch attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "relief_analyzer",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream fetch duration by source.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"source"}),
		ReportsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "reports_computed_total",
			Help:      "Total full fetch-aggregate cycles completed.",
		}),
		ReportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "report_failures_total",
			Help:      "Total report computations that failed.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "cache_hits_total",
			Help:      "Requests served from the fresh cached report.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "cache_misses_total",
			Help:      "Requests that triggered a recomputation.",
		}),
		CacheClears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "cache_clears_total",
			Help:      "Administrative cache invalidations.",
		}),
		TimestampFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "timestamp_fallbacks_total",
			Help:      "Bulletin timestamps that could not be parsed and were estimated.",
		}),
		AffectedLocations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relief_analyzer",
			Name:      "affected_locations",
			Help:      "Monitored locations impacted in the last computed report.",
		}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relief_analyzer",
			Name:      "alerts_published_total",
			Help:      "Severe-area alerts published to Kafka.",
		}),
		AlertsEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relief_analyzer",
			Name:      "alerts_enabled",
			Help:      "1 when Kafka alert publishing is enabled, 0 otherwise.",
		}),
	}
}
