package report

import (
	"time"

	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
)

// Report status values.
const (
	StatusActive        = "active_seismic_impact"
	StatusQuiet         = "no_significant_activity"
	StatusSourcesDown   = "data_sources_unavailable"
	dataSourceExhausted = "unavailable"
)

// Response caps: the feed is an operational triage list, not an archive.
const (
	maxAffectedAreas    = 30
	maxRecentEarthquake = 10
)

// Summary holds the headline counts for one computed report.
type Summary struct {
	TotalEarthquakes            int `json:"totalEarthquakes"`
	AffectedLocations           int `json:"affectedLocations"`
	CriticalAreas               int `json:"criticalAreas"`
	SevereAreas                 int `json:"severeAreas"`
	HighPriorityAreas           int `json:"highPriorityAreas"`
	LocationsNeedingRescue      int `json:"locationsNeedingRescue"`
	LocationsNeedingRelief      int `json:"locationsNeedingRelief"`
	EstimatedAffectedPopulation int `json:"estimatedAffectedPopulation"`
}

// DeploymentPriority buckets affected locations for operational triage.
type DeploymentPriority struct {
	Critical []string `json:"critical"`
	Severe   []string `json:"severe"`
	High     []string `json:"high"`
}

// Payload is the full computed report. It is stored wholesale in the cache
// and must not be mutated after Set; per-request annotations live on
// Envelope instead.
type Payload struct {
	Success            bool                        `json:"success"`
	Status             string                      `json:"status"`
	Summary            Summary                     `json:"summary"`
	DeploymentPriority DeploymentPriority          `json:"deploymentPriority"`
	AffectedAreas      []domain.AffectedAreaRecord `json:"affectedAreas"`
	RecentEarthquakes  []domain.EventSummary       `json:"recentEarthquakes"`
	DataSource         string                      `json:"dataSource"`
	Timestamp          time.Time                   `json:"timestamp"`
	NextUpdate         time.Time                   `json:"nextUpdate"`
}

// Envelope is a Payload plus the per-request cache annotations.
type Envelope struct {
	Payload
	Cached          bool   `json:"cached"`
	CacheAgeSeconds int    `json:"cacheAgeSeconds"`
	DataFreshness   string `json:"dataFreshness"`
}

// ErrorResponse is the body of a 500 when report computation fails.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// buildPayload shapes events and aggregated records into the response
// envelope: summary counts, triage buckets, capped area and event lists.
func buildPayload(events []domain.SeismicEvent, records []domain.AffectedAreaRecord, source string, computedAt time.Time, ttl time.Duration) *Payload {
	summary := Summary{
		TotalEarthquakes:  len(events),
		AffectedLocations: len(records),
	}

	// Buckets and lists are always arrays on the wire, never null.
	priority := DeploymentPriority{
		Critical: []string{},
		Severe:   []string{},
		High:     []string{},
	}
	for _, r := range records {
		switch r.Assessment.Severity {
		case domain.SeverityCritical:
			summary.CriticalAreas++
			priority.Critical = append(priority.Critical, r.Location)
		case domain.SeveritySevere:
			summary.SevereAreas++
			priority.Severe = append(priority.Severe, r.Location)
		case domain.SeverityHigh:
			summary.HighPriorityAreas++
			priority.High = append(priority.High, r.Location)
		}
		if r.Assessment.NeedsRescue {
			summary.LocationsNeedingRescue++
		}
		if r.Assessment.NeedsRelief {
			summary.LocationsNeedingRelief++
			summary.EstimatedAffectedPopulation += r.Population
		}
	}

	status := StatusQuiet
	if len(records) > 0 {
		status = StatusActive
	}
	if source == dataSourceExhausted {
		status = StatusSourcesDown
	}

	areas := records
	if areas == nil {
		areas = []domain.AffectedAreaRecord{}
	}
	if len(areas) > maxAffectedAreas {
		areas = areas[:maxAffectedAreas]
	}

	recent := make([]domain.EventSummary, 0, min(len(events), maxRecentEarthquake))
	for i, e := range events {
		if i == maxRecentEarthquake {
			break
		}
		recent = append(recent, e.Summary())
	}

	return &Payload{
		Success:            true,
		Status:             status,
		Summary:            summary,
		DeploymentPriority: priority,
		AffectedAreas:      areas,
		RecentEarthquakes:  recent,
		DataSource:         source,
		Timestamp:          computedAt,
		NextUpdate:         computedAt.Add(ttl),
	}
}
