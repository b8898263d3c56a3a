package domain

import "time"

// Source identifiers for seismic events.
const (
	SourcePHIVOLCS = "phivolcs"
	SourceUSGS     = "usgs"
)

// SeismicEvent is the normalized representation of one earthquake reading.
// Events are ephemeral: produced per fetch cycle, embedded in the cached
// report, and discarded when the cache rolls over.
type SeismicEvent struct {
	OccurredAtRaw string    `json:"occurredAtRaw"`
	OccurredAt    time.Time `json:"occurredAt"`
	// TimeEstimated is true when OccurredAtRaw could not be parsed and
	// OccurredAt was filled with the fetch-time clock instead.
	TimeEstimated bool    `json:"timeEstimated,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	// Depth is display text as reported by the source; units vary between
	// sources and are not normalized.
	Depth     string  `json:"depth"`
	Magnitude float64 `json:"magnitude"`
	Location  string  `json:"location"`
	Source    string  `json:"source"`
}

// MonitoredLocation is a populated place the analyzer evaluates every event
// against. The registry is fixed at build time and never mutated.
type MonitoredLocation struct {
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int     `json:"population"`
}

// EventSummary is the reduced view of a SeismicEvent embedded in affected-area
// records and the recent-earthquakes list.
type EventSummary struct {
	Magnitude  float64   `json:"magnitude"`
	Location   string    `json:"location"`
	Depth      string    `json:"depth"`
	OccurredAt time.Time `json:"occurredAt"`
	Source     string    `json:"source"`
}

// Summary returns the reduced view of the event.
func (e SeismicEvent) Summary() EventSummary {
	return EventSummary{
		Magnitude:  e.Magnitude,
		Location:   e.Location,
		Depth:      e.Depth,
		OccurredAt: e.OccurredAt,
		Source:     e.Source,
	}
}
