package domain

import (
	"math"
	"sort"
)

// AffectedAreaRecord is the aggregated impact finding for one monitored
// location within a fetch cycle: at most one record per location, always
// reflecting the most severe assessment found across all events.
type AffectedAreaRecord struct {
	Location           string           `json:"location"`
	Latitude           float64          `json:"latitude"`
	Longitude          float64          `json:"longitude"`
	Population         int              `json:"population"`
	DistanceKm         float64          `json:"distanceKm"`
	Assessment         ImpactAssessment `json:"impactAssessment"`
	RecommendedActions []string         `json:"recommendedActions"`
	TriggeringEvent    EventSummary     `json:"triggeringEvent"`
}

// SortEventsByRecency orders events newest first, breaking timestamp ties by
// descending magnitude. Aggregation tie-breaking is first-seen-wins, so this
// ordering decides which event a location's record points at when two events
// classify identically.
func SortEventsByRecency(events []SeismicEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].OccurredAt.Equal(events[j].OccurredAt) {
			return events[i].OccurredAt.After(events[j].OccurredAt)
		}
		return events[i].Magnitude > events[j].Magnitude
	})
}

// Aggregate evaluates every event against every monitored location and
// returns one record per impacted location, sorted ascending by priority.
// A location is impacted when at least one event classifies above MINIMAL;
// the retained record is the lowest-priority-number (most severe) one, with
// ties keeping the first record found in iteration order.
func Aggregate(events []SeismicEvent, locations []MonitoredLocation) []AffectedAreaRecord {
	best := make(map[string]AffectedAreaRecord, len(locations))

	for _, event := range events {
		for _, loc := range locations {
			distance := DistanceKm(event.Latitude, event.Longitude, loc.Latitude, loc.Longitude)
			assessment := Classify(event.Magnitude, distance)
			if assessment.Severity == SeverityMinimal {
				continue
			}

			if existing, found := best[loc.Name]; found && existing.Assessment.Priority <= assessment.Priority {
				continue
			}

			best[loc.Name] = AffectedAreaRecord{
				Location:           loc.Name,
				Latitude:           loc.Latitude,
				Longitude:          loc.Longitude,
				Population:         loc.Population,
				DistanceKm:         math.Round(distance*10) / 10,
				Assessment:         assessment,
				RecommendedActions: RecommendationsFor(assessment.Severity),
				TriggeringEvent:    event.Summary(),
			}
		}
	}

	records := make([]AffectedAreaRecord, 0, len(best))
	for _, record := range best {
		records = append(records, record)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Assessment.Priority != records[j].Assessment.Priority {
			return records[i].Assessment.Priority < records[j].Assessment.Priority
		}
		// Equal priority: larger population first for dispatch planning,
		// then name, so the order survives map iteration.
		if records[i].Population != records[j].Population {
			return records[i].Population > records[j].Population
		}
		return records[i].Location < records[j].Location
	})
	return records
}
