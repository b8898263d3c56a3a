package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocations = []MonitoredLocation{
	{Name: "Alpha", Latitude: 14.0, Longitude: 121.0, Population: 500000},
	{Name: "Bravo", Latitude: 15.0, Longitude: 121.0, Population: 300000},
	{Name: "Charlie", Latitude: 8.0, Longitude: 125.0, Population: 200000},
}

// eventAt builds an event at a fixed offset north of the given coordinate so
// distances stay predictable (~111 km per degree of latitude).
func eventAt(lat, lon, magnitude float64, at time.Time) SeismicEvent {
	return SeismicEvent{
		OccurredAt: at,
		Latitude:   lat,
		Longitude:  lon,
		Magnitude:  magnitude,
		Location:   "test epicenter",
		Source:     SourcePHIVOLCS,
	}
}

func TestAggregate_KeepsMostSevereAssessmentPerLocation(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	// First event: ~22 km from Alpha at magnitude 6.8 → CRITICAL (rank 1).
	// Second event: ~11 km from Alpha at magnitude 5.6 → SEVERE (rank 2).
	events := []SeismicEvent{
		eventAt(14.2, 121.0, 6.8, base),
		eventAt(14.1, 121.0, 5.6, base.Add(-time.Hour)),
	}

	records := Aggregate(events, testLocations[:1])
	require.Len(t, records, 1)

	assert.Equal(t, "Alpha", records[0].Location)
	assert.Equal(t, SeverityCritical, records[0].Assessment.Severity)
	assert.Equal(t, 1, records[0].Assessment.Priority)
	assert.Equal(t, 6.8, records[0].TriggeringEvent.Magnitude)
}

func TestAggregate_DiscardsMinimalImpact(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	// Magnitude 5.0 at ~80 km matches no band → MINIMAL → discarded.
	events := []SeismicEvent{eventAt(14.72, 121.0, 5.0, base)}

	records := Aggregate(events, testLocations[:1])
	assert.Empty(t, records)
}

func TestAggregate_TieKeepsFirstSeen(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	// Both events classify Alpha as CRITICAL; the first in iteration order
	// must be retained.
	events := []SeismicEvent{
		eventAt(14.1, 121.0, 7.1, base),
		eventAt(14.2, 121.0, 6.9, base),
	}

	records := Aggregate(events, testLocations[:1])
	require.Len(t, records, 1)
	assert.Equal(t, 7.1, records[0].TriggeringEvent.Magnitude)
}

func TestAggregate_OneRecordPerLocationSortedByPriority(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	events := []SeismicEvent{
		// ~22 km from Alpha (CRITICAL), ~89 km from Bravo (HIGH).
		eventAt(14.2, 121.0, 6.8, base),
		// ~22 km from Charlie at 5.8 → HIGH.
		eventAt(8.2, 125.0, 5.8, base),
	}

	records := Aggregate(events, testLocations)
	require.Len(t, records, 3)

	seen := map[string]bool{}
	for _, r := range records {
		assert.False(t, seen[r.Location], "duplicate record for %s", r.Location)
		seen[r.Location] = true
	}

	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i-1].Assessment.Priority, records[i].Assessment.Priority)
	}
	assert.Equal(t, "Alpha", records[0].Location)
}

func TestAggregate_RetainedRecordIsBestAvailable(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	events := []SeismicEvent{
		eventAt(14.2, 121.0, 6.8, base),
		eventAt(14.1, 121.0, 5.6, base),
		eventAt(14.5, 121.0, 4.6, base),
	}

	records := Aggregate(events, testLocations)
	for _, record := range records {
		var loc MonitoredLocation
		for _, l := range testLocations {
			if l.Name == record.Location {
				loc = l
			}
		}
		bestPriority := minimalAssessment.Priority
		for _, e := range events {
			d := DistanceKm(e.Latitude, e.Longitude, loc.Latitude, loc.Longitude)
			if a := Classify(e.Magnitude, d); a.Severity != SeverityMinimal && a.Priority < bestPriority {
				bestPriority = a.Priority
			}
		}
		assert.Equal(t, bestPriority, record.Assessment.Priority, "location %s", record.Location)
	}
}

func TestAggregate_RecordCarriesLocationAndActions(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	events := []SeismicEvent{eventAt(14.2, 121.0, 6.8, base)}

	records := Aggregate(events, testLocations[:1])
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, 14.0, r.Latitude)
	assert.Equal(t, 121.0, r.Longitude)
	assert.Equal(t, 500000, r.Population)
	assert.InDelta(t, 22.2, r.DistanceKm, 0.5)
	assert.Len(t, r.RecommendedActions, 5)
	assert.Equal(t, SourcePHIVOLCS, r.TriggeringEvent.Source)
}

func TestAggregate_FullTieOrdersByName(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	// Both locations sit ~22 km from the epicenter with equal population, so
	// priority and the population tie-break are identical.
	locations := []MonitoredLocation{
		{Name: "Zulu", Latitude: 14.4, Longitude: 121.0, Population: 100000},
		{Name: "Delta", Latitude: 14.0, Longitude: 121.0, Population: 100000},
	}
	events := []SeismicEvent{eventAt(14.2, 121.0, 6.8, base)}

	for i := 0; i < 20; i++ {
		records := Aggregate(events, locations)
		require.Len(t, records, 2)
		assert.Equal(t, "Delta", records[0].Location)
		assert.Equal(t, "Zulu", records[1].Location)
	}
}

func TestSortEventsByRecency(t *testing.T) {
	base := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	events := []SeismicEvent{
		{OccurredAt: base.Add(-2 * time.Hour), Magnitude: 7.0},
		{OccurredAt: base, Magnitude: 4.0},
		{OccurredAt: base, Magnitude: 5.5},
		{OccurredAt: base.Add(-time.Hour), Magnitude: 3.0},
	}

	SortEventsByRecency(events)

	assert.Equal(t, 5.5, events[0].Magnitude, "same-time events ordered by magnitude")
	assert.Equal(t, 4.0, events[1].Magnitude)
	assert.Equal(t, 3.0, events[2].Magnitude)
	assert.Equal(t, 7.0, events[3].Magnitude, "oldest last despite largest magnitude")
}
