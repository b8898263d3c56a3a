package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/relief-analyzer-service/internal/domain"
)

func TestEnvelopeWireKeys(t *testing.T) {
	computedAt := time.Date(2025, 3, 9, 16, 0, 0, 0, time.UTC)
	events := []domain.SeismicEvent{{
		OccurredAtRaw: "09 March 2025 - 11:42 PM",
		OccurredAt:    time.Date(2025, 3, 9, 15, 42, 0, 0, time.UTC),
		Latitude:      13.9,
		Longitude:     120.6,
		Depth:         "010",
		Magnitude:     6.8,
		Location:      "005 km S of Calatagan (Batangas)",
		Source:        domain.SourcePHIVOLCS,
	}}
	records := domain.Aggregate(events, []domain.MonitoredLocation{
		{Name: "Batangas City", Latitude: 13.7565, Longitude: 121.0583, Population: 351437},
	})
	require.NotEmpty(t, records)

	payload := buildPayload(events, records, domain.SourcePHIVOLCS, computedAt, 2*time.Minute)
	envelope := annotate(payload, false, 0)

	data, err := json.Marshal(envelope)
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &body))

	for _, key := range []string{
		"success", "status", "summary", "deploymentPriority", "affectedAreas",
		"recentEarthquakes", "dataSource", "timestamp", "nextUpdate",
		"cached", "cacheAgeSeconds", "dataFreshness",
	} {
		assert.Contains(t, body, key)
	}

	var summary map[string]int
	require.NoError(t, json.Unmarshal(body["summary"], &summary))
	for _, key := range []string{
		"totalEarthquakes", "affectedLocations", "criticalAreas", "severeAreas",
		"highPriorityAreas", "locationsNeedingRescue", "locationsNeedingRelief",
		"estimatedAffectedPopulation",
	} {
		assert.Contains(t, summary, key)
	}

	var areas []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["affectedAreas"], &areas))
	require.NotEmpty(t, areas)
	for _, key := range []string{
		"location", "latitude", "longitude", "population", "distanceKm",
		"impactAssessment", "recommendedActions", "triggeringEvent",
	} {
		assert.Contains(t, areas[0], key)
	}

	var impact map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(areas[0]["impactAssessment"], &impact))
	for _, key := range []string{
		"severity", "priority", "needsRescue", "needsRelief", "estimatedIntensity",
	} {
		assert.Contains(t, impact, key)
	}

	var recent []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["recentEarthquakes"], &recent))
	require.NotEmpty(t, recent)
	assert.Contains(t, recent[0], "occurredAt")
}

func TestBuildPayload_EmptyCollectionsAreArrays(t *testing.T) {
	payload := buildPayload(nil, nil, dataSourceExhausted, time.Now().UTC(), 2*time.Minute)

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"affectedAreas":[]`)
	assert.Contains(t, body, `"recentEarthquakes":[]`)
	assert.Contains(t, body, `"critical":[]`)
	assert.Contains(t, body, `"severe":[]`)
	assert.Contains(t, body, `"high":[]`)
	assert.NotContains(t, body, "null")
}
