package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expectedKm             float64
		tolerance              float64
	}{
		{"Manila to Cebu", 14.5995, 120.9842, 10.3157, 123.8854, 572, 10},
		{"Manila to Baguio", 14.5995, 120.9842, 16.4023, 120.5960, 205, 10},
		{"Manila to Davao", 14.5995, 120.9842, 7.1907, 125.4553, 960, 20},
		{"one degree of latitude", 0, 0, 1, 0, 111.2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expectedKm, got, tt.tolerance)
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := DistanceKm(14.5995, 120.9842, 10.3157, 123.8854)
	b := DistanceKm(10.3157, 123.8854, 14.5995, 120.9842)
	assert.Equal(t, a, b)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(14.5995, 120.9842, 14.5995, 120.9842))
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 0, 0, 0)))
}
