package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationsFor_CountsPerTier(t *testing.T) {
	tests := []struct {
		severity string
		count    int
	}{
		{SeverityCritical, 5},
		{SeveritySevere, 5},
		{SeverityHigh, 4},
		{SeverityModerate, 3},
		{SeverityLow, 2},
		{SeverityMinimal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			assert.Len(t, RecommendationsFor(tt.severity), tt.count)
		})
	}
}

func TestRecommendationsFor_RescueTiersLeadWithRescue(t *testing.T) {
	for _, severity := range []string{SeverityCritical, SeveritySevere} {
		actions := RecommendationsFor(severity)
		assert.Contains(t, actions[0], "rescue", "tier %s should lead with rescue", severity)
	}
}

func TestRecommendationsFor_UnknownTier(t *testing.T) {
	assert.Nil(t, RecommendationsFor("bogus"))
}
