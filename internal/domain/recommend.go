package domain

// recommendedActions maps a severity tier to dispatch guidance, most urgent
// action first. MINIMAL has no entry: those areas are dropped before
// recommendations are attached.
var recommendedActions = map[string][]string{
	SeverityCritical: {
		"Deploy search and rescue teams immediately",
		"Establish emergency medical stations",
		"Dispatch relief goods: food, water, medicine, shelter kits",
		"Coordinate evacuation of damaged structures",
		"Set up emergency communication lines",
	},
	SeveritySevere: {
		"Deploy rescue teams for possible trapped victims",
		"Dispatch relief goods and medical supplies",
		"Assess structural damage to homes and buildings",
		"Prepare evacuation centers",
		"Monitor for aftershocks",
	},
	SeverityHigh: {
		"Dispatch relief goods to affected barangays",
		"Conduct rapid damage assessment",
		"Alert local health units",
		"Monitor for aftershocks",
	},
	SeverityModerate: {
		"Stage relief goods for possible distribution",
		"Coordinate with local disaster risk reduction offices",
		"Monitor the situation",
	},
	SeverityLow: {
		"Monitor the situation",
		"Verify reports from local officials",
	},
}

// RecommendationsFor returns the ordered action list for a severity tier.
// Unknown tiers (including MINIMAL) return nil.
func RecommendationsFor(severity string) []string {
	return recommendedActions[severity]
}
