package domain

// Severity tiers, least to most severe.
const (
	SeverityMinimal  = "MINIMAL"
	SeverityLow      = "LOW"
	SeverityModerate = "MODERATE"
	SeverityHigh     = "HIGH"
	SeveritySevere   = "SEVERE"
	SeverityCritical = "CRITICAL"
)

// ImpactAssessment is the classification of one (magnitude, distance) pair.
// Deterministic: identical inputs always produce identical assessments.
type ImpactAssessment struct {
	Severity string `json:"severity"`
	// Priority orders dispatch, 1 most urgent. Strictly monotonic with
	// severity: a more severe tier always has a lower number.
	Priority    int    `json:"priority"`
	NeedsRescue bool   `json:"needsRescue"`
	NeedsRelief bool   `json:"needsRelief"`
	Intensity   string `json:"estimatedIntensity"`
}

// impactRule is one row of the classification table.
type impactRule struct {
	minMagnitude float64
	maxDistance  float64
	assessment   ImpactAssessment
}

// impactRules is the complete classification policy: magnitude bands from
// strongest down, distance rings from nearest out within each band. The
// first matching row wins. Intensity ranges follow the PHIVOLCS Earthquake
// Intensity Scale.
var impactRules = []impactRule{
	{6.5, 30, ImpactAssessment{SeverityCritical, 1, true, true, "VIII-X"}},
	{6.5, 60, ImpactAssessment{SeveritySevere, 2, true, true, "VII-VIII"}},
	{6.5, 100, ImpactAssessment{SeverityHigh, 3, false, true, "V-VI"}},
	{6.5, 150, ImpactAssessment{SeverityModerate, 4, false, true, "IV-V"}},
	{5.5, 20, ImpactAssessment{SeveritySevere, 2, true, true, "VII-VIII"}},
	{5.5, 50, ImpactAssessment{SeverityHigh, 3, false, true, "V-VI"}},
	{5.5, 100, ImpactAssessment{SeverityModerate, 4, false, true, "IV-V"}},
	{4.5, 15, ImpactAssessment{SeverityModerate, 4, false, true, "IV-V"}},
	{4.5, 40, ImpactAssessment{SeverityLow, 5, false, false, "III-IV"}},
	{3.5, 10, ImpactAssessment{SeverityLow, 5, false, false, "III-IV"}},
}

// minimalAssessment is the default when no rule matches. MINIMAL areas are
// discarded during aggregation and never surface in the report.
var minimalAssessment = ImpactAssessment{
	Severity:  SeverityMinimal,
	Priority:  10,
	Intensity: "I-II",
}

// Classify maps a magnitude and epicentral distance to an impact assessment.
// Pure function of its inputs; no other state influences the result.
func Classify(magnitude, distanceKm float64) ImpactAssessment {
	for _, rule := range impactRules {
		if magnitude >= rule.minMagnitude && distanceKm < rule.maxDistance {
			return rule.assessment
		}
	}
	return minimalAssessment
}
