package model

// Severity is the shared risk vocabulary for keyword entries and violations.
type Severity string

const (
	// SeveritySafe is the "nothing flagged" sentinel used by downstream
	// consumers. It never appears on a violation and carries no rank.
	SeveritySafe   Severity = "SAFE"
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Weight returns the scoring weight used for the compound severity score.
// Unknown severities score as the lowest weight rather than erroring.
func (s Severity) Weight() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 5
	case SeverityHigh:
		return 10
	default:
		return 1
	}
}

// Rank returns the ordinal position used to pick the highest severity in a
// report: HIGH > MEDIUM > LOW. SAFE and unknown values rank below all three.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
