package output

import "github.com/GuralTOO/ai-chaperone/internal/model"

// FormatReport returns a copy of the report with fields stripped according to
// verbosity. At Minimal the full utterance text is dropped from each violation
// (omitted from JSON via omitempty); the abbreviated category records never
// carry it anyway. At Standard the report passes through untouched.
func FormatReport(r model.Report, verbosity Verbosity) model.Report {
	if verbosity != Minimal || len(r.Violations) == 0 {
		return r
	}
	stripped := make([]model.Violation, len(r.Violations))
	copy(stripped, r.Violations)
	for i := range stripped {
		stripped[i].Text = ""
	}
	r.Violations = stripped
	return r
}
