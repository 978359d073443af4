package model

// Violation is a confirmed keyword occurrence bound to the utterance where it
// was found. The JSON field names are a wire contract; downstream storage and
// webhook payloads key off them exactly.
type Violation struct {
	Keyword    string   `json:"keyword"`
	Speaker    string   `json:"speaker"`
	Text       string   `json:"text,omitempty"` // omitted at minimal verbosity
	Timestamp  string   `json:"timestamp"` // utterance start time
	Categories []string `json:"categories"`
	Severity   Severity `json:"severity"`
}

// CategoryViolation is the abbreviated per-category violation record.
type CategoryViolation struct {
	Keyword   string   `json:"keyword"`
	Speaker   string   `json:"speaker"`
	Timestamp string   `json:"timestamp"`
	Severity  Severity `json:"severity"`
}

// CategoryBreakdown accumulates all violations carrying one category.
// Speakers holds each distinct speaker once, in first-appearance order.
type CategoryBreakdown struct {
	Count      int                 `json:"count"`
	Violations []CategoryViolation `json:"violations"`
	Speakers   []string            `json:"speakers"`
}

// Report is the moderation result for one transcript.
// HighestSeverity is nil when no violations were found.
// Violations are ordered by transcript position; speaker lists are
// deterministic (first appearance) but consumers must not rely on
// a particular order.
type Report struct {
	TotalUtterances int                           `json:"total_utterances"`
	TotalViolations int                           `json:"total_violations"`
	CompoundScore   int                           `json:"compound_severity_score"`
	HighestSeverity *Severity                     `json:"highest_severity_level"`
	Violations      []Violation                   `json:"violations"`
	Speakers        []string                      `json:"speakers_with_violations"`
	CategoryReport  map[string]*CategoryBreakdown `json:"category_report"`
}
