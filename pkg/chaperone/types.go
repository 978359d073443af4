package chaperone

// KeywordRow is one raw keyword-table row: the keyword text, its violation
// categories, and a severity from the vocabulary SAFE/LOW/MEDIUM/HIGH.
// An empty severity defaults to LOW.
type KeywordRow struct {
	Keyword    string
	Categories []string
	Severity   string
}

// Utterance is one speaker-attributed, timestamped block of transcript text.
type Utterance struct {
	Speaker   string
	Text      string
	StartTime string
	EndTime   string
}

// Violation is a confirmed keyword occurrence bound to the utterance where it
// was found.
type Violation struct {
	Keyword    string   `json:"keyword"`
	Speaker    string   `json:"speaker"`
	Text       string   `json:"text,omitempty"`
	Timestamp  string   `json:"timestamp"`
	Categories []string `json:"categories"`
	Severity   string   `json:"severity"`
}

// CategoryViolation is the abbreviated violation record in a category
// breakdown.
type CategoryViolation struct {
	Keyword   string `json:"keyword"`
	Speaker   string `json:"speaker"`
	Timestamp string `json:"timestamp"`
	Severity  string `json:"severity"`
}

// CategoryBreakdown groups every violation carrying one category.
type CategoryBreakdown struct {
	Count      int                 `json:"count"`
	Violations []CategoryViolation `json:"violations"`
	Speakers   []string            `json:"speakers"`
}

// Report is the moderation result for one transcript. This is the stable
// public type; the JSON field names are a wire contract shared with
// downstream storage and webhook consumers.
type Report struct {
	TotalUtterances int                           `json:"total_utterances"`
	TotalViolations int                           `json:"total_violations"`
	CompoundScore   int                           `json:"compound_severity_score"`
	HighestSeverity *string                       `json:"highest_severity_level"`
	Violations      []Violation                   `json:"violations"`
	Speakers        []string                      `json:"speakers_with_violations"`
	CategoryReport  map[string]*CategoryBreakdown `json:"category_report"`
}
