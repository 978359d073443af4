package model

// KeywordEntry is one normalized dictionary entry: the lowercased, trimmed
// keyword text with its violation categories and severity. Entries containing
// an internal space are phrases; phrases skip word-boundary checking during
// matching because their interior spaces already anchor on token boundaries.
type KeywordEntry struct {
	Text       string
	Categories []string
	Severity   Severity
	Phrase     bool
}
