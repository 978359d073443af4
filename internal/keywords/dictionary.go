package keywords

import (
	"strings"

	"github.com/GuralTOO/ai-chaperone/internal/model"
)

// Dictionary is the normalized, deduplicated keyword set one matcher is built
// from. It is immutable after construction and safe to share across all
// utterances of a job, and across concurrent jobs. Build one per keyword set
// and pass it by reference; there is no process-global cache.
type Dictionary struct {
	entries []model.KeywordEntry
}

// NewDictionary normalizes raw rows into dictionary entries: keywords are
// trimmed and lowercased, rows left empty by normalization are dropped, a
// missing severity defaults to LOW, and duplicates collapse with the last
// row winning. Entries with an internal space are classified as phrases.
func NewDictionary(rows []Row) *Dictionary {
	index := make(map[string]int, len(rows))
	var entries []model.KeywordEntry

	for _, row := range rows {
		text := strings.ToLower(strings.TrimSpace(row.Keyword))
		if text == "" {
			continue
		}
		severity := model.Severity(strings.ToUpper(strings.TrimSpace(string(row.Severity))))
		if severity == "" {
			severity = model.SeverityLow
		}
		entry := model.KeywordEntry{
			Text:       text,
			Categories: row.Categories,
			Severity:   severity,
			Phrase:     strings.Contains(text, " "),
		}
		if i, seen := index[text]; seen {
			entries[i] = entry
			continue
		}
		index[text] = len(entries)
		entries = append(entries, entry)
	}

	return &Dictionary{entries: entries}
}

// Entries returns the normalized entries. Callers must not modify the
// returned slice.
func (d *Dictionary) Entries() []model.KeywordEntry {
	return d.entries
}

// Len returns the number of distinct entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
