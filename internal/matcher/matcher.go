// Package matcher scans utterance text for dictionary keywords using a single
// Aho-Corasick automaton, so per-utterance work stays linear in the text length
// no matter how large the dictionary is.
package matcher

import (
	"strings"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/GuralTOO/ai-chaperone/internal/keywords"
	"github.com/GuralTOO/ai-chaperone/internal/model"
)

// Match is a single keyword occurrence found in one utterance's text.
type Match struct {
	Keyword    string
	Categories []string
	Severity   model.Severity
}

// Matcher holds the compiled automaton over all dictionary entries.
// Immutable after New; safe for concurrent FindViolations calls.
type Matcher struct {
	automaton aho.AhoCorasick
	entries   []model.KeywordEntry // indexed by automaton pattern id
}

// New compiles one automaton from every dictionary entry. Construction cost is
// paid once per dictionary; the matcher is then reused across all utterances.
func New(dict *keywords.Dictionary) *Matcher {
	m := &Matcher{entries: dict.Entries()}
	if len(m.entries) == 0 {
		return m
	}

	patterns := make([]string, len(m.entries))
	for i, e := range m.entries {
		patterns[i] = e.Text
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(patterns)
	return m
}

// FindViolations returns every dictionary entry occurring in text, in the
// automaton's end-position order. Single-word entries must sit on word
// boundaries; phrases match unconditionally since their interior spaces
// already anchor on token boundaries. Duplicate hits of the same keyword at
// the same start offset collapse to one.
func (m *Matcher) FindViolations(text string) []Match {
	if len(m.entries) == 0 || text == "" {
		return nil
	}

	normalized := normalize(text)

	type position struct{ pattern, start int }
	seen := make(map[position]struct{})
	var matches []Match

	iter := m.automaton.IterOverlappingByte([]byte(normalized))
	for next := iter.Next(); next != nil; next = iter.Next() {
		hit := *next
		entry := m.entries[hit.Pattern()]

		if !entry.Phrase && !onWordBoundary(normalized, hit.Start(), hit.End()) {
			continue
		}

		key := position{hit.Pattern(), hit.Start()}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		matches = append(matches, Match{
			Keyword:    entry.Text,
			Categories: entry.Categories,
			Severity:   entry.Severity,
		})
	}

	return matches
}

// normalize lowercases the text and folds the Unicode non-breaking hyphen
// (U+2011) to ASCII; dictionaries are authored with ASCII hyphens.
func normalize(text string) string {
	return strings.ReplaceAll(strings.ToLower(text), "‑", "-")
}

// onWordBoundary reports whether the match at [start,end) is not embedded in
// a longer word: the bytes adjacent to the match, when present, must fall
// outside [A-Za-z0-9-]. Bytes of multi-byte runes are all >= 0x80 and so
// count as boundaries, matching the ASCII word-character class.
func onWordBoundary(text string, start, end int) bool {
	if start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if end < len(text) && isWordByte(text[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '-' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
