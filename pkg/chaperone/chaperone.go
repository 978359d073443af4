package chaperone

import (
	"fmt"

	"github.com/GuralTOO/ai-chaperone/internal/engine"
	"github.com/GuralTOO/ai-chaperone/internal/keywords"
	"github.com/GuralTOO/ai-chaperone/internal/model"
	"github.com/GuralTOO/ai-chaperone/internal/transcript"
)

// Moderator scans transcripts against a fixed keyword dictionary.
// Safe for concurrent use; the compiled automaton is never mutated.
type Moderator struct {
	engine *engine.Engine
}

// New builds a Moderator from keyword rows. Rows with empty keywords are
// dropped, duplicates collapse (last row wins), and malformed rows degrade
// rather than fail, so construction cannot error.
func New(rows []KeywordRow, opts ...Option) *Moderator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	internal := make([]keywords.Row, len(rows))
	for i, r := range rows {
		internal[i] = keywords.Row{
			Keyword:    r.Keyword,
			Categories: r.Categories,
			Severity:   model.Severity(r.Severity),
		}
	}

	dict := keywords.NewDictionary(internal)
	return &Moderator{
		engine: engine.New(dict, engine.WithWorkers(o.workers)),
	}
}

// NewFromCSV builds a Moderator from a keyword CSV file with the columns
// cleaned_words, mod_categories (JSON array), and mod_critical.
func NewFromCSV(path string, opts ...Option) (*Moderator, error) {
	rows, err := keywords.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chaperone: %w", err)
	}

	public := make([]KeywordRow, len(rows))
	for i, r := range rows {
		public[i] = KeywordRow{
			Keyword:    r.Keyword,
			Categories: r.Categories,
			Severity:   string(r.Severity),
		}
	}
	return New(public, opts...), nil
}

// ModerateTranscript parses a WebVTT document and moderates its utterances.
func (m *Moderator) ModerateTranscript(content string) Report {
	return reportFromInternal(m.engine.ModerateTranscript(content))
}

// Moderate scans already-parsed utterances. Use this when utterances come
// from a source other than WebVTT.
func (m *Moderator) Moderate(utterances []Utterance) Report {
	internal := make([]model.Utterance, len(utterances))
	for i, u := range utterances {
		internal[i] = model.Utterance{
			Speaker:   u.Speaker,
			Text:      u.Text,
			StartTime: u.StartTime,
			EndTime:   u.EndTime,
		}
	}
	return reportFromInternal(m.engine.Moderate(internal))
}

// ParseTranscript converts a WebVTT document into utterances without
// moderating them. Malformed blocks are skipped silently.
func ParseTranscript(content string) []Utterance {
	parsed := transcript.Parse(content)
	utterances := make([]Utterance, len(parsed))
	for i, u := range parsed {
		utterances[i] = Utterance{
			Speaker:   u.Speaker,
			Text:      u.Text,
			StartTime: u.StartTime,
			EndTime:   u.EndTime,
		}
	}
	return utterances
}

// reportFromInternal converts the internal report into the stable public type.
func reportFromInternal(r model.Report) Report {
	out := Report{
		TotalUtterances: r.TotalUtterances,
		TotalViolations: r.TotalViolations,
		CompoundScore:   r.CompoundScore,
		Speakers:        r.Speakers,
		CategoryReport:  make(map[string]*CategoryBreakdown, len(r.CategoryReport)),
	}

	if r.HighestSeverity != nil {
		s := string(*r.HighestSeverity)
		out.HighestSeverity = &s
	}

	if len(r.Violations) > 0 {
		out.Violations = make([]Violation, len(r.Violations))
		for i, v := range r.Violations {
			out.Violations[i] = Violation{
				Keyword:    v.Keyword,
				Speaker:    v.Speaker,
				Text:       v.Text,
				Timestamp:  v.Timestamp,
				Categories: v.Categories,
				Severity:   string(v.Severity),
			}
		}
	}

	for category, b := range r.CategoryReport {
		breakdown := &CategoryBreakdown{
			Count:    b.Count,
			Speakers: b.Speakers,
		}
		for _, cv := range b.Violations {
			breakdown.Violations = append(breakdown.Violations, CategoryViolation{
				Keyword:   cv.Keyword,
				Speaker:   cv.Speaker,
				Timestamp: cv.Timestamp,
				Severity:  string(cv.Severity),
			})
		}
		out.CategoryReport[category] = breakdown
	}

	return out
}
