// Package report aggregates per-utterance matches into the final moderation
// report: the violation list, compound severity score, highest severity, and
// per-category breakdown.
package report

import (
	"github.com/GuralTOO/ai-chaperone/internal/matcher"
	"github.com/GuralTOO/ai-chaperone/internal/model"
)

// Build assembles a report from utterances and their matches. matchesPer[i]
// holds the matcher output for utterances[i]; the two slices must be the same
// length. Violations keep transcript order: utterance order first, matcher
// output order within an utterance. Pure computation; it cannot fail.
func Build(utterances []model.Utterance, matchesPer [][]matcher.Match) model.Report {
	var violations []model.Violation
	for i, u := range utterances {
		for _, m := range matchesPer[i] {
			violations = append(violations, model.Violation{
				Keyword:    m.Keyword,
				Speaker:    u.Speaker,
				Text:       u.Text,
				Timestamp:  u.StartTime,
				Categories: m.Categories,
				Severity:   m.Severity,
			})
		}
	}

	rpt := model.Report{
		TotalUtterances: len(utterances),
		TotalViolations: len(violations),
		Violations:      violations,
		CategoryReport:  map[string]*model.CategoryBreakdown{},
	}

	var highest model.Severity
	speakerSeen := make(map[string]struct{})
	categorySpeakerSeen := make(map[string]map[string]struct{})

	for _, v := range violations {
		rpt.CompoundScore += v.Severity.Weight()

		if highest == "" || v.Severity.Rank() > highest.Rank() {
			highest = v.Severity
		}

		if _, ok := speakerSeen[v.Speaker]; !ok {
			speakerSeen[v.Speaker] = struct{}{}
			rpt.Speakers = append(rpt.Speakers, v.Speaker)
		}

		for _, category := range v.Categories {
			breakdown := rpt.CategoryReport[category]
			if breakdown == nil {
				breakdown = &model.CategoryBreakdown{}
				rpt.CategoryReport[category] = breakdown
				categorySpeakerSeen[category] = make(map[string]struct{})
			}
			breakdown.Count++
			breakdown.Violations = append(breakdown.Violations, model.CategoryViolation{
				Keyword:   v.Keyword,
				Speaker:   v.Speaker,
				Timestamp: v.Timestamp,
				Severity:  v.Severity,
			})
			if _, ok := categorySpeakerSeen[category][v.Speaker]; !ok {
				categorySpeakerSeen[category][v.Speaker] = struct{}{}
				breakdown.Speakers = append(breakdown.Speakers, v.Speaker)
			}
		}
	}

	if len(violations) > 0 {
		// Unknown severities never outrank the known levels; a report whose
		// violations all carry unrecognized severities still reads as LOW.
		if highest.Rank() == 0 {
			highest = model.SeverityLow
		}
		rpt.HighestSeverity = &highest
	}

	return rpt
}
