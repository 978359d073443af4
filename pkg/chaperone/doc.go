// Package chaperone provides rules-based transcript moderation: it scans
// speech transcripts for a dictionary of banned words and phrases and
// produces a severity-scored violation report.
//
// Quick start:
//
//	m := chaperone.New([]chaperone.KeywordRow{
//	    {Keyword: "badword", Categories: []string{"PROFANITY"}, Severity: "HIGH"},
//	})
//
//	report := m.ModerateTranscript(vttContent)
//	fmt.Println(report.TotalViolations, report.CompoundScore)
//
// Dictionary compilation is the expensive step: create a Moderator once per
// keyword set and reuse it across transcripts. A Moderator is safe for
// concurrent use.
package chaperone
