package chaperone_test

import (
	"fmt"

	"github.com/GuralTOO/ai-chaperone/pkg/chaperone"
)

func ExampleModerator_ModerateTranscript() {
	m := chaperone.New([]chaperone.KeywordRow{
		{Keyword: "badword", Categories: []string{"PROFANITY"}, Severity: "HIGH"},
	})

	vtt := "WEBVTT\n\n1\n00:00:01.000 --> 00:00:03.000\nCaller: he said badword again\n"
	report := m.ModerateTranscript(vtt)

	fmt.Println(report.TotalViolations, report.CompoundScore, *report.HighestSeverity)
	// Output: 1 10 HIGH
}
