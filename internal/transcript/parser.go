// Package transcript parses subtitle-style (WebVTT) transcripts into ordered,
// speaker-attributed utterances.
package transcript

import (
	"regexp"
	"strings"

	"github.com/GuralTOO/ai-chaperone/internal/model"
)

var timestampPattern = regexp.MustCompile(
	`(\d{2}:\d{2}:\d{2}\.\d{3}) --> (\d{2}:\d{2}:\d{2}\.\d{3})`)

// Parse converts a WebVTT document into utterances in document order.
// Document order is the authoritative timestamp order for the rest of the
// pipeline; no time-based re-sort happens downstream.
//
// Each caption block needs a cue line, a timestamp line, and at least one
// "speaker: text" line. Malformed blocks are skipped silently; a bad caption
// block must never fail a whole moderation job.
func Parse(content string) []model.Utterance {
	var utterances []model.Utterance

	blocks := strings.Split(strings.TrimSpace(content), "\n\n")
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 || strings.Contains(lines[0], "WEBVTT") {
			continue
		}

		m := timestampPattern.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		start, end := m[1], m[2]

		for _, line := range lines[2:] {
			speaker, text, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			utterances = append(utterances, model.Utterance{
				Speaker:   strings.TrimSpace(speaker),
				Text:      text,
				StartTime: start,
				EndTime:   end,
			})
		}
	}

	return utterances
}
