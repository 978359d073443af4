package model

// Utterance is one speaker-attributed, timestamped block of transcript text.
// Produced by the transcript parser and consumed read-only by the engine.
type Utterance struct {
	Speaker   string
	Text      string
	StartTime string // HH:MM:SS.mmm, as written in the transcript
	EndTime   string
}
