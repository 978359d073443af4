package output

import (
	"context"

	"github.com/GuralTOO/ai-chaperone/internal/model"
)

// Output defines the interface for moderation report destinations.
type Output interface {
	Write(ctx context.Context, report model.Report) error
	Close() error
}

// Verbosity controls how much of the report survives formatting.
type Verbosity int

const (
	Minimal  Verbosity = iota // strip full utterance text from violations
	Standard                  // keep everything
)

// ParseVerbosity maps a string to a Verbosity. Unknown strings mean Standard.
func ParseVerbosity(s string) Verbosity {
	if s == "minimal" {
		return Minimal
	}
	return Standard
}
