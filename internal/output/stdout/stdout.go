// Package stdout writes JSON-encoded moderation reports to standard output.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/GuralTOO/ai-chaperone/internal/model"
	"github.com/GuralTOO/ai-chaperone/internal/output"
)

// Output writes one JSON document per report to stdout.
type Output struct {
	enc       *json.Encoder
	verbosity output.Verbosity
}

// New creates a stdout Output with verbosity-aware field omission and
// optional pretty-printed JSON.
func New(verbosity output.Verbosity, pretty bool) *Output {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc, verbosity: verbosity}
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	formatted := output.FormatReport(report, o.verbosity)
	if err := o.enc.Encode(formatted); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
