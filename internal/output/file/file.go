// Package file appends moderation reports to a file as NDJSON, one report
// per line. A long-running worker moderating many jobs against one keyword
// set can point every job at the same results file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/GuralTOO/ai-chaperone/internal/model"
	"github.com/GuralTOO/ai-chaperone/internal/output"
)

// Output appends one JSON line per report to a file.
type Output struct {
	mu        sync.Mutex
	f         *os.File
	verbosity output.Verbosity
}

// New opens (or creates) the report file in append mode.
func New(path string, verbosity output.Verbosity) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("report file: open %s: %w", path, err)
	}
	return &Output{f: f, verbosity: verbosity}, nil
}

// Write JSON-encodes the report and appends it as one line. Each report is
// flushed immediately so a crashed worker never loses completed jobs.
func (o *Output) Write(_ context.Context, report model.Report) error {
	formatted := output.FormatReport(report, o.verbosity)
	data, err := json.Marshal(formatted)
	if err != nil {
		return fmt.Errorf("report file: marshal: %w", err)
	}
	data = append(data, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.f.Write(data); err != nil {
		return fmt.Errorf("report file: write: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.f.Close(); err != nil {
		return fmt.Errorf("report file: close: %w", err)
	}
	return nil
}
