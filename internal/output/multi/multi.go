// Package multi fans one report out to several destinations, e.g. stdout for
// the operator plus a results file for the job record.
package multi

import (
	"context"
	"errors"

	"github.com/GuralTOO/ai-chaperone/internal/model"
	"github.com/GuralTOO/ai-chaperone/internal/output"
)

// Multi delivers each report to every wrapped output sequentially. A failing
// output does not stop delivery to the rest.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi over the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers the report to every output, joining any errors.
func (m *Multi) Write(ctx context.Context, report model.Report) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every output, joining any errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
