// Package pipeline runs one moderation job end to end: read a transcript,
// moderate it, deliver the report.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/GuralTOO/ai-chaperone/internal/engine"
	"github.com/GuralTOO/ai-chaperone/internal/model"
	"github.com/GuralTOO/ai-chaperone/internal/output"
)

// Pipeline connects the moderation engine to a report destination.
// One Pipeline serves many jobs; the engine's dictionary is fixed.
type Pipeline struct {
	engine *engine.Engine
	output output.Output
}

// New creates a Pipeline from the given components.
func New(eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{engine: eng, output: out}
}

// Run moderates one transcript read from r and writes the report.
// The report is returned even when delivery fails, so callers can decide
// retry policy without re-scanning.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (model.Report, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return model.Report{}, fmt.Errorf("pipeline: read transcript: %w", err)
	}

	start := time.Now()
	report := p.engine.ModerateTranscript(string(content))

	highest := model.SeveritySafe
	if report.HighestSeverity != nil {
		highest = *report.HighestSeverity
	}
	slog.Info("moderation complete",
		"utterances", report.TotalUtterances,
		"violations", report.TotalViolations,
		"highest_severity", highest,
		"elapsed", time.Since(start))

	if err := p.output.Write(ctx, report); err != nil {
		return report, fmt.Errorf("pipeline: write report: %w", err)
	}
	return report, nil
}

// RunFile moderates the transcript at path.
func (p *Pipeline) RunFile(ctx context.Context, path string) (model.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Report{}, fmt.Errorf("pipeline: open transcript %s: %w", path, err)
	}
	defer f.Close()
	return p.Run(ctx, f)
}

// Close shuts down the report destination.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
