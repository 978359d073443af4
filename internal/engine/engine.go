// Package engine wires the dictionary, matcher, and report builder into the
// moderation core: utterances in, severity-scored report out.
package engine

import (
	"sync"

	"github.com/GuralTOO/ai-chaperone/internal/keywords"
	"github.com/GuralTOO/ai-chaperone/internal/matcher"
	"github.com/GuralTOO/ai-chaperone/internal/model"
	"github.com/GuralTOO/ai-chaperone/internal/report"
	"github.com/GuralTOO/ai-chaperone/internal/transcript"
)

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of goroutines scanning utterances in parallel.
// Default: 1 (serial). The automaton is read-only after construction, so the
// only merge discipline is preserving utterance order; parallel output is
// indistinguishable from a serial pass.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// Engine runs one matching pass per transcript against a fixed dictionary.
// Build once per keyword set, reuse across transcripts; safe for concurrent
// use.
type Engine struct {
	matcher *matcher.Matcher
	workers int
}

// New compiles the dictionary into a matcher automaton. Construction is the
// expensive step; Moderate calls afterwards are linear in transcript size.
func New(dict *keywords.Dictionary, opts ...Option) *Engine {
	e := &Engine{
		matcher: matcher.New(dict),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Moderate scans every utterance and aggregates the matches into a report.
func (e *Engine) Moderate(utterances []model.Utterance) model.Report {
	return report.Build(utterances, e.scan(utterances))
}

// ModerateTranscript parses a WebVTT document and moderates its utterances.
func (e *Engine) ModerateTranscript(content string) model.Report {
	return e.Moderate(transcript.Parse(content))
}

// scan produces per-utterance matches, indexed identically to utterances.
func (e *Engine) scan(utterances []model.Utterance) [][]matcher.Match {
	results := make([][]matcher.Match, len(utterances))

	if e.workers <= 1 || len(utterances) < 2 {
		for i, u := range utterances {
			results[i] = e.matcher.FindViolations(u.Text)
		}
		return results
	}

	workers := e.workers
	if workers > len(utterances) {
		workers = len(utterances)
	}

	// Workers write into disjoint slots of results, so utterance order is
	// preserved without any post-merge sort.
	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = e.matcher.FindViolations(utterances[i].Text)
			}
		}()
	}
	for i := range utterances {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
