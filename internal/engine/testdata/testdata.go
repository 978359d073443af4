// Package testdata holds a small embedded transcript and keyword table shared
// by tests across the module.
package testdata

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/GuralTOO/ai-chaperone/internal/keywords"
)

//go:embed sample.vtt
var sampleVTT string

//go:embed keywords.csv
var keywordsCSV []byte

// SampleVTT returns the embedded five-block sample transcript. It exercises
// the header block, multi-speaker captions, a phrase keyword, a word-boundary
// case ("class" vs "ass"), and a U+2011 non-breaking hyphen.
func SampleVTT() string {
	return sampleVTT
}

// SampleRows parses the embedded keyword CSV.
func SampleRows() ([]keywords.Row, error) {
	rows, err := keywords.Load(bytes.NewReader(keywordsCSV))
	if err != nil {
		return nil, fmt.Errorf("parse keywords.csv: %w", err)
	}
	return rows, nil
}
