// Package keywords loads the banned-keyword table and builds the normalized
// dictionary the matcher is constructed from.
package keywords

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GuralTOO/ai-chaperone/internal/model"
)

// Column names in the keyword CSV. The table is produced by the keyword
// curation pipeline; these names are part of its contract.
const (
	colKeyword    = "cleaned_words"
	colCategories = "mod_categories"
	colSeverity   = "mod_critical"
)

// Row is one raw keyword-table row, before normalization.
type Row struct {
	Keyword    string
	Categories []string
	Severity   model.Severity
}

// Load reads keyword rows from CSV data with a header line. Rows with an
// empty keyword cell are dropped. The categories cell is a JSON array of
// strings; a cell that fails to decode yields an empty category set rather
// than an error, so one bad row never loses the whole table. A missing or
// empty severity cell defaults to LOW.
func Load(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("keywords: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[colKeyword]; !ok {
		return nil, fmt.Errorf("keywords: missing %q column", colKeyword)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("keywords: read row: %w", err)
		}

		keyword := field(record, cols, colKeyword)
		if strings.TrimSpace(keyword) == "" {
			continue
		}

		severity := model.Severity(strings.ToUpper(strings.TrimSpace(field(record, cols, colSeverity))))
		if severity == "" {
			severity = model.SeverityLow
		}

		rows = append(rows, Row{
			Keyword:    keyword,
			Categories: decodeCategories(field(record, cols, colCategories)),
			Severity:   severity,
		})
	}

	return rows, nil
}

// LoadFile reads keyword rows from a CSV file on disk.
func LoadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keywords: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// decodeCategories parses a JSON array cell like ["HATE","VIOLENCE"].
// Undecodable cells are treated as having no categories.
func decodeCategories(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	var categories []string
	if err := json.Unmarshal([]byte(cell), &categories); err != nil {
		return nil
	}
	return categories
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
