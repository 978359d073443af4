package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GuralTOO/ai-chaperone/internal/model"
	"github.com/GuralTOO/ai-chaperone/internal/output"
)

func testReport(violations int) model.Report {
	r := model.Report{
		TotalUtterances: violations,
		TotalViolations: violations,
		CategoryReport:  map[string]*model.CategoryBreakdown{},
	}
	for i := 0; i < violations; i++ {
		r.Violations = append(r.Violations, model.Violation{
			Keyword:   "badword",
			Speaker:   "Student",
			Text:      "full text",
			Timestamp: "00:00:01.000",
			Severity:  model.SeverityLow,
		})
	}
	return r
}

func TestWriteAppendsNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.ndjson")

	out, err := New(path, output.Standard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if err := out.Write(ctx, testReport(1)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := out.Write(ctx, testReport(2)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 NDJSON lines, got %d", len(lines))
	}

	var second model.Report
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 2 not valid JSON: %v", err)
	}
	if second.TotalViolations != 2 {
		t.Errorf("expected second report with 2 violations, got %d", second.TotalViolations)
	}
}

func TestWriteMinimalStripsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.ndjson")

	out, err := New(path, output.Minimal)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := out.Write(context.Background(), testReport(1)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "full text") {
		t.Fatal("expected utterance text stripped at minimal verbosity")
	}
}

func TestNewBadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "reports.ndjson"), output.Standard); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
