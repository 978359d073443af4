package keywords

import (
	"testing"

	"github.com/GuralTOO/ai-chaperone/internal/model"
)

func TestNewDictionaryNormalizes(t *testing.T) {
	d := NewDictionary([]Row{
		{Keyword: "  BadWord  ", Severity: model.SeverityHigh},
		{Keyword: "go away now", Severity: model.SeverityMedium},
		{Keyword: "   ", Severity: model.SeverityLow},
	})

	if d.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", d.Len())
	}

	entries := d.Entries()
	if entries[0].Text != "badword" {
		t.Errorf("expected lowercased trimmed text, got %q", entries[0].Text)
	}
	if entries[0].Phrase {
		t.Error("expected single word, got phrase")
	}
	if !entries[1].Phrase {
		t.Error("expected phrase classification for multi-word entry")
	}
}

func TestNewDictionaryDuplicateLastWins(t *testing.T) {
	d := NewDictionary([]Row{
		{Keyword: "badword", Severity: model.SeverityLow, Categories: []string{"A"}},
		{Keyword: "other", Severity: model.SeverityLow},
		{Keyword: "BADWORD", Severity: model.SeverityHigh, Categories: []string{"B"}},
	})

	if d.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", d.Len())
	}
	entry := d.Entries()[0]
	if entry.Severity != model.SeverityHigh {
		t.Errorf("expected last duplicate to win, got severity %q", entry.Severity)
	}
	if len(entry.Categories) != 1 || entry.Categories[0] != "B" {
		t.Errorf("expected last duplicate's categories, got %v", entry.Categories)
	}
}

func TestNewDictionarySeverityNormalized(t *testing.T) {
	d := NewDictionary([]Row{
		{Keyword: "one", Severity: " high "},
		{Keyword: "two"},
	})
	entries := d.Entries()
	if entries[0].Severity != model.SeverityHigh {
		t.Errorf("expected severity normalized to HIGH, got %q", entries[0].Severity)
	}
	if entries[1].Severity != model.SeverityLow {
		t.Errorf("expected missing severity to default to LOW, got %q", entries[1].Severity)
	}
}

func TestNewDictionaryEmpty(t *testing.T) {
	d := NewDictionary(nil)
	if d.Len() != 0 {
		t.Fatalf("expected empty dictionary, got %d entries", d.Len())
	}
}
