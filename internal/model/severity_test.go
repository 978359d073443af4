package model

import "testing"

func TestSeverityWeight(t *testing.T) {
	tests := []struct {
		sev  Severity
		want int
	}{
		{SeverityLow, 1},
		{SeverityMedium, 5},
		{SeverityHigh, 10},
		{SeveritySafe, 1},
		{Severity("CRITICAL"), 1},
		{Severity(""), 1},
	}
	for _, tt := range tests {
		if got := tt.sev.Weight(); got != tt.want {
			t.Errorf("Weight(%q) = %d, want %d", tt.sev, got, tt.want)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityHigh.Rank() <= SeverityMedium.Rank() {
		t.Fatal("expected HIGH to rank above MEDIUM")
	}
	if SeverityMedium.Rank() <= SeverityLow.Rank() {
		t.Fatal("expected MEDIUM to rank above LOW")
	}
	// SAFE is a sentinel, never a violation severity; it ranks below LOW.
	if SeveritySafe.Rank() >= SeverityLow.Rank() {
		t.Fatal("expected SAFE to rank below LOW")
	}
}
