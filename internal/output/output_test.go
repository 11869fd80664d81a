package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/scoring"
)

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: "json"}

	results := []scoring.SuitabilityResult{{Profile: "Chess", Score: 81, MatchReason: "x", ImprovementAreas: []string{}}}
	if err := p.Print(results); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded[0]["profile"] != "Chess" {
		t.Errorf("expected profile=Chess, got %v", decoded[0]["profile"])
	}
}

func TestPrinter_UnknownFormat(t *testing.T) {
	p := &Printer{W: &bytes.Buffer{}, Format: "xml"}
	if err := p.Print(1); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTableTo_Unsupported(t *testing.T) {
	if err := TableTo(&bytes.Buffer{}, 42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestTableTo_Suitability(t *testing.T) {
	var buf bytes.Buffer
	results := []scoring.SuitabilityResult{
		{Profile: "Kabaddi", Score: 74, MatchReason: "Matches your high strength profile.", ImprovementAreas: []string{"Strategic Study"}},
	}
	if err := TableTo(&buf, results); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Kabaddi", "74", "Strategic Study"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestTableTo_NilProfile(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, (*holistic.Profile)(nil)); err != nil {
		t.Fatalf("TableTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No assessment results") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestPrinter_ScholarshipBadge(t *testing.T) {
	var buf bytes.Buffer
	days := 3
	p := &Printer{
		W:      &buf,
		Format: "table",
		Badge: func(state scholarship.State, label string) string {
			return "[" + string(state) + "] " + label
		},
	}

	entries := []scholarship.Entry{{
		Record: scholarship.Record{ID: "0123456789", Name: "NSP", Provider: "Gov"},
		Status: scholarship.Status{State: scholarship.StateClosingSoon, Label: "Closing in 3 days", EffectiveDeadline: "4 Mar 2025", DaysLeft: &days, IsAutoRenewed: true},
	}}
	if err := p.Print(entries); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"01234567", "[CLOSING_SOON] Closing in 3 days", "(renewed)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("a very long scholarship name", 10); got != "a very ..." {
		t.Errorf("truncate() = %q", got)
	}
}
