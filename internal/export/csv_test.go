package export

import (
	"strings"
	"testing"
	"time"
)

func TestToCSVEmpty(t *testing.T) {
	if got := ToCSV(nil, nil); got != "" {
		t.Fatalf("ToCSV(nil) = %q, want empty", got)
	}
	if got := ToCSV([]Record{}, []string{"a", "b"}); got != "" {
		t.Fatalf("ToCSV of zero records = %q, want empty", got)
	}
}

func TestToCSVHeaderFromFirstRecord(t *testing.T) {
	records := []Record{
		{{Name: "id", Value: "CO-1"}, {Name: "title", Value: "Scope Change"}},
		{{Name: "id", Value: "CO-2"}, {Name: "title", Value: "Rework"}},
	}
	got := ToCSV(records, nil)
	want := "id,title\nCO-1,Scope Change\nCO-2,Rework"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatal("trailing newline after final row")
	}
}

func TestToCSVExplicitColumns(t *testing.T) {
	records := []Record{
		{{Name: "id", Value: "CLM-1"}, {Name: "certified", Value: "1950000"}},
	}
	got := ToCSV(records, []string{"id", "claimed", "certified"})
	// Missing fields render as empty strings, not a null placeholder.
	want := "id,claimed,certified\nCLM-1,,1950000"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToCSVEscaping(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"bare value stays bare", "Ballast Spec Update", "Ballast Spec Update"},
		{"comma forces quoting", "Systems, Track", `"Systems, Track"`},
		{"quotes doubled", `Al "Rawahi"`, `"Al ""Rawahi"""`},
		{"newline forces quoting", "line1\nline2", "\"line1\nline2\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []Record{{{Name: "v", Value: tt.value}}}
			got := ToCSV(records, nil)
			want := "v\n" + tt.want
			if got != want {
				t.Fatalf("got %q, want %q", got, want)
			}
		})
	}
}

func TestToCSVRoundTrip(t *testing.T) {
	// Clean fields serialize byte for byte.
	records := []Record{
		{{Name: "pkg", Value: "A"}, {Name: "estimated", Value: "3200000"}},
	}
	got := ToCSV(records, nil)
	if got != "pkg,estimated\nA,3200000" {
		t.Fatalf("clean fields were altered: %q", got)
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 10, 27, 9, 30, 0, 0, time.UTC)
	if got := FileName("change-orders", "csv", now); got != "change-orders-2025-10-27.csv" {
		t.Fatalf("FileName = %q", got)
	}
	// Unsafe runes collapse to dashes.
	if got := FileName("claims: open/critical", "csv", now); got != "claims--open-critical-2025-10-27.csv" {
		t.Fatalf("sanitized FileName = %q", got)
	}
	if got := FileName("///", "pdf", now); got != "export-2025-10-27.pdf" {
		t.Fatalf("empty-after-sanitize FileName = %q", got)
	}
}
