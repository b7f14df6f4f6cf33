package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"grouped millions", 120_000_000, "AED", "AED 120,000,000"},
		{"rounds fraction", 510_207.176, "AED", "AED 510,207"},
		{"small amount", 950, "AED", "AED 950"},
		{"four digits", 1234, "AED", "AED 1,234"},
		{"zero", 0, "AED", "AED 0"},
		{"negative", -150_000, "AED", "AED -150,000"},
		{"no code", 42_500, "", "42,500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(tt.amount, tt.code)
			if got != tt.want {
				t.Fatalf("Currency(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestCurrencyDeterministic(t *testing.T) {
	first := Currency(53_207_190, "OMR")
	second := Currency(53_207_190, "OMR")
	if first != second {
		t.Fatalf("same input produced %q and %q", first, second)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{53.333, "53%"},
		{53.5, "54%"},
		{0, "0%"},
		{120, "120%"},
	}
	for _, tt := range tests {
		got := Percent(tt.value)
		if got != tt.want {
			t.Fatalf("Percent(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	if got := Date("2025-10-27"); got != "27 Oct 2025" {
		t.Fatalf("Date(2025-10-27) = %q", got)
	}
	// Malformed input passes through untouched instead of panicking.
	if got := Date("not-a-date"); got != "not-a-date" {
		t.Fatalf("Date(not-a-date) = %q", got)
	}
	if got := Date(""); got != "" {
		t.Fatalf("Date(\"\") = %q", got)
	}
}
