package sheets

import (
	"strconv"
	"strings"
)

// Num parses a cell into a number. Empty or missing cells yield nil;
// unparsable content also yields nil so a mistyped cell degrades instead of
// failing the whole read.
func Num(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	// Sheets commonly exports grouped numbers ("1,234,567").
	cell = strings.ReplaceAll(cell, ",", "")
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &value
}

// NumOr parses a cell with a fallback for empty or unparsable content.
func NumOr(cell string, fallback float64) float64 {
	if v := Num(cell); v != nil {
		return *v
	}
	return fallback
}

// Str trims a cell, yielding "" for missing content — never a nil-ish
// placeholder.
func Str(cell string) string {
	return strings.TrimSpace(cell)
}
