// Package filter narrows entity slices by package, status, search text and
// date range. Filtering is stable (original order kept) and predicates
// compose with logical AND.
package filter

import (
	"strings"
	"time"
)

// Range is a time window anchored at "now". Keys match the dashboard UI.
type Range string

const (
	RangeAll     Range = "All"
	RangeLast30  Range = "30d"
	RangeLast90  Range = "90d"
	RangeLast365 Range = "365d"
)

// ParseRange maps a query value onto a Range. Empty input means RangeAll.
func ParseRange(raw string) (Range, bool) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "", "all":
		return RangeAll, true
	case "30d":
		return RangeLast30, true
	case "90d":
		return RangeLast90, true
	case "365d", "ytd":
		return RangeLast365, true
	default:
		return RangeAll, false
	}
}

func (r Range) days() int {
	switch r {
	case RangeLast30:
		return 30
	case RangeLast90:
		return 90
	case RangeLast365:
		return 365
	default:
		return 0
	}
}

// Fields is the filterable projection of a record. Entities expose an
// accessor func so one Apply serves every record type without copy-paste
// predicate drift.
type Fields struct {
	Pkg         string
	Title       string
	Description string
	Status      string
	Date        string
}

// Spec is the composed filter selection. A nil Packages slice is the "All"
// sentinel; an empty non-nil slice keeps nothing. Status "" or "All" keeps
// every status.
type Spec struct {
	Packages []string
	Status   string
	Search   string
	Range    Range
}

// Apply returns the matching subsequence of records in original order.
// The current time is an explicit parameter so window checks stay
// deterministic under test.
func Apply[T any](records []T, spec Spec, now time.Time, fields func(T) Fields) []T {
	search := strings.ToLower(strings.TrimSpace(spec.Search))
	var pkgs map[string]struct{}
	if spec.Packages != nil {
		pkgs = make(map[string]struct{}, len(spec.Packages))
		for _, p := range spec.Packages {
			pkgs[p] = struct{}{}
		}
	}

	out := make([]T, 0, len(records))
	for _, record := range records {
		f := fields(record)
		if pkgs != nil {
			if _, ok := pkgs[f.Pkg]; !ok {
				continue
			}
		}
		if !matchStatus(f.Status, spec.Status) {
			continue
		}
		if !matchSearch(f, search) {
			continue
		}
		if !matchRange(f.Date, spec.Range, now) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchStatus(status, want string) bool {
	if want == "" || want == "All" {
		return true
	}
	return status == want
}

func matchSearch(f Fields, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Title), search) {
		return true
	}
	return f.Description != "" && strings.Contains(strings.ToLower(f.Description), search)
}

// matchRange checks that the record date falls within [now-window, now] at
// whole-day granularity. A date that fails to parse fails closed: it matches
// RangeAll only, so garbage rows never leak into period reports.
func matchRange(date string, r Range, now time.Time) bool {
	days := r.days()
	if days == 0 {
		return true
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return false
	}
	today := dateOnly(now)
	from := today.AddDate(0, 0, -days)
	return !parsed.Before(from) && !parsed.After(today)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
