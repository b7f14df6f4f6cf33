// Package metrics holds the per-record derivations and collection
// aggregations behind the dashboard KPIs. Every function is pure; the
// current time is always an explicit parameter.
package metrics

import (
	"math"
	"strings"
	"time"

	"github.com/hassanalansari2780-cmyk/icgris-dashboard76/internal/model"
)

// PercentPaid is the rounded paid/total ratio in percent units. A total of
// zero or less yields 0. Values above 100 are meaningful (overpayment) and
// are deliberately not clamped.
func PercentPaid(paid, total float64) int {
	if total <= 0 || math.IsNaN(total) {
		return 0
	}
	if math.IsNaN(paid) || math.IsInf(paid, 0) {
		return 0
	}
	return int(math.Round(100 * paid / total))
}

// Variance is actual minus estimated. A nil actual propagates as nil: "not
// realized yet" is distinct from a zero variance.
func Variance(estimated float64, actual *float64) *float64 {
	if actual == nil {
		return nil
	}
	v := *actual - estimated
	return &v
}

// DaysOpen derives elapsed whole days from an ISO date to now, never
// negative. An unparsable date yields 0.
func DaysOpen(date string, now time.Time) int {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return 0
	}
	days := int(math.Round(now.Sub(parsed).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// EffectiveDaysOpen prefers the stored register value and falls back to
// deriving from the claim date. Stored wins whenever present because the
// register tracks status changes, not submission dates.
func EffectiveDaysOpen(stored int, date string, now time.Time) int {
	if stored > 0 {
		return stored
	}
	return DaysOpen(date, now)
}

type Bucket string

const (
	BucketNormal   Bucket = "Normal"
	BucketWatch    Bucket = "Watch"
	BucketCritical Bucket = "Critical"
)

// AgingThresholds are the day counts at which a claim escalates. They come
// from configuration, not call sites.
type AgingThresholds struct {
	Watch    int
	Critical int
}

func AgingBucket(daysOpen int, t AgingThresholds) Bucket {
	switch {
	case daysOpen >= t.Critical:
		return BucketCritical
	case daysOpen >= t.Watch:
		return BucketWatch
	default:
		return BucketNormal
	}
}

// TotalValue sums contract values. Non-finite garbage counts as zero so one
// bad row cannot poison the whole sum.
func TotalValue(contracts []model.Contract) float64 {
	total := 0.0
	for _, c := range contracts {
		total += finite(c.ContractValue)
	}
	return total
}

func TotalPaid(contracts []model.Contract) float64 {
	total := 0.0
	for _, c := range contracts {
		total += finite(c.PaidToDate)
	}
	return total
}

func OverallPercentPaid(contracts []model.Contract) int {
	return PercentPaid(TotalPaid(contracts), TotalValue(contracts))
}

// CountByStatus tallies records per status. Every value of the enum appears
// in the result, zero-count included, so legends never have to special-case
// missing keys.
func CountByStatus[S comparable, T any](records []T, statuses []S, status func(T) S) map[S]int {
	counts := make(map[S]int, len(statuses))
	for _, s := range statuses {
		counts[s] = 0
	}
	for _, record := range records {
		counts[status(record)]++
	}
	return counts
}

// Partition splits records into carry-over and first-time groups. The groups
// are disjoint and together contain exactly the input, in order.
func Partition[T any](records []T, carried func(T) bool) (carryOver, firstTime []T) {
	carryOver = make([]T, 0, len(records))
	firstTime = make([]T, 0, len(records))
	for _, record := range records {
		if carried(record) {
			carryOver = append(carryOver, record)
		} else {
			firstTime = append(firstTime, record)
		}
	}
	return carryOver, firstTime
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
