// Package format renders numbers and dates for display. Pure string
// building, no business logic.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Currency renders an amount with the currency code prefixed, zero decimal
// places and comma-grouped thousands: Currency(1234567.8, "AED") returns
// "AED 1,234,568".
func Currency(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	rounded := int64(math.Round(amount))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}
	grouped := groupThousands(fmt.Sprintf("%d", rounded))
	if negative {
		grouped = "-" + grouped
	}
	if code == "" {
		return grouped
	}
	return code + " " + grouped
}

// Percent renders a ratio already expressed in percent units, rounded to the
// nearest integer: Percent(53.4) returns "53%".
func Percent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return fmt.Sprintf("%d%%", int(math.Round(value)))
}

// Date renders an ISO calendar date as day/month/year ("02 Jan 2006").
// Input that does not parse is returned unchanged so a bad cell never takes
// down the caller.
func Date(iso string) string {
	iso = strings.TrimSpace(iso)
	parsed, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return parsed.Format("02 Jan 2006")
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
