package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// amount parses a user-entered money string for aggregation. Records keep
// whatever the user typed; sums treat empty or malformed values as zero so
// one bad entry cannot poison a total.
func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// number parses a free-form numeric string for non-money aggregation with
// the same tolerance as amount.
func number(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// display parses a single standalone reading such as a weight or water
// value. Unlike sums, a value that is empty or does not parse is absent,
// not zero: an unlogged weight must not render as 0kg.
func display(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// round1 rounds to one decimal place, the precision all averages are
// reported at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatNumber renders a float without trailing zeros, matching how the
// values were originally entered.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
