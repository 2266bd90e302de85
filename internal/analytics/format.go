package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNaira renders a money value in full with thousands separators,
// for example ₦12,500 or ₦1,500.5.
func FormatNaira(d decimal.Decimal) string {
	return "₦" + groupThousands(d.String())
}

// FormatNairaCompact abbreviates large values for dense layouts:
// ₦1.2M, ₦45.3k, ₦980.
func FormatNairaCompact(d decimal.Decimal) string {
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	switch {
	case d.GreaterThanOrEqual(million):
		return "₦" + d.Div(million).StringFixed(1) + "M"
	case d.GreaterThanOrEqual(thousand):
		return "₦" + d.Div(thousand).StringFixed(1) + "k"
	default:
		return "₦" + groupThousands(d.String())
	}
}

// groupThousands inserts commas into the integer part of a decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}
