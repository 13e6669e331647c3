// Package money holds display rounding and currency formatting helpers.
// Amounts are computed in float64 and rounded to two decimals only at the
// presentation edge.
package money

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Round2 rounds to two decimal places for textual rendering.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatUSD renders an amount as a US dollar string with thousand separators,
// e.g. 1234.5 -> "$1,234.50".
func FormatUSD(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}
