// Package format renders market figures as display strings.
package format

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	billion  = decimal.NewFromInt(1_000_000_000)
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// Currency abbreviates a USD amount: $3.10B, $2.50M, $1.50K, $42.00.
// Zero and non-finite values render as "$0".
func Currency(v float64) string {
	if !finite(v) || v == 0 {
		return "$0"
	}

	d := decimal.NewFromFloat(v)
	switch {
	case d.GreaterThanOrEqual(billion):
		return "$" + d.Div(billion).StringFixed(2) + "B"
	case d.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(2) + "M"
	case d.GreaterThanOrEqual(thousand):
		return "$" + d.Div(thousand).StringFixed(2) + "K"
	}

	return "$" + d.StringFixed(2)
}

// Integer groups digits by thousands: 1000000 -> "1,000,000".
func Integer(n int64) string {
	return humanize.Comma(n)
}

// Price renders a USD price with 8 fractional digits.
func Price(v float64) string {
	if !finite(v) {
		return "$0"
	}
	return "$" + decimal.NewFromFloat(v).StringFixed(8)
}

// Percent renders the magnitude of a percentage with 2 fractional digits.
func Percent(v float64) string {
	if !finite(v) {
		return "0.00%"
	}
	return decimal.NewFromFloat(v).Abs().StringFixed(2) + "%"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
