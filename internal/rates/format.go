package rates

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"proprates/server/internal/models"
)

const (
	rupee       = "₹"
	axisPadding = 500
)

var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// groupDigits formats n with Indian digit grouping, e.g. 11,800 or 11,80,000.
func groupDigits(n int) string {
	return indianPrinter.Sprintf("%d", n)
}

// FormatRate renders the average-rate card value, e.g. ₹11,800/-
func FormatRate(rate int) string {
	return rupee + groupDigits(rate) + "/-"
}

// FormatRatePerSqft renders a tooltip value, e.g. ₹11,800/sq.ft
func FormatRatePerSqft(rate int) string {
	return rupee + groupDigits(rate) + "/sq.ft"
}

// FormatAxisTick renders a y-axis tick in thousands, e.g. ₹12K
func FormatAxisTick(value float64) string {
	return fmt.Sprintf("%s%.0fK", rupee, math.Round(value/1000))
}

// FormatPercent renders a percentage without trailing zeros, e.g. 45.7% or 3%
func FormatPercent(d decimal.Decimal) string {
	return d.String() + "%"
}

// AxisTicks labels every whole thousand between lo and hi inclusive.
func AxisTicks(lo, hi int) []string {
	var ticks []string
	if lo > hi {
		return ticks
	}
	start := (lo + 999) / 1000 * 1000
	if lo < 0 {
		start = lo / 1000 * 1000
	}
	for v := start; v <= hi; v += 1000 {
		ticks = append(ticks, FormatAxisTick(float64(v)))
	}
	return ticks
}

// AxisDomain returns the y-axis bounds for a series, padded on both sides.
func AxisDomain(series []models.SeriesPoint) (int, int) {
	if len(series) == 0 {
		return 0, 0
	}
	lo, hi := series[0].Rate, series[0].Rate
	for _, p := range series[1:] {
		if p.Rate < lo {
			lo = p.Rate
		}
		if p.Rate > hi {
			hi = p.Rate
		}
	}
	return lo - axisPadding, hi + axisPadding
}
