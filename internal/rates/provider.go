// Package rates produces the price-per-sq.ft series and headline figures
// for the micro-market widget. Everything here is a pure lookup over fixed
// tables; results are freshly allocated on every call.
package rates

import (
	"math"

	"github.com/shopspring/decimal"

	"proprates/server/internal/models"
)

type baseEntry struct {
	label string
	rate  float64
}

var (
	lastYearTable = []baseEntry{
		{"Feb '25", 10800},
		{"May '25", 11000},
		{"Aug '25", 11200},
		{"Nov '25", 11500},
		{"Feb '26", 11800},
	}

	lastThreeYearsTable = []baseEntry{
		{"2023", 8800},
		{"2023.5", 9000},
		{"2024", 9400},
		{"2024.5", 10200},
		{"2025", 11000},
		{"2025.5", 11500},
		{"2026", 11800},
	}

	lastFiveYearsTable = []baseEntry{
		{"2022", 8100},
		{"2022.5", 8300},
		{"2023", 8500},
		{"2023.5", 8700},
		{"2024", 9200},
		{"2024.5", 10000},
		{"2025", 11000},
		{"2025.5", 11100},
		{"2026", 11800},
	}
)

var (
	growthLastFiveYears  = decimal.RequireFromString("45.7")
	growthLastThreeYears = decimal.RequireFromString("34.1")
	growthLastYear       = decimal.RequireFromString("9.3")

	yieldFlat    = decimal.RequireFromString("3.0")
	yieldBuilder = decimal.RequireFromString("3.2")
)

const (
	averageRateFlat    = 11800
	averageRateBuilder = 10030
)

// Multiplier returns the scale applied to base rates for a property type.
// Anything other than flat is priced as a builder floor.
func Multiplier(category models.Category) float64 {
	if category == models.CategoryFlat {
		return 1
	}
	return 0.85
}

func tableFor(period models.Period) []baseEntry {
	switch period {
	case models.PeriodLastYear:
		return lastYearTable
	case models.PeriodLastThreeYears:
		return lastThreeYearsTable
	default:
		// unknown periods fall back to the five year table
		return lastFiveYearsTable
	}
}

// scale rounds half away from zero; inputs are positive so this matches
// round-half-up.
func scale(rate, multiplier float64) int {
	return int(math.Round(rate * multiplier))
}

// GenerateSeries returns the chronological rate series for a selection.
// An unrecognised period yields the last-5-years series.
func GenerateSeries(period models.Period, category models.Category) []models.SeriesPoint {
	table := tableFor(period)
	multiplier := Multiplier(category)

	series := make([]models.SeriesPoint, len(table))
	for i, entry := range table {
		series[i] = models.SeriesPoint{
			Label: entry.label,
			Rate:  scale(entry.rate, multiplier),
		}
	}
	return series
}

// ComputeSummary returns the headline figures for a selection. The values
// are fixed display constants and are not derived from GenerateSeries:
// average rate and rental yield depend only on the category, growth only on
// the period.
func ComputeSummary(category models.Category, period models.Period) models.SummaryStats {
	stats := models.SummaryStats{
		AverageRate:        averageRateBuilder,
		RentalYieldPercent: yieldBuilder,
	}
	if category == models.CategoryFlat {
		stats.AverageRate = averageRateFlat
		stats.RentalYieldPercent = yieldFlat
	}

	switch period {
	case models.PeriodLastFiveYears:
		stats.GrowthPercent = growthLastFiveYears
	case models.PeriodLastThreeYears:
		stats.GrowthPercent = growthLastThreeYears
	default:
		stats.GrowthPercent = growthLastYear
	}
	return stats
}
