package rates

import "proprates/server/internal/models"

// BuildView assembles the series, summary and display strings for one selection.
// An unknown period is echoed back as given with an empty PeriodLabel, while
// Series holds the last-5-years fallback and Summary the one year growth.
// Validate with models.ParsePeriod first to avoid that combination.
func BuildView(period models.Period, category models.Category) models.RateView {
	series := GenerateSeries(period, category)
	summary := ComputeSummary(category, period)
	lo, hi := AxisDomain(series)

	displays := make([]string, len(series))
	for i, p := range series {
		displays[i] = FormatRatePerSqft(p.Rate)
	}

	return models.RateView{
		Period:         period,
		PeriodLabel:    period.Label(),
		Category:       category,
		CategoryLabel:  category.Label(),
		Series:         series,
		Summary:        summary,
		AxisMin:        lo,
		AxisMax:        hi,
		AxisTicks:      AxisTicks(lo, hi),
		RateDisplays:   displays,
		AverageDisplay: FormatRate(summary.AverageRate),
		GrowthDisplay:  FormatPercent(summary.GrowthPercent),
		YieldDisplay:   FormatPercent(summary.RentalYieldPercent),
	}
}

// ListOptions returns the selectable periods and property types with their labels.
func ListOptions() models.Options {
	opts := models.Options{
		Periods:         make([]models.Option, 0, len(models.Periods)),
		Categories:      make([]models.Option, 0, len(models.Categories)),
		DefaultPeriod:   models.DefaultPeriod,
		DefaultCategory: models.DefaultCategory,
	}
	for _, p := range models.Periods {
		opts.Periods = append(opts.Periods, models.Option{Value: string(p), Label: p.Label()})
	}
	for _, c := range models.Categories {
		opts.Categories = append(opts.Categories, models.Option{Value: string(c), Label: c.Label()})
	}
	return opts
}
