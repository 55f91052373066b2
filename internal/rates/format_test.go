package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proprates/server/internal/models"
)

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "₹11,800/-", FormatRate(11800))
	assert.Equal(t, "₹10,030/-", FormatRate(10030))
	assert.Equal(t, "₹950/-", FormatRate(950))
}

func TestFormatRatePerSqft(t *testing.T) {
	assert.Equal(t, "₹9,775/sq.ft", FormatRatePerSqft(9775))
}

func TestFormatAxisTick(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{11800, "₹12K"},
		{10030, "₹10K"},
		{8500, "₹9K"},
		{7600, "₹8K"},
		{0, "₹0K"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatAxisTick(tt.value), "value %v", tt.value)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "45.7%", FormatPercent(decimal.RequireFromString("45.7")))
	assert.Equal(t, "3%", FormatPercent(decimal.RequireFromString("3.0")))
	assert.Equal(t, "3.2%", FormatPercent(decimal.RequireFromString("3.2")))
}

func TestAxisDomain(t *testing.T) {
	lo, hi := AxisDomain(GenerateSeries(models.PeriodLastYear, models.CategoryFlat))
	assert.Equal(t, 10300, lo)
	assert.Equal(t, 12300, hi)

	lo, hi = AxisDomain(GenerateSeries(models.PeriodLastFiveYears, models.CategoryBuilder))
	assert.Equal(t, 6385, lo)
	assert.Equal(t, 10530, hi)

	lo, hi = AxisDomain(nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestAxisTicks(t *testing.T) {
	assert.Equal(t, []string{"₹11K", "₹12K"}, AxisTicks(10300, 12300))
	assert.Equal(t, []string{"₹9K", "₹10K", "₹11K", "₹12K"}, AxisTicks(8300, 12300))
	assert.Equal(t, []string{"₹11K"}, AxisTicks(11000, 11000))
	assert.Empty(t, AxisTicks(12000, 11000))
}

func TestBuildView_UnknownPeriod(t *testing.T) {
	view := BuildView(models.Period("bogus"), models.CategoryFlat)

	assert.Equal(t, models.Period("bogus"), view.Period)
	assert.Empty(t, view.PeriodLabel)
	assert.Equal(t, GenerateSeries(models.PeriodLastFiveYears, models.CategoryFlat), view.Series)
	assert.Equal(t, "9.3%", view.GrowthDisplay)
}

func TestBuildView(t *testing.T) {
	view := BuildView(models.PeriodLastThreeYears, models.CategoryFlat)

	assert.Equal(t, models.PeriodLastThreeYears, view.Period)
	assert.Equal(t, "Last 3 Years", view.PeriodLabel)
	assert.Equal(t, models.CategoryFlat, view.Category)
	assert.Equal(t, "Flat/Apartment", view.CategoryLabel)
	assert.Len(t, view.Series, 7)
	assert.Equal(t, 11800, view.Summary.AverageRate)
	assert.Equal(t, 8300, view.AxisMin)
	assert.Equal(t, 12300, view.AxisMax)
	assert.Equal(t, []string{"₹9K", "₹10K", "₹11K", "₹12K"}, view.AxisTicks)
	require.Len(t, view.RateDisplays, 7)
	assert.Equal(t, "₹8,800/sq.ft", view.RateDisplays[0])
	assert.Equal(t, "₹11,800/sq.ft", view.RateDisplays[6])
	assert.Equal(t, "₹11,800/-", view.AverageDisplay)
	assert.Equal(t, "34.1%", view.GrowthDisplay)
	assert.Equal(t, "3%", view.YieldDisplay)
}

func TestListOptions(t *testing.T) {
	opts := ListOptions()

	assert.Equal(t, []models.Option{
		{Value: "last-1-year", Label: "Last 1 Year"},
		{Value: "last-3-years", Label: "Last 3 Years"},
		{Value: "last-5-years", Label: "Last 5 Years"},
	}, opts.Periods)
	assert.Equal(t, []models.Option{
		{Value: "flat", Label: "Flat/Apartment"},
		{Value: "builder", Label: "Builder Floor"},
	}, opts.Categories)
	assert.Equal(t, models.PeriodLastFiveYears, opts.DefaultPeriod)
	assert.Equal(t, models.CategoryFlat, opts.DefaultCategory)
}
