package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidCategory = errors.New("invalid property type")
)

// Period selects the historical window a rate series covers
type Period string

const (
	PeriodLastYear       Period = "last-1-year"
	PeriodLastThreeYears Period = "last-3-years"
	PeriodLastFiveYears  Period = "last-5-years"
)

// DefaultPeriod is used when no period is selected
const DefaultPeriod = PeriodLastFiveYears

// Periods lists the selectable periods in display order
var Periods = []Period{PeriodLastYear, PeriodLastThreeYears, PeriodLastFiveYears}

// Label returns the display label of the period
func (p Period) Label() string {
	switch p {
	case PeriodLastYear:
		return "Last 1 Year"
	case PeriodLastThreeYears:
		return "Last 3 Years"
	case PeriodLastFiveYears:
		return "Last 5 Years"
	default:
		return ""
	}
}

// Valid reports whether p is one of the known periods
func (p Period) Valid() bool {
	return p.Label() != ""
}

// ParsePeriod converts s to a Period, rejecting unknown values
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return p, nil
}

// Category is the property type filter that scales displayed rates
type Category string

const (
	CategoryFlat    Category = "flat"
	CategoryBuilder Category = "builder"
)

// DefaultCategory is used when no property type is selected
const DefaultCategory = CategoryFlat

// Categories lists the selectable property types in display order
var Categories = []Category{CategoryFlat, CategoryBuilder}

// Label returns the display label of the category
func (c Category) Label() string {
	switch c {
	case CategoryFlat:
		return "Flat/Apartment"
	case CategoryBuilder:
		return "Builder Floor"
	default:
		return ""
	}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	return c.Label() != ""
}

// ParseCategory converts s to a Category, rejecting unknown values
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// SeriesPoint is one chart point; Label is the x-axis value
type SeriesPoint struct {
	Label string `json:"year"`
	Rate  int    `json:"rate"`
}

// SummaryStats holds the headline figures shown next to the chart
type SummaryStats struct {
	AverageRate        int             `json:"avg_rate"`
	GrowthPercent      decimal.Decimal `json:"growth"`
	RentalYieldPercent decimal.Decimal `json:"rental_yield"`
}

// MarshalJSON writes the percentages as JSON numbers rather than the quoted
// strings decimal produces by default.
func (s SummaryStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AverageRate        int         `json:"avg_rate"`
		GrowthPercent      json.Number `json:"growth"`
		RentalYieldPercent json.Number `json:"rental_yield"`
	}{
		AverageRate:        s.AverageRate,
		GrowthPercent:      json.Number(s.GrowthPercent.String()),
		RentalYieldPercent: json.Number(s.RentalYieldPercent.String()),
	})
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options describes the selectable periods and property types
type Options struct {
	Periods         []Option `json:"periods"`
	Categories      []Option `json:"property_types"`
	DefaultPeriod   Period   `json:"default_period"`
	DefaultCategory Category `json:"default_property_type"`
}

// RateView is everything the widget needs for one selection
type RateView struct {
	Period         Period        `json:"period"`
	PeriodLabel    string        `json:"period_label"`
	Category       Category      `json:"property_type"`
	CategoryLabel  string        `json:"property_type_label"`
	Series         []SeriesPoint `json:"series"`
	Summary        SummaryStats  `json:"summary"`
	AxisMin        int           `json:"axis_min"`
	AxisMax        int           `json:"axis_max"`
	AxisTicks      []string      `json:"axis_ticks"`
	RateDisplays   []string      `json:"rate_displays"`
	AverageDisplay string        `json:"avg_rate_display"`
	GrowthDisplay  string        `json:"growth_display"`
	YieldDisplay   string        `json:"rental_yield_display"`
}
