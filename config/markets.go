package config

import "strings"

// Market represents a micro-market the widget can report on
type Market struct {
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Center      []float64 `json:"center"`
	ZoomLevel   int       `json:"zoom_level"`
	Listings    int       `json:"listings"`
	Description string    `json:"description"`
}

// SupportedMarkets is a list of markets supported by the application
var SupportedMarkets = []Market{
	{
		Slug:      "financial-district-hyderabad",
		Name:      "Financial District",
		City:      "Hyderabad",
		Center:    []float64{17.4156, 78.3412},
		ZoomLevel: 14,
		Listings:  173,
		Description: "Financial District, Hyderabad is one of the popular areas in the city. " +
			"This area of the city has over 173 properties listed for sale and rent. " +
			"The area is well connected to other parts of the city via road and metro. " +
			"It houses several IT companies and is a preferred residential location for " +
			"professionals working in the area.",
	},
	// Add more markets here as needed
}

// Title returns the heading shown above the chart
func (m Market) Title() string {
	return "Property Rates in " + m.Name + ", " + m.City
}

// GetMarketSlugs returns a list of supported market slugs
func GetMarketSlugs() []string {
	slugs := make([]string, len(SupportedMarkets))
	for i, market := range SupportedMarkets {
		slugs[i] = market.Slug
	}
	return slugs
}

// GetMarketBySlug returns a market configuration by slug, case-insensitively
func GetMarketBySlug(slug string) *Market {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, market := range SupportedMarkets {
		if market.Slug == slug {
			m := market
			return &m
		}
	}
	return nil
}
