package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"proprates/server/config"
)

// MarketPoint returns the market centre as an orb.Point (longitude, latitude).
func MarketPoint(market config.Market) (orb.Point, error) {
	if len(market.Center) != 2 {
		return orb.Point{}, fmt.Errorf("market %s has invalid center: %v", market.Slug, market.Center)
	}
	lat, lng := market.Center[0], market.Center[1]
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, fmt.Errorf("market %s center out of range: %v", market.Slug, market.Center)
	}
	return orb.Point{lng, lat}, nil
}

// MarketFeature builds a GeoJSON point feature describing the market
func MarketFeature(market config.Market) (*geojson.Feature, error) {
	point, err := MarketPoint(market)
	if err != nil {
		return nil, err
	}

	feature := geojson.NewFeature(point)
	feature.ID = market.Slug
	feature.Properties = geojson.Properties{
		"name":        market.Name,
		"city":        market.City,
		"title":       market.Title(),
		"listings":    market.Listings,
		"zoom_level":  market.ZoomLevel,
		"description": market.Description,
	}
	return feature, nil
}

// MarketCollection builds a FeatureCollection of every market with a valid centre.
// Markets that fail are returned by slug so the caller can log them.
func MarketCollection(markets []config.Market) (*geojson.FeatureCollection, []string) {
	fc := geojson.NewFeatureCollection()
	var skipped []string
	for _, market := range markets {
		feature, err := MarketFeature(market)
		if err != nil {
			skipped = append(skipped, market.Slug)
			continue
		}
		fc.Append(feature)
	}
	return fc, skipped
}
