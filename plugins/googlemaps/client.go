// Package googlemaps geocodes catalog attractions with the Google Maps API.
package googlemaps

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/tripmate/core"
	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/plugins"
	"github.com/va6996/tripmate/tools"
	"googlemaps.github.io/maps"
	"gorm.io/gorm"
)

// Region biases geocoding towards the catalog's city.
const Region = "Sydney NSW, Australia"

// Location represents latitude and longitude
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a geocoded attraction.
type Place struct {
	AttractionID     string   `json:"attraction_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Location         Location `json:"location"`
	PlaceID          string   `json:"place_id,omitempty"`
}

// Client handles Google Maps API requests
type Client struct {
	geocoder plugins.Geocoder
	resolver *core.Resolver
}

// NewClient creates a maps client for apiKey and registers its tool. When db is
// not nil, results are cached there.
func NewClient(apiKey string, db *gorm.DB, resolver *core.Resolver, gk *genkit.Genkit, registry *tools.Registry) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	mc, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	var geocoder plugins.Geocoder = mc
	if db != nil {
		geocoder = NewCachedGeocoder(db, mc, DefaultCacheTTL)
	}
	return NewClientWithGeocoder(geocoder, resolver, gk, registry), nil
}

// NewClientWithGeocoder builds a client over any Geocoder.
func NewClientWithGeocoder(geocoder plugins.Geocoder, resolver *core.Resolver, gk *genkit.Genkit, registry *tools.Registry) *Client {
	c := &Client{geocoder: geocoder, resolver: resolver}
	NewLocateTool(c, gk, registry)
	return c
}

// Locate geocodes a catalog attraction by name and display location.
func (c *Client) Locate(ctx context.Context, identifier string) (*Place, error) {
	if c.geocoder == nil {
		return nil, fmt.Errorf("maps client not initialized")
	}

	a, err := c.resolver.Info(identifier)
	if err != nil {
		return nil, err
	}

	address := fmt.Sprintf("%s, %s, %s", a.Name, a.Location, Region)
	log.Debugf(ctx, "Geocoding %s as %q", a.ID, address)

	results, err := c.geocoder.Geocode(ctx, &maps.GeocodingRequest{Address: address, Region: "au"})
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no geocoding results for %s", a.ID)
	}

	best := results[0]
	return &Place{
		AttractionID:     a.ID,
		Name:             a.Name,
		FormattedAddress: best.FormattedAddress,
		PlaceID:          best.PlaceID,
		Location: Location{
			Lat: best.Geometry.Location.Lat,
			Lng: best.Geometry.Location.Lng,
		},
	}, nil
}

func (c *Client) resolverFormatter() *core.Formatter {
	return core.NewFormatter(c.resolver.Catalog().Currency())
}
