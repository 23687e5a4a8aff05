// Package plugins holds the contracts shared by the tool and model plugins.
package plugins

import (
	"context"

	"github.com/va6996/tripmate/tools"
	"googlemaps.github.io/maps"
)

// LLMClient defines the interface for LLM interaction
type LLMClient = tools.LLMClient

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}
