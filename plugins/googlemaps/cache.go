package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/va6996/tripmate/log"
	"github.com/va6996/tripmate/orm"
	"github.com/va6996/tripmate/plugins"
	"googlemaps.github.io/maps"
	"gorm.io/gorm"
)

// DefaultCacheTTL keeps geocoding results for a month; attractions rarely move.
const DefaultCacheTTL = 30 * 24 * time.Hour

// CachedGeocoder stores geocoding results in the database cache table.
type CachedGeocoder struct {
	db   *gorm.DB
	next plugins.Geocoder
	ttl  time.Duration
}

var _ plugins.Geocoder = (*CachedGeocoder)(nil)

func NewCachedGeocoder(db *gorm.DB, next plugins.Geocoder, ttl time.Duration) *CachedGeocoder {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedGeocoder{db: db, next: next, ttl: ttl}
}

func cacheKey(r *maps.GeocodingRequest) string {
	return fmt.Sprintf("geocode:%s|%s", r.Address, r.Region)
}

func (g *CachedGeocoder) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	key := cacheKey(r)
	if entry, err := orm.GetCacheEntry(g.db, key); err == nil {
		var results []maps.GeocodingResult
		if err := json.Unmarshal(entry.Value, &results); err == nil {
			log.Debugf(ctx, "Geocode cache hit for %s", key)
			return results, nil
		}
	}

	results, err := g.next.Geocode(ctx, r)
	if err != nil {
		return nil, err
	}

	if value, err := json.Marshal(results); err == nil {
		if err := orm.SetCacheEntry(g.db, key, value, g.ttl); err != nil {
			log.Warnf(ctx, "Failed to cache geocode result for %s: %v", key, err)
		}
	}
	return results, nil
}
