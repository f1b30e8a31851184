package geocode

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type cachedCoords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Cached is a read-through redis cache in front of another Geocoder.
// Cache errors are ignored; a broken cache degrades to the inner lookup.
type Cached struct {
	inner Geocoder
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCached(inner Geocoder, rdb *redis.Client, ttl time.Duration) *Cached {
	return &Cached{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(name string) string { return "geo:" + name }

func (c *Cached) Lookup(ctx context.Context, name string) (float64, float64, error) {
	if raw, err := c.rdb.Get(ctx, cacheKey(name)).Bytes(); err == nil {
		var cc cachedCoords
		if json.Unmarshal(raw, &cc) == nil {
			return cc.Lat, cc.Lon, nil
		}
	}

	lat, lon, err := c.inner.Lookup(ctx, name)
	if err != nil {
		return 0, 0, err
	}

	payload, _ := json.Marshal(cachedCoords{Lat: lat, Lon: lon})
	_ = c.rdb.Set(ctx, cacheKey(name), payload, c.ttl).Err()
	return lat, lon, nil
}
