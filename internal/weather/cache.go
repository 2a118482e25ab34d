package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/logger"
	"github.com/julianstephens/dailyworkout/internal/models"
)

// Cache keeps recent forecasts per location for the lifetime of a session.
// Concurrent lookups for the same location share one upstream request.
type Cache struct {
	provider Provider
	entries  *expirable.LRU[string, models.Forecast]
	group    singleflight.Group
	timeout  time.Duration
}

// NewCache wraps provider with an expiring forecast cache. A non-positive ttl
// uses constants.ForecastCacheTTL.
func NewCache(provider Provider, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = constants.ForecastCacheTTL
	}
	return &Cache{
		provider: provider,
		entries:  expirable.NewLRU[string, models.Forecast](constants.ForecastCacheMax, nil, ttl),
		timeout:  constants.WeatherTimeout,
	}
}

// Get returns the forecast for the location, fetching it when the cached copy
// is missing or expired. Errors are never cached.
//
// The upstream request is shared by every caller waiting on the same location,
// so it runs detached from ctx under the cache's own timeout. Cancelling ctx
// only stops this caller from waiting.
func (c *Cache) Get(ctx context.Context, loc models.Location) (models.Forecast, error) {
	key := cacheKey(loc)
	if f, ok := c.entries.Get(key); ok {
		return f, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		if f, ok := c.entries.Get(key); ok {
			return f, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		f, err := c.provider.Forecast(fetchCtx, loc.Latitude, loc.Longitude)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, f)
		return f, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Debug("forecast request shared", "key", key)
		}
		return res.Val.(models.Forecast), nil
	}
}

// Lookup is Get for callers that only render advice: on failure it returns an
// empty forecast, so every day reads as "no forecast", along with the error
// for logging.
func (c *Cache) Lookup(ctx context.Context, loc models.Location) (models.Forecast, error) {
	f, err := c.Get(ctx, loc)
	if err != nil {
		logger.Warn("forecast unavailable", "location", loc.Name, "error", err)
		return models.Forecast{}, err
	}
	return f, nil
}

// Purge drops every cached forecast.
func (c *Cache) Purge() {
	c.entries.Purge()
}

// Len returns the number of cached locations.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// cacheKey rounds coordinates to roughly one kilometre so that tiny geocoder
// differences share an entry.
func cacheKey(loc models.Location) string {
	return fmt.Sprintf("%.2f,%.2f", loc.Latitude, loc.Longitude)
}
