package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/rs/zerolog"
)

type weatherKey struct {
	Lat float64
	Lon float64
}

func newWeatherKey(lat, lon float64) weatherKey {
	return weatherKey{Lat: roundCoordinate(lat), Lon: roundCoordinate(lon)}
}

func (k weatherKey) String() string {
	return fmt.Sprintf("%.2f,%.2f", k.Lat, k.Lon)
}

// WeatherCacheService memoizes snapshots per rounded location so users in the
// same area share one provider call per TTL window.
type WeatherCacheService struct {
	cache *cache.LoadableCache[*models.WeatherSnapshot]
}

func NewWeatherCacheService(provider WeatherServiceProvider, ttl time.Duration, logger zerolog.Logger) (*WeatherCacheService, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	loadFunction := func(ctx context.Context, key any) (*models.WeatherSnapshot, []store.Option, error) {
		raw, ok := key.(string)
		if !ok {
			return nil, nil, fmt.Errorf("invalid key type provided to weather cache: expected string, got %T", key)
		}
		var k weatherKey
		if _, err := fmt.Sscanf(raw, "%f,%f", &k.Lat, &k.Lon); err != nil {
			return nil, nil, fmt.Errorf("invalid weather cache key %q: %w", raw, err)
		}
		logger.Debug().Str("key", raw).Msg("weather cache miss")
		snapshot, err := provider.Snapshot(ctx, k.Lat, k.Lon)
		return snapshot, []store.Option{store.WithExpiration(ttl)}, err
	}

	return &WeatherCacheService{
		cache: cache.NewLoadable[*models.WeatherSnapshot](
			loadFunction,
			cache.New[*models.WeatherSnapshot](ristrettoStore),
		),
	}, nil
}

func (s *WeatherCacheService) Snapshot(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	return s.cache.Get(ctx, newWeatherKey(lat, lon).String())
}

func (s *WeatherCacheService) Close() error {
	return s.cache.Close()
}
