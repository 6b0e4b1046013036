package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherCacheServesRepeatedLookups(t *testing.T) {
	provider := &test.WeatherServiceMock{Result: test.SunnySnapshot()}
	svc, err := NewWeatherCacheService(provider, time.Minute, zerolog.Nop())
	require.NoError(t, err)
	defer svc.Close()

	snapshot, err := svc.Snapshot(context.Background(), 52.5201, 13.4049)
	require.NoError(t, err)
	assert.InDelta(t, 28, snapshot.Current.Temperature, 1e-9)
	assert.Equal(t, 1, provider.Calls())

	// cache writes are asynchronous, so wait until a lookup is served from the cache
	assert.Eventually(t, func() bool {
		before := provider.Calls()
		_, err := svc.Snapshot(context.Background(), 52.5249, 13.4001)
		return err == nil && provider.Calls() == before
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWeatherCacheDoesNotStoreFailures(t *testing.T) {
	provider := &test.WeatherServiceMock{Err: errors.New("down")}
	svc, err := NewWeatherCacheService(provider, time.Minute, zerolog.Nop())
	require.NoError(t, err)
	defer svc.Close()

	_, err = svc.Snapshot(context.Background(), 1, 1)
	require.Error(t, err)
	_, err = svc.Snapshot(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Equal(t, 2, provider.Calls())
}

func TestWeatherKeyRounding(t *testing.T) {
	assert.Equal(t, "52.52,13.40", newWeatherKey(52.5201, 13.4049).String())
	assert.Equal(t, newWeatherKey(52.5249, 13.4001), newWeatherKey(52.5201, 13.4049))
	assert.NotEqual(t, newWeatherKey(52.53, 13.40), newWeatherKey(52.52, 13.40))
}
