package services

import (
	"context"
	"fmt"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/config"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/stylist"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Stack holds the services shared by the api and the worker.
type Stack struct {
	Recommendations *RecommendationService
	Preferences     *PreferenceStore
	Weather         *OpenMeteoWeatherService
	WeatherCache    *WeatherCacheService
}

// NewStack builds the recommendation service from configuration. Style tips
// are only wired when enabled and an API key is present.
func NewStack(ctx context.Context, cfg *config.Config, db *gorm.DB, logger zerolog.Logger) (*Stack, error) {
	engine, err := stylist.NewEngine(cfg.Stylist, logger)
	if err != nil {
		return nil, err
	}
	weather := NewOpenMeteoWeatherService(cfg.Weather, logger)
	weatherCache, err := NewWeatherCacheService(weather, cfg.Weather.CacheTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("weather cache: %w", err)
	}

	var tips StyleTipsProvider
	if cfg.Google.TipsEnabled && cfg.Google.APIKey != "" {
		provider, err := NewGoogleStyleTipsProvider(ctx, cfg.Google.APIKey, cfg.Google.Model, logger)
		if err != nil {
			weatherCache.Close()
			return nil, fmt.Errorf("style tips: %w", err)
		}
		tips = provider
	} else {
		logger.Info().Msg("style tips disabled")
	}

	prefs := NewPreferenceStore(db)
	recommendations := NewRecommendationService(
		engine,
		NewWardrobeStore(db),
		NewOutfitStore(db),
		prefs,
		weatherCache,
		tips,
		RecommendationConfig{TipsTopN: cfg.Google.TipsTopN, TipsTimeout: cfg.Google.TipsTimeout},
		logger,
	)
	return &Stack{
		Recommendations: recommendations,
		Preferences:     prefs,
		Weather:         weather,
		WeatherCache:    weatherCache,
	}, nil
}

func (s *Stack) Close() error {
	return s.WeatherCache.Close()
}
