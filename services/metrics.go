package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutfitsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_outfits_generated_total",
			Help: "Outfits returned to users, by mode",
		},
		[]string{"mode"}, // "suggest", "plan"
	)

	OutfitScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylist_outfit_score",
			Help:    "Total score of the top ranked outfit",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	PreferenceUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_preference_updates_total",
			Help: "Rating driven preference updates, by outcome",
		},
		[]string{"outcome"}, // "changed", "unchanged", "error"
	)

	WeatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_weather_fetches_total",
			Help: "Weather provider calls, by result",
		},
		[]string{"result"}, // "ok", "error", "breaker_open"
	)

	WeatherFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylist_weather_fallbacks_total",
			Help: "Recommendations that fell back to the unfiltered wardrobe",
		},
	)
)
