package test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

type WeatherServiceMock struct {
	Result *models.WeatherSnapshot
	Err    error
	calls  atomic.Int32
}

func (m *WeatherServiceMock) Snapshot(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

func (m *WeatherServiceMock) Calls() int {
	return int(m.calls.Load())
}

type StyleTipsMock struct {
	Result []string
	Err    error
}

func (m StyleTipsMock) Tips(ctx context.Context, outfit models.Outfit, weather *models.CurrentWeather) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// SunnySnapshot is a warm sunny summer day with a mild five day forecast.
func SunnySnapshot() *models.WeatherSnapshot {
	day := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)
	snapshot := &models.WeatherSnapshot{
		Current: models.CurrentWeather{
			Temperature:    28,
			MinTemperature: 22,
			MaxTemperature: 30,
			Humidity:       40,
			WindSpeed:      10,
			Condition:      models.WeatherSunny,
			Timestamp:      day,
		},
	}
	for idx := 0; idx < models.MaxForecastDays; idx++ {
		snapshot.Forecast.Days = append(snapshot.Forecast.Days, models.DailyForecast{
			Date:                day.AddDate(0, 0, idx),
			MinTemperature:      22,
			MaxTemperature:      30,
			Condition:           models.WeatherSunny,
			Humidity:            40,
			WindSpeed:           10,
			PrecipitationChance: 5,
		})
	}
	return snapshot
}
