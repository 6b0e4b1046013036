package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/config"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

var ErrWeatherUnavailable = errors.New("weather unavailable")

type WeatherServiceProvider interface {
	Snapshot(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error)
}

const openMeteoTimeLayout = "2006-01-02T15:04"

type openMeteoResponse struct {
	Current struct {
		Time        string  `json:"time"`
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time                []string  `json:"time"`
		WeatherCode         []int     `json:"weather_code"`
		TemperatureMax      []float64 `json:"temperature_2m_max"`
		TemperatureMin      []float64 `json:"temperature_2m_min"`
		PrecipitationChance []float64 `json:"precipitation_probability_max"`
		WindSpeedMax        []float64 `json:"wind_speed_10m_max"`
		HumidityMean        []float64 `json:"relative_humidity_2m_mean"`
	} `json:"daily"`
}

// OpenMeteoWeatherService reads current conditions and a five day forecast
// from the Open-Meteo forecast API. Calls go through a circuit breaker so an
// unhealthy provider fails fast.
type OpenMeteoWeatherService struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*models.WeatherSnapshot]
	logger  zerolog.Logger
}

func NewOpenMeteoWeatherService(cfg config.WeatherConfig, logger zerolog.Logger) *OpenMeteoWeatherService {
	logger = logger.With().Str("component", "weather").Logger()
	settings := gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("weather breaker state changed")
		},
	}
	return &OpenMeteoWeatherService{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		breaker: gobreaker.NewCircuitBreaker[*models.WeatherSnapshot](settings),
		logger:  logger,
	}
}

func (s *OpenMeteoWeatherService) BreakerState() string {
	return s.breaker.State().String()
}

func (s *OpenMeteoWeatherService) Snapshot(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	snapshot, err := s.breaker.Execute(func() (*models.WeatherSnapshot, error) {
		return s.fetch(ctx, lat, lon)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		WeatherFetches.WithLabelValues("breaker_open").Inc()
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	case err != nil:
		WeatherFetches.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("weather fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	WeatherFetches.WithLabelValues("ok").Inc()
	return snapshot, nil
}

func (s *OpenMeteoWeatherService) fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	query := url.Values{}
	query.Add("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Add("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	query.Add("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	query.Add("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max,wind_speed_10m_max,relative_humidity_2m_mean")
	query.Add("forecast_days", strconv.Itoa(models.MaxForecastDays))
	query.Add("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload openMeteoResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	return payload.snapshot()
}

func (r openMeteoResponse) snapshot() (*models.WeatherSnapshot, error) {
	ts, err := time.Parse(openMeteoTimeLayout, r.Current.Time)
	if err != nil {
		return nil, fmt.Errorf("parse current time %q: %w", r.Current.Time, err)
	}
	snapshot := &models.WeatherSnapshot{
		Current: models.CurrentWeather{
			Temperature:    r.Current.Temperature,
			MinTemperature: r.Current.Temperature,
			MaxTemperature: r.Current.Temperature,
			Humidity:       r.Current.Humidity,
			WindSpeed:      r.Current.WindSpeed,
			Condition:      WeatherTagForCode(r.Current.WeatherCode),
			Timestamp:      ts,
		},
	}

	d := r.Daily
	for idx, day := range d.Time {
		if idx >= models.MaxForecastDays {
			break
		}
		date, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return nil, fmt.Errorf("parse forecast date %q: %w", day, err)
		}
		snapshot.Forecast.Days = append(snapshot.Forecast.Days, models.DailyForecast{
			Date:                date,
			MinTemperature:      at(d.TemperatureMin, idx),
			MaxTemperature:      at(d.TemperatureMax, idx),
			Condition:           WeatherTagForCode(at(d.WeatherCode, idx)),
			Humidity:            at(d.HumidityMean, idx),
			WindSpeed:           at(d.WindSpeedMax, idx),
			PrecipitationChance: at(d.PrecipitationChance, idx),
		})
	}
	if len(snapshot.Forecast.Days) > 0 {
		today := snapshot.Forecast.Days[0]
		snapshot.Current.MinTemperature = today.MinTemperature
		snapshot.Current.MaxTemperature = today.MaxTemperature
	}
	return snapshot, nil
}

// at tolerates daily series shorter than the time axis.
func at[T int | float64](values []T, idx int) T {
	var zero T
	if idx < len(values) {
		return values[idx]
	}
	return zero
}

// WeatherTagForCode maps a WMO weather interpretation code to a condition tag.
func WeatherTagForCode(code int) models.WeatherTag {
	switch {
	case code <= 1:
		return models.WeatherSunny
	case code <= 3:
		return models.WeatherCloudy
	case code == 45 || code == 48:
		return models.WeatherFoggy
	case code >= 51 && code <= 67, code >= 80 && code <= 82:
		return models.WeatherRainy
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return models.WeatherSnowy
	case code >= 95:
		return models.WeatherStormy
	default:
		return models.WeatherCloudy
	}
}
