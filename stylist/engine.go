package stylist

import (
	"errors"
	"fmt"
	"time"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/rs/zerolog"
)

const defaultSeed = 42

type Config struct {
	Seed          int64  `koanf:"seed"`
	Adhoc         Limits `koanf:"adhoc"`
	Forecast      Limits `koanf:"forecast"`
	OutfitsPerDay int    `koanf:"outfits_per_day"`
}

func DefaultConfig() Config {
	return Config{
		Seed:          defaultSeed,
		Adhoc:         AdhocLimits,
		Forecast:      ForecastLimits,
		OutfitsPerDay: 3,
	}
}

func (c Config) Validate() error {
	for name, l := range map[string]Limits{"adhoc": c.Adhoc, "forecast": c.Forecast} {
		if l.Cap <= 0 || l.Dresses <= 0 || l.Tops <= 0 || l.Bottoms <= 0 || l.Shoes <= 0 {
			return fmt.Errorf("%s limits must be positive: %+v", name, l)
		}
	}
	if c.OutfitsPerDay <= 0 {
		return errors.New("outfits_per_day must be positive")
	}
	return nil
}

// Engine wires the analyzers, generator, scorer and learner together.
type Engine struct {
	cfg    Config
	logger zerolog.Logger

	Harmony   *ColorHarmony
	Formality *FormalityModel
	Weather   *WeatherModel
	Generator *Generator
	Scorer    *Scorer
	Learner   *PreferenceLearner
}

func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stylist config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	harmony := NewColorHarmony()
	formality := NewFormalityModel()
	return &Engine{
		cfg:       cfg,
		logger:    logger.With().Str("component", "stylist").Logger(),
		Harmony:   harmony,
		Formality: formality,
		Weather:   NewWeatherModel(harmony),
		Generator: NewGenerator(formality, seed),
		Scorer:    NewScorer(harmony, formality),
		Learner:   NewPreferenceLearner(),
	}, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

type RecommendRequest struct {
	User      *models.UserAccount
	Wardrobe  []models.WardrobeItem
	Weather   *models.CurrentWeather
	Formality models.Formality
	Occasions []string
	// Season overrides the season derived from the weather timestamp.
	Season *models.Season
}

type RecommendResult struct {
	Outfits    []RankedOutfit      `json:"outfits"`
	Conditions []models.WeatherTag `json:"conditions"`
	Season     models.Season       `json:"season"`
	// WeatherFallback is set when the weather filtered wardrobe could not form an
	// outfit and the unfiltered wardrobe was used instead.
	WeatherFallback bool `json:"weather_fallback"`
}

func validateInputs(user *models.UserAccount, wardrobe []models.WardrobeItem) error {
	if user == nil {
		return ErrNoUser
	}
	if len(wardrobe) == 0 {
		return ErrEmptyWardrobe
	}
	return nil
}

func (e *Engine) Recommend(req RecommendRequest) (*RecommendResult, error) {
	if err := validateInputs(req.User, req.Wardrobe); err != nil {
		return nil, err
	}
	logger := e.logger.With().Uint("user", req.User.ID).Str("formality", string(req.Formality)).Logger()

	season := e.seasonFor(req)
	result := &RecommendResult{Season: season}
	gen := GenerateRequest{
		Formality: req.Formality,
		Occasions: req.Occasions,
		Limits:    e.cfg.Adhoc,
	}

	var outfits []models.Outfit
	if req.Weather != nil {
		result.Conditions = e.Weather.ActiveConditions(*req.Weather)
		gen.Conditions = result.Conditions
		gen.Items = e.Weather.RecommendedItems(req.Wardrobe, *req.Weather, season)
		outfits = e.Generator.Generate(gen)
		if len(outfits) == 0 {
			logger.Debug().Msg("weather filtered wardrobe produced no outfit, falling back")
			result.WeatherFallback = true
			gen.Items = Categorize(req.Wardrobe)
			outfits = e.Generator.Generate(gen)
		}
	} else {
		gen.Items = Categorize(req.Wardrobe)
		gen.Season = &season
		outfits = e.Generator.Generate(gen)
	}
	if len(outfits) == 0 {
		return nil, fmt.Errorf("formality %q: %w", req.Formality, ErrNoMatchingItems)
	}

	for idx := range outfits {
		outfits[idx].Seasons = []models.Season{season}
	}
	result.Outfits = e.rank(outfits, ScoreContext{
		Formality:   req.Formality,
		Conditions:  result.Conditions,
		Preferences: &req.User.Preferences,
		Season:      season,
	})
	logger.Debug().
		Int("generated", len(outfits)).
		Bool("weather_fallback", result.WeatherFallback).
		Float64("top_score", result.Outfits[0].Score.Total).
		Msg("recommendation complete")
	return result, nil
}

func (e *Engine) seasonFor(req RecommendRequest) models.Season {
	if req.Season != nil {
		return *req.Season
	}
	if req.Weather != nil && !req.Weather.Timestamp.IsZero() {
		return models.SeasonFor(req.Weather.Timestamp)
	}
	return models.SeasonFor(time.Now())
}

// rank scores the outfits and records the score on each of them.
func (e *Engine) rank(outfits []models.Outfit, sc ScoreContext) []RankedOutfit {
	ranked := e.Scorer.Rank(outfits, sc)
	for idx := range ranked {
		total := ranked[idx].Score.Total
		grade := ranked[idx].Score.Grade
		ranked[idx].Outfit.AIScore = &total
		ranked[idx].Outfit.Grade = &grade
	}
	return ranked
}

type PlanRequest struct {
	User      *models.UserAccount
	Wardrobe  []models.WardrobeItem
	Forecast  models.WeatherForecast
	Formality models.Formality
	Occasions []string
	// PerDay overrides the configured number of outfits kept per day.
	PerDay int
}

type DayPlan struct {
	Date            time.Time            `json:"date"`
	Weather         models.DailyForecast `json:"weather"`
	Conditions      []models.WeatherTag  `json:"conditions"`
	Season          models.Season        `json:"season"`
	Outfits         []RankedOutfit       `json:"outfits"`
	WeatherFallback bool                 `json:"weather_fallback"`
}

// PlanForecast builds the top outfits for every forecast day. A day without any
// possible outfit gets an empty list rather than an error.
func (e *Engine) PlanForecast(req PlanRequest) ([]DayPlan, error) {
	if err := validateInputs(req.User, req.Wardrobe); err != nil {
		return nil, err
	}
	perDay := req.PerDay
	if perDay <= 0 {
		perDay = e.cfg.OutfitsPerDay
	}
	days := req.Forecast.Days
	if len(days) > models.MaxForecastDays {
		days = days[:models.MaxForecastDays]
	}

	plans := make([]DayPlan, 0, len(days))
	for _, day := range days {
		season := models.SeasonFor(day.Date)
		plan := DayPlan{
			Date:       day.Date,
			Weather:    day,
			Conditions: e.Weather.ForecastConditions(day),
			Season:     season,
		}
		gen := GenerateRequest{
			Items:      e.Weather.RecommendedForForecast(req.Wardrobe, day, season),
			Formality:  req.Formality,
			Conditions: plan.Conditions,
			Occasions:  req.Occasions,
			Limits:     e.cfg.Forecast,
		}
		outfits := e.Generator.Generate(gen)
		if len(outfits) == 0 {
			plan.WeatherFallback = true
			gen.Items = Categorize(req.Wardrobe)
			outfits = e.Generator.Generate(gen)
		}
		for idx := range outfits {
			outfits[idx].Seasons = []models.Season{season}
		}
		ranked := e.rank(outfits, ScoreContext{
			Formality:   req.Formality,
			Conditions:  plan.Conditions,
			Preferences: &req.User.Preferences,
			Season:      season,
		})
		if len(ranked) > perDay {
			ranked = ranked[:perDay]
		}
		plan.Outfits = ranked
		plans = append(plans, plan)
	}
	e.logger.Debug().Uint("user", req.User.ID).Int("days", len(plans)).Msg("forecast planned")
	return plans, nil
}
