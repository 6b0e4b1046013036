package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/stylist"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrNoLocation         = errors.New("user has no location")
	ErrUnknownItems       = errors.New("outfit references unknown wardrobe items")
	ErrInvalidComposition = errors.New("invalid outfit composition")
)

type RecommendationConfig struct {
	TipsTopN    int
	TipsTimeout time.Duration
}

// RecommendationService runs the stylist engine against persisted wardrobes,
// live weather and stored preferences.
type RecommendationService struct {
	engine   *stylist.Engine
	wardrobe *WardrobeStore
	outfits  *OutfitStore
	prefs    *PreferenceStore
	weather  WeatherServiceProvider
	tips     StyleTipsProvider
	cfg      RecommendationConfig
	logger   zerolog.Logger
}

// NewRecommendationService wires the service. weather and tips may be nil, in
// which case suggestions are made without weather and without tips.
func NewRecommendationService(
	engine *stylist.Engine,
	wardrobe *WardrobeStore,
	outfits *OutfitStore,
	prefs *PreferenceStore,
	weather WeatherServiceProvider,
	tips StyleTipsProvider,
	cfg RecommendationConfig,
	logger zerolog.Logger,
) *RecommendationService {
	return &RecommendationService{
		engine:   engine,
		wardrobe: wardrobe,
		outfits:  outfits,
		prefs:    prefs,
		weather:  weather,
		tips:     tips,
		cfg:      cfg,
		logger:   logger.With().Str("component", "recommendations").Logger(),
	}
}

type SuggestOptions struct {
	Formality  models.Formality
	Occasions  []string
	Season     *models.Season
	UseWeather bool
	Limit      int
}

type Suggestion struct {
	GenerationID string                 `json:"generation_id"`
	Weather      *models.CurrentWeather `json:"weather"`
	*stylist.RecommendResult
}

func (s *RecommendationService) Suggest(ctx context.Context, user *models.UserAccount, opts SuggestOptions) (*Suggestion, error) {
	if user == nil {
		return nil, stylist.ErrNoUser
	}
	logger := s.logger.With().Uint("user", user.ID).Logger()

	var (
		wardrobe []models.WardrobeItem
		weather  *models.CurrentWeather
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.wardrobe.ListActive(gctx, user.ID)
		wardrobe = items
		return err
	})
	if opts.UseWeather && s.weather != nil && user.HasLocation() {
		g.Go(func() error {
			snapshot, err := s.weather.Snapshot(gctx, *user.Latitude, *user.Longitude)
			if err != nil {
				logger.Warn().Err(err).Msg("suggesting without weather")
				return nil
			}
			weather = &snapshot.Current
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := s.engine.Recommend(stylist.RecommendRequest{
		User:      user,
		Wardrobe:  wardrobe,
		Weather:   weather,
		Formality: opts.Formality,
		Occasions: opts.Occasions,
		Season:    opts.Season,
	})
	if err != nil {
		return nil, err
	}
	if opts.Limit > 0 && len(result.Outfits) > opts.Limit {
		result.Outfits = result.Outfits[:opts.Limit]
	}

	generationID := uuid.NewString()
	for idx := range result.Outfits {
		result.Outfits[idx].Outfit.GenerationID = &generationID
	}
	s.enrichWithTips(ctx, result.Outfits, weather)

	OutfitsGenerated.WithLabelValues("suggest").Add(float64(len(result.Outfits)))
	OutfitScores.Observe(result.Outfits[0].Score.Total)
	if result.WeatherFallback {
		WeatherFallbacks.Inc()
	}
	logger.Info().
		Str("generation", generationID).
		Int("outfits", len(result.Outfits)).
		Bool("weather", weather != nil).
		Msg("suggestions ready")
	return &Suggestion{GenerationID: generationID, Weather: weather, RecommendResult: result}, nil
}

// enrichWithTips attaches AI tips to the top ranked outfits. Tip failures only
// cost the tips.
func (s *RecommendationService) enrichWithTips(ctx context.Context, ranked []stylist.RankedOutfit, weather *models.CurrentWeather) {
	if s.tips == nil || s.cfg.TipsTopN <= 0 {
		return
	}
	timeout := s.cfg.TipsTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var g errgroup.Group
	for idx := range ranked {
		if idx >= s.cfg.TipsTopN {
			break
		}
		g.Go(func() error {
			tips, err := s.tips.Tips(tctx, ranked[idx].Outfit, weather)
			if err != nil {
				s.logger.Warn().Err(err).Int("rank", idx).Msg("style tips failed")
				return nil
			}
			ranked[idx].Outfit.StyleTips = tips
			return nil
		})
	}
	_ = g.Wait()
}

type PlanOptions struct {
	Formality models.Formality
	Occasions []string
	PerDay    int
}

type WeekPlan struct {
	GenerationID string            `json:"generation_id"`
	Days         []stylist.DayPlan `json:"days"`
}

func (s *RecommendationService) PlanWeek(ctx context.Context, user *models.UserAccount, opts PlanOptions) (*WeekPlan, error) {
	if user == nil {
		return nil, stylist.ErrNoUser
	}
	if !user.HasLocation() {
		return nil, ErrNoLocation
	}
	if s.weather == nil {
		return nil, ErrWeatherUnavailable
	}

	var (
		wardrobe []models.WardrobeItem
		snapshot *models.WeatherSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.wardrobe.ListActive(gctx, user.ID)
		wardrobe = items
		return err
	})
	g.Go(func() error {
		snap, err := s.weather.Snapshot(gctx, *user.Latitude, *user.Longitude)
		snapshot = snap
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	days, err := s.engine.PlanForecast(stylist.PlanRequest{
		User:      user,
		Wardrobe:  wardrobe,
		Forecast:  snapshot.Forecast,
		Formality: opts.Formality,
		Occasions: opts.Occasions,
		PerDay:    opts.PerDay,
	})
	if err != nil {
		return nil, err
	}

	generationID := uuid.NewString()
	total := 0
	for d := range days {
		for idx := range days[d].Outfits {
			days[d].Outfits[idx].Outfit.GenerationID = &generationID
		}
		total += len(days[d].Outfits)
	}
	OutfitsGenerated.WithLabelValues("plan").Add(float64(total))
	s.logger.Info().Uint("user", user.ID).Str("generation", generationID).Int("days", len(days)).Msg("forecast planned")
	return &WeekPlan{GenerationID: generationID, Days: days}, nil
}

// SavePlan persists the top outfit of every planned day.
func (s *RecommendationService) SavePlan(ctx context.Context, plan *WeekPlan) ([]models.Outfit, error) {
	saved := make([]models.Outfit, 0, len(plan.Days))
	for _, day := range plan.Days {
		if len(day.Outfits) == 0 {
			continue
		}
		outfit := day.Outfits[0].Outfit
		if err := s.outfits.Create(ctx, &outfit); err != nil {
			return saved, err
		}
		saved = append(saved, outfit)
	}
	return saved, nil
}

type SaveOutfitInput struct {
	Name         string
	ItemIDs      []uint
	OptionalIDs  []uint
	Occasions    []string
	Formality    models.Formality
	Creator      models.Creator
	GenerationID *string
	Favorite     bool

	// WeatherCondition is stored on the outfit and scored against when set.
	WeatherCondition *models.WeatherTag
}

// SaveOutfit builds an outfit from wardrobe item ids, scores it for the user
// and persists it.
func (s *RecommendationService) SaveOutfit(ctx context.Context, user *models.UserAccount, in SaveOutfitInput) (*models.Outfit, error) {
	if user == nil {
		return nil, stylist.ErrNoUser
	}
	items, err := s.wardrobe.ByIDs(ctx, user.ID, in.ItemIDs)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 || len(items) != len(uniqueIDs(in.ItemIDs)) {
		return nil, ErrUnknownItems
	}

	optional := make(map[uint]bool, len(in.OptionalIDs))
	for _, id := range in.OptionalIDs {
		optional[id] = true
	}
	creator := in.Creator
	if creator == "" {
		creator = models.CreatorUser
	}
	outfit := models.Outfit{
		OwnerID:      user.ID,
		Name:         in.Name,
		Occasions:    in.Occasions,
		Formality:    in.Formality,
		Creator:      creator,
		Favorite:     in.Favorite,
		GenerationID: in.GenerationID,

		WeatherCondition: in.WeatherCondition,
	}
	for _, item := range items {
		outfit.Items = append(outfit.Items, models.NewOutfitItem(item, optional[item.ID]))
	}
	outfit.SortItems()
	if err := outfit.ValidateComposition(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidComposition, err)
	}
	if outfit.IsIncomplete() {
		return nil, fmt.Errorf("%w: outfit needs at least one required item", ErrInvalidComposition)
	}
	if outfit.Name == "" {
		outfit.Name = stylist.OutfitName(items, in.Occasions, in.Formality)
	}

	var conditions []models.WeatherTag
	if in.WeatherCondition != nil {
		conditions = []models.WeatherTag{*in.WeatherCondition}
	}
	score := s.engine.Scorer.Score(items, stylist.ScoreContext{
		Formality:   in.Formality,
		Conditions:  conditions,
		Preferences: &user.Preferences,
		Season:      models.SeasonFor(time.Now()),
	})
	outfit.AIScore = &score.Total
	outfit.Grade = &score.Grade

	if err := s.outfits.Create(ctx, &outfit); err != nil {
		return nil, err
	}
	return &outfit, nil
}

func uniqueIDs(ids []uint) map[uint]bool {
	out := make(map[uint]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

type RateResult struct {
	Outfit             *models.Outfit         `json:"outfit"`
	Preferences        models.UserPreferences `json:"preferences"`
	PreferencesChanged bool                   `json:"preferences_changed"`
}

// Rate stores the feedback and folds it into the user's preferences.
func (s *RecommendationService) Rate(ctx context.Context, user *models.UserAccount, outfitID uint, feedback models.OutfitFeedback) (*RateResult, error) {
	if user == nil {
		return nil, stylist.ErrNoUser
	}
	outfit, err := s.outfits.Get(ctx, user.ID, outfitID)
	if err != nil {
		return nil, err
	}
	feedback.UserAccountID = user.ID

	// The feedback row, the outfit rating and the learned preferences commit together.
	changed := false
	record := func(tx *gorm.DB) error {
		return s.outfits.WithTx(tx).RecordFeedback(ctx, outfit, &feedback)
	}
	prefs, err := s.prefs.UpdateWithin(ctx, user.ID, record, func(current models.UserPreferences) (models.UserPreferences, bool, error) {
		next, ok := s.engine.Learner.Learn(*outfit, feedback, current)
		changed = ok
		return next, ok, nil
	})
	if err != nil {
		PreferenceUpdates.WithLabelValues("error").Inc()
		return nil, err
	}
	if changed {
		PreferenceUpdates.WithLabelValues("changed").Inc()
	} else {
		PreferenceUpdates.WithLabelValues("unchanged").Inc()
	}
	user.Preferences = prefs
	return &RateResult{Outfit: outfit, Preferences: prefs, PreferencesChanged: changed}, nil
}

func (s *RecommendationService) Insights(ctx context.Context, user *models.UserAccount) (models.OutfitInsights, error) {
	if user == nil {
		return models.OutfitInsights{}, stylist.ErrNoUser
	}
	outfits, err := s.outfits.ListRated(ctx, user.ID)
	if err != nil {
		return models.OutfitInsights{}, err
	}
	return s.engine.Learner.ComputeInsights(outfits), nil
}

func (s *RecommendationService) SuggestColors(hex string) ([]stylist.SuggestedColor, error) {
	base, err := stylist.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return s.engine.Harmony.SuggestComplementaryColors(base), nil
}
