package stylist

import (
	"math"
	"sort"
	"strings"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

const (
	weightColor      = 40.0
	weightFormality  = 30.0
	weightWeather    = 20.0
	weightPreference = 10.0
)

type gradeBand struct {
	min   float64
	grade string
}

// ordered best first
var gradeBands = []gradeBand{
	{90, "A+"}, {85, "A"}, {80, "A-"},
	{75, "B+"}, {70, "B"}, {65, "B-"},
	{60, "C+"}, {55, "C"}, {50, "C-"},
	{math.Inf(-1), "D"},
}

func Grade(total float64) string {
	for _, b := range gradeBands {
		if total >= b.min {
			return b.grade
		}
	}
	return "D"
}

// GradeRank orders grades, 0 being the best. Unknown grades rank last.
func GradeRank(grade string) int {
	for idx, b := range gradeBands {
		if b.grade == grade {
			return idx
		}
	}
	return len(gradeBands)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ScoreContext is everything but the items that a score depends on.
type ScoreContext struct {
	Formality   models.Formality
	Conditions  []models.WeatherTag
	Preferences *models.UserPreferences
	Season      models.Season
}

type RankedOutfit struct {
	Outfit models.Outfit      `json:"outfit"`
	Score  models.OutfitScore `json:"score"`
}

type Scorer struct {
	harmony   *ColorHarmony
	formality *FormalityModel
}

func NewScorer(harmony *ColorHarmony, formality *FormalityModel) *Scorer {
	return &Scorer{harmony: harmony, formality: formality}
}

func (s *Scorer) Score(items []models.WardrobeItem, sc ScoreContext) models.OutfitScore {
	score := models.OutfitScore{
		ColorHarmony:       clamp01(s.colorScore(items)),
		FormalityMatch:     clamp01(s.formality.OutfitFormalityScore(items, sc.Formality)),
		WeatherAppropriate: clamp01(s.weatherScore(items, sc.Conditions, sc.Season)),
		UserPreference:     clamp01(s.preferenceScore(items, sc.Preferences)),
	}
	total := score.ColorHarmony*weightColor + score.FormalityMatch*weightFormality +
		score.WeatherAppropriate*weightWeather + score.UserPreference*weightPreference
	score.Total = math.Max(0, math.Min(100, total))
	score.Grade = Grade(score.Total)
	return score
}

func (s *Scorer) colorScore(items []models.WardrobeItem) float64 {
	var colors []models.ItemColor
	var patterns []models.Pattern
	for _, item := range items {
		colors = append(colors, item.Colors...)
		patterns = append(patterns, item.Patterns...)
	}
	if len(colors) == 0 {
		return 0.5
	}
	return 0.7*s.harmony.SetHarmony(colors) + 0.3*s.harmony.PatternCompatibility(patterns)
}

func (s *Scorer) weatherScore(items []models.WardrobeItem, conditions []models.WeatherTag, season models.Season) float64 {
	if len(items) == 0 {
		return 0
	}
	var total float64
	for _, item := range items {
		v := SeasonalAppropriateness(item, season)
		for _, tag := range conditions {
			v *= CategorySuitability(item.Category, tag)
		}
		total += v
	}
	return total / float64(len(items))
}

func (s *Scorer) preferenceScore(items []models.WardrobeItem, prefs *models.UserPreferences) float64 {
	if prefs == nil {
		return 0.5
	}
	var parts []float64

	colorScore := 0.5
	seen := map[string]bool{}
	for _, item := range items {
		for _, name := range item.ColorNames() {
			if seen[name] {
				continue
			}
			seen[name] = true
			if prefs.Prefers(name) {
				colorScore += 0.3
			}
			if prefs.Avoids(name) {
				colorScore -= 0.4
			}
			if prefs.IsNeutral(name) {
				colorScore += 0.1
			}
		}
	}
	parts = append(parts, clamp01(colorScore))

	if prefs.Style != nil && prefs.Style.Formality != "" {
		parts = append(parts, s.formality.OutfitFormalityScore(items, prefs.Style.Formality))
	}

	if len(prefs.PreferredBrands) > 0 && len(items) > 0 {
		var matched int
		for _, item := range items {
			if item.Brand != nil && containsFold(prefs.PreferredBrands, *item.Brand) {
				matched++
			}
		}
		parts = append(parts, 0.5+0.5*float64(matched)/float64(len(items)))
	}

	var sum float64
	for _, p := range parts {
		sum += p
	}
	return sum / float64(len(parts))
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}

// Rank scores every outfit and sorts by total, highest first. Ties keep input order.
func (s *Scorer) Rank(outfits []models.Outfit, sc ScoreContext) []RankedOutfit {
	ranked := make([]RankedOutfit, 0, len(outfits))
	for _, outfit := range outfits {
		ranked = append(ranked, RankedOutfit{Outfit: outfit, Score: s.Score(outfit.WardrobeItems(), sc)})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score.Total > ranked[b].Score.Total
	})
	return ranked
}
