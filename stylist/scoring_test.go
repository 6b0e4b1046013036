package stylist

import (
	"testing"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorer() *Scorer {
	return NewScorer(NewColorHarmony(), NewFormalityModel())
}

func TestGradeTable(t *testing.T) {
	cases := map[float64]string{
		100: "A+", 90: "A+", 89.9: "A", 85: "A", 80: "A-", 79.99: "B+", 75: "B+",
		70: "B", 65: "B-", 60: "C+", 55: "C", 50: "C-", 49.99: "D", 0: "D",
	}
	for total, grade := range cases {
		assert.Equal(t, grade, Grade(total), total)
	}
}

func TestGradeMonotonic(t *testing.T) {
	prev := GradeRank(Grade(0))
	for total := 0.5; total <= 100; total += 0.5 {
		rank := GradeRank(Grade(total))
		assert.LessOrEqual(t, rank, prev, "grade got worse at %.1f", total)
		prev = rank
	}
	assert.Equal(t, 0, GradeRank("A+"))
	assert.Greater(t, GradeRank("nope"), GradeRank("D"))
}

func TestScoreBounds(t *testing.T) {
	s := newScorer()
	prefs := models.DefaultUserPreferences()
	prefs.PreferredColors = []string{"red", "blue", "green", "teal"}
	prefs.AvoidedColors = []string{"orange", "yellow"}
	prefs.PreferredBrands = []string{"Acme"}
	prefs.Style = &models.StylePreference{PrimaryStyle: "classic", Formality: models.FormalityFormal}

	wardrobes := [][]models.WardrobeItem{
		nil,
		basicWardrobe(),
		{
			newItem(1, "A", models.CategoryTops, withColor("Orange", "#FF8000"), withColor("Yellow", "#FFFF00"), withBrand("acme")),
			newItem(2, "B", models.CategorySwimwear, withColor("Broken", "#nothex"), withSeasons(models.SeasonSummer)),
			newItem(3, "C", models.CategoryShoes, withFormality(models.FormalityFormal),
				func(i *models.WardrobeItem) {
					i.Patterns = []models.Pattern{models.PatternFloral, models.PatternPlaid, models.PatternAnimal, models.PatternArgyle}
				}),
		},
	}
	conditionSets := [][]models.WeatherTag{
		nil,
		{models.WeatherSnowy, models.WeatherCold, models.WeatherWindy},
		{models.WeatherSunny, models.WeatherHot, models.WeatherHumid},
	}
	for _, items := range wardrobes {
		for _, conditions := range conditionSets {
			for _, p := range []*models.UserPreferences{nil, &prefs} {
				score := s.Score(items, ScoreContext{
					Formality: models.FormalityCasual, Conditions: conditions, Preferences: p, Season: models.SeasonWinter,
				})
				for _, sub := range []float64{score.ColorHarmony, score.FormalityMatch, score.WeatherAppropriate, score.UserPreference} {
					assert.GreaterOrEqual(t, sub, 0.0)
					assert.LessOrEqual(t, sub, 1.0)
				}
				assert.GreaterOrEqual(t, score.Total, 0.0)
				assert.LessOrEqual(t, score.Total, 100.0)
				assert.Equal(t, Grade(score.Total), score.Grade)
			}
		}
	}
}

func TestScoreColorDefaultsWithoutColors(t *testing.T) {
	s := newScorer()
	score := s.Score([]models.WardrobeItem{newItem(1, "Top", models.CategoryTops)}, ScoreContext{Formality: models.FormalityCasual})
	assert.Equal(t, 0.5, score.ColorHarmony)
}

func TestUserPreferenceScore(t *testing.T) {
	s := newScorer()
	items := []models.WardrobeItem{
		newItem(1, "Top", models.CategoryTops, withColor("Red", "#FF0000"), withBrand("Acme")),
		newItem(2, "Pants", models.CategoryBottoms, withColor("Black", "")),
	}
	sc := ScoreContext{Formality: models.FormalityCasual}

	assert.Equal(t, 0.5, s.Score(items, sc).UserPreference)

	prefs := models.DefaultUserPreferences()
	sc.Preferences = &prefs
	assert.InDelta(t, 0.6, s.Score(items, sc).UserPreference, 0.0001, "black is neutral")

	prefs.PreferredColors = []string{"red"}
	assert.InDelta(t, 0.9, s.Score(items, sc).UserPreference, 0.0001)

	prefs.PreferredColors = nil
	prefs.AvoidedColors = []string{"red"}
	assert.InDelta(t, 0.2, s.Score(items, sc).UserPreference, 0.0001)

	prefs.AvoidedColors = nil
	prefs.PreferredBrands = []string{"acme"}
	assert.InDelta(t, (0.6+0.75)/2, s.Score(items, sc).UserPreference, 0.0001)

	prefs.Style = &models.StylePreference{PrimaryStyle: "classic", Formality: models.FormalityBusiness}
	assert.InDelta(t, (0.6+0.75+0.4)/3, s.Score(items, sc).UserPreference, 0.0001)
}

func TestRankSortsDescending(t *testing.T) {
	s := newScorer()
	wardrobe := basicWardrobe()
	good := outfitOf(models.FormalityCasual, wardrobe...)
	gown := newItem(10, "Gown", models.CategoryDresses, withFormality(models.FormalityFormal), withColor("Yellow", "#FFFF00"))
	heels := newItem(11, "Heels", models.CategoryShoes, withFormality(models.FormalityFormal), withColor("Blue", "#0000FF"))
	bad := outfitOf(models.FormalityFormal, gown, heels)

	ranked := s.Rank([]models.Outfit{bad, good}, ScoreContext{Formality: models.FormalityCasual, Season: models.SeasonSummer})
	require.Len(t, ranked, 2)
	assert.Equal(t, itemIDs(good), itemIDs(ranked[0].Outfit))
	assert.GreaterOrEqual(t, ranked[0].Score.Total, ranked[1].Score.Total)
}
