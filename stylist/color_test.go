package stylist

import (
	"testing"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleColors = []models.ItemColor{
	color("Red", "#FF0000"),
	color("Orange", "#FF4000"),
	color("Yellow", "#FFFF00"),
	color("Green", "#00FF00"),
	color("Teal", "#00FF80"),
	color("Lime", "#80FF00"),
	color("Cyan", "#00FFFF"),
	color("Blue", "#0000FF"),
	color("Black", "#000000"),
	color("Cream", ""),
	color("Mystery", ""),
	color("Broken", "#GGHHII"),
}

func TestPairwiseHarmonyBands(t *testing.T) {
	ch := NewColorHarmony()
	red := color("Red", "#FF0000")
	cases := []struct {
		other models.ItemColor
		want  float64
	}{
		{color("Cyan", "#00FFFF"), 1.0},
		{color("Orange", "#FF4000"), 0.95},
		{color("Green", "#00FF00"), 0.85},
		{color("Teal", "#00FF80"), 0.8},
		{color("Lime", "#80FF00"), 0.75},
		{color("Yellow", "#FFFF00"), 1 - 60.0/180},
		{color("Mystery", ""), 0.5},
		{color("Broken", "#GGHHII"), 0.5},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, ch.PairwiseHarmony(red, tc.other), 0.001, tc.other.Name)
	}
}

func TestPairwiseHarmonySymmetricAndBounded(t *testing.T) {
	ch := NewColorHarmony()
	for _, a := range sampleColors {
		for _, b := range sampleColors {
			ab := ch.PairwiseHarmony(a, b)
			assert.Equal(t, ab, ch.PairwiseHarmony(b, a), "%s/%s", a.Name, b.Name)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}

func TestNeutralDominance(t *testing.T) {
	ch := NewColorHarmony()
	for _, other := range sampleColors {
		assert.Equal(t, 0.9, ch.PairwiseHarmony(color("Black", ""), other), other.Name)
		assert.Equal(t, 0.9, ch.PairwiseHarmony(color("GREY", "#808080"), other), other.Name)
	}
}

func TestSetHarmony(t *testing.T) {
	ch := NewColorHarmony()
	assert.Equal(t, 1.0, ch.SetHarmony(nil))
	assert.Equal(t, 1.0, ch.SetHarmony([]models.ItemColor{color("Red", "#FF0000")}))
	got := ch.SetHarmony([]models.ItemColor{color("Red", "#FF0000"), color("Black", ""), color("White", "")})
	assert.InDelta(t, 0.9, got, 0.0001)
}

func TestPatternCompatibility(t *testing.T) {
	ch := NewColorHarmony()
	for _, p := range models.AllPatterns {
		assert.Equal(t, 1.0, ch.PatternCompatibility([]models.Pattern{p}), p)
	}
	assert.Equal(t, 1.0, ch.PatternCompatibility([]models.Pattern{models.PatternSolid, models.PatternSolid, models.PatternSolid}))
	assert.Equal(t, 1.0, ch.PatternCompatibility(nil))
	assert.Equal(t, 1.0, ch.PatternCompatibility([]models.Pattern{models.PatternFloral, models.PatternStripes}))
	assert.Equal(t, 1.0, ch.PatternCompatibility([]models.Pattern{models.PatternPlaid, models.PatternSolid}))
	assert.Equal(t, 0.2, ch.PatternCompatibility([]models.Pattern{models.PatternStripes, models.PatternPlaid}))
	assert.InDelta(t, 1.4/3, ch.PatternCompatibility([]models.Pattern{
		models.PatternStripes, models.PatternFloral, models.PatternPlaid,
	}), 0.0001)
	assert.Equal(t, 0.1, ch.PatternCompatibility([]models.Pattern{
		models.PatternStripes, models.PatternFloral, models.PatternPlaid, models.PatternAnimal,
	}))
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF", "#000000", "#00FFFF"} {
		hsl, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, hsl.Hex())
	}
	short, err := ParseHex("f00")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", short.Hex())

	_, err = ParseHex("#12345")
	assert.Error(t, err)
}

func TestHueName(t *testing.T) {
	assert.Equal(t, "red", HueName(350))
	assert.Equal(t, "red", HueName(5))
	assert.Equal(t, "orange", HueName(30))
	assert.Equal(t, "green", HueName(120))
	assert.Equal(t, "blue", HueName(200))
	assert.Equal(t, "purple", HueName(270))
	assert.Equal(t, "pink", HueName(300))
	assert.Equal(t, "red", HueName(-10))
}

func TestSuggestComplementaryColors(t *testing.T) {
	ch := NewColorHarmony()
	suggestions := ch.SuggestComplementaryColors(HSL{H: 0, S: 1, L: 0.5})

	require.Len(t, suggestions, maxColorSuggestions)
	assert.Equal(t, SuggestedColor{Name: "cyan", Hex: "#00FFFF", Relationship: "complementary"}, suggestions[0])
	assert.Equal(t, "orange", suggestions[1].Name)
	assert.Equal(t, "pink", suggestions[2].Name)
	assert.Equal(t, "#00FF00", suggestions[3].Hex)
	assert.Equal(t, "#0000FF", suggestions[4].Hex)
	assert.Equal(t, "Black", suggestions[5].Name)

	names := map[string]bool{}
	for _, s := range suggestions {
		assert.False(t, names[s.Name], "duplicate %s", s.Name)
		names[s.Name] = true
	}
}
