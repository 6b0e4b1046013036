package stylist

import (
	"testing"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/stretchr/testify/assert"
)

func TestHasTraitMatchesWholeWords(t *testing.T) {
	cases := []struct {
		name  string
		item  models.WardrobeItem
		trait Trait
		want  bool
	}{
		{"training sneakers are not rain gear", newItem(1, "Training Sneakers", models.CategoryShoes), TraitWaterResistant, false},
		{"rain jacket", newItem(2, "Rain Jacket", models.CategoryOuterwear), TraitWaterResistant, true},
		{"raincoat", newItem(3, "Yellow Raincoat", models.CategoryOuterwear), TraitWaterResistant, true},
		{"gore-tex spelled with a space", newItem(4, "Trail Shell", models.CategoryOuterwear, withMaterials("Gore Tex")), TraitWaterResistant, true},
		{"seashell print is no shell", newItem(5, "Seashell Print Jacket", models.CategoryOuterwear), TraitWindResistant, false},
		{"softshell", newItem(6, "Softshell", models.CategoryOuterwear), TraitWindResistant, true},
		{"plural boots", newItem(7, "Chelsea Boots", models.CategoryShoes), TraitBoots, true},
		{"bootcut is not a boot", newItem(8, "Bootcut Jeans", models.CategoryBottoms), TraitBoots, false},
		{"plural sandals", newItem(9, "Leather Sandals", models.CategoryShoes), TraitOpenFootwear, true},
		{"t-shirt in subcategory", newItem(10, "Basic", models.CategoryTops, withSub("T-Shirt")), TraitLight, true},
		{"fur in furnished name", newItem(11, "Furnished Blazer", models.CategoryOuterwear), TraitHeavyOuterwear, false},
		{"material only rule ignores name", newItem(12, "Cotton Look Top", models.CategoryTops, withMaterials("polyester")), TraitBreathable, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HasTrait(tc.item, tc.trait), tc.name)
	}
}

func TestIsLightColored(t *testing.T) {
	assert.True(t, IsLightColored(newItem(1, "Top", models.CategoryTops)))
	assert.True(t, IsLightColored(newItem(2, "Top", models.CategoryTops, withColor("Tan", ""))))
	assert.True(t, IsLightColored(newItem(3, "Top", models.CategoryTops, withColor("Light Blue", ""))))
	assert.False(t, IsLightColored(newItem(4, "Top", models.CategoryTops, withColor("Tangerine", ""))))
	assert.False(t, IsLightColored(newItem(5, "Top", models.CategoryTops, withColor("Black", ""))))
}

func TestRelevantAccessory(t *testing.T) {
	umbrella := newItem(1, "Compact Umbrella", models.CategoryAccessories)
	bag := newItem(2, "Training Bag", models.CategoryAccessories)
	rainy := []models.WeatherTag{models.WeatherRainy}

	assert.True(t, relevantAccessory(umbrella, rainy))
	assert.False(t, relevantAccessory(bag, rainy))
	assert.True(t, relevantAccessory(bag, nil))
	assert.True(t, relevantAccessory(newItem(3, "Knit Gloves", models.CategoryAccessories), []models.WeatherTag{models.WeatherCold}))
	assert.False(t, relevantAccessory(newItem(4, "Scarface Poster Tee", models.CategoryAccessories), []models.WeatherTag{models.WeatherCold}))
}
