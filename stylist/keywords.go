package stylist

import (
	"strings"
	"unicode"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

// Trait is a classification derived from an item's materials, name and subcategory.
type Trait string

const (
	TraitWarm            Trait = "warm"
	TraitLight           Trait = "light"
	TraitBreathable      Trait = "breathable"
	TraitNonBreathable   Trait = "non_breathable"
	TraitWaterResistant  Trait = "water_resistant"
	TraitWindResistant   Trait = "wind_resistant"
	TraitDelicate        Trait = "delicate"
	TraitFlowing         Trait = "flowing"
	TraitFormalFootwear  Trait = "formal_footwear"
	TraitOpenFootwear    Trait = "open_footwear"
	TraitBoots           Trait = "boots"
	TraitHeavyOuterwear  Trait = "heavy_outerwear"
	TraitMediumOuterwear Trait = "medium_outerwear"
	TraitLightOuterwear  Trait = "light_outerwear"
)

// source selects which item fields a trait is matched against.
type source int

const (
	sourceAll source = iota
	sourceMaterials
)

type traitRule struct {
	source   source
	keywords []phrase
}

var traitRules = map[Trait]traitRule{
	TraitWarm: {sourceAll, phrases([]string{
		"wool", "cashmere", "fleece", "down jacket", "down coat", "down-filled", "flannel", "sherpa",
		"thermal", "knit", "sweater", "hoodie", "puffer", "parka", "corduroy", "velvet", "tweed",
		"fur", "quilted", "turtleneck", "knitted", "knitwear",
	})},
	TraitLight: {sourceAll, phrases([]string{
		"linen", "chiffon", "seersucker", "mesh", "t-shirt", "tshirt", "tee", "tank", "shorts",
		"sleeveless", "short sleeve", "crop", "sundress", "camisole", "sandal",
	})},
	TraitBreathable: {sourceMaterials, phrases([]string{
		"cotton", "linen", "mesh", "bamboo", "rayon", "seersucker", "chambray",
	})},
	TraitNonBreathable: {sourceMaterials, phrases([]string{
		"polyester", "leather", "vinyl", "pvc", "fleece", "wool",
	})},
	TraitWaterResistant: {sourceAll, phrases([]string{
		"waterproof", "water-resistant", "gore-tex", "goretex", "rain",
		"raincoat", "rainboot", "rubber", "nylon", "pvc", "vinyl", "wellington",
	})},
	TraitWindResistant: {sourceAll, phrases([]string{
		"windbreaker", "windproof", "wind-resistant", "softshell", "shell", "gore-tex", "leather", "nylon",
	})},
	TraitDelicate: {sourceAll, phrases([]string{
		"silk", "suede", "satin", "chiffon", "velvet", "cashmere", "lace",
	})},
	TraitFlowing: {sourceAll, phrases([]string{
		"flowy", "maxi", "chiffon", "a-line", "pleated", "wrap",
	})},
	TraitFormalFootwear: {sourceAll, phrases([]string{
		"oxford", "loafer", "heel", "pump", "stiletto", "derby", "brogue", "dress shoe", "monk strap", "patent",
	})},
	TraitOpenFootwear: {sourceAll, phrases([]string{
		"sandal", "flip-flop", "slide", "espadrille", "open-toe", "mule",
	})},
	TraitBoots: {sourceAll, phrases([]string{"boot", "rainboot"})},
	TraitHeavyOuterwear: {sourceAll, phrases([]string{
		"parka", "puffer", "down jacket", "down coat", "wool coat", "overcoat", "peacoat", "shearling",
		"insulated", "sherpa", "fur",
	})},
	TraitMediumOuterwear: {sourceAll, phrases([]string{
		"jacket", "blazer", "trench", "bomber", "fleece", "leather", "coat",
	})},
	TraitLightOuterwear: {sourceAll, phrases([]string{
		"windbreaker", "rain jacket", "raincoat", "shell", "light", "lightweight", "linen", "cotton", "vest", "kimono", "cardigan",
	})},
}

var neutralColorNames = []string{
	"black", "white", "gray", "grey", "navy", "beige", "cream", "khaki", "brown", "tan",
}

var lightColors = phrases([]string{
	"white", "cream", "ivory", "beige", "khaki", "tan", "light", "pastel", "yellow", "sky",
	"mint", "lavender", "peach", "sand", "baby", "pale",
})

var compatiblePatternPairs = []PatternPair{
	{models.PatternStripes, models.PatternPolkaDots},
	{models.PatternStripes, models.PatternFloral},
	{models.PatternGeometric, models.PatternAbstract},
	{models.PatternPlaid, models.PatternSolid},
	{models.PatternCheckered, models.PatternSolid},
	{models.PatternPaisley, models.PatternSolid},
	{models.PatternAnimal, models.PatternSolid},
	{models.PatternHoundstooth, models.PatternSolid},
	{models.PatternArgyle, models.PatternSolid},
}

// accessoryRelevance lists the accessory keywords useful under a condition.
var accessoryRelevance = map[models.WeatherTag][]phrase{
	models.WeatherSunny:  phrases([]string{"sunglasses", "hat", "cap", "visor"}),
	models.WeatherHot:    phrases([]string{"sunglasses", "hat", "cap", "visor"}),
	models.WeatherCold:   phrases([]string{"scarf", "gloves", "beanie", "mittens", "earmuffs"}),
	models.WeatherSnowy:  phrases([]string{"scarf", "gloves", "beanie", "mittens", "earmuffs"}),
	models.WeatherRainy:  phrases([]string{"umbrella", "waterproof", "rain"}),
	models.WeatherStormy: phrases([]string{"umbrella", "waterproof", "rain"}),
	models.WeatherWindy:  phrases([]string{"beanie", "fitted", "headband"}),
}

// phrase is a keyword split into lowercase words.
type phrase []string

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func phrases(keywords []string) []phrase {
	out := make([]phrase, 0, len(keywords))
	for _, k := range keywords {
		if w := words(k); len(w) > 0 {
			out = append(out, w)
		}
	}
	return out
}

// wordMatches accepts the plural of the final keyword word, so "boot" matches "boots".
func wordMatches(word, keyword string, last bool) bool {
	if word == keyword {
		return true
	}
	if !last {
		return false
	}
	return word == plural(keyword)
}

func plural(word string) string {
	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(word, suffix) {
			return word + "es"
		}
	}
	return word + "s"
}

func (p phrase) in(text []string) bool {
	for i := 0; i+len(p) <= len(text); i++ {
		matched := true
		for j, k := range p {
			if !wordMatches(text[i+j], k, j == len(p)-1) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// containsAny reports whether a keyword occurs as whole words of text.
// "rain" matches "rain jacket" but not "training".
func containsAny(text []string, keywords []phrase) bool {
	for _, k := range keywords {
		if k.in(text) {
			return true
		}
	}
	return false
}

func itemText(item models.WardrobeItem, src source) []string {
	var text []string
	for _, m := range item.Materials {
		text = append(text, words(m)...)
	}
	if src == sourceAll {
		text = append(text, words(item.Subcategory)...)
		text = append(text, words(item.Name)...)
	}
	return text
}

// HasTrait reports whether any keyword of the trait matches the item.
func HasTrait(item models.WardrobeItem, trait Trait) bool {
	rule, ok := traitRules[trait]
	if !ok {
		return false
	}
	return containsAny(itemText(item, rule.source), rule.keywords)
}

// IsLightColored is true for items without colors or whose primary color is light.
func IsLightColored(item models.WardrobeItem) bool {
	primary := item.PrimaryColor()
	if primary == nil {
		return true
	}
	return containsAny(words(models.NormalizeColor(primary.Name)), lightColors)
}

func relevantAccessory(item models.WardrobeItem, conditions []models.WeatherTag) bool {
	var keywords []phrase
	for _, c := range conditions {
		keywords = append(keywords, accessoryRelevance[c]...)
	}
	if len(keywords) == 0 {
		return true
	}
	return containsAny(itemText(item, sourceAll), keywords)
}
