package models

import (
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator"
)

type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryOuterwear   Category = "outerwear"
	CategoryDresses     Category = "dresses"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
	CategoryUnderwear   Category = "underwear"
	CategoryActivewear  Category = "activewear"
	CategorySleepwear   Category = "sleepwear"
	CategorySwimwear    Category = "swimwear"
)

var AllCategories = []Category{
	CategoryTops, CategoryBottoms, CategoryOuterwear, CategoryDresses, CategoryShoes,
	CategoryAccessories, CategoryUnderwear, CategoryActivewear, CategorySleepwear, CategorySwimwear,
}

func (c Category) Valid() bool {
	return slices.Contains(AllCategories, c)
}

func ValidateCategory(fl validator.FieldLevel) bool {
	return Category(fl.Field().String()).Valid()
}

type Pattern string

const (
	PatternSolid       Pattern = "solid"
	PatternStripes     Pattern = "stripes"
	PatternPolkaDots   Pattern = "polka_dots"
	PatternFloral      Pattern = "floral"
	PatternGeometric   Pattern = "geometric"
	PatternAbstract    Pattern = "abstract"
	PatternPlaid       Pattern = "plaid"
	PatternCheckered   Pattern = "checkered"
	PatternPaisley     Pattern = "paisley"
	PatternAnimal      Pattern = "animal"
	PatternHoundstooth Pattern = "houndstooth"
	PatternArgyle      Pattern = "argyle"
	PatternOther       Pattern = "other"
)

var AllPatterns = []Pattern{
	PatternSolid, PatternStripes, PatternPolkaDots, PatternFloral, PatternGeometric,
	PatternAbstract, PatternPlaid, PatternCheckered, PatternPaisley, PatternAnimal,
	PatternHoundstooth, PatternArgyle, PatternOther,
}

func (p Pattern) Valid() bool {
	return slices.Contains(AllPatterns, p)
}

func ValidatePattern(fl validator.FieldLevel) bool {
	return Pattern(fl.Field().String()).Valid()
}

// Formality is ordered casual < smart_casual < business < formal. Mixed is a
// wildcard and has no position on the scale.
type Formality string

const (
	FormalityCasual      Formality = "casual"
	FormalitySmartCasual Formality = "smart_casual"
	FormalityBusiness    Formality = "business"
	FormalityFormal      Formality = "formal"
	FormalityMixed       Formality = "mixed"
)

var formalityScale = []Formality{FormalityCasual, FormalitySmartCasual, FormalityBusiness, FormalityFormal}

// Index returns the position on the ordered scale, -1 for mixed or unknown values.
func (f Formality) Index() int {
	return slices.Index(formalityScale, f)
}

func (f Formality) Valid() bool {
	return f == FormalityMixed || f.Index() >= 0
}

// Step walks delta notches along the scale and stops at either end.
// Mixed and unknown values are returned unchanged.
func (f Formality) Step(delta int) Formality {
	idx := f.Index()
	if idx < 0 {
		return f
	}
	idx = max(0, min(len(formalityScale)-1, idx+delta))
	return formalityScale[idx]
}

func (f Formality) DisplayName() string {
	switch f {
	case FormalitySmartCasual:
		return "smart casual"
	case "":
		return "everyday"
	default:
		return string(f)
	}
}

func ValidateFormality(fl validator.FieldLevel) bool {
	return Formality(fl.Field().String()).Valid()
}

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

func (s Season) Valid() bool {
	return slices.Contains(AllSeasons, s)
}

// Adjacent reports whether two seasons follow each other on the calendar.
func (s Season) Adjacent(other Season) bool {
	a, b := slices.Index(AllSeasons, s), slices.Index(AllSeasons, other)
	if a < 0 || b < 0 || a == b {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d == 1 || d == 3
}

// SeasonFor maps a date to its northern hemisphere meteorological season.
func SeasonFor(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

func ValidateSeason(fl validator.FieldLevel) bool {
	return Season(fl.Field().String()).Valid()
}

// Position is the body slot an outfit item occupies.
type Position string

const (
	PositionHeadwear    Position = "headwear"
	PositionOuterwear   Position = "outerwear"
	PositionTop         Position = "top"
	PositionMiddle      Position = "middle"
	PositionBottom      Position = "bottom"
	PositionFootwear    Position = "footwear"
	PositionAccessories Position = "accessories"
	PositionUnderwear   Position = "underwear"
)

var positionOrder = []Position{
	PositionHeadwear, PositionOuterwear, PositionTop, PositionMiddle,
	PositionBottom, PositionFootwear, PositionAccessories, PositionUnderwear,
}

// SortOrder is used for display and composition checks. Unknown positions sort last.
func (p Position) SortOrder() int {
	idx := slices.Index(positionOrder, p)
	if idx < 0 {
		return len(positionOrder)
	}
	return idx
}

// Exclusive positions can hold at most one required item.
func (p Position) Exclusive() bool {
	switch p {
	case PositionTop, PositionBottom, PositionFootwear, PositionHeadwear:
		return true
	}
	return false
}

var headwearWords = []string{"hat", "cap", "beanie", "beret", "visor", "fedora", "headband"}
var bottomWords = []string{"pants", "shorts", "leggings", "joggers", "skirt", "trousers", "tights"}
var middleWords = []string{"cardigan", "vest", "waistcoat", "gilet"}

// PositionFor derives the body slot for a wardrobe item from its category and subcategory.
func PositionFor(item WardrobeItem) Position {
	sub := strings.ToLower(item.Subcategory + " " + item.Name)
	containsAny := func(words []string) bool {
		for _, w := range words {
			if strings.Contains(sub, w) {
				return true
			}
		}
		return false
	}
	switch item.Category {
	case CategoryTops:
		if containsAny(middleWords) {
			return PositionMiddle
		}
		return PositionTop
	case CategoryDresses, CategorySwimwear:
		return PositionTop
	case CategoryBottoms:
		return PositionBottom
	case CategoryOuterwear:
		return PositionOuterwear
	case CategoryShoes:
		return PositionFootwear
	case CategoryAccessories:
		if containsAny(headwearWords) {
			return PositionHeadwear
		}
		return PositionAccessories
	case CategoryUnderwear:
		return PositionUnderwear
	case CategoryActivewear, CategorySleepwear:
		if containsAny(bottomWords) {
			return PositionBottom
		}
		return PositionTop
	}
	return PositionAccessories
}

type Creator string

const (
	CreatorUser          Creator = "user"
	CreatorAI            Creator = "ai"
	CreatorCollaborative Creator = "collaborative"
)

// WeatherTag is either a provider condition or a tag derived from raw readings
// (hot, cold, humid).
type WeatherTag string

const (
	WeatherSunny  WeatherTag = "sunny"
	WeatherCloudy WeatherTag = "cloudy"
	WeatherRainy  WeatherTag = "rainy"
	WeatherSnowy  WeatherTag = "snowy"
	WeatherWindy  WeatherTag = "windy"
	WeatherStormy WeatherTag = "stormy"
	WeatherFoggy  WeatherTag = "foggy"
	WeatherHot    WeatherTag = "hot"
	WeatherCold   WeatherTag = "cold"
	WeatherHumid  WeatherTag = "humid"
)

func ValidateWeatherTag(fl validator.FieldLevel) bool {
	switch WeatherTag(fl.Field().String()) {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherSnowy, WeatherWindy,
		WeatherStormy, WeatherFoggy, WeatherHot, WeatherCold, WeatherHumid:
		return true
	}
	return false
}
