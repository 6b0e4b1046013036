package stylist

import (
	"math"
	"slices"
	"sort"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

type TemperatureBand string

const (
	BandFreezing TemperatureBand = "freezing"
	BandCold     TemperatureBand = "cold"
	BandCool     TemperatureBand = "cool"
	BandMild     TemperatureBand = "mild"
	BandWarm     TemperatureBand = "warm"
	BandHot      TemperatureBand = "hot"
)

const (
	hotThreshold       = 25.0
	coldThreshold      = 10.0
	humidThreshold     = 70.0
	windyThreshold     = 30.0
	precipitationLimit = 50.0
	snowMaxTemperature = 2.0
	seasonFlexMinimum  = 0.3
	outerwearBelow     = 20.0
	repeatWearLimit    = 10
	accessoryLimit     = 3
)

// band tiers used by the composite ranking
const (
	tierPerfect = 1.0
	tierGood    = 0.7
	tierOkay    = 0.4
)

// BandFor maps celsius to a temperature band.
func BandFor(temp float64) TemperatureBand {
	switch {
	case temp < 0:
		return BandFreezing
	case temp < 10:
		return BandCold
	case temp < 18:
		return BandCool
	case temp < 25:
		return BandMild
	case temp < 30:
		return BandWarm
	default:
		return BandHot
	}
}

// categorySuitability is the per category multiplier applied by scoring. Missing
// entries are fully suitable.
var categorySuitability = map[models.Category]map[models.WeatherTag]float64{
	models.CategoryTops: {
		models.WeatherRainy: 0.8, models.WeatherSnowy: 0.6, models.WeatherWindy: 0.9, models.WeatherStormy: 0.7,
		models.WeatherHot: 0.9, models.WeatherCold: 0.7, models.WeatherHumid: 0.85,
	},
	models.CategoryBottoms: {
		models.WeatherRainy: 0.8, models.WeatherSnowy: 0.5, models.WeatherWindy: 0.9, models.WeatherStormy: 0.7,
		models.WeatherHot: 0.9, models.WeatherCold: 0.6, models.WeatherHumid: 0.85,
	},
	models.CategoryShoes: {
		models.WeatherRainy: 0.7, models.WeatherSnowy: 0.3, models.WeatherStormy: 0.5,
		models.WeatherHot: 0.85, models.WeatherCold: 0.6, models.WeatherHumid: 0.9,
	},
	models.CategoryDresses: {
		models.WeatherRainy: 0.6, models.WeatherSnowy: 0.3, models.WeatherWindy: 0.6, models.WeatherStormy: 0.4,
		models.WeatherHot: 0.95, models.WeatherCold: 0.4, models.WeatherHumid: 0.9,
	},
	models.CategoryOuterwear: {
		models.WeatherRainy: 1.0, models.WeatherSnowy: 1.0, models.WeatherWindy: 1.0, models.WeatherStormy: 1.0,
		models.WeatherSunny: 0.6, models.WeatherHot: 0.2, models.WeatherCold: 1.0, models.WeatherHumid: 0.5,
	},
	models.CategorySwimwear: {
		models.WeatherRainy: 0.2, models.WeatherSnowy: 0.0, models.WeatherWindy: 0.5, models.WeatherStormy: 0.0,
		models.WeatherSunny: 1.0, models.WeatherHot: 1.0, models.WeatherCold: 0.0, models.WeatherCloudy: 0.5,
	},
	models.CategoryActivewear: {
		models.WeatherRainy: 0.7, models.WeatherSnowy: 0.5, models.WeatherStormy: 0.5,
		models.WeatherHot: 0.95, models.WeatherCold: 0.6, models.WeatherHumid: 0.95,
	},
}

// Recommendation is a weather filtered wardrobe grouped by generator role.
type Recommendation struct {
	Dresses     []models.WardrobeItem
	Tops        []models.WardrobeItem
	Bottoms     []models.WardrobeItem
	Shoes       []models.WardrobeItem
	Outerwear   []models.WardrobeItem
	Accessories []models.WardrobeItem
}

func (r Recommendation) Empty() bool {
	return len(r.Dresses)+len(r.Tops)+len(r.Bottoms)+len(r.Shoes)+len(r.Outerwear)+len(r.Accessories) == 0
}

func (r *Recommendation) add(item models.WardrobeItem) {
	switch item.Category {
	case models.CategoryDresses:
		r.Dresses = append(r.Dresses, item)
	case models.CategoryTops:
		r.Tops = append(r.Tops, item)
	case models.CategoryBottoms:
		r.Bottoms = append(r.Bottoms, item)
	case models.CategoryShoes:
		r.Shoes = append(r.Shoes, item)
	case models.CategoryOuterwear:
		r.Outerwear = append(r.Outerwear, item)
	case models.CategoryAccessories:
		r.Accessories = append(r.Accessories, item)
	case models.CategoryActivewear:
		if models.PositionFor(item) == models.PositionBottom {
			r.Bottoms = append(r.Bottoms, item)
		} else {
			r.Tops = append(r.Tops, item)
		}
	}
}

// Categorize groups active items without any weather filtering.
func Categorize(items []models.WardrobeItem) Recommendation {
	var rec Recommendation
	for _, item := range items {
		if !item.Archived {
			rec.add(item)
		}
	}
	return rec
}

type WeatherModel struct {
	harmony *ColorHarmony
}

func NewWeatherModel(harmony *ColorHarmony) *WeatherModel {
	return &WeatherModel{harmony: harmony}
}

// ActiveConditions combines the provider condition with tags derived from readings.
func (m *WeatherModel) ActiveConditions(weather models.CurrentWeather) []models.WeatherTag {
	var tags []models.WeatherTag
	add := func(t models.WeatherTag) {
		if t != "" && !slices.Contains(tags, t) {
			tags = append(tags, t)
		}
	}
	add(weather.Condition)
	if weather.Temperature >= hotThreshold {
		add(models.WeatherHot)
	}
	if weather.Temperature < coldThreshold {
		add(models.WeatherCold)
	}
	if weather.Humidity > humidThreshold {
		add(models.WeatherHumid)
	}
	if weather.WindSpeed > windyThreshold {
		add(models.WeatherWindy)
	}
	return tags
}

// ForecastConditions also infers rain or snow from the precipitation chance.
func (m *WeatherModel) ForecastConditions(day models.DailyForecast) []models.WeatherTag {
	tags := m.ActiveConditions(day.AsCurrent())
	if day.PrecipitationChance > precipitationLimit {
		inferred := models.WeatherRainy
		if day.MaxTemperature <= snowMaxTemperature {
			inferred = models.WeatherSnowy
		}
		if !slices.Contains(tags, inferred) {
			tags = append(tags, inferred)
		}
	}
	return tags
}

// SeasonalFlexibility scores how usable an item is outside its declared seasons.
// Items without seasons or declared for the season score 1.
func (m *WeatherModel) SeasonalFlexibility(item models.WardrobeItem, season models.Season, temp float64) float64 {
	if len(item.Seasons) == 0 || item.HasSeason(season) {
		return 1.0
	}
	best := 0.0
	for _, declared := range item.Seasons {
		best = math.Max(best, crossSeasonScore(declared, season, temp))
	}
	return best
}

func crossSeasonScore(declared, current models.Season, temp float64) float64 {
	switch declared {
	case models.SeasonSummer:
		switch current {
		case models.SeasonSpring, models.SeasonFall:
			if temp > 20 {
				return 0.6
			}
			if temp > 15 {
				return 0.3
			}
		case models.SeasonWinter:
			if temp > 20 {
				return 0.3
			}
		}
	case models.SeasonWinter:
		switch current {
		case models.SeasonFall, models.SeasonSpring:
			if temp < 12 {
				return 0.6
			}
			if temp < 16 {
				return 0.3
			}
		}
	case models.SeasonSpring:
		switch current {
		case models.SeasonFall:
			return 0.7
		case models.SeasonSummer:
			if temp < 28 {
				return 0.5
			}
		case models.SeasonWinter:
			if temp > 8 {
				return 0.4
			}
		}
	case models.SeasonFall:
		switch current {
		case models.SeasonSpring:
			return 0.7
		case models.SeasonWinter:
			if temp > 5 {
				return 0.5
			}
			return 0.2
		case models.SeasonSummer:
			if temp < 24 {
				return 0.4
			}
		}
	}
	return 0
}

func isGarment(c models.Category) bool {
	switch c {
	case models.CategoryTops, models.CategoryBottoms, models.CategoryDresses, models.CategoryActivewear:
		return true
	}
	return false
}

func (m *WeatherModel) fitsBand(item models.WardrobeItem, band TemperatureBand) bool {
	warm := HasTrait(item, TraitWarm)
	light := HasTrait(item, TraitLight)
	switch band {
	case BandFreezing:
		if item.Category == models.CategoryOuterwear && !warm && !HasTrait(item, TraitHeavyOuterwear) {
			return false
		}
		return !light
	case BandCold:
		return !light
	case BandWarm, BandHot:
		if isGarment(item.Category) || item.Category == models.CategoryOuterwear {
			return !warm
		}
	}
	return true
}

func (m *WeatherModel) bandTier(item models.WardrobeItem, band TemperatureBand) float64 {
	warm := HasTrait(item, TraitWarm)
	light := HasTrait(item, TraitLight) && !warm
	switch band {
	case BandFreezing, BandCold:
		if warm {
			return tierPerfect
		}
		return tierGood
	case BandCool:
		switch {
		case light:
			return tierOkay
		case warm:
			return tierGood
		}
		return tierPerfect
	case BandMild:
		switch {
		case warm:
			return tierOkay
		case light:
			return tierGood
		}
		return tierPerfect
	default:
		if light {
			return tierPerfect
		}
		return tierGood
	}
}

// ConditionAllows applies the per condition suitability rule to a single item.
func (m *WeatherModel) ConditionAllows(item models.WardrobeItem, tag models.WeatherTag) bool {
	switch tag {
	case models.WeatherRainy, models.WeatherStormy:
		if item.Category == models.CategoryShoes && HasTrait(item, TraitFormalFootwear) {
			return false
		}
		return !HasTrait(item, TraitDelicate)
	case models.WeatherSnowy:
		switch item.Category {
		case models.CategoryOuterwear, models.CategoryShoes:
			return HasTrait(item, TraitWaterResistant) || HasTrait(item, TraitWarm) || HasTrait(item, TraitBoots)
		}
		if isGarment(item.Category) {
			return HasTrait(item, TraitWarm) || HasTrait(item, TraitWaterResistant)
		}
	case models.WeatherSunny:
		if item.Category == models.CategoryOuterwear {
			return !HasTrait(item, TraitWarm) && !HasTrait(item, TraitHeavyOuterwear)
		}
	case models.WeatherWindy:
		if item.Category != models.CategoryOuterwear {
			return !HasTrait(item, TraitFlowing)
		}
	case models.WeatherHot:
		if HasTrait(item, TraitWarm) {
			return false
		}
		// Garments must be both breathable and light colored.
		if isGarment(item.Category) {
			return HasTrait(item, TraitBreathable) && IsLightColored(item)
		}
	case models.WeatherCold:
		if isGarment(item.Category) && HasTrait(item, TraitLight) {
			return false
		}
		if item.Category == models.CategoryShoes && HasTrait(item, TraitOpenFootwear) {
			return false
		}
	case models.WeatherHumid:
		if item.Category == models.CategoryOuterwear {
			return HasTrait(item, TraitLightOuterwear)
		}
		if isGarment(item.Category) && HasTrait(item, TraitNonBreathable) && !HasTrait(item, TraitBreathable) {
			return false
		}
	}
	return true
}

// IsItemAppropriate checks the season, band and condition rules against current weather.
func (m *WeatherModel) IsItemAppropriate(item models.WardrobeItem, weather models.CurrentWeather, season models.Season) bool {
	return m.isAppropriate(item, weather.Temperature, m.ActiveConditions(weather), season)
}

func (m *WeatherModel) isAppropriate(item models.WardrobeItem, temp float64, conditions []models.WeatherTag, season models.Season) bool {
	if len(item.Seasons) > 0 && !item.HasSeason(season) && m.SeasonalFlexibility(item, season, temp) < seasonFlexMinimum {
		return false
	}
	if !m.fitsBand(item, BandFor(temp)) {
		return false
	}
	for _, tag := range conditions {
		if !m.ConditionAllows(item, tag) {
			return false
		}
	}
	return true
}

// RecommendedItems filters and ranks the wardrobe for the current weather.
func (m *WeatherModel) RecommendedItems(items []models.WardrobeItem, weather models.CurrentWeather, season models.Season) Recommendation {
	return m.recommend(items, weather.Temperature, m.ActiveConditions(weather), season)
}

// RecommendedForForecast is RecommendedItems for a forecast day, using the day
// average temperature and the precipitation inferred conditions.
func (m *WeatherModel) RecommendedForForecast(items []models.WardrobeItem, day models.DailyForecast, season models.Season) Recommendation {
	return m.recommend(items, day.Average(), m.ForecastConditions(day), season)
}

func (m *WeatherModel) recommend(items []models.WardrobeItem, temp float64, conditions []models.WeatherTag, season models.Season) Recommendation {
	var pool Recommendation
	for _, item := range items {
		if item.Archived || !m.isAppropriate(item, temp, conditions, season) {
			continue
		}
		pool.add(item)
	}
	band := BandFor(temp)
	composite := func(item models.WardrobeItem) float64 {
		return m.compositeScore(item, band, conditions)
	}
	return Recommendation{
		Dresses:     sortByScore(pool.Dresses, composite),
		Tops:        sortByScore(pool.Tops, composite),
		Bottoms:     sortByScore(pool.Bottoms, composite),
		Outerwear:   m.outerwearFor(pool.Outerwear, temp, conditions),
		Shoes:       sortByScore(pool.Shoes, func(item models.WardrobeItem) float64 { return m.footwearScore(item, conditions) }),
		Accessories: m.accessoriesFor(pool.Accessories, conditions),
	}
}

func (m *WeatherModel) compositeScore(item models.WardrobeItem, band TemperatureBand, conditions []models.WeatherTag) float64 {
	conditionAvg := 1.0
	if len(conditions) > 0 {
		var sum float64
		for _, tag := range conditions {
			if m.ConditionAllows(item, tag) {
				sum++
			} else {
				sum--
			}
		}
		conditionAvg = sum / float64(len(conditions))
	}
	var versatility float64
	if primary := item.PrimaryColor(); primary != nil && m.harmony.IsNeutral(primary.Name) {
		versatility += 0.5
	}
	if len(item.Patterns) == 0 || slices.Equal(item.Patterns, []models.Pattern{models.PatternSolid}) {
		versatility += 0.3
	}
	if item.Category == models.CategoryTops || item.Category == models.CategoryBottoms {
		versatility += 0.2
	}
	var favorite float64
	if item.Favorite {
		favorite = 1.0
	}
	score := 0.4*m.bandTier(item, band) + 0.3*conditionAvg + 0.2*versatility + 0.1*favorite
	if item.TimesWorn > repeatWearLimit {
		score -= 0.5
	}
	return score
}

func (m *WeatherModel) outerwearFor(items []models.WardrobeItem, temp float64, conditions []models.WeatherTag) []models.WardrobeItem {
	exposed := slices.Contains(conditions, models.WeatherRainy) || slices.Contains(conditions, models.WeatherWindy) ||
		slices.Contains(conditions, models.WeatherStormy)
	if temp >= outerwearBelow && !exposed {
		return nil
	}
	var out []models.WardrobeItem
	for _, item := range items {
		heavy := HasTrait(item, TraitHeavyOuterwear)
		var keep bool
		switch {
		case temp < 5:
			keep = heavy
		case temp < 15:
			keep = heavy || HasTrait(item, TraitMediumOuterwear)
		default:
			keep = HasTrait(item, TraitWaterResistant) || HasTrait(item, TraitWindResistant) || HasTrait(item, TraitLightOuterwear)
		}
		if keep {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].TimesWorn < out[b].TimesWorn })
	return out
}

func (m *WeatherModel) footwearScore(item models.WardrobeItem, conditions []models.WeatherTag) float64 {
	var score float64
	for _, tag := range conditions {
		switch tag {
		case models.WeatherRainy, models.WeatherStormy:
			if HasTrait(item, TraitWaterResistant) || HasTrait(item, TraitBoots) {
				score++
			}
		case models.WeatherSnowy, models.WeatherCold:
			if HasTrait(item, TraitWarm) || HasTrait(item, TraitBoots) {
				score++
			}
		case models.WeatherHot, models.WeatherHumid:
			if HasTrait(item, TraitBreathable) || HasTrait(item, TraitOpenFootwear) {
				score++
			}
		}
	}
	if item.Favorite {
		score += 0.5
	}
	return score
}

func (m *WeatherModel) accessoriesFor(items []models.WardrobeItem, conditions []models.WeatherTag) []models.WardrobeItem {
	var out []models.WardrobeItem
	for _, item := range items {
		if relevantAccessory(item, conditions) {
			out = append(out, item)
		}
		if len(out) == accessoryLimit {
			break
		}
	}
	return out
}

func sortByScore(items []models.WardrobeItem, score func(models.WardrobeItem) float64) []models.WardrobeItem {
	if len(items) == 0 {
		return nil
	}
	type scoredItem struct {
		item  models.WardrobeItem
		score float64
	}
	ranked := make([]scoredItem, len(items))
	for i, item := range items {
		ranked[i] = scoredItem{item: item, score: score(item)}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })
	out := make([]models.WardrobeItem, len(ranked))
	for i, r := range ranked {
		out[i] = r.item
	}
	return out
}

// CategorySuitability is the scoring multiplier for a category under a condition.
func CategorySuitability(category models.Category, tag models.WeatherTag) float64 {
	if table, ok := categorySuitability[category]; ok {
		if v, ok := table[tag]; ok {
			return v
		}
	}
	return 1.0
}

// SeasonalAppropriateness is 1 for matching or unspecified seasons, 0.6 for an
// adjacent season and 0.2 otherwise.
func SeasonalAppropriateness(item models.WardrobeItem, season models.Season) float64 {
	if len(item.Seasons) == 0 || item.HasSeason(season) {
		return 1.0
	}
	for _, s := range item.Seasons {
		if s.Adjacent(season) {
			return 0.6
		}
	}
	return 0.2
}
