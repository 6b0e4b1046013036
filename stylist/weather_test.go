package stylist

import (
	"testing"
	"time"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherModel() *WeatherModel {
	return NewWeatherModel(NewColorHarmony())
}

func TestBandFor(t *testing.T) {
	cases := map[float64]TemperatureBand{
		-0.1: BandFreezing,
		0:    BandCold,
		9.9:  BandCold,
		10:   BandCool,
		18:   BandMild,
		25:   BandWarm,
		30:   BandHot,
		41:   BandHot,
	}
	for temp, band := range cases {
		assert.Equal(t, band, BandFor(temp), temp)
	}
}

func TestActiveConditions(t *testing.T) {
	m := newWeatherModel()
	assert.Equal(t,
		[]models.WeatherTag{models.WeatherSunny, models.WeatherHot},
		m.ActiveConditions(models.CurrentWeather{Temperature: 32, Condition: models.WeatherSunny, Humidity: 30}))
	assert.Equal(t,
		[]models.WeatherTag{models.WeatherCloudy, models.WeatherCold, models.WeatherHumid, models.WeatherWindy},
		m.ActiveConditions(models.CurrentWeather{Temperature: 5, Condition: models.WeatherCloudy, Humidity: 80, WindSpeed: 35}))
	assert.Empty(t, m.ActiveConditions(models.CurrentWeather{Temperature: 20, Humidity: 50}))
}

func TestForecastConditions(t *testing.T) {
	m := newWeatherModel()
	snowDay := models.DailyForecast{MinTemperature: -4, MaxTemperature: 1, Condition: models.WeatherCloudy, PrecipitationChance: 60}
	assert.Contains(t, m.ForecastConditions(snowDay), models.WeatherSnowy)
	assert.NotContains(t, m.ForecastConditions(snowDay), models.WeatherRainy)

	rainDay := models.DailyForecast{MinTemperature: 8, MaxTemperature: 14, Condition: models.WeatherCloudy, PrecipitationChance: 75}
	assert.Contains(t, m.ForecastConditions(rainDay), models.WeatherRainy)

	dryDay := models.DailyForecast{MinTemperature: 8, MaxTemperature: 14, Condition: models.WeatherCloudy, PrecipitationChance: 50}
	assert.NotContains(t, m.ForecastConditions(dryDay), models.WeatherRainy)
}

func TestSeasonalFlexibility(t *testing.T) {
	m := newWeatherModel()
	summer := newItem(1, "Tank", models.CategoryTops, withSeasons(models.SeasonSummer))
	winter := newItem(2, "Parka", models.CategoryOuterwear, withSeasons(models.SeasonWinter))
	spring := newItem(3, "Trench", models.CategoryOuterwear, withSeasons(models.SeasonSpring))

	assert.Equal(t, 1.0, m.SeasonalFlexibility(summer, models.SeasonSummer, 30))
	assert.Equal(t, 0.6, m.SeasonalFlexibility(summer, models.SeasonSpring, 22))
	assert.Equal(t, 0.3, m.SeasonalFlexibility(summer, models.SeasonFall, 17))
	assert.Equal(t, 0.0, m.SeasonalFlexibility(summer, models.SeasonFall, 10))
	assert.Equal(t, 0.0, m.SeasonalFlexibility(winter, models.SeasonSummer, 15))
	assert.Equal(t, 0.6, m.SeasonalFlexibility(winter, models.SeasonFall, 8))
	assert.Equal(t, 0.7, m.SeasonalFlexibility(spring, models.SeasonFall, 14))
	assert.Equal(t, 1.0, m.SeasonalFlexibility(newItem(4, "Tee", models.CategoryTops), models.SeasonWinter, -5))
}

func TestIsItemAppropriate(t *testing.T) {
	m := newWeatherModel()
	hot := models.CurrentWeather{Temperature: 28, Condition: models.WeatherSunny}
	rainy := models.CurrentWeather{Temperature: 15, Condition: models.WeatherRainy}
	windy := models.CurrentWeather{Temperature: 20, Condition: models.WeatherWindy}
	cold := models.CurrentWeather{Temperature: 5, Condition: models.WeatherCloudy}

	cases := []struct {
		name    string
		item    models.WardrobeItem
		weather models.CurrentWeather
		season  models.Season
		want    bool
	}{
		{"wool sweater in heat", newItem(1, "Wool Sweater", models.CategoryTops, withMaterials("wool")), hot, models.SeasonSummer, false},
		{"linen shirt in heat", newItem(2, "Linen Shirt", models.CategoryTops, withMaterials("linen")), hot, models.SeasonSummer, true},
		{"dark polyester top in heat", newItem(3, "Top", models.CategoryTops, withMaterials("polyester"), withColor("Black", "")), hot, models.SeasonSummer, false},
		{"unknown material light top in heat", newItem(4, "Top", models.CategoryTops, withColor("White", "")), hot, models.SeasonSummer, false},
		{"unknown material dark top in heat", newItem(5, "Top", models.CategoryTops, withColor("Navy", "")), hot, models.SeasonSummer, false},
		{"silk blouse in rain", newItem(6, "Blouse", models.CategoryTops, withMaterials("silk")), rainy, models.SeasonSpring, false},
		{"oxfords in rain", newItem(7, "Oxford Shoes", models.CategoryShoes, withSub("oxford")), rainy, models.SeasonSpring, false},
		{"rubber boots in rain", newItem(8, "Rain Boots", models.CategoryShoes, withMaterials("rubber")), rainy, models.SeasonSpring, true},
		{"maxi dress in wind", newItem(9, "Maxi Dress", models.CategoryDresses), windy, models.SeasonSpring, false},
		{"linen shirt in cold", newItem(10, "Linen Shirt", models.CategoryTops, withMaterials("linen")), cold, models.SeasonFall, false},
		{"sandals in cold", newItem(11, "Sandals", models.CategoryShoes, withSub("sandal")), cold, models.SeasonFall, false},
		{"winter coat in summer", newItem(12, "Coat", models.CategoryOuterwear, withSeasons(models.SeasonWinter)), hot, models.SeasonSummer, false},
		{"summer tee on a warm spring day", newItem(13, "Tee", models.CategoryTops, withSeasons(models.SeasonSummer), withMaterials("cotton")),
			models.CurrentWeather{Temperature: 22, Condition: models.WeatherSunny}, models.SeasonSpring, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, m.IsItemAppropriate(tc.item, tc.weather, tc.season), tc.name)
	}
}

func TestHotAndSnowyGarmentRules(t *testing.T) {
	m := newWeatherModel()
	scorching := models.CurrentWeather{Temperature: 32, Condition: models.WeatherSunny}
	snowing := models.CurrentWeather{Temperature: 1, Condition: models.WeatherSnowy}

	cases := []struct {
		name    string
		item    models.WardrobeItem
		weather models.CurrentWeather
		season  models.Season
		want    bool
	}{
		{"black cotton shirt in heat", newItem(1, "Button Down", models.CategoryTops, withMaterials("cotton"), withColor("Black", "")), scorching, models.SeasonSummer, false},
		{"white cotton shirt in heat", newItem(2, "Button Down", models.CategoryTops, withMaterials("cotton"), withColor("White", "")), scorching, models.SeasonSummer, true},
		{"white polyester shirt in heat", newItem(3, "Button Down", models.CategoryTops, withMaterials("polyester"), withColor("White", "")), scorching, models.SeasonSummer, false},
		{"navy linen trousers in heat", newItem(4, "Trousers", models.CategoryBottoms, withMaterials("linen"), withColor("Navy", "")), scorching, models.SeasonSummer, false},
		{"plain cotton shirt in snow", newItem(5, "Button Down", models.CategoryTops, withMaterials("cotton")), snowing, models.SeasonWinter, false},
		{"wool sweater in snow", newItem(6, "Sweater", models.CategoryTops, withMaterials("wool")), snowing, models.SeasonWinter, true},
		{"waterproof ski pants in snow", newItem(7, "Ski Pants", models.CategoryBottoms, withMaterials("nylon")), snowing, models.SeasonWinter, true},
		{"cotton jeans in snow", newItem(8, "Jeans", models.CategoryBottoms, withMaterials("cotton", "denim")), snowing, models.SeasonWinter, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, m.IsItemAppropriate(tc.item, tc.weather, tc.season), tc.name)
	}
}

func TestRecommendedItemsRanksTops(t *testing.T) {
	m := newWeatherModel()
	weather := models.CurrentWeather{Temperature: 21, Condition: models.WeatherCloudy}
	plain := newItem(1, "Printed Shirt", models.CategoryTops, withColor("Orange", "#FF8000"),
		func(i *models.WardrobeItem) { i.Patterns = []models.Pattern{models.PatternFloral} })
	favorite := newItem(2, "White Shirt", models.CategoryTops, withColor("White", ""),
		func(i *models.WardrobeItem) { i.Favorite = true })
	worn := newItem(3, "Gray Shirt", models.CategoryTops, withColor("Gray", ""),
		func(i *models.WardrobeItem) { i.TimesWorn = 30 })

	rec := m.RecommendedItems([]models.WardrobeItem{plain, worn, favorite}, weather, models.SeasonSpring)
	require.Len(t, rec.Tops, 3)
	assert.Equal(t, uint(2), rec.Tops[0].ID)
	assert.Equal(t, uint(3), rec.Tops[2].ID)
}

func TestRecommendedOuterwear(t *testing.T) {
	m := newWeatherModel()
	parka := newItem(1, "Parka", models.CategoryOuterwear, withSub("parka"),
		func(i *models.WardrobeItem) { i.TimesWorn = 5 })
	puffer := newItem(2, "Puffer", models.CategoryOuterwear, withSub("puffer jacket"))
	denim := newItem(3, "Denim Jacket", models.CategoryOuterwear, withSub("jacket"), withMaterials("denim"))
	shell := newItem(4, "Rain Shell", models.CategoryOuterwear, withSub("rain jacket"), withMaterials("nylon"))
	wardrobe := []models.WardrobeItem{parka, puffer, denim, shell}

	freezing := m.RecommendedItems(wardrobe, models.CurrentWeather{Temperature: 2, Condition: models.WeatherCloudy}, models.SeasonWinter)
	require.Len(t, freezing.Outerwear, 2)
	assert.Equal(t, uint(2), freezing.Outerwear[0].ID, "less worn first")
	assert.Equal(t, uint(1), freezing.Outerwear[1].ID)

	cool := m.RecommendedItems(wardrobe, models.CurrentWeather{Temperature: 12, Condition: models.WeatherCloudy}, models.SeasonFall)
	assert.Len(t, cool.Outerwear, 4)

	mild := m.RecommendedItems(wardrobe, models.CurrentWeather{Temperature: 18, Condition: models.WeatherRainy}, models.SeasonSpring)
	require.Len(t, mild.Outerwear, 1)
	assert.Equal(t, uint(4), mild.Outerwear[0].ID)

	warm := m.RecommendedItems(wardrobe, models.CurrentWeather{Temperature: 22, Condition: models.WeatherCloudy}, models.SeasonSpring)
	assert.Empty(t, warm.Outerwear)
}

func TestRecommendedAccessories(t *testing.T) {
	m := newWeatherModel()
	var wardrobe []models.WardrobeItem
	for idx, name := range []string{"Sunglasses", "Straw Hat", "Baseball Cap", "Visor", "Wool Scarf"} {
		wardrobe = append(wardrobe, newItem(uint(idx+1), name, models.CategoryAccessories))
	}
	sunny := m.RecommendedItems(wardrobe, models.CurrentWeather{Temperature: 22, Condition: models.WeatherSunny}, models.SeasonSummer)
	require.Len(t, sunny.Accessories, accessoryLimit)
	for _, a := range sunny.Accessories {
		assert.NotEqual(t, "Wool Scarf", a.Name)
	}

	cloudy := m.RecommendedItems(wardrobe[3:], models.CurrentWeather{Temperature: 15, Condition: models.WeatherCloudy}, models.SeasonFall)
	assert.Len(t, cloudy.Accessories, 2)
}

func TestRecommendedFootwearPrefersBootsInRain(t *testing.T) {
	m := newWeatherModel()
	sneakers := newItem(1, "Canvas Sneakers", models.CategoryShoes, withMaterials("canvas"))
	boots := newItem(2, "Chelsea Boots", models.CategoryShoes, withSub("boots"))
	rec := m.RecommendedItems([]models.WardrobeItem{sneakers, boots},
		models.CurrentWeather{Temperature: 14, Condition: models.WeatherRainy, Timestamp: time.Now()}, models.SeasonSpring)
	require.Len(t, rec.Shoes, 2)
	assert.Equal(t, uint(2), rec.Shoes[0].ID)
}

func TestCategorySuitabilityAndSeason(t *testing.T) {
	assert.Equal(t, 0.9, CategorySuitability(models.CategoryTops, models.WeatherHot))
	assert.Equal(t, 0.3, CategorySuitability(models.CategoryShoes, models.WeatherSnowy))
	assert.Equal(t, 1.0, CategorySuitability(models.CategoryTops, models.WeatherSunny))
	assert.Equal(t, 1.0, CategorySuitability(models.CategoryAccessories, models.WeatherRainy))

	summer := newItem(1, "Tee", models.CategoryTops, withSeasons(models.SeasonSummer))
	assert.Equal(t, 1.0, SeasonalAppropriateness(summer, models.SeasonSummer))
	assert.Equal(t, 0.6, SeasonalAppropriateness(summer, models.SeasonFall))
	assert.Equal(t, 0.2, SeasonalAppropriateness(summer, models.SeasonWinter))
}
