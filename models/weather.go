package models

import "time"

// Temperatures are celsius, wind speed km/h, humidity and precipitation chance percent.
type CurrentWeather struct {
	Temperature    float64    `json:"temperature"`
	MinTemperature float64    `json:"min_temperature"`
	MaxTemperature float64    `json:"max_temperature"`
	Humidity       float64    `json:"humidity"`
	WindSpeed      float64    `json:"wind_speed"`
	Condition      WeatherTag `json:"condition"`
	Timestamp      time.Time  `json:"timestamp"`
}

type DailyForecast struct {
	Date                time.Time  `json:"date"`
	MinTemperature      float64    `json:"min_temperature"`
	MaxTemperature      float64    `json:"max_temperature"`
	Condition           WeatherTag `json:"condition"`
	Humidity            float64    `json:"humidity"`
	WindSpeed           float64    `json:"wind_speed"`
	PrecipitationChance float64    `json:"precipitation_chance"`
}

// Average is the representative temperature of a forecast day.
func (d DailyForecast) Average() float64 {
	return (d.MinTemperature + d.MaxTemperature) / 2
}

// AsCurrent projects a forecast day to the shape the suitability rules consume.
func (d DailyForecast) AsCurrent() CurrentWeather {
	return CurrentWeather{
		Temperature:    d.Average(),
		MinTemperature: d.MinTemperature,
		MaxTemperature: d.MaxTemperature,
		Humidity:       d.Humidity,
		WindSpeed:      d.WindSpeed,
		Condition:      d.Condition,
		Timestamp:      d.Date,
	}
}

const MaxForecastDays = 5

type WeatherForecast struct {
	Days []DailyForecast `json:"days"`
}

type WeatherSnapshot struct {
	Current  CurrentWeather  `json:"current"`
	Forecast WeatherForecast `json:"forecast"`
}
