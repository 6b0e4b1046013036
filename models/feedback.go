package models

type OutfitFeedback struct {
	JsonModel
	OutfitID       uint     `gorm:"index" json:"outfit_id"`
	UserAccountID  uint     `gorm:"index" json:"-"`
	Rating         float64  `json:"rating"`
	TooFormal      bool     `json:"too_formal"`
	TooCasual      bool     `json:"too_casual"`
	LikedColors    []string `gorm:"serializer:json" json:"liked_colors"`
	DislikedColors []string `gorm:"serializer:json" json:"disliked_colors"`
	Comment        *string  `gorm:"type:text" json:"comment"`
}

// OutfitScore sub-scores are in [0,1], Total in [0,100].
type OutfitScore struct {
	ColorHarmony       float64 `json:"color_harmony"`
	FormalityMatch     float64 `json:"formality_match"`
	WeatherAppropriate float64 `json:"weather_appropriate"`
	UserPreference     float64 `json:"user_preference"`
	Total              float64 `json:"total"`
	Grade              string  `json:"grade"`
}

type OutfitInsights struct {
	RatedCount          int        `json:"rated_count"`
	AverageRating       float64    `json:"average_rating"`
	FavoriteColors      []string   `json:"favorite_colors"`
	LeastFavoriteColors []string   `json:"least_favorite_colors"`
	PreferredFormality  *Formality `json:"preferred_formality"`
	FavoriteOccasions   []string   `json:"favorite_occasions"`
	Suggestions         []string   `json:"suggestions"`
}
