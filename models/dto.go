package models

type CreateWardrobeItemIn struct {
	Name        string      `json:"name" validate:"required,max=120"`
	Category    Category    `json:"category" validate:"required,category"`
	Subcategory string      `json:"subcategory" validate:"max=60"`
	Brand       *string     `json:"brand" validate:"omitempty,max=80"`
	Colors      []ItemColor `json:"colors" validate:"max=10,dive"`
	Patterns    []Pattern   `json:"patterns" validate:"max=5,dive,pattern"`
	Materials   []string    `json:"materials" validate:"max=10,dive,max=50"`
	Formality   Formality   `json:"formality" validate:"omitempty,formality"`
	Seasons     []Season    `json:"seasons" validate:"max=4,dive,season"`
	Favorite    bool        `json:"favorite"`
}

// Item converts the request into an unsaved wardrobe item for owner.
func (in CreateWardrobeItemIn) Item(ownerID uint) WardrobeItem {
	formality := in.Formality
	if formality == "" {
		formality = FormalityCasual
	}
	return WardrobeItem{
		OwnerID:     ownerID,
		Name:        in.Name,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Brand:       in.Brand,
		Colors:      in.Colors,
		Patterns:    in.Patterns,
		Materials:   normalizeList(in.Materials),
		Formality:   formality,
		Seasons:     in.Seasons,
		Favorite:    in.Favorite,
	}
}

type MarkWornIn struct {
	ItemIDs []uint `json:"item_ids" validate:"required,min=1,max=20"`
}

type SuggestIn struct {
	Formality Formality `json:"formality" validate:"required,formality"`
	Occasions []string  `json:"occasions" validate:"max=10,dive,max=50"`
	Season    *Season   `json:"season" validate:"omitempty,season"`
	// UseWeather defaults to true when omitted.
	UseWeather *bool `json:"use_weather"`
	Limit      int   `json:"limit" validate:"min=0,max=50"`
}

type PlanIn struct {
	Formality Formality `json:"formality" validate:"required,formality"`
	Occasions []string  `json:"occasions" validate:"max=10,dive,max=50"`
	PerDay    int       `json:"per_day" validate:"min=0,max=10"`
	// Async hands the planning to the worker and stores the best outfit per day.
	Async bool `json:"async"`
}

type SaveOutfitIn struct {
	Name         string    `json:"name" validate:"max=120"`
	ItemIDs      []uint    `json:"item_ids" validate:"required,min=1,max=20"`
	OptionalIDs  []uint    `json:"optional_ids" validate:"max=20"`
	Occasions    []string  `json:"occasions" validate:"max=10,dive,max=50"`
	Formality    Formality `json:"formality" validate:"required,formality"`
	Creator      Creator   `json:"creator" validate:"omitempty,oneof=user ai collaborative"`
	GenerationID *string   `json:"generation_id" validate:"omitempty,uuid"`
	Favorite     bool      `json:"favorite"`

	// WeatherCondition records the weather the outfit was put together for.
	WeatherCondition *WeatherTag `json:"weather_condition" validate:"omitempty,weather"`
}

type RateOutfitIn struct {
	Rating         float64  `json:"rating" validate:"required,min=1,max=5"`
	TooFormal      bool     `json:"too_formal"`
	TooCasual      bool     `json:"too_casual"`
	LikedColors    []string `json:"liked_colors" validate:"max=10,dive,max=50"`
	DislikedColors []string `json:"disliked_colors" validate:"max=10,dive,max=50"`
	Comment        *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (in RateOutfitIn) Feedback() OutfitFeedback {
	return OutfitFeedback{
		Rating:         in.Rating,
		TooFormal:      in.TooFormal,
		TooCasual:      in.TooCasual,
		LikedColors:    in.LikedColors,
		DislikedColors: in.DislikedColors,
		Comment:        in.Comment,
	}
}

type ColorSuggestIn struct {
	Hex string `json:"hex" validate:"required,hexcolor"`
}

type LocationIn struct {
	Latitude          *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude         *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	DailyPlansEnabled *bool    `json:"daily_plans_enabled"`
}

type UserInfoOut struct {
	Id                uint            `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Latitude          *float64        `json:"latitude"`
	Longitude         *float64        `json:"longitude"`
	DailyPlansEnabled bool            `json:"daily_plans_enabled"`
	Preferences       UserPreferences `json:"preferences"`
}
