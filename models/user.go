package models

type UserAccount struct {
	JsonModel
	Name   string `json:"name"`
	Email  string `json:"email" gorm:"unique"`
	Banned bool   `gorm:"default:false" json:"-"`
	// location used for weather lookups
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	// daily forecast planning opt-in
	DailyPlansEnabled bool            `gorm:"default:false" json:"daily_plans_enabled"`
	Preferences       UserPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
}

func (u UserAccount) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// NewUserAccount creates a profile seeded with default preferences.
func NewUserAccount(name, email string) UserAccount {
	return UserAccount{
		Name:        name,
		Email:       email,
		Preferences: DefaultUserPreferences(),
	}
}
