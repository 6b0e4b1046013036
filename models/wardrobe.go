package models

import "time"

type ItemColor struct {
	Name    string  `json:"name" validate:"required,max=50"`
	Hex     *string `json:"hex,omitempty" validate:"omitempty,hexcolor"`
	Primary bool    `json:"primary"`
}

// WardrobeItem is a single piece of clothing owned by a user. Empty colors,
// patterns, materials or seasons mean unknown and never exclude the item by themselves.
type WardrobeItem struct {
	JsonModel
	OwnerID     uint        `gorm:"index" json:"-"`
	Name        string      `json:"name"`
	Category    Category    `gorm:"index" json:"category"`
	Subcategory string      `json:"subcategory"`
	Brand       *string     `json:"brand"`
	Colors      []ItemColor `gorm:"serializer:json" json:"colors"`
	Patterns    []Pattern   `gorm:"serializer:json" json:"patterns"`
	Materials   []string    `gorm:"serializer:json" json:"materials"`
	Formality   Formality   `json:"formality"`
	Seasons     []Season    `gorm:"serializer:json" json:"seasons"`
	Favorite    bool        `json:"favorite"`
	TimesWorn   int         `json:"times_worn"`
	LastWornAt  *time.Time  `json:"last_worn_at"`
	Archived    bool        `gorm:"default:false" json:"archived"`
}

// ColorNames returns the normalized names of the item colors.
func (i WardrobeItem) ColorNames() []string {
	names := make([]string, 0, len(i.Colors))
	for _, c := range i.Colors {
		if n := NormalizeColor(c.Name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// PrimaryColor returns the color flagged primary, falling back to the first one.
func (i WardrobeItem) PrimaryColor() *ItemColor {
	for idx := range i.Colors {
		if i.Colors[idx].Primary {
			return &i.Colors[idx]
		}
	}
	if len(i.Colors) > 0 {
		return &i.Colors[0]
	}
	return nil
}

func (i WardrobeItem) HasSeason(s Season) bool {
	for _, season := range i.Seasons {
		if season == s {
			return true
		}
	}
	return false
}
