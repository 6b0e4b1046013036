package models

import "slices"

var DefaultNeutralColors = []string{"black", "white", "gray", "navy", "beige"}

const DefaultPrimaryStyle = "versatile"

type StylePreference struct {
	PrimaryStyle string    `json:"primary_style"`
	Formality    Formality `json:"formality"`
}

type BudgetRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// UserPreferences is owned by a UserAccount and overwritten on every learning event.
type UserPreferences struct {
	PreferredColors    []string         `gorm:"serializer:json" json:"preferred_colors"`
	AvoidedColors      []string         `gorm:"serializer:json" json:"avoided_colors"`
	NeutralColors      []string         `gorm:"serializer:json" json:"neutral_colors"`
	PreferredBrands    []string         `gorm:"serializer:json" json:"preferred_brands"`
	PreferredOccasions []string         `gorm:"serializer:json" json:"preferred_occasions"`
	Style              *StylePreference `gorm:"serializer:json" json:"style"`
	BodyType           *string          `json:"body_type"`
	Budget             *BudgetRange     `gorm:"serializer:json" json:"budget"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		PreferredColors:    []string{},
		AvoidedColors:      []string{},
		NeutralColors:      slices.Clone(DefaultNeutralColors),
		PreferredBrands:    []string{},
		PreferredOccasions: []string{},
	}
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (p UserPreferences) Clone() UserPreferences {
	out := UserPreferences{
		PreferredColors:    slices.Clone(p.PreferredColors),
		AvoidedColors:      slices.Clone(p.AvoidedColors),
		NeutralColors:      slices.Clone(p.NeutralColors),
		PreferredBrands:    slices.Clone(p.PreferredBrands),
		PreferredOccasions: slices.Clone(p.PreferredOccasions),
	}
	if p.Style != nil {
		style := *p.Style
		out.Style = &style
	}
	if p.BodyType != nil {
		bodyType := *p.BodyType
		out.BodyType = &bodyType
	}
	if p.Budget != nil {
		budget := *p.Budget
		out.Budget = &budget
	}
	return out
}

func (p UserPreferences) IsNeutral(color string) bool {
	return slices.Contains(p.NeutralColors, NormalizeColor(color))
}

func (p UserPreferences) Prefers(color string) bool {
	return slices.Contains(p.PreferredColors, NormalizeColor(color))
}

func (p UserPreferences) Avoids(color string) bool {
	return slices.Contains(p.AvoidedColors, NormalizeColor(color))
}

// PreferencesPatch is a partial update. Nil fields are left untouched.
type PreferencesPatch struct {
	PreferredColors    *[]string        `json:"preferred_colors" validate:"omitempty,dive,max=50"`
	AvoidedColors      *[]string        `json:"avoided_colors" validate:"omitempty,dive,max=50"`
	NeutralColors      *[]string        `json:"neutral_colors" validate:"omitempty,dive,max=50"`
	PreferredBrands    *[]string        `json:"preferred_brands" validate:"omitempty,dive,max=100"`
	PreferredOccasions *[]string        `json:"preferred_occasions" validate:"omitempty,dive,max=50"`
	Style              *StylePreference `json:"style"`
	ClearStyle         bool             `json:"clear_style"`
	BodyType           *string          `json:"body_type" validate:"omitempty,max=50"`
	Budget             *BudgetRange     `json:"budget"`
}

func (patch PreferencesPatch) IsEmpty() bool {
	return patch.PreferredColors == nil && patch.AvoidedColors == nil && patch.NeutralColors == nil &&
		patch.PreferredBrands == nil && patch.PreferredOccasions == nil && patch.Style == nil &&
		!patch.ClearStyle && patch.BodyType == nil && patch.Budget == nil
}

// Apply returns a copy of prefs with the patch fields set. Color lists are normalized.
func (patch PreferencesPatch) Apply(prefs UserPreferences) UserPreferences {
	out := prefs.Clone()
	if patch.PreferredColors != nil {
		out.PreferredColors = normalizeList(*patch.PreferredColors)
	}
	if patch.AvoidedColors != nil {
		out.AvoidedColors = normalizeList(*patch.AvoidedColors)
	}
	if patch.NeutralColors != nil {
		out.NeutralColors = normalizeList(*patch.NeutralColors)
	}
	if patch.PreferredBrands != nil {
		out.PreferredBrands = slices.Clone(*patch.PreferredBrands)
	}
	if patch.PreferredOccasions != nil {
		out.PreferredOccasions = normalizeList(*patch.PreferredOccasions)
	}
	if patch.ClearStyle {
		out.Style = nil
	}
	if patch.Style != nil {
		style := *patch.Style
		out.Style = &style
	}
	if patch.BodyType != nil {
		bodyType := *patch.BodyType
		out.BodyType = &bodyType
	}
	if patch.Budget != nil {
		budget := *patch.Budget
		out.Budget = &budget
	}
	return out
}
