package stylist

import (
	"strings"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/languageutil"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

const namedColors = 2

// OutfitName builds a display name from the dominant colors, the primary occasion
// (or the formality when there is none) and a suffix derived from the pieces.
func OutfitName(items []models.WardrobeItem, occasions []string, formality models.Formality) string {
	var colors []string
	seen := map[string]bool{}
	hasDress, hasOuterwear := false, false
	for _, item := range items {
		switch item.Category {
		case models.CategoryDresses:
			hasDress = true
		case models.CategoryOuterwear:
			hasOuterwear = true
		}
		primary := item.PrimaryColor()
		if primary == nil || len(colors) == namedColors {
			continue
		}
		key := models.NormalizeColor(primary.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		colors = append(colors, languageutil.Title(key))
	}

	descriptor := formality.DisplayName()
	for _, occasion := range occasions {
		if strings.TrimSpace(occasion) != "" {
			descriptor = occasion
			break
		}
	}
	descriptor = languageutil.Title(strings.TrimSpace(descriptor))

	parts := make([]string, 0, 4)
	if len(colors) > 0 {
		parts = append(parts, strings.Join(colors, " & "))
	}
	switch {
	case hasDress:
		parts = append(parts, descriptor, "Dress Look")
	case hasOuterwear:
		parts = append(parts, "Layered", descriptor, "Outfit")
	default:
		parts = append(parts, descriptor, "Ensemble")
	}
	return strings.Join(parts, " ")
}
