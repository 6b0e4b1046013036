package stylist

import (
	"fmt"
	"sort"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/languageutil"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

const (
	favoriteColorLimit      = 5
	leastFavoriteColorLimit = 3
	favoriteOccasionLimit   = 5
	suggestedColorLimit     = 2
	formalityCalloutMinimum = 2
)

type tally map[string]int

// top returns up to n keys by count, ties broken alphabetically.
func (t tally) top(n int) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if t[keys[a]] != t[keys[b]] {
			return t[keys[a]] > t[keys[b]]
		}
		return keys[a] < keys[b]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// ComputeInsights summarizes the rated outfits of a user.
func (l *PreferenceLearner) ComputeInsights(outfits []models.Outfit) models.OutfitInsights {
	insights := models.OutfitInsights{
		FavoriteColors:      []string{},
		LeastFavoriteColors: []string{},
		FavoriteOccasions:   []string{},
		Suggestions:         []string{},
	}
	liked, disliked, occasions, formalities := tally{}, tally{}, tally{}, tally{}
	var ratingSum float64
	for _, outfit := range outfits {
		if outfit.Rating == nil {
			continue
		}
		rating := *outfit.Rating
		insights.RatedCount++
		ratingSum += rating
		switch {
		case rating >= LikedRating:
			for _, c := range outfitColors(outfit) {
				liked[c]++
			}
			for _, o := range outfit.Occasions {
				if key := models.NormalizeTag(o); key != "" {
					occasions[key]++
				}
			}
			if outfit.Formality != "" {
				formalities[string(outfit.Formality)]++
			}
		case rating <= DislikedRating:
			for _, c := range outfitColors(outfit) {
				disliked[c]++
			}
		}
	}
	if insights.RatedCount == 0 {
		return insights
	}
	insights.AverageRating = ratingSum / float64(insights.RatedCount)
	insights.FavoriteColors = liked.top(favoriteColorLimit)
	insights.LeastFavoriteColors = disliked.top(leastFavoriteColorLimit)
	insights.FavoriteOccasions = occasions.top(favoriteOccasionLimit)

	if top := formalities.top(1); len(top) == 1 {
		f := models.Formality(top[0])
		insights.PreferredFormality = &f
	}

	var avoid, embrace []string
	for _, c := range disliked.top(len(disliked)) {
		if liked[c] == 0 && len(avoid) < suggestedColorLimit {
			avoid = append(avoid, c)
		}
	}
	for _, c := range liked.top(len(liked)) {
		if disliked[c] == 0 && len(embrace) < suggestedColorLimit {
			embrace = append(embrace, c)
		}
	}
	for _, c := range avoid {
		insights.Suggestions = append(insights.Suggestions,
			fmt.Sprintf("Consider avoiding %s, it keeps showing up in outfits you rated low", languageutil.Title(c)))
	}
	for _, c := range embrace {
		insights.Suggestions = append(insights.Suggestions,
			fmt.Sprintf("You tend to love %s, try adding more pieces in this color", languageutil.Title(c)))
	}
	// Only called out when every liked outfit carries the same formality.
	if insights.PreferredFormality != nil && len(formalities) == 1 && formalities[string(*insights.PreferredFormality)] >= formalityCalloutMinimum {
		insights.Suggestions = append(insights.Suggestions,
			fmt.Sprintf("Your top rated outfits are mostly %s, lean into that style", insights.PreferredFormality.DisplayName()))
	}
	return insights
}
