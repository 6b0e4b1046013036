package stylist

import (
	"slices"
	"strings"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

const (
	LikedRating    = 4.0
	DislikedRating = 2.0
)

// PreferenceLearner turns ratings and feedback into preference updates. Every
// method returns a fresh copy and reports whether anything changed.
type PreferenceLearner struct{}

func NewPreferenceLearner() *PreferenceLearner {
	return &PreferenceLearner{}
}

type prefsEditor struct {
	prefs   models.UserPreferences
	changed bool
}

func (e *prefsEditor) add(list *[]string, v string) {
	if v == "" || slices.Contains(*list, v) {
		return
	}
	*list = append(*list, v)
	e.changed = true
}

func (e *prefsEditor) remove(list *[]string, v string) {
	idx := slices.Index(*list, v)
	if idx < 0 {
		return
	}
	*list = slices.Delete(*list, idx, idx+1)
	e.changed = true
}

func (e *prefsEditor) like(color string) {
	c := models.NormalizeColor(color)
	if !e.prefs.IsNeutral(c) {
		e.add(&e.prefs.PreferredColors, c)
	}
	e.remove(&e.prefs.AvoidedColors, c)
}

func (e *prefsEditor) dislike(color string) {
	c := models.NormalizeColor(color)
	if !e.prefs.IsNeutral(c) {
		e.add(&e.prefs.AvoidedColors, c)
	}
	e.remove(&e.prefs.PreferredColors, c)
}

func (e *prefsEditor) setFormality(f models.Formality) {
	if e.prefs.Style == nil {
		e.prefs.Style = &models.StylePreference{PrimaryStyle: models.DefaultPrimaryStyle, Formality: f}
		e.changed = true
		return
	}
	if e.prefs.Style.Formality != f {
		e.prefs.Style.Formality = f
		e.changed = true
	}
}

func outfitColors(outfit models.Outfit) []string {
	var colors []string
	for _, item := range outfit.WardrobeItems() {
		for _, c := range item.ColorNames() {
			if !slices.Contains(colors, c) {
				colors = append(colors, c)
			}
		}
	}
	return colors
}

// ApplyRating adds the outfit colors, occasions and brands to the preferences on a
// liked rating and moves its colors to the avoided list on a disliked one. Ratings
// strictly between the two thresholds leave the preferences untouched.
func (l *PreferenceLearner) ApplyRating(outfit models.Outfit, rating float64, prefs models.UserPreferences) (models.UserPreferences, bool) {
	return l.applyRating(outfit, rating, prefs, true)
}

func (l *PreferenceLearner) applyRating(outfit models.Outfit, rating float64, prefs models.UserPreferences, learnFormality bool) (models.UserPreferences, bool) {
	if rating > DislikedRating && rating < LikedRating {
		return prefs, false
	}
	e := &prefsEditor{prefs: prefs.Clone()}
	colors := outfitColors(outfit)
	if rating <= DislikedRating {
		for _, c := range colors {
			e.dislike(c)
		}
		return e.prefs, e.changed
	}

	for _, c := range colors {
		e.like(c)
	}
	for _, occasion := range outfit.Occasions {
		e.add(&e.prefs.PreferredOccasions, models.NormalizeTag(occasion))
	}
	for _, item := range outfit.WardrobeItems() {
		if item.Brand == nil {
			continue
		}
		brand := strings.TrimSpace(*item.Brand)
		if brand != "" && !containsFold(e.prefs.PreferredBrands, brand) {
			e.add(&e.prefs.PreferredBrands, brand)
		}
	}
	if learnFormality && outfit.Formality != "" {
		switch {
		case e.prefs.Style == nil || e.prefs.Style.Formality == "":
			e.setFormality(outfit.Formality)
		case e.prefs.Style.Formality != outfit.Formality:
			e.setFormality(models.FormalityMixed)
		}
	}
	return e.prefs, e.changed
}

// ApplyDetailedFeedback walks the preferred formality one notch for too formal or
// too casual flags and applies explicit liked and disliked colors.
func (l *PreferenceLearner) ApplyDetailedFeedback(feedback models.OutfitFeedback, outfit models.Outfit, prefs models.UserPreferences) (models.UserPreferences, bool) {
	e := &prefsEditor{prefs: prefs.Clone()}
	if delta := formalityDelta(feedback); delta != 0 {
		base := outfit.Formality
		if e.prefs.Style != nil && e.prefs.Style.Formality.Index() >= 0 {
			base = e.prefs.Style.Formality
		}
		if base.Index() >= 0 {
			e.setFormality(base.Step(delta))
		}
	}
	for _, c := range feedback.LikedColors {
		e.like(c)
	}
	for _, c := range feedback.DislikedColors {
		e.dislike(c)
	}
	return e.prefs, e.changed
}

func formalityDelta(feedback models.OutfitFeedback) int {
	switch {
	case feedback.TooFormal && !feedback.TooCasual:
		return -1
	case feedback.TooCasual && !feedback.TooFormal:
		return 1
	}
	return 0
}

// Learn applies detailed feedback first and the rating second. An explicit
// formality signal wins over the formality learned from the rating.
func (l *PreferenceLearner) Learn(outfit models.Outfit, feedback models.OutfitFeedback, prefs models.UserPreferences) (models.UserPreferences, bool) {
	afterFeedback, changedByFeedback := l.ApplyDetailedFeedback(feedback, outfit, prefs)
	updated, changedByRating := l.applyRating(outfit, feedback.Rating, afterFeedback, formalityDelta(feedback) == 0)
	return updated, changedByFeedback || changedByRating
}
