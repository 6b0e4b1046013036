package stylist

import "github.com/mrumy-dev/StyleMatcherAI-sub000/models"

var categoryFormalityWeights = map[models.Category]float64{
	models.CategoryDresses:     2.0,
	models.CategoryTops:        1.5,
	models.CategoryBottoms:     1.5,
	models.CategoryShoes:       1.3,
	models.CategoryOuterwear:   1.2,
	models.CategoryActivewear:  0.9,
	models.CategoryAccessories: 0.8,
	models.CategoryUnderwear:   0.1,
	models.CategorySleepwear:   0.1,
	models.CategorySwimwear:    0.1,
}

var distanceScores = []float64{1.0, 0.8, 0.4, 0.1}

// appropriateTargets lists, per item level, the target levels the pre-filter lets it into.
var appropriateTargets = map[models.Formality][]models.Formality{
	models.FormalityCasual:      {models.FormalityCasual},
	models.FormalitySmartCasual: {models.FormalityCasual, models.FormalitySmartCasual},
	models.FormalityBusiness:    {models.FormalitySmartCasual, models.FormalityBusiness},
	models.FormalityFormal:      {models.FormalityBusiness, models.FormalityFormal},
}

type FormalityModel struct{}

func NewFormalityModel() *FormalityModel {
	return &FormalityModel{}
}

// ItemCompatibility decays with the distance between the two levels on the ordered scale.
func (m *FormalityModel) ItemCompatibility(item, target models.Formality) float64 {
	if item == target || item == models.FormalityMixed || target == models.FormalityMixed {
		return 1.0
	}
	a, b := item.Index(), target.Index()
	if a < 0 || b < 0 {
		return 0
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	if d >= len(distanceScores) {
		return 0
	}
	return distanceScores[d]
}

func (m *FormalityModel) OutfitFormalityScore(items []models.WardrobeItem, target models.Formality) float64 {
	var weighted, total float64
	for _, item := range items {
		w, ok := categoryFormalityWeights[item.Category]
		if !ok {
			w = 1.0
		}
		weighted += w * m.ItemCompatibility(item.Formality, target)
		total += w
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// IsAppropriateFor is the coarse adjacency pre-filter used before generation.
// It is stricter than ItemCompatibility: a casual item only fits a casual target.
func (m *FormalityModel) IsAppropriateFor(item, target models.Formality) bool {
	if item == models.FormalityMixed || target == models.FormalityMixed || target == "" || item == "" {
		return true
	}
	for _, level := range appropriateTargets[item] {
		if level == target {
			return true
		}
	}
	return false
}
