package stylist

import (
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

func strPtr(s string) *string {
	return &s
}

func color(name, hex string) models.ItemColor {
	c := models.ItemColor{Name: name, Primary: true}
	if hex != "" {
		c.Hex = strPtr(hex)
	}
	return c
}

type itemOpt func(*models.WardrobeItem)

func withColor(name, hex string) itemOpt {
	return func(i *models.WardrobeItem) { i.Colors = append(i.Colors, color(name, hex)) }
}

func withMaterials(materials ...string) itemOpt {
	return func(i *models.WardrobeItem) { i.Materials = materials }
}

func withSeasons(seasons ...models.Season) itemOpt {
	return func(i *models.WardrobeItem) { i.Seasons = seasons }
}

func withFormality(f models.Formality) itemOpt {
	return func(i *models.WardrobeItem) { i.Formality = f }
}

func withSub(sub string) itemOpt {
	return func(i *models.WardrobeItem) { i.Subcategory = sub }
}

func withBrand(brand string) itemOpt {
	return func(i *models.WardrobeItem) { i.Brand = strPtr(brand) }
}

func newItem(id uint, name string, category models.Category, opts ...itemOpt) models.WardrobeItem {
	item := models.WardrobeItem{
		JsonModel: models.JsonModel{ID: id},
		OwnerID:   1,
		Name:      name,
		Category:  category,
		Formality: models.FormalityCasual,
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// basicWardrobe is a red cotton t-shirt, black cotton shorts and white sneakers.
func basicWardrobe() []models.WardrobeItem {
	return []models.WardrobeItem{
		newItem(1, "Red T-Shirt", models.CategoryTops, withSub("t-shirt"), withColor("Red", "#FF0000"),
			withMaterials("cotton"), withSeasons(models.SeasonSummer),
			func(i *models.WardrobeItem) { i.Patterns = []models.Pattern{models.PatternSolid} }),
		newItem(2, "Black Shorts", models.CategoryBottoms, withSub("shorts"), withColor("Black", "#000000"),
			withMaterials("cotton"), withSeasons(models.SeasonSummer),
			func(i *models.WardrobeItem) { i.Patterns = []models.Pattern{models.PatternSolid} }),
		newItem(3, "White Sneakers", models.CategoryShoes, withSub("sneakers"), withColor("White", "#FFFFFF")),
	}
}

func outfitOf(formality models.Formality, items ...models.WardrobeItem) models.Outfit {
	outfit := models.Outfit{Formality: formality, Creator: models.CreatorAI}
	for _, item := range items {
		outfit.Items = append(outfit.Items, models.NewOutfitItem(item, false))
	}
	return outfit
}

func itemIDs(outfit models.Outfit) []uint {
	ids := make([]uint, 0, len(outfit.Items))
	for _, oi := range outfit.Items {
		ids = append(ids, oi.ItemID)
	}
	return ids
}
