package stylist

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"slices"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

// Limits bounds the combinatorial work of a generation pass.
type Limits struct {
	Cap     int `koanf:"cap"`
	Dresses int `koanf:"dresses"`
	Tops    int `koanf:"tops"`
	Bottoms int `koanf:"bottoms"`
	Shoes   int `koanf:"shoes"`
}

var (
	AdhocLimits    = Limits{Cap: 50, Dresses: 10, Tops: 15, Bottoms: 10, Shoes: 5}
	ForecastLimits = Limits{Cap: 10, Dresses: 3, Tops: 5, Bottoms: 5, Shoes: 2}
)

type GenerateRequest struct {
	Items      Recommendation
	Formality  models.Formality
	Conditions []models.WeatherTag
	Occasions  []string
	// Season filters items by declared season when set.
	Season *models.Season
	Limits Limits
}

// Generator enumerates dress based and separates based outfits. Optional pieces
// are picked from a source seeded by the generator seed and the request, so the
// same request always yields the same outfits however many calls came before.
type Generator struct {
	formality *FormalityModel
	seed      int64
}

func NewGenerator(formality *FormalityModel, seed int64) *Generator {
	return &Generator{formality: formality, seed: seed}
}

// fingerprint hashes the request fields that shape the generated outfits.
func (req GenerateRequest) fingerprint() int64 {
	h := fnv.New64a()
	var buf [8]byte
	writeIDs := func(items []models.WardrobeItem) {
		for _, item := range items {
			binary.LittleEndian.PutUint64(buf[:], uint64(item.ID))
			h.Write(buf[:])
		}
		h.Write([]byte{0xff})
	}
	writeIDs(req.Items.Dresses)
	writeIDs(req.Items.Tops)
	writeIDs(req.Items.Bottoms)
	writeIDs(req.Items.Shoes)
	writeIDs(req.Items.Accessories)
	writeIDs(req.Items.Outerwear)
	h.Write([]byte(req.Formality))
	for _, c := range req.Conditions {
		h.Write([]byte{0})
		h.Write([]byte(c))
	}
	for _, o := range req.Occasions {
		h.Write([]byte{1})
		h.Write([]byte(o))
	}
	if req.Season != nil {
		h.Write([]byte{2})
		h.Write([]byte(*req.Season))
	}
	return int64(h.Sum64())
}

func (g *Generator) eligible(items []models.WardrobeItem, req GenerateRequest, limit int) []models.WardrobeItem {
	var out []models.WardrobeItem
	for _, item := range items {
		if limit > 0 && len(out) == limit {
			break
		}
		if item.Archived || !g.formality.IsAppropriateFor(item.Formality, req.Formality) {
			continue
		}
		if req.Season != nil && len(item.Seasons) > 0 && !item.HasSeason(*req.Season) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (g *Generator) Generate(req GenerateRequest) []models.Outfit {
	limits := req.Limits
	if limits.Cap <= 0 {
		limits = AdhocLimits
	}
	dresses := g.eligible(req.Items.Dresses, req, limits.Dresses)
	tops := g.eligible(req.Items.Tops, req, limits.Tops)
	bottoms := g.eligible(req.Items.Bottoms, req, limits.Bottoms)
	shoes := g.eligible(req.Items.Shoes, req, limits.Shoes)
	accessories := g.eligible(req.Items.Accessories, req, 0)
	outerwear := g.eligible(req.Items.Outerwear, req, 0)
	layered := slices.Contains(req.Conditions, models.WeatherCold) || slices.Contains(req.Conditions, models.WeatherRainy)
	rng := rand.New(rand.NewSource(g.seed ^ req.fingerprint()))

	var outfits []models.Outfit
	build := func(base ...models.WardrobeItem) bool {
		if len(outfits) >= limits.Cap {
			return false
		}
		pieces := slices.Clone(base)
		optional := map[int]bool{}
		if len(accessories) > 0 {
			optional[len(pieces)] = true
			pieces = append(pieces, accessories[rng.Intn(len(accessories))])
		}
		if layered && len(outerwear) > 0 {
			optional[len(pieces)] = true
			pieces = append(pieces, outerwear[rng.Intn(len(outerwear))])
		}
		outfits = append(outfits, g.assemble(pieces, optional, req))
		return len(outfits) < limits.Cap
	}

dressLoop:
	for _, dress := range dresses {
		for _, shoe := range shoes {
			if !build(dress, shoe) {
				break dressLoop
			}
		}
	}
separatesLoop:
	for _, top := range tops {
		for _, bottom := range bottoms {
			for _, shoe := range shoes {
				if !build(top, bottom, shoe) {
					break separatesLoop
				}
			}
		}
	}
	return outfits
}

func (g *Generator) assemble(pieces []models.WardrobeItem, optional map[int]bool, req GenerateRequest) models.Outfit {
	outfit := models.Outfit{
		OwnerID:   pieces[0].OwnerID,
		Name:      OutfitName(pieces, req.Occasions, req.Formality),
		Occasions: slices.Clone(req.Occasions),
		Formality: req.Formality,
		Creator:   models.CreatorAI,
	}
	for idx, piece := range pieces {
		outfit.Items = append(outfit.Items, models.NewOutfitItem(piece, optional[idx]))
	}
	if req.Season != nil {
		outfit.Seasons = []models.Season{*req.Season}
	}
	if len(req.Conditions) > 0 {
		condition := req.Conditions[0]
		outfit.WeatherCondition = &condition
	}
	outfit.SortItems()
	return outfit
}
