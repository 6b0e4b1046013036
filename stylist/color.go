package stylist

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
)

// HSL holds hue in degrees [0,360), saturation and lightness in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// ParseHex reads #RRGGBB or #RGB, with or without the leading hash.
func ParseHex(hex string) (HSL, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return HSL{}, fmt.Errorf("%w %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HSL{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, hex, err)
	}
	r := float64((v>>16)&0xff) / 255
	g := float64((v>>8)&0xff) / 255
	b := float64(v&0xff) / 255
	return rgbToHSL(r, g, b), nil
}

func rgbToHSL(r, g, b float64) HSL {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2
	delta := maxC - minC
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}
	var s float64
	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}
	var h float64
	switch maxC {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return HSL{H: h * 60, S: s, L: l}
}

// Hex renders the color as #RRGGBB.
func (c HSL) Hex() string {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.L - chroma/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	to := func(v float64) int {
		return int(math.Round(math.Max(0, math.Min(1, v+m)) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X", to(r), to(g), to(b))
}

// Rotate shifts the hue by deg degrees, wrapping around the wheel.
func (c HSL) Rotate(deg float64) HSL {
	h := math.Mod(c.H+deg, 360)
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: c.S, L: c.L}
}

// HueDistance is the minimal angle between two hues, in [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

type hueBucket struct {
	upTo float64
	name string
}

var hueBuckets = []hueBucket{
	{15, "red"},
	{45, "orange"},
	{75, "yellow"},
	{165, "green"},
	{195, "cyan"},
	{255, "blue"},
	{285, "purple"},
	{345, "pink"},
	{360, "red"},
}

// HueName maps a hue to its nearest named bucket.
func HueName(h float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	for _, b := range hueBuckets {
		if h < b.upTo {
			return b.name
		}
	}
	return "red"
}

type PatternPair [2]models.Pattern

type SuggestedColor struct {
	Name         string `json:"name"`
	Hex          string `json:"hex"`
	Relationship string `json:"relationship"`
}

const maxColorSuggestions = 8

var basicNeutrals = []SuggestedColor{
	{Name: "Black", Hex: "#000000", Relationship: "neutral"},
	{Name: "White", Hex: "#FFFFFF", Relationship: "neutral"},
	{Name: "Gray", Hex: "#808080", Relationship: "neutral"},
	{Name: "Navy", Hex: "#000080", Relationship: "neutral"},
}

// ColorHarmony scores color and pattern combinations on the color wheel.
type ColorHarmony struct {
	neutrals map[string]bool
	allowed  map[PatternPair]bool
}

func NewColorHarmony() *ColorHarmony {
	ch := &ColorHarmony{
		neutrals: make(map[string]bool, len(neutralColorNames)),
		allowed:  map[PatternPair]bool{},
	}
	for _, n := range neutralColorNames {
		ch.neutrals[n] = true
	}
	for _, p := range compatiblePatternPairs {
		ch.allowed[p] = true
		ch.allowed[PatternPair{p[1], p[0]}] = true
	}
	return ch
}

func (ch *ColorHarmony) IsNeutral(name string) bool {
	return ch.neutrals[models.NormalizeColor(name)]
}

func (ch *ColorHarmony) PairwiseHarmony(a, b models.ItemColor) float64 {
	if ch.IsNeutral(a.Name) || ch.IsNeutral(b.Name) {
		return 0.9
	}
	if a.Hex == nil || b.Hex == nil {
		return 0.5
	}
	ha, err := ParseHex(*a.Hex)
	if err != nil {
		return 0.5
	}
	hb, err := ParseHex(*b.Hex)
	if err != nil {
		return 0.5
	}
	return harmonyForAngle(HueDistance(ha.H, hb.H))
}

func harmonyForAngle(d float64) float64 {
	near := func(target, tolerance float64) bool {
		return math.Abs(d-target) <= tolerance
	}
	switch {
	case near(180, 15):
		return 1.0
	case d <= 30:
		return 0.95
	case near(120, 15):
		return 0.85
	case near(150, 15) || near(210, 15):
		return 0.8
	case near(90, 10) || near(270, 10):
		return 0.75
	}
	return math.Max(0.2, 1-d/180)
}

// SetHarmony averages pairwise harmony over every unordered pair.
func (ch *ColorHarmony) SetHarmony(colors []models.ItemColor) float64 {
	if len(colors) < 2 {
		return 1.0
	}
	var total float64
	var pairs int
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			total += ch.PairwiseHarmony(colors[i], colors[j])
			pairs++
		}
	}
	return total / float64(pairs)
}

func (ch *ColorHarmony) PatternCompatibility(patterns []models.Pattern) float64 {
	unique := make([]models.Pattern, 0, len(patterns))
	seen := map[models.Pattern]bool{}
	for _, p := range patterns {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	if len(unique) <= 1 {
		return 1.0
	}
	if len(unique) > 3 {
		return 0.1
	}
	var total float64
	var pairs int
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			total += ch.patternPair(unique[i], unique[j])
			pairs++
		}
	}
	return total / float64(pairs)
}

func (ch *ColorHarmony) patternPair(a, b models.Pattern) float64 {
	if a == models.PatternSolid || b == models.PatternSolid || ch.allowed[PatternPair{a, b}] {
		return 1.0
	}
	return 0.2
}

// SuggestComplementaryColors proposes wheel relatives of base followed by the basic
// neutrals, deduplicated by name.
func (ch *ColorHarmony) SuggestComplementaryColors(base HSL) []SuggestedColor {
	candidates := []struct {
		rotate       float64
		relationship string
	}{
		{180, "complementary"},
		{30, "analogous"},
		{-30, "analogous"},
		{120, "triadic"},
		{240, "triadic"},
	}
	out := make([]SuggestedColor, 0, maxColorSuggestions)
	seen := map[string]bool{}
	add := func(c SuggestedColor) {
		key := models.NormalizeColor(c.Name)
		if seen[key] || len(out) >= maxColorSuggestions {
			return
		}
		seen[key] = true
		out = append(out, c)
	}
	for _, cand := range candidates {
		rotated := base.Rotate(cand.rotate)
		add(SuggestedColor{
			Name:         HueName(rotated.H),
			Hex:          rotated.Hex(),
			Relationship: cand.relationship,
		})
	}
	for _, n := range basicNeutrals {
		add(n)
	}
	return out
}
