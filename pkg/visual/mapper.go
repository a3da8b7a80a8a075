// Package visual maps text features to the parameters that drive the
// generative renderer.
//
// Map is a pure function: the same Features always produce the same Params,
// and every mapping is total (out-of-range feature values are clamped, never
// rejected). The palette hexes, lexicons, and clamp bounds are part of the
// reproducible visual contract and must not be altered.
package visual

import (
	"math"
	"strconv"

	"github.com/coverforge/coverforge/pkg/textstat"
)

// Family is the coarse visual style classification driving which
// composition algorithm the renderer uses.
type Family string

const (
	FamilyGeometric Family = "geometric"
	FamilyOrganic   Family = "organic"
	FamilyMixed     Family = "mixed"
)

// Params are the visual parameters derived from one document.
type Params struct {
	// Seed is the 32-bit value that deterministically initializes all
	// pseudo-randomness during rendering. It is parsed from the first
	// 8 hex digits of the content hash.
	Seed uint32 `json:"seed"`

	// Palette is the 4-color drawing palette chosen by sentiment.
	Palette []string `json:"palette"`

	// Family selects the composition algorithm.
	Family Family `json:"family"`

	// Complexity is the shape count for geometric/mixed compositions,
	// clamped to [15, 35].
	Complexity int `json:"complexity"`

	// Layers is the curve count for organic compositions and the fractal
	// recursion depth, clamped to [4, 10].
	Layers int `json:"layers"`

	// Stroke is the line width mapped from average sentence length,
	// clamped to [0.5, 5.0].
	Stroke float64 `json:"stroke"`

	// Brightness scales primitive alpha, always in [0.5, 1.0].
	Brightness float64 `json:"brightness"`

	// Sentiment is carried through for the background tone decision.
	Sentiment float64 `json:"sentiment"`

	// Entropy gates the fractal overlay.
	Entropy float64 `json:"entropy"`
}

// Fixed 4-color palettes selected by sentiment thresholds. Exactly these
// three, no interpolation.
var (
	paletteWarm     = []string{"#FF6B6B", "#FF8E53", "#FFA500", "#FFD700"}
	paletteCool     = []string{"#4169E1", "#1E90FF", "#00CED1", "#7B68EE"}
	paletteBalanced = []string{"#FF6B9D", "#C44569", "#A8E6CF", "#FFD93D"}
)

// techWords and natureWords classify keyword topics into shape families.
var techWords = map[string]bool{
	"code": true, "data": true, "system": true, "algorithm": true,
	"computer": true, "network": true, "api": true, "server": true,
	"database": true, "software": true, "program": true, "python": true,
}

var natureWords = map[string]bool{
	"tree": true, "water": true, "sky": true, "earth": true,
	"plant": true, "animal": true, "nature": true, "forest": true,
	"ocean": true, "mountain": true, "flower": true, "river": true,
}

// Map derives visual parameters from analyzed features.
func Map(f textstat.Features) Params {
	return Params{
		Seed:       Seed(f.Hash),
		Palette:    Palette(f.Sentiment),
		Family:     Classify(f.Keywords),
		Complexity: Complexity(f.Frequency.Variance),
		Layers:     Layers(f.Entropy),
		Stroke:     Stroke(f.Rhythm.AvgLength),
		Brightness: Brightness(f.Sentiment),
		Sentiment:  f.Sentiment,
		Entropy:    f.Entropy,
	}
}

// Seed parses the first 8 hex digits of a content hash as a 32-bit
// unsigned integer. A hash shorter than 8 characters (never produced by the
// analyzer) yields 0.
func Seed(hash string) uint32 {
	if len(hash) < 8 {
		return 0
	}
	v, err := strconv.ParseUint(hash[:8], 16, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// Palette selects the drawing palette by sentiment. The thresholds are
// strict: exactly 0.3 or -0.3 selects the balanced palette.
func Palette(sentiment float64) []string {
	switch {
	case sentiment > 0.3:
		return paletteWarm
	case sentiment < -0.3:
		return paletteCool
	default:
		return paletteBalanced
	}
}

// Complexity maps word frequency variance to shape count in [15, 35].
func Complexity(variance float64) int {
	return int(clamp(math.Round(variance), 15, 35))
}

// Layers maps lexical entropy to layer count in [4, 10].
func Layers(entropy float64) int {
	return int(clamp(math.Round(entropy/1.5), 4, 10))
}

// Stroke maps average sentence length to stroke thickness in [0.5, 5.0].
func Stroke(avgSentenceLength float64) float64 {
	return clamp(avgSentenceLength/5, 0.5, 5.0)
}

// Brightness maps emotional intensity to [0.5, 1.0].
func Brightness(sentiment float64) float64 {
	return 0.5 + math.Abs(sentiment)*0.5
}

// Classify counts keyword overlap against the tech and nature lexicons.
// A strict majority picks geometric or organic; ties, including zero
// overlap on both sides, classify as mixed.
func Classify(keywords []textstat.WordCount) Family {
	var tech, nature int
	for _, kw := range keywords {
		if techWords[kw.Word] {
			tech++
		}
		if natureWords[kw.Word] {
			nature++
		}
	}
	switch {
	case tech > nature:
		return FamilyGeometric
	case nature > tech:
		return FamilyOrganic
	default:
		return FamilyMixed
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
