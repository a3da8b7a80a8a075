package visual

import (
	"reflect"
	"testing"

	"github.com/coverforge/coverforge/pkg/textstat"
)

func TestSeed(t *testing.T) {
	if got, want := Seed("deadbeef0123456789abcdef01234567"), uint32(0xdeadbeef); got != want {
		t.Errorf("Seed = %#x, want %#x", got, want)
	}
	if got := Seed("short"); got != 0 {
		t.Errorf("Seed of short hash = %d, want 0", got)
	}
	if got := Seed("zzzzzzzz000000000000000000000000"); got != 0 {
		t.Errorf("Seed of invalid hex = %d, want 0", got)
	}
}

func TestPaletteThresholds(t *testing.T) {
	tests := []struct {
		sentiment float64
		want      []string
	}{
		{0.5, paletteWarm},
		{0.31, paletteWarm},
		{0.3, paletteBalanced}, // boundary is strict
		{0.0, paletteBalanced},
		{-0.3, paletteBalanced}, // boundary is strict
		{-0.31, paletteCool},
		{-1.0, paletteCool},
	}

	for _, tt := range tests {
		if got := Palette(tt.sentiment); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Palette(%f) = %v, want %v", tt.sentiment, got, tt.want)
		}
	}
}

func TestComplexityClamping(t *testing.T) {
	tests := []struct {
		variance float64
		want     int
	}{
		{0, 15},
		{14.9, 15},
		{20, 20},
		{22.4, 22},
		{22.6, 23},
		{35, 35},
		{10000, 35},
	}

	for _, tt := range tests {
		if got := Complexity(tt.variance); got != tt.want {
			t.Errorf("Complexity(%f) = %d, want %d", tt.variance, got, tt.want)
		}
	}
}

func TestLayersClamping(t *testing.T) {
	tests := []struct {
		entropy float64
		want    int
	}{
		{0, 4},
		{6, 4},
		{9, 6},
		{15, 10},
		{100, 10},
	}

	for _, tt := range tests {
		if got := Layers(tt.entropy); got != tt.want {
			t.Errorf("Layers(%f) = %d, want %d", tt.entropy, got, tt.want)
		}
	}
}

func TestStroke(t *testing.T) {
	tests := []struct {
		avgLen float64
		want   float64
	}{
		{0, 0.5},
		{1, 0.5},
		{10, 2.0},
		{25, 5.0},
		{1000, 5.0},
	}

	for _, tt := range tests {
		if got := Stroke(tt.avgLen); got != tt.want {
			t.Errorf("Stroke(%f) = %f, want %f", tt.avgLen, got, tt.want)
		}
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		sentiment float64
		want      float64
	}{
		{0, 0.5},
		{0.5, 0.75},
		{-0.5, 0.75},
		{1, 1.0},
		{-1, 1.0},
	}

	for _, tt := range tests {
		if got := Brightness(tt.sentiment); got != tt.want {
			t.Errorf("Brightness(%f) = %f, want %f", tt.sentiment, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	kw := func(words ...string) []textstat.WordCount {
		out := make([]textstat.WordCount, len(words))
		for i, w := range words {
			out[i] = textstat.WordCount{Word: w, Count: 1}
		}
		return out
	}

	tests := []struct {
		name     string
		keywords []textstat.WordCount
		want     Family
	}{
		{"tech majority", kw("code", "server", "flower"), FamilyGeometric},
		{"nature majority", kw("forest", "river", "code"), FamilyOrganic},
		{"equal counts", kw("code", "forest"), FamilyMixed},
		{"no overlap", kw("philosophy", "history"), FamilyMixed},
		{"no keywords", nil, FamilyMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.keywords); got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMapIsPure(t *testing.T) {
	f := textstat.Analyze("code database api server network algorithm. More code and data here!")
	f.Sentiment = 0.1

	a := Map(f)
	b := Map(f)
	if !reflect.DeepEqual(a, b) {
		t.Error("Map is not deterministic for identical features")
	}

	if a.Complexity < 15 || a.Complexity > 35 {
		t.Errorf("complexity %d outside [15, 35]", a.Complexity)
	}
	if a.Layers < 4 || a.Layers > 10 {
		t.Errorf("layers %d outside [4, 10]", a.Layers)
	}
	if a.Brightness < 0.5 || a.Brightness > 1.0 {
		t.Errorf("brightness %f outside [0.5, 1.0]", a.Brightness)
	}
}
