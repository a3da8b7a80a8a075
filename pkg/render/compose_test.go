package render

import (
	"math"
	"reflect"
	"testing"

	"github.com/coverforge/coverforge/pkg/scene"
	"github.com/coverforge/coverforge/pkg/visual"
)

func testParams(family visual.Family) visual.Params {
	return visual.Params{
		Seed:       0xdeadbeef,
		Palette:    []string{"#FF6B9D", "#C44569", "#A8E6CF", "#FFD93D"},
		Family:     family,
		Complexity: 20,
		Layers:     5,
		Stroke:     2.0,
		Brightness: 0.5,
	}
}

func TestComposeDeterminism(t *testing.T) {
	for _, family := range []visual.Family{visual.FamilyGeometric, visual.FamilyOrganic, visual.FamilyMixed} {
		t.Run(string(family), func(t *testing.T) {
			p := testParams(family)
			a := Compose(p, p.Seed, 1200, 630)
			b := Compose(p, p.Seed, 1200, 630)
			if !reflect.DeepEqual(a, b) {
				t.Error("identical params and seed produced different scenes")
			}
		})
	}
}

func TestComposeSeedSensitivity(t *testing.T) {
	p := testParams(visual.FamilyGeometric)
	a := Compose(p, 1, 1200, 630)
	b := Compose(p, 2, 1200, 630)
	if reflect.DeepEqual(a.Primitives, b.Primitives) {
		t.Error("different seeds produced identical primitive lists")
	}
}

func TestComposeGeometric(t *testing.T) {
	p := testParams(visual.FamilyGeometric)
	sc := Compose(p, p.Seed, 1200, 630)

	if got, want := len(sc.Primitives), p.Complexity; got != want {
		t.Fatalf("primitive count = %d, want %d", got, want)
	}
	for i, prim := range sc.Primitives {
		switch shape := prim.(type) {
		case scene.Rect:
			if shape.W < 50 || shape.W > 150 {
				t.Errorf("primitive %d: rect width %f outside [50, 150]", i, shape.W)
			}
			if math.Abs(shape.H-shape.W*0.6) > 1e-9 {
				t.Errorf("primitive %d: rect aspect %f, want 0.6", i, shape.H/shape.W)
			}
		case scene.Circle:
			if shape.R < 25 || shape.R > 75 {
				t.Errorf("primitive %d: circle radius %f outside [25, 75]", i, shape.R)
			}
		case scene.Polygon:
			if n := len(shape.Points); n < 5 || n > 8 {
				t.Errorf("primitive %d: polygon with %d vertices, want 5..8", i, n)
			}
		default:
			t.Errorf("primitive %d: unexpected type %T", i, prim)
		}
	}
}

func TestComposeGeometricColorCycle(t *testing.T) {
	p := testParams(visual.FamilyGeometric)
	sc := Compose(p, p.Seed, 1200, 630)

	colorOf := func(prim scene.Primitive) string {
		switch s := prim.(type) {
		case scene.Rect:
			return s.Color
		case scene.Circle:
			return s.Color
		case scene.Polygon:
			return s.Color
		}
		return ""
	}

	for i, prim := range sc.Primitives {
		if got, want := colorOf(prim), p.Palette[i%len(p.Palette)]; got != want {
			t.Errorf("primitive %d color = %s, want %s", i, got, want)
		}
	}
}

func TestComposeOrganic(t *testing.T) {
	p := testParams(visual.FamilyOrganic)
	sc := Compose(p, p.Seed, 1200, 630)

	if got, want := len(sc.Primitives), p.Layers; got != want {
		t.Fatalf("primitive count = %d, want %d", got, want)
	}
	for i, prim := range sc.Primitives {
		path, ok := prim.(scene.Path)
		if !ok {
			t.Fatalf("primitive %d: type %T, want Path", i, prim)
		}
		if got := len(path.Points); got != curveSamples {
			t.Errorf("primitive %d: %d samples, want %d", i, got, curveSamples)
		}
		if path.Stroke != p.Stroke {
			t.Errorf("primitive %d: stroke %f, want %f", i, path.Stroke, p.Stroke)
		}
	}
}

func TestComposeMixed(t *testing.T) {
	p := testParams(visual.FamilyMixed)
	sc := Compose(p, p.Seed, 1200, 630)

	half := p.Complexity / 2
	if got, want := len(sc.Primitives), 2*half; got != want {
		t.Fatalf("primitive count = %d, want %d", got, want)
	}

	for i := 0; i < half; i++ {
		c, ok := sc.Primitives[i].(scene.Circle)
		if !ok {
			t.Fatalf("primitive %d: type %T, want Circle", i, sc.Primitives[i])
		}
		if c.Alpha != 0.5 || c.Stroke != 2 {
			t.Errorf("circle %d: alpha %f stroke %f, want 0.5 and 2", i, c.Alpha, c.Stroke)
		}
	}
	for i := half; i < 2*half; i++ {
		loop, ok := sc.Primitives[i].(scene.Path)
		if !ok {
			t.Fatalf("primitive %d: type %T, want Path", i, sc.Primitives[i])
		}
		if !loop.Closed {
			t.Errorf("loop %d is not closed", i)
		}
		if loop.Alpha != 0.7 || loop.Stroke != 1.5 {
			t.Errorf("loop %d: alpha %f stroke %f, want 0.7 and 1.5", i, loop.Alpha, loop.Stroke)
		}
	}
}

func TestFractalOverlay(t *testing.T) {
	p := testParams(visual.FamilyOrganic)
	p.Entropy = 6.0 // above threshold
	sc := Compose(p, p.Seed, 1200, 630)

	var lines []scene.Line
	for _, prim := range sc.Primitives {
		if l, ok := prim.(scene.Line); ok {
			lines = append(lines, l)
		}
	}

	// A full binary tree of depth d has 2^d - 1 segments.
	if got, want := len(lines), (1<<p.Layers)-1; got != want {
		t.Fatalf("fractal segment count = %d, want %d", got, want)
	}

	// The trunk grows straight up from the bottom center.
	trunk := lines[0]
	if trunk.X1 != 600 || trunk.Y1 != 630 {
		t.Errorf("trunk root = (%f, %f), want (600, 630)", trunk.X1, trunk.Y1)
	}
	if math.Abs(trunk.X2-600) > 1e-9 || math.Abs(trunk.Y2-530) > 1e-9 {
		t.Errorf("trunk tip = (%f, %f), want (600, 530)", trunk.X2, trunk.Y2)
	}
}

func TestFractalGate(t *testing.T) {
	p := testParams(visual.FamilyGeometric)
	p.Entropy = 5.0 // exactly at threshold: no overlay
	sc := Compose(p, p.Seed, 1200, 630)

	for _, prim := range sc.Primitives {
		if _, ok := prim.(scene.Line); ok {
			t.Fatal("fractal emitted at entropy = 5.0, want strict > 5")
		}
	}
}

func TestBackgroundTone(t *testing.T) {
	tests := []struct {
		sentiment float64
		want      string
	}{
		{0.5, toneWarm},
		{0.2, toneNeutral}, // strict threshold
		{0.0, toneNeutral},
		{-0.2, toneNeutral}, // strict threshold
		{-0.5, toneCool},
	}

	for _, tt := range tests {
		if got := BackgroundTone(tt.sentiment); got != tt.want {
			t.Errorf("BackgroundTone(%f) = %s, want %s", tt.sentiment, got, tt.want)
		}
	}
}

func TestComposeEmptyParams(t *testing.T) {
	// Zero-feature input still renders a valid minimal scene.
	p := visual.Params{
		Palette:    []string{"#FF6B9D", "#C44569", "#A8E6CF", "#FFD93D"},
		Family:     visual.FamilyMixed,
		Complexity: 15,
		Layers:     4,
		Stroke:     0.5,
		Brightness: 0.5,
	}
	sc := Compose(p, 0, 1200, 630)
	if sc.Background == "" {
		t.Error("missing background")
	}
	if len(sc.Primitives) == 0 {
		t.Error("no primitives in minimal scene")
	}
}
