// Package render turns visual parameters into a concrete drawable scene.
//
// Compose is a pure function of (params, seed): all randomness comes from a
// PCG generator constructed locally from the seed, so the same inputs always
// produce a bit-identical primitive list. Concurrent composes are safe
// because each call owns its generator; sharing one generator across calls
// would break reproducibility and is not supported.
package render

import (
	"math"
	"math/rand/v2"

	"github.com/coverforge/coverforge/pkg/scene"
	"github.com/coverforge/coverforge/pkg/visual"
)

// Background tones selected directly from sentiment, independent of the
// drawing palette.
const (
	toneWarm    = "#FFF5F0"
	toneCool    = "#F0F5FF"
	toneNeutral = "#F8F9FA"
)

// curveSamples is the fixed sample count for parametric curves and loops.
const curveSamples = 100

// fractalEntropyThreshold gates the fractal overlay: only sufficiently
// diverse vocabulary earns the branching structure.
const fractalEntropyThreshold = 5.0

// Compose renders params into a scene on a width x height canvas.
// All pseudo-randomness derives from seed.
func Compose(p visual.Params, seed uint32, width, height float64) scene.Scene {
	// Same PCG construction as a fixed-seed shuffle: two related streams
	// derived from one seed keep the generator state reproducible.
	s := uint64(seed)
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))

	sc := scene.Scene{
		Width:      width,
		Height:     height,
		Background: BackgroundTone(p.Sentiment),
	}

	switch p.Family {
	case visual.FamilyGeometric:
		sc.Primitives = composeGeometric(rng, p, width, height)
	case visual.FamilyOrganic:
		sc.Primitives = composeOrganic(rng, p, width, height)
	default:
		sc.Primitives = composeMixed(rng, p, width, height)
	}

	if p.Entropy > fractalEntropyThreshold {
		sc.Primitives = append(sc.Primitives, fractalOverlay(p, width, height)...)
	}

	return sc
}

// BackgroundTone picks the canvas tone from sentiment. The thresholds here
// (±0.2) are deliberately looser than the palette thresholds (±0.3), so a
// mildly positive text gets a warm canvas under a balanced palette.
func BackgroundTone(sentiment float64) string {
	switch {
	case sentiment > 0.2:
		return toneWarm
	case sentiment < -0.2:
		return toneCool
	default:
		return toneNeutral
	}
}

// composeGeometric scatters complexity filled shapes: rectangles, circles,
// and regular polygons with 5 to 8 sides, colors cycling through the palette.
func composeGeometric(rng *rand.Rand, p visual.Params, w, h float64) []scene.Primitive {
	prims := make([]scene.Primitive, 0, p.Complexity)
	alpha := 0.5 + p.Brightness*0.2

	for i := 0; i < p.Complexity; i++ {
		x := rng.Float64() * w
		y := rng.Float64() * h
		size := rng.Float64()*100 + 50

		attrs := scene.Attrs{
			Color:  p.Palette[i%len(p.Palette)],
			Alpha:  alpha,
			Stroke: p.Stroke,
			Fill:   true,
		}

		switch rng.IntN(3) {
		case 0:
			prims = append(prims, scene.Rect{Attrs: attrs, X: x, Y: y, W: size, H: size * 0.6})
		case 1:
			prims = append(prims, scene.Circle{Attrs: attrs, X: x, Y: y, R: size / 2})
		default:
			sides := 5 + rng.IntN(4)
			prims = append(prims, regularPolygon(attrs, x, y, size/2, sides))
		}
	}
	return prims
}

// composeOrganic draws Layers cubic Bezier curves with random control
// points, each sampled at curveSamples parametric steps.
func composeOrganic(rng *rand.Rand, p visual.Params, w, h float64) []scene.Primitive {
	prims := make([]scene.Primitive, 0, p.Layers)
	alpha := 0.6 + p.Brightness*0.2

	for i := 0; i < p.Layers; i++ {
		var ctrl [4]scene.Point
		for j := range ctrl {
			ctrl[j] = scene.Point{X: rng.Float64() * w, Y: rng.Float64() * h}
		}

		prims = append(prims, scene.Path{
			Attrs: scene.Attrs{
				Color:  p.Palette[i%len(p.Palette)],
				Alpha:  alpha,
				Stroke: p.Stroke,
			},
			Points: sampleCubicBezier(ctrl, curveSamples),
		})
	}
	return prims
}

// composeMixed emits complexity/2 circles followed by complexity/2 closed
// parametric loops centered on the canvas.
func composeMixed(rng *rand.Rand, p visual.Params, w, h float64) []scene.Primitive {
	half := p.Complexity / 2
	prims := make([]scene.Primitive, 0, 2*half)

	for i := 0; i < half; i++ {
		x := rng.Float64() * w
		y := rng.Float64() * h
		size := rng.Float64()*80 + 40

		prims = append(prims, scene.Circle{
			Attrs: scene.Attrs{
				Color:  p.Palette[i%len(p.Palette)],
				Alpha:  0.5,
				Stroke: 2,
				Fill:   true,
			},
			X: x, Y: y, R: size / 2,
		})
	}

	for i := 0; i < half; i++ {
		rx := rng.Float64() * 200
		ry := rng.Float64() * 150

		prims = append(prims, scene.Path{
			Attrs: scene.Attrs{
				Color:  p.Palette[i%len(p.Palette)],
				Alpha:  0.7,
				Stroke: 1.5,
			},
			Points: sampleEllipse(w/2, h/2, rx, ry, curveSamples),
			Closed: true,
		})
	}
	return prims
}

// fractalOverlay appends a binary branching structure rooted at the canvas
// bottom-center, growing upward. The recursion depth equals the layer
// count; each child decrements the remaining depth while scaling length
// and thickness by 0.7 and fanning out ±25 degrees.
func fractalOverlay(p visual.Params, w, h float64) []scene.Primitive {
	alpha := 0.6 + p.Brightness*0.3
	var prims []scene.Primitive
	branch(&prims, p, w/2, h, 90, p.Layers, 100, p.Stroke, alpha)
	return prims
}

// branch emits one segment and recurses into its two children, terminating
// at depth 0. The segment color cycles through the palette indexed by the
// remaining depth. Angles are degrees measured counterclockwise from the
// positive x axis with y growing downward, so 90 points up.
func branch(prims *[]scene.Primitive, p visual.Params, x, y, angle float64, depth int, length, thickness, alpha float64) {
	if depth == 0 {
		return
	}

	rad := angle * math.Pi / 180
	x2 := x + length*math.Cos(rad)
	y2 := y - length*math.Sin(rad)

	*prims = append(*prims, scene.Line{
		Attrs: scene.Attrs{
			Color:  p.Palette[depth%len(p.Palette)],
			Alpha:  alpha,
			Stroke: thickness,
		},
		X1: x, Y1: y, X2: x2, Y2: y2,
	})

	branch(prims, p, x2, y2, angle-25, depth-1, length*0.7, thickness*0.7, alpha)
	branch(prims, p, x2, y2, angle+25, depth-1, length*0.7, thickness*0.7, alpha)
}

// regularPolygon builds an n-gon with vertices evenly spaced on a circle of
// radius r around (cx, cy).
func regularPolygon(attrs scene.Attrs, cx, cy, r float64, n int) scene.Polygon {
	points := make([]scene.Point, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		points[k] = scene.Point{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		}
	}
	return scene.Polygon{Attrs: attrs, Points: points}
}

// sampleCubicBezier evaluates the standard cubic Bezier formula
// B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3
// at n evenly spaced t values over [0, 1], endpoints included.
func sampleCubicBezier(ctrl [4]scene.Point, n int) []scene.Point {
	points := make([]scene.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		mt := 1 - t
		b0 := mt * mt * mt
		b1 := 3 * mt * mt * t
		b2 := 3 * mt * t * t
		b3 := t * t * t
		points[i] = scene.Point{
			X: b0*ctrl[0].X + b1*ctrl[1].X + b2*ctrl[2].X + b3*ctrl[3].X,
			Y: b0*ctrl[0].Y + b1*ctrl[1].Y + b2*ctrl[2].Y + b3*ctrl[3].Y,
		}
	}
	return points
}

// sampleEllipse traces a full turn around (cx, cy) with independent x/y
// radii, n samples with both endpoints included.
func sampleEllipse(cx, cy, rx, ry float64, n int) []scene.Point {
	points := make([]scene.Point, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n-1)
		points[i] = scene.Point{
			X: cx + rx*math.Cos(t),
			Y: cy + ry*math.Sin(t),
		}
	}
	return points
}
