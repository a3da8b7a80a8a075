// Package scene defines the renderer's output model: a background color and
// an ordered list of drawable primitives.
//
// A Scene is immutable once produced. Encoders (SVG, PNG) walk the primitive
// list in order; the renderer guarantees the list is bit-identical for
// identical inputs, so encoders must not reorder it.
//
// Coordinates are raster-style: the origin is the top-left corner with y
// growing downward, matching both SVG and image rasterization.
package scene

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Attrs carries the paint attributes shared by all primitives.
type Attrs struct {
	// Color is the paint color as a #RRGGBB hex string.
	Color string

	// Alpha is the opacity in [0, 1].
	Alpha float64

	// Stroke is the outline width in pixels.
	Stroke float64

	// Fill indicates whether the shape interior is painted. Stroked
	// shapes are always outlined; curves and lines ignore this.
	Fill bool
}

// Primitive is a single drawable element. The concrete types are Rect,
// Circle, Polygon, Path, and Line.
type Primitive interface {
	primitive()
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Attrs
	X, Y, W, H float64
}

// Circle is a circle centered at (X, Y).
type Circle struct {
	Attrs
	X, Y, R float64
}

// Polygon is a closed shape defined by its vertices in order.
type Polygon struct {
	Attrs
	Points []Point
}

// Path is an open or closed polyline, typically a sampled parametric curve.
type Path struct {
	Attrs
	Points []Point
	Closed bool
}

// Line is a single straight segment.
type Line struct {
	Attrs
	X1, Y1, X2, Y2 float64
}

func (Rect) primitive()    {}
func (Circle) primitive()  {}
func (Polygon) primitive() {}
func (Path) primitive()    {}
func (Line) primitive()    {}

// Scene is the complete drawable output for one document.
type Scene struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height float64

	// Background is the canvas tone as a #RRGGBB hex string.
	Background string

	// Primitives are drawn in order, first to last.
	Primitives []Primitive
}
