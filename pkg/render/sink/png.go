package sink

import (
	"bytes"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/coverforge/coverforge/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	overlay Overlay
	scale   float64
}

// WithPNGOverlay enables the title/tagline overlay.
func WithPNGOverlay(o Overlay) PNGOption {
	return func(r *pngRenderer) { r.overlay = o }
}

// WithPNGScale sets the supersampling factor (default 2.0 for 2x
// rasterization followed by a Lanczos downscale to the target size).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the scene to PNG bytes.
func RenderPNG(sc scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1.0
	}

	dc := gg.NewContext(int(sc.Width*r.scale), int(sc.Height*r.scale))
	dc.Scale(r.scale, r.scale)

	dc.SetHexColor(sc.Background)
	dc.Clear()

	for _, prim := range sc.Primitives {
		drawPrimitive(dc, prim)
	}

	if r.overlay.enabled() {
		drawOverlay(dc, sc, r.overlay)
	}

	img := dc.Image()
	if r.scale != 1.0 {
		img = imaging.Resize(img, int(sc.Width), int(sc.Height), imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawPrimitive(dc *gg.Context, prim scene.Primitive) {
	switch s := prim.(type) {
	case scene.Rect:
		dc.DrawRectangle(s.X, s.Y, s.W, s.H)
		paint(dc, s.Attrs)
	case scene.Circle:
		dc.DrawCircle(s.X, s.Y, s.R)
		paint(dc, s.Attrs)
	case scene.Polygon:
		tracePath(dc, s.Points, true)
		paint(dc, s.Attrs)
	case scene.Path:
		tracePath(dc, s.Points, s.Closed)
		paint(dc, s.Attrs)
	case scene.Line:
		dc.MoveTo(s.X1, s.Y1)
		dc.LineTo(s.X2, s.Y2)
		setColor(dc, s.Color, s.Alpha)
		dc.SetLineWidth(s.Stroke)
		dc.SetLineCapRound()
		dc.Stroke()
	}
}

func tracePath(dc *gg.Context, points []scene.Point, closed bool) {
	for i, p := range points {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	if closed {
		dc.ClosePath()
	}
}

func paint(dc *gg.Context, a scene.Attrs) {
	setColor(dc, a.Color, a.Alpha)
	dc.SetLineWidth(a.Stroke)
	if a.Fill {
		dc.FillPreserve()
	}
	dc.Stroke()
}

func setColor(dc *gg.Context, hex string, alpha float64) {
	c, err := colorful.Hex(hex)
	if err != nil {
		dc.SetRGBA(0, 0, 0, alpha)
		return
	}
	dc.SetRGBA(c.R, c.G, c.B, alpha)
}

// drawOverlay rasterizes the title/tagline block. When no usable system
// font is found the backdrop is still painted but the text is skipped:
// a cover without its caption beats a failed render.
func drawOverlay(dc *gg.Context, sc scene.Scene, o Overlay) {
	titleColor, taglineColor := overlayColors(sc.Background)

	dc.DrawRectangle(backdropX, backdropY, backdropW, backdropH)
	dc.SetRGBA(1, 1, 1, backdropAlpha)
	dc.Fill()

	if o.Title != "" {
		if face, err := loadFace(titleSize); err == nil {
			dc.SetFontFace(face)
			setColor(dc, titleColor, 1)
			dc.DrawStringAnchored(o.Title, titleX, titleY, 0, 1)
		}
	}
	if o.Tagline != "" {
		if face, err := loadFace(taglineSize); err == nil {
			dc.SetFontFace(face)
			setColor(dc, taglineColor, 1)
			dc.DrawStringAnchored(o.Tagline, taglineX, taglineY, 0, 1)
		}
	}
}
