// Package sink encodes a composed scene into output formats.
//
// The SVG encoder writes vector markup directly; the PNG encoder rasterizes
// at a supersampled scale and downsamples for smooth edges. Both accept the
// optional title/tagline overlay, which consumes only the scene's background
// tone to pick contrasting text colors.
package sink

import (
	"bytes"
	"fmt"

	"github.com/coverforge/coverforge/pkg/scene"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	overlay Overlay
}

// WithSVGOverlay enables the title/tagline overlay.
func WithSVGOverlay(o Overlay) SVGOption {
	return func(r *svgRenderer) { r.overlay = o }
}

// RenderSVG encodes the scene as an SVG document.
func RenderSVG(sc scene.Scene, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		sc.Width, sc.Height, sc.Width, sc.Height)
	fmt.Fprintf(&buf, `<rect width="%.0f" height="%.0f" fill="%s"/>`+"\n", sc.Width, sc.Height, sc.Background)

	for _, prim := range sc.Primitives {
		writePrimitive(&buf, prim)
	}

	if r.overlay.enabled() {
		writeOverlaySVG(&buf, sc, r.overlay)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writePrimitive(buf *bytes.Buffer, prim scene.Primitive) {
	switch s := prim.(type) {
	case scene.Rect:
		fmt.Fprintf(buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>`+"\n",
			s.X, s.Y, s.W, s.H, paintAttrs(s.Attrs))
	case scene.Circle:
		fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>`+"\n",
			s.X, s.Y, s.R, paintAttrs(s.Attrs))
	case scene.Polygon:
		fmt.Fprintf(buf, `<polygon points="%s" %s/>`+"\n",
			pointList(s.Points), paintAttrs(s.Attrs))
	case scene.Path:
		fmt.Fprintf(buf, `<path d="%s" %s/>`+"\n",
			pathData(s.Points, s.Closed), paintAttrs(s.Attrs))
	case scene.Line:
		fmt.Fprintf(buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f" stroke-linecap="round"/>`+"\n",
			s.X1, s.Y1, s.X2, s.Y2, s.Color, s.Stroke, s.Alpha)
	}
}

// paintAttrs renders the shared fill/stroke attributes. Unfilled shapes
// (sampled curves) paint only their outline.
func paintAttrs(a scene.Attrs) string {
	if a.Fill {
		return fmt.Sprintf(`fill="%s" fill-opacity="%.2f" stroke="%s" stroke-opacity="%.2f" stroke-width="%.2f"`,
			a.Color, a.Alpha, a.Color, a.Alpha, a.Stroke)
	}
	return fmt.Sprintf(`fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="%.2f"`,
		a.Color, a.Alpha, a.Stroke)
}

func pointList(points []scene.Point) string {
	var b bytes.Buffer
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

func pathData(points []scene.Point, closed bool) string {
	var b bytes.Buffer
	for i, p := range points {
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%.2f %.2f ", cmd, p.X, p.Y)
	}
	if closed {
		b.WriteByte('Z')
	}
	return b.String()
}

func writeOverlaySVG(buf *bytes.Buffer, sc scene.Scene, o Overlay) {
	titleColor, taglineColor := overlayColors(sc.Background)

	fmt.Fprintf(buf, `<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="#FFFFFF" fill-opacity="%.2f"/>`+"\n",
		backdropX, backdropY, backdropW, backdropH, backdropAlpha)

	if o.Title != "" {
		fmt.Fprintf(buf, `<text x="%.0f" y="%.0f" font-family="sans-serif" font-size="%.0f" font-weight="bold" fill="%s" dominant-baseline="hanging">%s</text>`+"\n",
			titleX, titleY, titleSize, titleColor, escapeText(o.Title))
	}
	if o.Tagline != "" {
		fmt.Fprintf(buf, `<text x="%.0f" y="%.0f" font-family="sans-serif" font-size="%.0f" font-style="italic" fill="%s" dominant-baseline="hanging">%s</text>`+"\n",
			taglineX, taglineY, taglineSize, taglineColor, escapeText(o.Tagline))
	}
}

func escapeText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
