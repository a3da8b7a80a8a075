package sink

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
)

// Overlay is the title/tagline decoration applied after the generative
// composition. It consumes only the background tone decision: everything
// else about its placement and sizing is fixed.
type Overlay struct {
	Title   string
	Tagline string
}

func (o Overlay) enabled() bool {
	return o.Title != "" || o.Tagline != ""
}

// Fixed overlay geometry, in canvas pixels. Text positions anchor the top
// of the glyph box.
const (
	backdropX     = 30.0
	backdropY     = 40.0
	backdropW     = 550.0
	backdropH     = 140.0
	backdropAlpha = 0.15

	titleX    = 50.0
	titleY    = 50.0
	titleSize = 52.0

	taglineX    = 50.0
	taglineY    = 115.0
	taglineSize = 18.0
)

// Overlay text colors by background class.
const (
	darkTitle    = "#2C3E50"
	darkTagline  = "#546E7A"
	lightTitle   = "#FFFFFF"
	lightTagline = "#E0E0E0"
)

// overlayColors picks title and tagline colors that contrast with the
// background tone: dark ink on light canvases, white on dark ones.
func overlayColors(background string) (title, tagline string) {
	bg, err := colorful.Hex(background)
	if err != nil {
		return darkTitle, darkTagline
	}
	if l, _, _ := bg.Lab(); l > 0.5 {
		return darkTitle, darkTagline
	}
	return lightTitle, lightTagline
}

// fontCandidates are tried in order when rasterizing overlay text. The
// first family found on the host wins; when none resolve, the raster
// encoder skips the overlay text rather than failing the render.
var fontCandidates = []string{
	"DejaVuSans-Bold.ttf",
	"Arial Bold.ttf",
	"Arial.ttf",
	"Verdana.ttf",
	"FreeSansBold.ttf",
	"LiberationSans-Bold.ttf",
}

// loadFace locates a usable system font and returns a face at the given
// point size.
func loadFace(points float64) (font.Face, error) {
	var lastErr error
	for _, name := range fontCandidates {
		path, err := findfont.Find(name)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		ft, err := truetype.Parse(data)
		if err != nil {
			lastErr = err
			continue
		}
		return truetype.NewFace(ft, &truetype.Options{Size: points}), nil
	}
	return nil, lastErr
}
