package sink

import (
	"bytes"
	"image/png"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testScene())
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("output is not a PNG")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1200 || bounds.Dy() != 630 {
		t.Errorf("dimensions = %dx%d, want 1200x630", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGScaleOne(t *testing.T) {
	data, err := RenderPNG(testScene(), WithPNGScale(1.0))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 1200 {
		t.Errorf("width = %d, want 1200", img.Bounds().Dx())
	}
}

func TestRenderPNGOverlayGracefulWithoutFont(t *testing.T) {
	// Must not fail even on hosts with no discoverable fonts.
	_, err := RenderPNG(testScene(), WithPNGOverlay(Overlay{Title: "A Title", Tagline: "a tagline"}))
	if err != nil {
		t.Fatalf("RenderPNG with overlay: %v", err)
	}
}
