package pipeline

import (
	"github.com/coverforge/coverforge/pkg/errors"
	"github.com/coverforge/coverforge/pkg/render/sink"
	"github.com/coverforge/coverforge/pkg/scene"
)

// Encode serializes the scene to every format in opts.Formats.
// Callers normally go through Runner.EncodeWithCacheInfo; this function
// performs the uncached work.
func Encode(sc scene.Scene, opts Options) (map[string][]byte, error) {
	overlay := sink.Overlay{}
	if opts.Overlay() {
		overlay = sink.Overlay{Title: opts.Title, Tagline: opts.Tagline}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(sc, sink.WithSVGOverlay(overlay))
		case FormatPNG:
			data, err := sink.RenderPNG(sc, sink.WithPNGOverlay(overlay))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode png")
			}
			artifacts[format] = data
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return artifacts, nil
}
