// Package pkg provides the core libraries for Coverforge cover generation.
//
// # Overview
//
// Coverforge turns any text into a reproducible generative cover image:
// the statistics of the words pick the colors, shapes, and composition,
// and the same text always yields the same image. The pkg directory is
// organized into four main areas:
//
//  1. Analysis - Text feature extraction ([textstat], [sentiment], [wordgraph])
//  2. Mapping and rendering - Features to pixels ([visual], [render], [scene])
//  3. Orchestration - The end-to-end flow ([pipeline], [server])
//  4. Infrastructure - Caching, config, errors ([cache], [config], [errors], [observability])
//
// # Architecture
//
// The typical data flow through Coverforge:
//
//	Text (markdown post, plain file, request body)
//	         ↓
//	    [textstat] package (tokens, entropy, keywords, rhythm)
//	         ↓
//	    [visual] package (features → palette, family, complexity)
//	         ↓
//	    [render] package (deterministic scene composition)
//	         ↓
//	    [render/sink] package (SVG / PNG encoding)
//
// # Quick Start
//
// Generate a cover for a piece of text:
//
//	import (
//	    "context"
//	    "github.com/coverforge/coverforge/pkg/cache"
//	    "github.com/coverforge/coverforge/pkg/pipeline"
//	)
//
//	c, _ := cache.NewFileCache(cache.DefaultDir())
//	runner := pipeline.NewRunner(c, nil, nil)
//	defer runner.Close()
//
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Text:    "The algorithm processes data through the network.",
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
//
// # Main Packages
//
// ## Analysis
//
// [textstat] - Statistical feature extraction: tokenization, Shannon
// entropy, frequency profiles, keyword ranking, and sentence rhythm.
//
// [sentiment] - Polarity scoring with pluggable providers. The lexicon
// provider uses a built-in valence word list; the null provider always
// reports neutral.
//
// [wordgraph] - Keyword co-occurrence graphs rendered through Graphviz,
// used by the analyze command for debugging.
//
// ## Mapping and Rendering
//
// [visual] - Maps text features to visual parameters: palette, shape
// family, complexity, layer count, stroke width, and seed.
//
// [render] - Composes visual parameters into a scene of drawable
// primitives. A pure function of (params, seed): the same inputs always
// produce a bit-identical primitive list.
//
// [render/sink] - Encodes a scene as SVG markup or a rasterized PNG,
// optionally with a title/tagline overlay.
//
// [scene] - The shared output model: a background color plus an ordered
// list of primitives.
//
// ## Orchestration
//
// [pipeline] - The complete analyze → map → compose → encode flow used
// by the CLI and the HTTP service. Handles artifact caching keyed on
// content hash and render options.
//
// [server] - The HTTP rendering service (POST /covers) built on chi.
//
// ## Infrastructure
//
// [cache] - Artifact cache backends: on-disk (CLI), Redis (service),
// and a no-op null cache.
//
// [config] - TOML configuration with environment variable overrides.
//
// [errors] - Structured errors with stable machine-readable codes.
//
// [observability] - Pluggable hooks for pipeline, cache, and server
// events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/render/...       # Specific package
//
// [textstat]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/textstat
// [sentiment]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/sentiment
// [wordgraph]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/wordgraph
// [visual]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/visual
// [render]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/render/sink
// [scene]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/server
// [cache]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/cache
// [config]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/config
// [errors]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/errors
// [observability]: https://pkg.go.dev/github.com/coverforge/coverforge/pkg/observability
package pkg
