// Package pipeline provides the core cover generation pipeline for
// coverforge.
//
// This package implements the complete analyze → map → compose → encode
// pipeline that can be used by CLI and HTTP service components. By
// centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Analyze: Extract statistical features from the input text
//  2. Map: Derive visual parameters from the features
//  3. Compose: Build the deterministic scene from the parameters
//  4. Encode: Serialize the scene to output formats (SVG, PNG)
//
// The whole pipeline is a pure function of the input text and options:
// the same text always produces the same bytes.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "post.md",
//	    Formats: []string{"png"},
//	    Title:   "My Blog",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/coverforge/coverforge/pkg/cache"
	"github.com/coverforge/coverforge/pkg/errors"
	"github.com/coverforge/coverforge/pkg/scene"
	"github.com/coverforge/coverforge/pkg/sentiment"
	"github.com/coverforge/coverforge/pkg/textstat"
	"github.com/coverforge/coverforge/pkg/visual"
)

const (
	// DefaultWidth is the default canvas width in pixels, sized for
	// social preview cards.
	DefaultWidth = 1200.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 630.0
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// Sentiment provider names accepted by Options.Sentiment.
const (
	SentimentNull    = "null"
	SentimentLexicon = "lexicon"
)

// ValidSentiments is the set of supported sentiment providers.
var ValidSentiments = map[string]bool{
	SentimentNull:    true,
	SentimentLexicon: true,
}

// Options contains all configuration for the cover pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input options. Exactly one of Text or Input must be set.
	Text  string `json:"text,omitempty"`  // raw source text
	Input string `json:"input,omitempty"` // path to a text or markdown file

	// Analysis options
	Sentiment string `json:"sentiment,omitempty"` // provider name, default "null"
	Seed      uint32 `json:"seed,omitempty"`      // overrides the hash-derived seed when nonzero

	// Render options
	Width     float64  `json:"width,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	NoOverlay bool     `json:"no_overlay,omitempty"` // suppress the title/tagline block
	Title     string   `json:"title,omitempty"`
	Tagline   string   `json:"tagline,omitempty"`

	// NoCache bypasses the artifact cache for this run.
	NoCache bool `json:"no_cache,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Features is the statistical analysis of the input text.
	Features textstat.Features

	// Params holds the visual parameters derived from Features.
	Params visual.Params

	// Scene is the composed geometry before encoding.
	Scene scene.Scene

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifacts came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TokenCount    int
	SentenceCount int
	AnalyzeTime   time.Duration
	ComposeTime   time.Duration
	EncodeTime    time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	EncodeHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSentiment checks that a sentiment provider name is valid.
// The empty string selects the default provider.
func ValidateSentiment(name string) error {
	if name != "" && !ValidSentiments[name] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid sentiment provider: %q (must be one of: null, lexicon)", name)
	}
	return nil
}

// ProviderFor returns the sentiment provider for a validated name.
func ProviderFor(name string) sentiment.Provider {
	if name == SentimentLexicon {
		return sentiment.Lexicon{}
	}
	return sentiment.Null{}
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Text == "" && o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "text or input file is required")
	}
	if err := ValidateSentiment(o.Sentiment); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidSize,
			"canvas size must be positive, got %gx%g", o.Width, o.Height)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Overlay reports whether the title/tagline block should be drawn.
func (o *Options) Overlay() bool {
	return !o.NoOverlay && (o.Title != "" || o.Tagline != "")
}

// ArtifactKeyOpts returns cache key options for artifact encoding.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Width:    o.Width,
		Height:   o.Height,
		Overlay:  o.Overlay(),
		Title:    o.Title,
		Tagline:  o.Tagline,
		Provider: o.Sentiment,
		Seed:     o.Seed,
	}
}
