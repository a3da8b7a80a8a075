package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/coverforge/coverforge/pkg/cache"
	"github.com/coverforge/coverforge/pkg/observability"
	"github.com/coverforge/coverforge/pkg/render"
	"github.com/coverforge/coverforge/pkg/scene"
	"github.com/coverforge/coverforge/pkg/sentiment"
	"github.com/coverforge/coverforge/pkg/textstat"
	"github.com/coverforge/coverforge/pkg/visual"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and HTTP service use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, provider, and logger;
// it doesn't store pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Provider sentiment.Provider // overrides Options.Sentiment when set
	Logger   *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete analyze → map → compose → encode pipeline
// with artifact caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	// Apply the runner's logger before validation installs the discard
	// default.
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	text := opts.Text
	if text == "" {
		loaded, err := LoadInput(opts.Input)
		if err != nil {
			return nil, err
		}
		text = loaded
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1+2: Analyze and map
	analyzeStart := time.Now()
	features := r.Analyze(text, opts)
	params := visual.Map(features)
	result.Features = features
	result.Params = params
	result.Stats.AnalyzeTime = time.Since(analyzeStart)
	result.Stats.TokenCount = len(features.Tokens)
	result.Stats.SentenceCount = len(features.Sentences)
	observability.Pipeline().OnAnalyzeComplete(ctx, result.Stats.TokenCount, result.Stats.AnalyzeTime)

	opts.Logger.Info("analyzed text",
		"tokens", result.Stats.TokenCount,
		"sentences", result.Stats.SentenceCount,
		"family", params.Family,
		"duration", result.Stats.AnalyzeTime)

	// Stage 3: Compose
	seed := params.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}
	composeStart := time.Now()
	sc := render.Compose(params, seed, opts.Width, opts.Height)
	result.Scene = sc
	result.Stats.ComposeTime = time.Since(composeStart)
	observability.Pipeline().OnComposeComplete(ctx, string(params.Family), len(sc.Primitives), result.Stats.ComposeTime)

	opts.Logger.Info("composed scene",
		"primitives", len(sc.Primitives),
		"seed", seed,
		"duration", result.Stats.ComposeTime)

	// Stage 4: Encode
	encodeStart := time.Now()
	artifacts, encodeHit, err := r.EncodeWithCacheInfo(ctx, sc, features.Hash, opts)
	result.Stats.EncodeTime = time.Since(encodeStart)
	observability.Pipeline().OnEncodeComplete(ctx, opts.Formats, result.Stats.EncodeTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.EncodeHit = encodeHit

	opts.Logger.Info("encoded outputs",
		"formats", opts.Formats,
		"cached", encodeHit,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Analyze extracts features from text and fills in sentiment from the
// provider selected by opts.
func (r *Runner) Analyze(text string, opts Options) textstat.Features {
	features := textstat.Analyze(text)
	features.Sentiment = r.provider(opts.Sentiment).Polarity(text)
	return features
}

// EncodeWithCacheInfo encodes the scene to every requested format with
// caching and returns cache hit info. The cache key combines the content
// hash of the source text with every option that shapes output bytes.
func (r *Runner) EncodeWithCacheInfo(ctx context.Context, sc scene.Scene, contentHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	// Try to get all formats from cache
	if !opts.NoCache {
		allCached := true
		artifacts := make(map[string][]byte)

		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(contentHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}

		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Encode all formats
	encoded, err := Encode(sc, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	if !opts.NoCache {
		for format, data := range encoded {
			cacheKey := r.Keyer.ArtifactKey(contentHash, opts.ArtifactKeyOpts(format))
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return encoded, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// provider resolves the sentiment provider: an explicit Runner.Provider
// wins, then the named provider, then the null provider.
func (r *Runner) provider(name string) sentiment.Provider {
	if r.Provider != nil {
		return r.Provider
	}
	return ProviderFor(name)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
