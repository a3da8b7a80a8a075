package cache

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey keys a rendered image by the content hash of the
	// source text plus every option that shapes the output bytes.
	ArtifactKey(contentHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts captures the render options that affect output bytes.
// Two renders with equal content hash and equal opts are byte-identical,
// so they may share a cache entry.
type ArtifactKeyOpts struct {
	Format   string  // "svg" or "png"
	Width    float64 // canvas width in pixels
	Height   float64 // canvas height in pixels
	Overlay  bool    // whether the text overlay is drawn
	Title    string  // overlay title (ignored when Overlay is false)
	Tagline  string  // overlay tagline (ignored when Overlay is false)
	Provider string  // sentiment provider name ("null", "lexicon")
	Seed     uint32  // explicit seed override, 0 when derived from the hash
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered cover image.
func (k *DefaultKeyer) ArtifactKey(contentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", contentHash, opts)
}
