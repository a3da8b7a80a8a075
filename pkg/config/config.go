// Package config loads coverforge settings from a TOML file with
// environment overrides.
//
// Resolution order, later wins:
//  1. built-in defaults
//  2. coverforge.toml (or the file named by --config)
//  3. COVERFORGE_* environment variables (a .env file is honored)
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/coverforge/coverforge/pkg/errors"
)

// DefaultFile is the config file name looked up in the working
// directory when --config is not given.
const DefaultFile = "coverforge.toml"

// SiteConfig holds the overlay text placed on generated covers.
type SiteConfig struct {
	Title   string `toml:"title"`
	Tagline string `toml:"tagline"`
}

// RenderConfig holds canvas and output settings.
type RenderConfig struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Formats []string `toml:"formats"`
	Overlay bool     `toml:"overlay"`
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	Dir      string `toml:"dir"`       // empty means the platform default
	Disabled bool   `toml:"disabled"`  // skip caching entirely
	RedisURL string `toml:"redis_url"` // when set, the server caches in Redis
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Config is the full coverforge configuration.
type Config struct {
	Site      SiteConfig   `toml:"site"`
	Render    RenderConfig `toml:"render"`
	Cache     CacheConfig  `toml:"cache"`
	Server    ServerConfig `toml:"server"`
	Sentiment string       `toml:"sentiment"` // "null" or "lexicon"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:   "Peter's Bookstore",
			Tagline: "I write about thoughts, stories, and ideas.",
		},
		Render: RenderConfig{
			Width:   1200,
			Height:  630,
			Formats: []string{"png"},
			Overlay: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Sentiment: "null",
	}
}

// Load builds the configuration from defaults, the TOML file at path,
// and environment overrides. A missing file is only an error when the
// path was given explicitly.
func Load(path string, explicit bool) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
	case err != nil:
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays COVERFORGE_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	cfg.Site.Title = getEnv("COVERFORGE_TITLE", cfg.Site.Title)
	cfg.Site.Tagline = getEnv("COVERFORGE_TAGLINE", cfg.Site.Tagline)
	cfg.Render.Width = getEnvFloat("COVERFORGE_WIDTH", cfg.Render.Width)
	cfg.Render.Height = getEnvFloat("COVERFORGE_HEIGHT", cfg.Render.Height)
	cfg.Cache.Dir = getEnv("COVERFORGE_CACHE_DIR", cfg.Cache.Dir)
	cfg.Cache.Disabled = getEnvBool("COVERFORGE_NO_CACHE", cfg.Cache.Disabled)
	cfg.Cache.RedisURL = getEnv("COVERFORGE_REDIS_URL", cfg.Cache.RedisURL)
	cfg.Server.Addr = getEnv("COVERFORGE_ADDR", cfg.Server.Addr)
	cfg.Sentiment = getEnv("COVERFORGE_SENTIMENT", cfg.Sentiment)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
