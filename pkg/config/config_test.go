package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coverforge/coverforge/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 1200 || cfg.Render.Height != 630 {
		t.Errorf("default canvas = %gx%g, want 1200x630", cfg.Render.Width, cfg.Render.Height)
	}
	if len(cfg.Render.Formats) != 1 || cfg.Render.Formats[0] != "png" {
		t.Errorf("default formats = %v, want [png]", cfg.Render.Formats)
	}
	if !cfg.Render.Overlay {
		t.Error("overlay should default to enabled")
	}
	if cfg.Site.Title == "" || cfg.Site.Tagline == "" {
		t.Error("default overlay text should not be empty")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Width != 1200 {
		t.Errorf("width = %g, want default 1200", cfg.Render.Width)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), true)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverforge.toml")
	content := `
sentiment = "lexicon"

[site]
title = "Field Notes"
tagline = "sketches from the road"

[render]
width = 800
height = 418
formats = ["svg", "png"]
overlay = false

[cache]
disabled = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Site.Title != "Field Notes" {
		t.Errorf("title = %q", cfg.Site.Title)
	}
	if cfg.Render.Width != 800 || cfg.Render.Height != 418 {
		t.Errorf("canvas = %gx%g, want 800x418", cfg.Render.Width, cfg.Render.Height)
	}
	if len(cfg.Render.Formats) != 2 {
		t.Errorf("formats = %v, want two entries", cfg.Render.Formats)
	}
	if cfg.Render.Overlay {
		t.Error("overlay should be disabled by file")
	}
	if !cfg.Cache.Disabled {
		t.Error("cache should be disabled by file")
	}
	if cfg.Sentiment != "lexicon" {
		t.Errorf("sentiment = %q, want lexicon", cfg.Sentiment)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverforge.toml")
	if err := os.WriteFile(path, []byte("site = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, true)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("COVERFORGE_TITLE", "Override Title")
	t.Setenv("COVERFORGE_WIDTH", "640")
	t.Setenv("COVERFORGE_NO_CACHE", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Site.Title != "Override Title" {
		t.Errorf("title = %q, want env override", cfg.Site.Title)
	}
	if cfg.Render.Width != 640 {
		t.Errorf("width = %g, want 640", cfg.Render.Width)
	}
	if !cfg.Cache.Disabled {
		t.Error("COVERFORGE_NO_CACHE should disable the cache")
	}
}

func TestEnvOverrideBadFloatIgnored(t *testing.T) {
	t.Setenv("COVERFORGE_WIDTH", "wide")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Width != 1200 {
		t.Errorf("width = %g, want default when override unparsable", cfg.Render.Width)
	}
}
