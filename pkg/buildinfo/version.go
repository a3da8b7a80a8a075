// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/coverforge/coverforge/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/coverforge/coverforge/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/coverforge/coverforge/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// For plain "go install" builds without ldflags, Resolve falls back to
// the module version and VCS metadata embedded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	// Set via ldflags: -X github.com/coverforge/coverforge/pkg/buildinfo.Version=...
	Version = "dev"

	// Commit is the git commit SHA.
	// Set via ldflags: -X github.com/coverforge/coverforge/pkg/buildinfo.Commit=...
	Commit = "none"

	// Date is the build timestamp.
	// Set via ldflags: -X github.com/coverforge/coverforge/pkg/buildinfo.Date=...
	Date = "unknown"
)

// Info holds resolved version metadata for display.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Resolve merges explicit values (usually injected into the main package
// via ldflags) with the package defaults and the metadata the toolchain
// embeds in module builds. Explicit values win; empty strings fall
// through.
func Resolve(version, commit, date string) Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if version != "" {
		info.Version = version
	}
	if commit != "" {
		info.Commit = commit
	}
	if date != "" {
		info.Date = date
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}
