package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coverforge/coverforge/internal/cli"
	"github.com/coverforge/coverforge/pkg/buildinfo"
)

// Injected via ldflags at release time. buildinfo fills in the gaps for
// plain "go install" builds.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	info := buildinfo.Resolve(version, commit, date)
	cli.SetVersion(info.Version, info.Commit, info.Date)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
