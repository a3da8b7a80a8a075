package cli

import (
	"github.com/spf13/cobra"

	"github.com/coverforge/coverforge/pkg/cache"
	"github.com/coverforge/coverforge/pkg/server"
)

// newServeCmd creates the serve command, which exposes the pipeline as
// an HTTP service. The service shares the CLI's cache configuration, so
// a Redis URL in the config turns on cross-process artifact sharing.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if addr != "" {
				cfg.Server.Addr = addr
			}

			runner, err := newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			// Version-scope the service's cache keys so a codec change
			// never serves bytes rendered by an older build.
			runner.Keyer = cache.NewScopedKeyer(nil, "v1:")

			printInfo("Serving on %s", cfg.Server.Addr)
			return server.New(runner, cfg, loggerFromContext(ctx)).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
