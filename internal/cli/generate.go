package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/coverforge/coverforge/pkg/config"
	"github.com/coverforge/coverforge/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output    string   // output file path (single format) or base path (multiple)
	formats   []string // output formats: "svg", "png"
	width     float64  // canvas width in pixels
	height    float64  // canvas height in pixels
	title     string   // overlay title
	tagline   string   // overlay tagline
	noOverlay bool     // suppress the title/tagline block
	sentiment string   // sentiment provider: "null" or "lexicon"
	seed      uint32   // explicit seed override
	noCache   bool     // bypass the artifact cache
	watch     bool     // re-render on file changes
}

// newGenerateCmd creates the generate command for rendering cover images.
//
// The input may be a text or markdown file, or a directory: directories
// open an interactive picker for the files inside. With --watch the
// command keeps running and re-renders whenever the input file changes.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate cover images from a text or markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateSentiment(opts.sentiment); err != nil {
				return err
			}

			input := args[0]
			if info, err := os.Stat(input); err == nil && info.IsDir() {
				selected, err := pickInputFile(input)
				if err != nil {
					return err
				}
				if selected == "" {
					printInfo("No file selected")
					return nil
				}
				input = selected
			}

			if opts.watch {
				return watchAndGenerate(cmd.Context(), input, &opts)
			}
			return runGenerate(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default cover.png) or base path for multiple formats")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVar(&opts.title, "title", "", "overlay title")
	cmd.Flags().StringVar(&opts.tagline, "tagline", "", "overlay tagline")
	cmd.Flags().BoolVar(&opts.noOverlay, "no-overlay", false, "render without the title/tagline block")
	cmd.Flags().StringVar(&opts.sentiment, "sentiment", "", "sentiment provider: null (default), lexicon")
	cmd.Flags().Uint32Var(&opts.seed, "seed", 0, "override the content-derived random seed")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the input file changes")

	return cmd
}

// buildOptions merges flags with the loaded configuration.
func buildOptions(cfg config.Config, input string, opts *generateOpts) pipeline.Options {
	p := pipeline.Options{
		Input:     input,
		Width:     opts.width,
		Height:    opts.height,
		Formats:   opts.formats,
		Title:     opts.title,
		Tagline:   opts.tagline,
		NoOverlay: opts.noOverlay,
		Sentiment: opts.sentiment,
		Seed:      opts.seed,
		NoCache:   opts.noCache,
	}

	if p.Width == 0 {
		p.Width = cfg.Render.Width
	}
	if p.Height == 0 {
		p.Height = cfg.Render.Height
	}
	if p.Title == "" && p.Tagline == "" {
		p.Title = cfg.Site.Title
		p.Tagline = cfg.Site.Tagline
	}
	if !cfg.Render.Overlay {
		p.NoOverlay = true
	}
	if p.Sentiment == "" {
		p.Sentiment = cfg.Sentiment
	}
	return p
}

// runGenerate executes the pipeline once and writes every artifact.
func runGenerate(ctx context.Context, input string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	runner, err := newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, buildOptions(cfg, input, opts))
	if err != nil {
		printError("%s", err)
		return err
	}

	base := basePath(opts.output)
	for _, format := range opts.formats {
		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Generated %d cover(s)", len(opts.formats)))
	printStats(result.Stats.TokenCount, result.Stats.SentenceCount, result.CacheInfo.EncodeHit)
	printDetail("family: %s  seed: %d  hash: %s",
		result.Params.Family, result.Params.Seed, result.Features.Hash[:8])
	return nil
}

// watchAndGenerate renders once, then re-renders on every change to the
// input file until the context is canceled.
func watchAndGenerate(ctx context.Context, input string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	if err := runGenerate(ctx, input, opts); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that write via
	// rename-and-replace would otherwise drop the watch.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(input), err)
	}
	printInfo("Watching %s for changes (ctrl-c to stop)", input)

	target := filepath.Clean(input)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debugf("Change detected: %s", event.Op)
			if err := runGenerate(ctx, input, opts); err != nil {
				// Keep watching; a transient save glitch should not end
				// the session.
				printWarning("Re-render failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("Watcher error: %v", err)
		}
	}
}

// basePath derives the base output path from the -o flag.
// Without -o the base is "cover", so the default single-format output is
// cover.png. An output with a format extension (.svg, .png) has that
// extension stripped; generating multiple formats then yields
// cover.svg and cover.png side by side.
func basePath(output string) string {
	if output == "" {
		return "cover"
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
