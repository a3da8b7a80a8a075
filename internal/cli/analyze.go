package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coverforge/coverforge/pkg/pipeline"
	"github.com/coverforge/coverforge/pkg/textstat"
	"github.com/coverforge/coverforge/pkg/visual"
	"github.com/coverforge/coverforge/pkg/wordgraph"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	jsonOut   bool   // emit machine-readable JSON instead of the summary
	graphOut  string // write the keyword co-occurrence graph to this file
	sentiment string // sentiment provider
}

// newAnalyzeCmd creates the analyze command, which runs the feature
// extraction and parameter mapping without rendering anything. It is
// the debugging view into why a cover looks the way it does.
func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Print the statistical features behind a cover",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateSentiment(opts.sentiment); err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "output features as JSON")
	cmd.Flags().StringVar(&opts.graphOut, "graph", "", "write the keyword co-occurrence graph (.dot, .svg, or .png)")
	cmd.Flags().StringVar(&opts.sentiment, "sentiment", "", "sentiment provider: null (default), lexicon")

	return cmd
}

func runAnalyze(ctx context.Context, input string, opts *analyzeOpts) error {
	cfg := configFromContext(ctx)

	provider := opts.sentiment
	if provider == "" {
		provider = cfg.Sentiment
	}

	text, err := pipeline.LoadInput(input)
	if err != nil {
		return err
	}

	features := textstat.Analyze(text)
	features.Sentiment = pipeline.ProviderFor(provider).Polarity(text)
	params := visual.Map(features)

	if opts.jsonOut {
		out := struct {
			Features textstat.Features `json:"features"`
			Params   visual.Params     `json:"params"`
		}{features, params}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		printSummary(features, params)
	}

	if opts.graphOut != "" {
		return writeGraph(ctx, features, opts.graphOut)
	}
	return nil
}

// printSummary renders the human-readable feature report.
func printSummary(f textstat.Features, p visual.Params) {
	printKeyValue("hash", f.Hash)
	printKeyValue("tokens", fmt.Sprintf("%d (%d unique)", len(f.Tokens), len(f.Frequency.Counts)))
	printKeyValue("sentences", fmt.Sprintf("%d", len(f.Sentences)))
	printKeyValue("entropy", fmt.Sprintf("%.3f bits", f.Entropy))
	printKeyValue("variance", fmt.Sprintf("%.3f", f.Frequency.Variance))
	printKeyValue("avg length", fmt.Sprintf("%.1f words", f.Rhythm.AvgLength))
	printKeyValue("sentiment", fmt.Sprintf("%+.2f", f.Sentiment))

	words := make([]string, len(f.Keywords))
	for i, kw := range f.Keywords {
		words[i] = fmt.Sprintf("%s(%d)", kw.Word, kw.Count)
	}
	printKeyValue("keywords", strings.Join(words, " "))

	printNewline()
	printKeyValue("family", string(p.Family))
	printKeyValue("palette", strings.Join(p.Palette, " "))
	printKeyValue("complexity", fmt.Sprintf("%d", p.Complexity))
	printKeyValue("layers", fmt.Sprintf("%d", p.Layers))
	printKeyValue("stroke", fmt.Sprintf("%.2f", p.Stroke))
	printKeyValue("brightness", fmt.Sprintf("%.2f", p.Brightness))
	printKeyValue("seed", fmt.Sprintf("%d", p.Seed))
}

// writeGraph renders the keyword co-occurrence graph in the format
// implied by the output extension.
func writeGraph(ctx context.Context, f textstat.Features, path string) error {
	dot := wordgraph.ToDOT(wordgraph.Build(f))

	var (
		data []byte
		err  error
	)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".dot", ".gv":
		data = []byte(dot)
	case ".svg", ".png":
		sp := newSpinnerWithContext(ctx, "Rendering graph...")
		sp.Start()
		r := wordgraph.GraphvizRenderer{}
		if ext == ".svg" {
			data, err = r.RenderSVG(ctx, dot)
		} else {
			data, err = r.RenderPNG(ctx, dot)
		}
		sp.Stop()
	default:
		return fmt.Errorf("unknown graph format: %s (use .dot, .svg, or .png)", path)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	printFile(path)
	return nil
}
