package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layerstack/pkg/layout"
	"github.com/matzehuels/layerstack/pkg/pipeline"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		noCache  bool
		cacheURL string
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "layout [manifest]",
		Short: "Compute node positions for a multiplex graph",
		Long: `Compute the shared 2D node positions for a multiplex graph manifest.

Every layer of the stack places its nodes at the same x/y coordinates, so the
layout is computed once from the node count and reused across layers. The
output is a layout artifact (<input>.layout.json) that 'render --layout' can
consume, which keeps repeated renders byte-stable across engine changes.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache, cacheURL)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&cacheURL, "cache-url", "", "remote cache URL (redis:// or mongodb://)")

	// Layout flags
	cmd.Flags().StringVar(&opts.Engine, "engine", opts.Engine, "layout engine: force (default), circle")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "layout engine seed")

	return cmd
}

// runLayout loads the manifest, computes the layout, and writes the artifact.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool, cacheURL string) error {
	runner, err := c.newRunner(ctx, cacheURL, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Manifest = input
	opts.Logger = c.Logger

	g, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Engine))
	spinner.Start()

	l, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := layoutOutputPath(input, output)
	if err := layout.WriteFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", "layerstack render "+input+" --layout "+outputPath)

	return nil
}

// layoutOutputPath derives the layout artifact path from the input manifest.
func layoutOutputPath(input, output string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "stack.layout.json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}
