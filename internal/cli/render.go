package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/io"
	"github.com/matzehuels/layerstack/pkg/pipeline"
)

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		cacheURL   string
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a multiplex graph to HTML and other formats",
		Long: `Render a multiplex graph manifest to one or more output formats.

The render command runs the full pipeline: it loads the manifest (JSON or
TOML), computes shared node positions, and renders the requested formats.
The html format produces a self-contained page with the interactive 3D scene
and color-matched matrix tables; json emits the raw figure; dot and svg are
flat Graphviz projections of the stacked layers.

Results are cached locally for faster subsequent runs. Use --layout to reuse
a layout artifact produced by 'layerstack layout'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache, cacheURL)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), json, dot, svg (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&cacheURL, "cache-url", "", "remote cache URL (redis:// or mongodb://)")

	// Layout flags
	cmd.Flags().StringVar(&opts.Engine, "engine", opts.Engine, "layout engine: force (default), circle")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "layout engine seed")
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "reuse a precomputed layout artifact")

	// Render flags
	registerRenderFlags(cmd, &opts)

	return cmd
}

// runRender executes the full pipeline and writes the rendered artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool, cacheURL string) error {
	runner, err := c.newRunner(ctx, cacheURL, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Manifest = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", input, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
		nodes:     result.Stats.NodeCount,
		edges:     result.Stats.EdgeCount,
	}); err != nil {
		return err
	}

	printNewline()
	printNextStep("Preview", "layerstack serve "+input)
	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	nodes     int
	edges     int
}

// writeArtifacts writes rendered artifacts to disk and reports the results.
// Output paths derive from the base path, one file per requested format.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	printSuccess("Render complete")
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if filepath.Clean(path) == filepath.Clean(p.input) {
			return errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite the input manifest (use --output)", path)
		}
		if err := io.WriteFile(path, data); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(p.nodes, p.edges, p.cacheHit)
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input; stdin input falls
// back to "stack".
// If output has a format extension (.html, .svg, etc.), it strips that extension.
// This keeps 'render -o viz.html' and 'render -o viz' equivalent.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "stack"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
