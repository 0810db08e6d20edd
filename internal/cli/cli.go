// Package cli implements the layerstack command-line interface.
//
// This package provides commands for rendering multiplex graph manifests as
// interactive 3D scenes, computing reusable layout artifacts, inspecting
// layer matrices in the terminal, and previewing renders in the browser with
// live reload. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
//   - render: Generate HTML, JSON, DOT, or SVG outputs from a manifest
//   - layout: Compute node positions and save them as a layout artifact
//   - inspect: Summarize layers and browse matrices in the terminal
//   - serve: Preview a manifest in the browser with live reload
//   - cache: Manage the local render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().Execute(); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layerstack/pkg/buildinfo"
	"github.com/matzehuels/layerstack/pkg/cache"
	"github.com/matzehuels/layerstack/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "layerstack"

	// defaultServeAddr is the default listen address for the preview server.
	defaultServeAddr = ":4173"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "layerstack",
		Short:        "Layerstack renders multiplex graphs as stacked 3D layers",
		Long:         `Layerstack is a CLI tool for visualizing multiplex graphs (layered adjacency matrices over a shared node set) as interactive 3D scenes with color-synchronized matrix tables.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cacheURL string, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(ctx, cacheURL, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache selects the cache backend. An explicit --cache-url wins, --no-cache
// disables caching entirely, and the default is the file cache under cacheDir.
func newCache(ctx context.Context, cacheURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch {
	case strings.HasPrefix(cacheURL, "redis://"), strings.HasPrefix(cacheURL, "rediss://"):
		return cache.NewRedisCache(cacheURL)
	case strings.HasPrefix(cacheURL, "mongodb://"), strings.HasPrefix(cacheURL, "mongodb+srv://"):
		return cache.NewMongoCache(ctx, cacheURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/layerstack/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatHTML}
	}
	return strings.Split(s, ",")
}

// registerRenderFlags binds the shared rendering flags onto cmd.
func registerRenderFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "scene title (default: manifest title)")
	cmd.Flags().Float64Var(&opts.LayerSpacing, "layer-spacing", opts.LayerSpacing, "vertical distance between layer planes")
	cmd.Flags().Float64Var(&opts.MarkerSize, "marker-size", opts.MarkerSize, "node marker size")
	cmd.Flags().Float64Var(&opts.PlaneOpacity, "plane-opacity", opts.PlaneOpacity, "layer plane opacity")
	cmd.Flags().BoolVar(&opts.EdgeLabels, "edge-labels", opts.EdgeLabels, "label edges with weights (dot, svg)")
}
