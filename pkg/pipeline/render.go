package pipeline

import (
	"fmt"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/layout"
	"github.com/matzehuels/layerstack/pkg/multiplex"
	"github.com/matzehuels/layerstack/pkg/render/figure"
	"github.com/matzehuels/layerstack/pkg/render/sink"
	"github.com/matzehuels/layerstack/pkg/render/table"
)

// Render generates output artifacts in the requested formats.
//
// The layout is consumed only by the figure-based formats (html, json).
// DOT and SVG are flat Graphviz projections of the graph alone, so they
// render fine with a zero layout.
func Render(g *multiplex.Graph, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	// The figure is built once and shared by the html and json formats.
	var fig figure.Figure
	if opts.NeedsLayout() {
		built, err := figure.Build(g, l.Positions, figureOptions(opts)...)
		if err != nil {
			return nil, fmt.Errorf("build figure: %w", err)
		}
		fig = built
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = sink.RenderHTML(fig, table.Render(g))
		case FormatJSON:
			data, err = sink.RenderJSON(fig)
		case FormatDOT:
			data = []byte(sink.ToDOT(g, dotOptions(opts)...))
		case FormatSVG:
			data, err = sink.RenderSVG(sink.ToDOT(g, dotOptions(opts)...))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// figureOptions converts pipeline options to figure build options.
func figureOptions(opts Options) []figure.Option {
	figOpts := []figure.Option{
		figure.WithLayerSpacing(opts.LayerSpacing),
		figure.WithMarkerSize(opts.MarkerSize),
		figure.WithPlaneOpacity(opts.PlaneOpacity),
	}
	if opts.Title != "" {
		figOpts = append(figOpts, figure.WithTitle(opts.Title))
	}
	return figOpts
}

// dotOptions converts pipeline options to DOT rendering options.
func dotOptions(opts Options) []sink.DOTOption {
	var dotOpts []sink.DOTOption
	if opts.EdgeLabels {
		dotOpts = append(dotOpts, sink.WithDOTWeights())
	}
	return dotOpts
}
