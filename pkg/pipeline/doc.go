// Package pipeline provides the core visualization pipeline for Layerstack.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a stack manifest (JSON or TOML)
//  2. Layout: Compute the shared 2D node positions for the stack
//  3. Render: Generate output in various formats (HTML, JSON, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
// Layout and render results are cached; the cache keys incorporate every
// option that affects the output bytes, so caching never changes what a
// given invocation produces.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Manifest: "stack.json",
//	    Engine:   "force",
//	    Formats:  []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
//
// Run individual stages:
//
//	// Load only
//	g, err := runner.Load(ctx, opts)
//
//	// Layout with an existing graph
//	l, err := runner.GenerateLayout(ctx, g, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, g, l, opts)
package pipeline
