// Package pipeline provides the generate → layout → render pipeline for dotpath.
//
// This package implements the complete pipeline that the CLI, the TUI and
// the HTTP server share. By centralizing this logic, every entry point
// builds the same scene from the same options.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: place N nodes uniformly at random and add the target number
//     of random edges, every node getting at least one edge first
//  2. Layout: run the force simulation from [layout] in place
//  3. Render: write the scene in one of the [render] formats, optionally
//     highlighting a shortest path
//
// Each stage can be run independently or as part of [Runner.Build].
//
// # Seeds
//
// A zero seed asks for a fresh random seed. The seed actually used is
// returned in [Result] and stored in the scene, so any scene can be rebuilt
// exactly by passing its seed back in.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Seed = 42
//	result, err := runner.Build(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := runner.FindPath(ctx, result.Graph, 1, 7)
//	data, err := runner.Render(ctx, result.Scene, render.FormatSVG, pipeline.RenderOptions{Path: p})
//
// [layout]: github.com/matzehuels/dotpath/pkg/layout
// [render]: github.com/matzehuels/dotpath/pkg/render
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/layout"
	"github.com/matzehuels/dotpath/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, TUI, and Server
// =============================================================================

const (
	// DefaultNodes is the number of dots in a generated scene.
	DefaultNodes = 50

	// DefaultEdges is the number of lines in a generated scene.
	DefaultEdges = 50

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultMargin keeps dots this far from the canvas border.
	DefaultMargin = 50.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for building a scene.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Nodes int    `json:"nodes,omitempty"`
	Edges int    `json:"edges"`
	Seed  uint64 `json:"seed,omitempty"`

	// Canvas options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Margin float64 `json:"margin"`

	// Layout options
	Iterations int     `json:"iterations,omitempty"`
	Repulsion  float64 `json:"repulsion"`
	Radius     float64 `json:"radius,omitempty"`
	Spring     float64 `json:"spring"`
	RestLength float64 `json:"rest_length"`

	// Runtime options (not serialized)
	Logger      *log.Logger        `json:"-"`
	OnIteration func(int, float64) `json:"-"`
}

// DefaultOptions returns the options every entry point starts from.
func DefaultOptions() Options {
	return Options{
		Nodes:      DefaultNodes,
		Edges:      DefaultEdges,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Margin:     DefaultMargin,
		Iterations: layout.DefaultIterations,
		Repulsion:  layout.DefaultRepulsionConstant,
		Radius:     layout.DefaultRepulsionRadius,
		Spring:     layout.DefaultSpringConstant,
		RestLength: layout.DefaultRestLength,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the generated and laid-out graph.
	Graph *graph.Graph

	// Scene is the serialisable snapshot of Graph.
	Scene *scene.Scene

	// Seed is the seed the graph was generated from.
	Seed uint64

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	Components   int
	Iterations   int
	Displacement float64
	GenerateTime time.Duration
	LayoutTime   time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// Area returns the canvas described by the options.
func (o *Options) Area() graph.Area {
	return graph.Area{Width: o.Width, Height: o.Height, Margin: o.Margin}
}

// LayoutOptions returns the force parameters described by the options.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		Iterations:        o.Iterations,
		RepulsionConstant: o.Repulsion,
		RepulsionRadius:   o.Radius,
		SpringConstant:    o.Spring,
		RestLength:        o.RestLength,
		OnIteration:       o.OnIteration,
	}
}

// SetDefaults fills fields whose zero value can never be valid: node count,
// canvas size, iteration count and repulsion radius. Edge count, margin and
// force constants are left alone because zero is meaningful for them.
func (o *Options) SetDefaults() {
	if o.Nodes == 0 {
		o.Nodes = DefaultNodes
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Iterations == 0 {
		o.Iterations = layout.DefaultIterations
	}
	if o.Radius == 0 {
		o.Radius = layout.DefaultRepulsionRadius
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies [Options.SetDefaults] and checks that the
// graph can be built and laid out within [errors.MaxNodes] and
// [errors.MaxIterations]. Returns an INVALID_CONFIG error.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := errors.ValidateNodeCount(o.Nodes); err != nil {
		return err
	}
	if err := errors.ValidateEdgeTarget(o.Edges, graph.MaxEdges(o.Nodes)); err != nil {
		return err
	}
	if err := errors.ValidateIterations(o.Iterations); err != nil {
		return err
	}
	if err := o.Area().Validate(); err != nil {
		return err
	}
	return o.LayoutOptions().Validate()
}
