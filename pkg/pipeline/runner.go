package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/layout"
	"github.com/matzehuels/dotpath/pkg/observability"
	"github.com/matzehuels/dotpath/pkg/path"
	"github.com/matzehuels/dotpath/pkg/scene"
)

// Runner encapsulates pipeline execution with logging and hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Build runs the generate → layout stages and snapshots the result.
func (r *Runner) Build(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	g, seed, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Graph = g
	result.Seed = seed
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.Components = len(g.Components())

	opts.Logger.Info("generated graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"components", result.Stats.Components,
		"seed", seed,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Layout
	stats, err := r.Layout(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Stats.LayoutTime = stats.Duration
	result.Stats.Iterations = stats.Iterations
	result.Stats.Displacement = stats.Displacement

	opts.Logger.Info("computed layout",
		"iterations", stats.Iterations,
		"displacement", fmt.Sprintf("%.3f", stats.Displacement),
		"duration", stats.Duration)

	result.Scene = scene.FromGraph(g, seed)
	return result, nil
}

// Generate creates the nodes and random edges. A zero opts.Seed is replaced
// by a random one; the seed used is returned.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Graph, uint64, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}
	seed := opts.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Nodes, opts.Edges)
	start := time.Now()

	rng := graph.NewRand(seed)
	g, err := graph.New(opts.Nodes, opts.Area(), rng)
	if err == nil {
		err = g.GenerateEdges(opts.Edges, rng)
	}
	hooks.OnGenerateComplete(ctx, opts.Nodes, opts.Edges, time.Since(start), err)
	if err != nil {
		return nil, 0, err
	}
	return g, seed, nil
}

// Layout runs the force simulation on g in place.
func (r *Runner) Layout(ctx context.Context, g *graph.Graph, opts Options) (layout.Stats, error) {
	opts.SetDefaults()
	lopts := opts.LayoutOptions()

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, g.NodeCount(), lopts.Iterations)
	stats, err := layout.Run(ctx, g, lopts)
	hooks.OnLayoutComplete(ctx, stats.Iterations, stats.Duration, err)
	return stats, err
}

// FindPath returns the shortest path between two nodes of g, or nil when
// none exists.
func (r *Runner) FindPath(ctx context.Context, g *graph.Graph, from, to int) ([]int, error) {
	start := time.Now()
	p, err := path.ShortestPath(g, from, to)

	hops := -1
	if p != nil {
		hops = path.Hops(p)
	}
	observability.Path().OnPathQuery(ctx, from, to, hops, time.Since(start), err)
	return p, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
