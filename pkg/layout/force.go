package layout

import (
	"context"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/dotpath/pkg/graph"
)

// Stats describes a completed (or cancelled) layout run.
type Stats struct {
	Iterations   int           // iterations completed
	Displacement float64       // total distance moved by all nodes in the last iteration
	Duration     time.Duration // wall time of the run
}

// Run lays out g in place and returns statistics about the run.
//
// Node positions are updated directly on the graph's node records; node
// identities and edges are left alone. After Run returns every node lies
// inside the bounds, including when it returns early.
//
// The context is checked between iterations. On cancellation Run returns
// ctx.Err() with positions as of the last completed iteration.
func Run(ctx context.Context, g *graph.Graph, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}
	bounds := g.Area()
	if opts.Bounds != nil {
		bounds = *opts.Bounds
	}

	start := time.Now()
	nodes := g.Nodes()
	springs := resolveEdges(g, nodes)

	var stats Stats
	for it := 0; it < opts.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		repel(nodes, opts.RepulsionConstant, opts.RepulsionRadius)
		pull(springs, opts.SpringConstant, opts.RestLength)
		stats.Displacement = integrate(nodes, bounds)
		stats.Iterations++

		if opts.OnIteration != nil {
			opts.OnIteration(it, stats.Displacement)
		}
	}
	stats.Duration = time.Since(start)
	return stats, nil
}

// spring is an edge with its endpoint records already looked up.
type spring struct {
	a, b *graph.Node
}

// resolveEdges pairs every edge with its node records. nodes is indexed by
// id-1, as returned by Graph.Nodes.
func resolveEdges(g *graph.Graph, nodes []*graph.Node) []spring {
	edges := g.Edges()
	out := make([]spring, len(edges))
	for i, e := range edges {
		out[i] = spring{a: nodes[e.A-1], b: nodes[e.B-1]}
	}
	return out
}

// repel pushes apart every pair of distinct nodes with 0 < d < radius.
func repel(nodes []*graph.Node, k, radius float64) {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			delta := r2.Sub(b.Pos, a.Pos)
			d := r2.Norm(delta)
			if d <= 0 || d >= radius {
				continue
			}
			push := r2.Scale(k/(d*d)/d, delta)
			a.Vel = r2.Sub(a.Vel, push)
			b.Vel = r2.Add(b.Vel, push)
		}
	}
}

// pull applies a Hookean spring along every edge. Coincident endpoints have
// no line between them and are skipped.
func pull(springs []spring, k, rest float64) {
	for _, s := range springs {
		delta := r2.Sub(s.b.Pos, s.a.Pos)
		d := r2.Norm(delta)
		if d == 0 {
			continue
		}
		f := r2.Scale((d-rest)*k/d, delta)
		s.a.Vel = r2.Add(s.a.Vel, f)
		s.b.Vel = r2.Sub(s.b.Vel, f)
	}
}

// integrate moves every node by its accumulated displacement, clamps it into
// bounds, resets the displacement, and returns the total distance moved.
func integrate(nodes []*graph.Node, bounds graph.Area) float64 {
	var moved float64
	for _, n := range nodes {
		next := bounds.Clamp(r2.Add(n.Pos, n.Vel))
		moved += r2.Norm(r2.Sub(next, n.Pos))
		n.Pos = next
		n.Vel = r2.Vec{}
	}
	return moved
}
