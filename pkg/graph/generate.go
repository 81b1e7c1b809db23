package graph

import (
	"math/rand/v2"

	"github.com/matzehuels/dotpath/pkg/errors"
)

// GenerateEdges adds exactly target random edges to a graph that has none.
//
// The first pass visits nodes in id order and links each one to a random
// node it is not already adjacent to, until target is reached. The second
// pass adds uniformly random non-self, non-duplicate pairs until the edge
// count equals target. Once fewer than half of all pairs are still free the
// remaining pairs are enumerated and drawn from directly, so dense targets
// finish without long rejection streaks.
//
// Returns an INVALID_CONFIG error, without touching the graph, if target is
// negative, exceeds N(N-1)/2, or the graph already has edges.
// If rng is nil a randomly seeded generator is used.
func (g *Graph) GenerateEdges(target int, rng *rand.Rand) error {
	n := len(g.nodes)
	if err := errors.ValidateEdgeTarget(target, MaxEdges(n)); err != nil {
		return err
	}
	if len(g.edges) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "edges already generated (%d present)", len(g.edges))
	}
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}

	for id := 1; id <= n && len(g.edges) < target; id++ {
		if other, ok := g.randomNonNeighbor(id, rng); ok {
			g.link(id, other)
		}
	}
	g.fillRandom(target, rng)
	return nil
}

// randomNonNeighbor draws nodes until it finds one that is neither id nor
// already adjacent to it. Returns false when id is adjacent to every other
// node, which is the only case where no such node exists.
func (g *Graph) randomNonNeighbor(id int, rng *rand.Rand) (int, bool) {
	n := len(g.nodes)
	if len(g.adj[id]) >= n-1 {
		return 0, false
	}
	for {
		other := rng.IntN(n) + 1
		if other != id && !g.HasEdge(id, other) {
			return other, true
		}
	}
}

// fillRandom adds random edges until the graph holds target edges.
func (g *Graph) fillRandom(target int, rng *rand.Rand) {
	n := len(g.nodes)
	total := MaxEdges(n)
	for len(g.edges) < target {
		if free := total - len(g.edges); 2*free < total {
			g.fillFromFree(target, rng)
			return
		}
		a := rng.IntN(n) + 1
		b := rng.IntN(n) + 1
		if a == b || g.HasEdge(a, b) {
			continue
		}
		g.link(a, b)
	}
}

// fillFromFree enumerates every pair that is not yet an edge, shuffles
// them, and links the first target-EdgeCount of them. Each pair keeps a
// random orientation so the initiating node is not always the lower id.
func (g *Graph) fillFromFree(target int, rng *rand.Rand) {
	n := len(g.nodes)
	var free []Edge
	for a := 1; a <= n; a++ {
		for b := a + 1; b <= n; b++ {
			if !g.HasEdge(a, b) {
				free = append(free, Edge{A: a, B: b})
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	for _, e := range free[:target-len(g.edges)] {
		if rng.IntN(2) == 1 {
			e.A, e.B = e.B, e.A
		}
		g.link(e.A, e.B)
	}
}
