package graph

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/dotpath/pkg/errors"
)

// Graph is a set of nodes with ids 1..N and the undirected edges between them.
//
// The zero value is not usable - use New or NewWithPositions.
// Graph is not safe for concurrent mutation.
type Graph struct {
	area  Area
	nodes map[int]*Node
	adj   map[int][]int // node id -> neighbor ids, in edge insertion order
	keys  map[EdgeKey]struct{}
	edges []Edge
}

// New creates n nodes at uniformly random positions inside the margin-inset
// area, each with zero velocity and no neighbors.
//
// Returns an INVALID_CONFIG error if n < 1 or the area is too small for its
// margin. If rng is nil a randomly seeded generator is used.
func New(n int, area Area, rng *rand.Rand) (*Graph, error) {
	if err := errors.ValidateNodeCount(n); err != nil {
		return nil, err
	}
	if err := area.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}

	g := newGraph(n, area)
	spanX := area.Width - 2*area.Margin
	spanY := area.Height - 2*area.Margin
	for id := 1; id <= n; id++ {
		g.nodes[id] = &Node{
			ID: id,
			Pos: r2.Vec{
				X: area.Margin + rng.Float64()*spanX,
				Y: area.Margin + rng.Float64()*spanY,
			},
		}
		g.adj[id] = []int{}
	}
	return g, nil
}

// NewWithPositions creates one node per position; positions[i] becomes node
// i+1. Positions are taken as given (they are not clamped into the area).
//
// Returns an INVALID_CONFIG error for an empty slice, an invalid area, or a
// non-finite coordinate.
func NewWithPositions(area Area, positions []r2.Vec) (*Graph, error) {
	if err := errors.ValidateNodeCount(len(positions)); err != nil {
		return nil, err
	}
	if err := area.Validate(); err != nil {
		return nil, err
	}

	g := newGraph(len(positions), area)
	for i, p := range positions {
		if !finite(p) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "node %d has a non-finite position", i+1)
		}
		g.nodes[i+1] = &Node{ID: i + 1, Pos: p}
		g.adj[i+1] = []int{}
	}
	return g, nil
}

// NewRand returns the generator dotpath uses for a given seed.
// The same seed always yields the same graph.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newGraph(n int, area Area) *Graph {
	return &Graph{
		area:  area,
		nodes: make(map[int]*Node, n),
		adj:   make(map[int][]int, n),
		keys:  make(map[EdgeKey]struct{}),
	}
}

func finite(p r2.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Area returns the canvas the graph was created for.
func (g *Graph) Area() Area { return g.area }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// MaxEdges returns the number of edges in a complete simple graph on n nodes.
// It returns 0 for n < 2.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// HasNode reports whether id names a node of the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given id and true, or nil and false.
// The pointer refers to the graph's own record, so position changes are
// visible to the graph.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes sorted by id.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for id := 1; id <= len(g.nodes); id++ {
		out = append(out, g.nodes[id])
	}
	return out
}

// IDs returns all node ids in ascending order.
func (g *Graph) IDs() []int {
	ids := make([]int, len(g.nodes))
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// Neighbors returns the ids adjacent to id in edge insertion order.
// Returns nil for an unknown id. The slice is a read-only view.
func (g *Graph) Neighbors(id int) []int { return g.adj[id] }

// Degree returns the number of edges touching id.
func (g *Graph) Degree(id int) int { return len(g.adj[id]) }

// HasEdge reports whether a and b are adjacent, in either direction.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.keys[KeyOf(a, b)]
	return ok
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// AddEdge connects a and b.
//
// Returns an INVALID_EDGE error if either id is unknown, a == b, or the
// edge (in either direction) already exists.
func (g *Graph) AddEdge(a, b int) error {
	if !g.HasNode(a) {
		return errors.New(errors.ErrCodeInvalidEdge, "unknown node %d", a)
	}
	if !g.HasNode(b) {
		return errors.New(errors.ErrCodeInvalidEdge, "unknown node %d", b)
	}
	if a == b {
		return errors.New(errors.ErrCodeInvalidEdge, "self edge on node %d", a)
	}
	if g.HasEdge(a, b) {
		return errors.New(errors.ErrCodeInvalidEdge, "duplicate edge %d-%d", a, b)
	}
	g.link(a, b)
	return nil
}

// link records the edge a-b. Callers have already ruled out self and
// duplicate edges.
func (g *Graph) link(a, b int) {
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.keys[KeyOf(a, b)] = struct{}{}
	g.edges = append(g.edges, Edge{A: a, B: b})
}

// Validate checks the structural invariants of the graph and returns nil if
// they hold: ids are exactly 1..N, every neighbor is a known node, there are
// no self or duplicate edges, adjacency is symmetric, and the adjacency
// lists agree with the edge list.
func (g *Graph) Validate() error {
	for id := 1; id <= len(g.nodes); id++ {
		n, ok := g.nodes[id]
		if !ok || n.ID != id {
			return errors.New(errors.ErrCodeInternal, "node ids are not 1..%d", len(g.nodes))
		}
	}

	seen := make(map[EdgeKey]struct{}, len(g.edges))
	for _, e := range g.edges {
		if e.A == e.B {
			return errors.New(errors.ErrCodeInvalidEdge, "self edge on node %d", e.A)
		}
		if !g.HasNode(e.A) || !g.HasNode(e.B) {
			return errors.New(errors.ErrCodeInvalidEdge, "edge %d-%d references an unknown node", e.A, e.B)
		}
		if _, dup := seen[e.Key()]; dup {
			return errors.New(errors.ErrCodeInvalidEdge, "duplicate edge %d-%d", e.A, e.B)
		}
		seen[e.Key()] = struct{}{}
	}

	degreeSum := 0
	for id, nbrs := range g.adj {
		degreeSum += len(nbrs)
		for _, nb := range nbrs {
			if !g.HasNode(nb) {
				return errors.New(errors.ErrCodeInvalidEdge, "node %d lists unknown neighbor %d", id, nb)
			}
			if !slices.Contains(g.adj[nb], id) {
				return errors.New(errors.ErrCodeInvalidEdge, "adjacency is not symmetric for %d-%d", id, nb)
			}
			if _, ok := seen[KeyOf(id, nb)]; !ok {
				return errors.New(errors.ErrCodeInvalidEdge, "adjacency lists %d-%d but the edge set does not", id, nb)
			}
		}
	}
	if degreeSum != 2*len(g.edges) {
		return errors.New(errors.ErrCodeInvalidEdge, "adjacency holds %d entries for %d edges", degreeSum, len(g.edges))
	}
	return nil
}
