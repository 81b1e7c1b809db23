package scene

import (
	"slices"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
)

// Scene is a serialisable snapshot of a graph and its layout.
type Scene struct {
	ID     string  `json:"id"`
	Seed   uint64  `json:"seed"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
	Nodes  []Node  `json:"nodes"`
	Edges  []Edge  `json:"edges"`
}

// Node is a positioned dot.
type Node struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge connects two nodes. From is the node the edge was added from.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// FromGraph snapshots g under a fresh random id.
func FromGraph(g *graph.Graph, seed uint64) *Scene {
	area := g.Area()
	s := &Scene{
		ID:     uuid.NewString(),
		Seed:   seed,
		Width:  area.Width,
		Height: area.Height,
		Margin: area.Margin,
		Nodes:  make([]Node, 0, g.NodeCount()),
		Edges:  make([]Edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, Node{ID: n.ID, X: n.Pos.X, Y: n.Pos.Y})
	}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, Edge{From: e.A, To: e.B})
	}
	return s
}

// Area returns the scene's canvas.
func (s *Scene) Area() graph.Area {
	return graph.Area{Width: s.Width, Height: s.Height, Margin: s.Margin}
}

// Graph rebuilds the graph the scene was taken from.
//
// Returns an INVALID_SCENE error if the id is not a UUID, node ids are not
// exactly 1..N, the canvas is invalid, or an edge is a self loop, a
// duplicate, or names an unknown node.
func (s *Scene) Graph() (*graph.Graph, error) {
	if s.ID != "" {
		if _, err := uuid.Parse(s.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "scene id %q", s.ID)
		}
	}

	nodes := slices.Clone(s.Nodes)
	slices.SortFunc(nodes, func(a, b Node) int { return a.ID - b.ID })
	pos := make([]r2.Vec, len(nodes))
	for i, n := range nodes {
		if n.ID != i+1 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "node ids must be 1..%d, found %d", len(nodes), n.ID)
		}
		pos[i] = r2.Vec{X: n.X, Y: n.Y}
	}

	g, err := graph.NewWithPositions(s.Area(), pos)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "scene canvas")
	}
	for _, e := range s.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "edge %d-%d", e.From, e.To)
		}
	}
	return g, nil
}
