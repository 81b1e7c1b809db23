package graph

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Undirected returns a gonum copy of the graph's structure, with gonum node
// ids equal to dotpath node ids. Positions are not copied.
func (g *Graph) Undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, id := range g.IDs() {
		ug.AddNode(simple.Node(id))
	}
	for _, e := range g.edges {
		ug.SetEdge(ug.NewEdge(simple.Node(e.A), simple.Node(e.B)))
	}
	return ug
}

// Components returns the connected components of the graph. Each component
// is sorted by id and components are ordered by their smallest id, so the
// result is deterministic. Isolated nodes form components of their own.
func (g *Graph) Components() [][]int {
	var out [][]int
	for _, c := range topo.ConnectedComponents(g.Undirected()) {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })
	return out
}

// ComponentIndex maps every node id to the index of its component in comps.
func ComponentIndex(comps [][]int) map[int]int {
	idx := make(map[int]int)
	for i, c := range comps {
		for _, id := range c {
			idx[id] = i
		}
	}
	return idx
}
