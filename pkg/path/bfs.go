package path

import (
	"slices"

	"github.com/matzehuels/dotpath/pkg/errors"
)

// Adjacency is the read-only view of a graph the search needs.
// *graph.Graph satisfies it.
type Adjacency interface {
	HasNode(id int) bool
	Neighbors(id int) []int
}

// walker holds the mutable search state for one query.
type walker struct {
	g       Adjacency
	queue   []int
	visited map[int]bool
	parent  map[int]int
}

func newWalker(g Adjacency, source int) *walker {
	w := &walker{
		g:       g,
		visited: map[int]bool{source: true},
		parent:  make(map[int]int),
	}
	w.queue = append(w.queue, source)
	return w
}

// ShortestPath returns the node ids of a minimum-hop route from source to
// target, both endpoints included.
//
// Returns nil and no error when target cannot be reached. Returns an
// INVALID_NODE_ID error if either id is not a node of g.
func ShortestPath(g Adjacency, source, target int) ([]int, error) {
	if err := checkNodes(g, source, target); err != nil {
		return nil, err
	}
	if source == target {
		return []int{source}, nil
	}

	w := newWalker(g, source)
	for len(w.queue) > 0 {
		id := w.dequeue()
		if id == target {
			return w.route(source, target), nil
		}
		w.expand(id)
	}
	return nil, nil
}

// counter is implemented by graphs whose node ids are exactly
// 1..NodeCount, such as *graph.Graph.
type counter interface {
	NodeCount() int
}

func checkNodes(g Adjacency, ids ...int) error {
	c, dense := g.(counter)
	for _, id := range ids {
		if dense {
			if err := errors.ValidateNodeID(id, c.NodeCount()); err != nil {
				return err
			}
			continue
		}
		if !g.HasNode(id) {
			return errors.New(errors.ErrCodeInvalidNodeID, "node %d does not exist", id)
		}
	}
	return nil
}

func (w *walker) dequeue() int {
	id := w.queue[0]
	w.queue = w.queue[1:]
	return id
}

// expand enqueues every unseen neighbor of id and records id as its parent.
func (w *walker) expand(id int) {
	for _, nbr := range w.g.Neighbors(id) {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.parent[nbr] = id
		w.queue = append(w.queue, nbr)
	}
}

// route walks parent links from target back to source and reverses them.
func (w *walker) route(source, target int) []int {
	p := []int{target}
	for id := target; id != source; {
		id = w.parent[id]
		p = append(p, id)
	}
	slices.Reverse(p)
	return p
}
