package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/dotpath/pkg/errors"
)

var testArea = Area{Width: 800, Height: 600, Margin: 50}

func TestNew(t *testing.T) {
	g, err := New(50, testArea, NewRand(1))
	require.NoError(t, err)

	assert.Equal(t, 50, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, testArea, g.Area())

	for i, n := range g.Nodes() {
		assert.Equal(t, i+1, n.ID, "Nodes() must be sorted by id")
		assert.True(t, testArea.Contains(n.Pos), "node %d at %v is outside the margin", n.ID, n.Pos)
		assert.Equal(t, r2.Vec{}, n.Vel)
		assert.NotNil(t, g.Neighbors(n.ID), "node %d should start with an empty neighbor list", n.ID)
		assert.Empty(t, g.Neighbors(n.ID))
	}
}

func TestMaxEdges(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 3}, {5, 10}, {50, 1225},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxEdges(tt.n), "MaxEdges(%d)", tt.n)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		n    int
		area Area
	}{
		{"zero nodes", 0, testArea},
		{"negative nodes", -1, testArea},
		{"too many nodes", errors.MaxNodes + 1, testArea},
		{"margin swallows width", 5, Area{Width: 100, Height: 600, Margin: 50}},
		{"negative margin", 5, Area{Width: 100, Height: 100, Margin: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, tt.area, NewRand(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestNewWithPositions(t *testing.T) {
	g, err := NewWithPositions(testArea, []r2.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}})
	require.NoError(t, err)

	n, ok := g.Node(2)
	require.True(t, ok)
	assert.Equal(t, r2.Vec{X: 3, Y: 4}, n.Pos)

	_, ok = g.Node(3)
	assert.False(t, ok)

	_, err = NewWithPositions(testArea, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestAddEdge(t *testing.T) {
	g := line(t, 3)

	tests := []struct {
		name string
		a, b int
	}{
		{"self edge", 2, 2},
		{"duplicate", 1, 2},
		{"reverse duplicate", 2, 1},
		{"unknown source", 0, 1},
		{"unknown target", 1, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.AddEdge(tt.a, tt.b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidEdge), "got %v", err)
		})
	}

	assert.Equal(t, 2, g.EdgeCount(), "failed AddEdge calls must not change the graph")
	require.NoError(t, g.AddEdge(3, 1))
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(3, 1))
	assert.Equal(t, []int{2, 1}, g.Neighbors(3))
	assert.Equal(t, []Edge{{1, 2}, {2, 3}, {3, 1}}, g.Edges())
}

func TestGenerateEdgesProperties(t *testing.T) {
	tests := []struct {
		nodes, edges int
	}{
		{50, 50},
		{50, 120},
		{5, 3},
		{5, 10},
		{8, 27},
		{2, 1},
		{1, 0},
		{30, 0},
	}
	for _, tt := range tests {
		for seed := uint64(1); seed <= 20; seed++ {
			rng := NewRand(seed)
			g, err := New(tt.nodes, testArea, rng)
			require.NoError(t, err)
			require.NoError(t, g.GenerateEdges(tt.edges, rng))

			assert.Equal(t, tt.edges, g.EdgeCount(), "n=%d target=%d seed=%d", tt.nodes, tt.edges, seed)
			require.NoError(t, g.Validate(), "n=%d target=%d seed=%d", tt.nodes, tt.edges, seed)

			for _, e := range g.Edges() {
				assert.NotEqual(t, e.A, e.B)
				assert.Contains(t, g.Neighbors(e.A), e.B)
				assert.Contains(t, g.Neighbors(e.B), e.A)
			}

			if tt.edges >= tt.nodes && tt.nodes >= 2 {
				for _, id := range g.IDs() {
					assert.Positive(t, g.Degree(id), "node %d isolated (n=%d target=%d seed=%d)", id, tt.nodes, tt.edges, seed)
				}
			}
		}
	}
}

func TestGenerateEdgesSmallTarget(t *testing.T) {
	rng := NewRand(7)
	g, err := New(5, testArea, rng)
	require.NoError(t, err)
	require.NoError(t, g.GenerateEdges(3, rng))

	assert.Equal(t, 3, g.EdgeCount())
	keys := map[EdgeKey]bool{}
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.A, e.B)
		assert.False(t, keys[e.Key()], "duplicate edge %v", e)
		keys[e.Key()] = true
	}
	// The first pass links nodes 1, 2 and 3 in turn before the target is hit.
	for _, id := range []int{1, 2, 3} {
		assert.Positive(t, g.Degree(id))
	}
}

func TestGenerateEdgesUnreachableTarget(t *testing.T) {
	rng := NewRand(3)
	g, err := New(5, testArea, rng)
	require.NoError(t, err)

	err = g.GenerateEdges(11, rng)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
	assert.Equal(t, 0, g.EdgeCount(), "a rejected target must leave the graph untouched")

	err = g.GenerateEdges(-1, rng)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestGenerateEdgesTwice(t *testing.T) {
	rng := NewRand(3)
	g, err := New(6, testArea, rng)
	require.NoError(t, err)
	require.NoError(t, g.GenerateEdges(4, rng))

	err = g.GenerateEdges(2, rng)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestGenerateEdgesComplete(t *testing.T) {
	rng := NewRand(11)
	g, err := New(12, testArea, rng)
	require.NoError(t, err)
	require.NoError(t, g.GenerateEdges(66, rng))

	require.NoError(t, g.Validate())
	for _, id := range g.IDs() {
		assert.Equal(t, 11, g.Degree(id))
	}
}

func TestGenerateEdgesDeterministic(t *testing.T) {
	build := func() *Graph {
		rng := NewRand(42)
		g, err := New(40, testArea, rng)
		require.NoError(t, err)
		require.NoError(t, g.GenerateEdges(60, rng))
		return g
	}
	a, b := build(), build()

	assert.Equal(t, a.Edges(), b.Edges())
	for _, id := range a.IDs() {
		na, _ := a.Node(id)
		nb, _ := b.Node(id)
		assert.Equal(t, na.Pos, nb.Pos)
		assert.Equal(t, a.Neighbors(id), b.Neighbors(id))
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	g := line(t, 3)
	require.NoError(t, g.Validate())

	g.adj[1] = append(g.adj[1], 3)
	assert.Error(t, g.Validate())
}

func TestAreaClamp(t *testing.T) {
	tests := []struct {
		in, want r2.Vec
	}{
		{r2.Vec{X: 400, Y: 300}, r2.Vec{X: 400, Y: 300}},
		{r2.Vec{X: -10, Y: 300}, r2.Vec{X: 50, Y: 300}},
		{r2.Vec{X: 900, Y: 900}, r2.Vec{X: 750, Y: 550}},
		{r2.Vec{X: 50, Y: 550}, r2.Vec{X: 50, Y: 550}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, testArea.Clamp(tt.in))
		assert.True(t, testArea.Contains(testArea.Clamp(tt.in)))
	}
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, KeyOf(2, 5), KeyOf(5, 2))
	assert.Equal(t, EdgeKey{Lo: 2, Hi: 5}, Edge{A: 5, B: 2}.Key())
}

// line builds the path graph 1-2-...-n with nodes spread along a row.
func line(t *testing.T, n int) *Graph {
	t.Helper()
	pos := make([]r2.Vec, n)
	for i := range pos {
		pos[i] = r2.Vec{X: 100 + float64(i)*50, Y: 300}
	}
	g, err := NewWithPositions(testArea, pos)
	require.NoError(t, err)
	for id := 1; id < n; id++ {
		require.NoError(t, g.AddEdge(id, id+1))
	}
	return g
}
