package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dotpath/pkg/errors"
	"github.com/matzehuels/dotpath/pkg/graph"
	"github.com/matzehuels/dotpath/pkg/path"
)

var area = graph.Area{Width: 800, Height: 600, Margin: 50}

func generated(t *testing.T, seed uint64) *graph.Graph {
	t.Helper()
	rng := graph.NewRand(seed)
	g, err := graph.New(30, area, rng)
	require.NoError(t, err)
	require.NoError(t, g.GenerateEdges(35, rng))
	return g
}

func TestFromGraph(t *testing.T) {
	g := generated(t, 3)
	s := FromGraph(g, 3)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.Seed)
	assert.Equal(t, area, s.Area())
	require.Len(t, s.Nodes, 30)
	require.Len(t, s.Edges, 35)

	for i, n := range s.Nodes {
		assert.Equal(t, i+1, n.ID)
		gn, _ := g.Node(n.ID)
		assert.Equal(t, gn.Pos.X, n.X)
		assert.Equal(t, gn.Pos.Y, n.Y)
	}
	for i, e := range g.Edges() {
		assert.Equal(t, Edge{From: e.A, To: e.B}, s.Edges[i])
	}

	assert.NotEqual(t, s.ID, FromGraph(g, 3).ID, "each snapshot gets its own id")
}

func TestRoundTrip(t *testing.T) {
	g := generated(t, 8)
	s := FromGraph(g, 8)

	var buf bytes.Buffer
	require.NoError(t, Write(s, &buf))
	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	h, err := back.Graph()
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), h.Edges())
	for _, id := range g.IDs() {
		assert.Equal(t, g.Neighbors(id), h.Neighbors(id), "adjacency order of node %d", id)
		a, _ := g.Node(id)
		b, _ := h.Node(id)
		assert.Equal(t, a.Pos, b.Pos)
	}

	for a := 1; a <= 30; a += 4 {
		for b := 30; b >= 1; b -= 7 {
			want, err := path.ShortestPath(g, a, b)
			require.NoError(t, err)
			got, err := path.ShortestPath(h, a, b)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%d->%d", a, b)
		}
	}
}

func TestGraphAcceptsShuffledNodes(t *testing.T) {
	s := &Scene{
		Width: 400, Height: 400, Margin: 10,
		Nodes: []Node{{ID: 2, X: 50, Y: 50}, {ID: 1, X: 20, Y: 30}},
		Edges: []Edge{{From: 2, To: 1}},
	}
	g, err := s.Graph()
	require.NoError(t, err)
	n, _ := g.Node(1)
	assert.Equal(t, 20.0, n.Pos.X)
	assert.Equal(t, []int{1}, g.Neighbors(2))
}

func TestGraphErrors(t *testing.T) {
	base := func() *Scene {
		return &Scene{
			ID:    uuid.NewString(),
			Width: 400, Height: 400, Margin: 10,
			Nodes: []Node{{ID: 1, X: 20, Y: 20}, {ID: 2, X: 60, Y: 60}, {ID: 3, X: 90, Y: 90}},
			Edges: []Edge{{From: 1, To: 2}},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Scene)
	}{
		{"bad id", func(s *Scene) { s.ID = "not-a-uuid" }},
		{"no nodes", func(s *Scene) { s.Nodes = nil }},
		{"gap in ids", func(s *Scene) { s.Nodes[2].ID = 4 }},
		{"duplicate id", func(s *Scene) { s.Nodes[2].ID = 2 }},
		{"zero id", func(s *Scene) { s.Nodes[0].ID = 0 }},
		{"bad canvas", func(s *Scene) { s.Margin = 300 }},
		{"self edge", func(s *Scene) { s.Edges = append(s.Edges, Edge{From: 3, To: 3}) }},
		{"duplicate edge", func(s *Scene) { s.Edges = append(s.Edges, Edge{From: 2, To: 1}) }},
		{"unknown node", func(s *Scene) { s.Edges = append(s.Edges, Edge{From: 1, To: 9}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			_, err := s.Graph()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidScene), "got %v", err)
		})
	}

	_, err := base().Graph()
	assert.NoError(t, err)
}

func TestReadRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"{",
		`{"nodes": "nope"}`,
		`{"nodes": [], "colour": "red"}`,
	} {
		_, err := Read(strings.NewReader(in))
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidScene), "input %q: %v", in, err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scene.json")

	s := FromGraph(generated(t, 5), 5)
	require.NoError(t, Save(s, file))

	back, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o644))
	_, err = Load(file)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidScene))
}
