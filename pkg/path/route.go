package path

import "github.com/matzehuels/dotpath/pkg/graph"

// Hops returns the number of edges on p. A nil or single-node path has zero.
func Hops(p []int) int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

// EdgeSet returns the edges of p keyed for constant-time membership tests.
func EdgeSet(p []int) map[graph.EdgeKey]bool {
	set := make(map[graph.EdgeKey]bool, len(p))
	for i := 1; i < len(p); i++ {
		set[graph.KeyOf(p[i-1], p[i])] = true
	}
	return set
}
