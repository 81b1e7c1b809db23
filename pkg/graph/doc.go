// Package graph holds the random "dots and lines" graph that dotpath lays out
// and queries.
//
// # Overview
//
// A [Graph] is a fixed set of nodes with integer ids 1..N and an undirected,
// unweighted edge set. Nodes carry a 2-D position that the layout engine
// moves; edges never change once generated. The package owns both the node
// records and the adjacency mapping for the lifetime of one graph.
//
// # Building a Graph
//
// [New] places N nodes uniformly at random inside the margin-inset canvas,
// and [Graph.GenerateEdges] then adds exactly the requested number of edges:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	g, err := graph.New(50, graph.Area{Width: 800, Height: 600, Margin: 50}, rng)
//	if err != nil {
//	    return err
//	}
//	if err := g.GenerateEdges(50, rng); err != nil {
//	    return err // INVALID_CONFIG when 50 > N(N-1)/2
//	}
//
// Generation runs in two passes. The first pass walks the nodes in id order
// and links each to a random node it is not yet adjacent to, so every node
// gets an edge when the target is at least N. The second pass adds random
// pairs until the target is met. Targets above N(N-1)/2 are rejected before
// anything is mutated.
//
// For hand-built graphs (tests, imported scenes) use [NewWithPositions] and
// [Graph.AddEdge].
//
// # Adjacency
//
// [Graph.Neighbors] returns a node's neighbors in the order their edges were
// added. That order is what breadth-first search enumerates, so it decides
// which of several equally short paths is found. [Graph.Edges] returns every
// edge once, in insertion order.
//
// # Invariants
//
//   - every node id is in [1, N] and unique
//   - no self edges, no duplicate edges (a-b and b-a are the same edge)
//   - b is in Neighbors(a) exactly when a is in Neighbors(b)
//
// [Graph.Validate] checks all of them.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Reads (Neighbors, Edges,
// Node) may run concurrently once construction and layout have finished.
package graph
