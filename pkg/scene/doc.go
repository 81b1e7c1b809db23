// Package scene is the on-disk and on-the-wire form of a laid-out graph.
//
// A [Scene] records everything needed to redraw or re-query a graph: the
// canvas, every node position, and the edges in the order they were added.
// Keeping edge order matters: rebuilding a graph with [Scene.Graph] replays
// the edges through [graph.Graph.AddEdge] in that order, which restores the
// same adjacency lists and therefore the same shortest-path tie-breaks.
//
// The JSON shape is:
//
//	{
//	  "id": "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
//	  "seed": 42,
//	  "width": 800, "height": 600, "margin": 50,
//	  "nodes": [{"id": 1, "x": 123.4, "y": 88.0}],
//	  "edges": [{"from": 1, "to": 7}]
//	}
//
// Node ids must be exactly 1..N, in any order in the file.
package scene
