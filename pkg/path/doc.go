// Package path finds minimum-hop routes between nodes of an undirected graph.
//
// [ShortestPath] runs a breadth-first search from the source: a FIFO
// frontier, a visited set seeded with the source, and a parent link for
// every node discovered. Neighbors are expanded in the order the graph
// reports them, so when several shortest routes exist the one found first
// in that enumeration order wins. The search stops the first time the
// target is dequeued and the route is rebuilt by following parent links
// backwards.
//
// A missing route is not an error: ShortestPath returns a nil slice. Only a
// node id the graph does not contain is rejected, with an INVALID_NODE_ID
// error from [github.com/matzehuels/dotpath/pkg/errors].
//
// The helpers [Hops] and [EdgeSet] describe a found route in the
// terms renderers need: how long it is and which edges lie on it.
package path
