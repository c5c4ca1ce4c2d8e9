// Package core provides a thread-safe in-memory Graph used by flowgen to hold
// generated or parsed flow networks.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge membership via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	Vertices() is sorted lexicographically. Edges() and Neighbors() follow
//	insertion order, so a graph built from a DIMACS stream iterates its arcs
//	in file order.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("1", "2", 17)
//	nbs, _ := g.Neighbors("1") // [e1: 1→2 (17)]
package core
