// Package flow implements maximum-flow algorithms on graphs represented by
// *core.Graph. flowgen uses it to solve generated DIMACS fixtures and to
// cross-check the algorithms against one another.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson
//     – Method: iterative depth-first search for any augmenting path.
//     – Time:   O(E · F), where F is the total flow pushed.
//
//   - Edmonds–Karp
//     – Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//     – Time:   O(V · E²).
//
//   - Dinic
//     – Method: level graph construction + blocking flow via DFS.
//     – Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
// # Graph Support
//
// Capacities are the int64 edge weights. Parallel edges are aggregated,
// loops are ignored, undirected edges carry capacity both ways, negative
// weights fail with EdgeError. Neighbor order is sorted, so a given graph
// always produces the same residual graph.
//
// # API
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation; carries the zerolog logger
//	    Epsilon              int64           // ignore aggregated capacities ≤ Epsilon
//	    Verbose              bool            // log each augmentation at trace level
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// All entry points share one signature:
//
//	func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (maxFlow int64, residual *core.Graph, err error)
//
// The residual graph is directed and weighted, holds every vertex of g, and
// has one edge per ordered pair with positive remaining capacity.
//
// # Errors
//
//	ErrNilGraph       - g is nil.
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	EdgeError         - a negative capacity was found.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx is done.
package flow
