// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over immutable mode flags plus a Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	TotalWeight int64
}

// Weighted reports whether non-zero weights are permitted.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges are directed.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Stats produces a snapshot of flags, vertex/edge counts and the summed
// edge weight.
//
// The two locks are taken one after the other, never nested, so the snapshot
// is consistent per phase (flags/vertices, then edges).
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return stats
}
