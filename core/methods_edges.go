// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Missing endpoints are created.
//
// Errors:
//   - ErrEmptyVertexID if either ID is empty.
//   - ErrBadWeight if the graph is unweighted and weight != 0.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if (from,to) already has an edge and multi-edges are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{
		ID:       edgeID(seq),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      seq,
	}
	g.edges[e.ID] = e
	linkAdjacency(g, from, to, e.ID)
	if !e.Directed && from != to {
		linkAdjacency(g, to, from, e.ID)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected
// edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// edgeID renders a sequence number as "e<n>" without fmt.
func edgeID(seq uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
