// File: methods_adjacent.go
// Role: Adjacency queries and private bucket helpers.
// Determinism:
//   - Neighbors() returns edges in insertion order.
// Concurrency:
//   - Helpers assume the caller holds muEdgeAdj for writing.

package core

// Neighbors returns the edges leaving id. For undirected edges both
// endpoints see the edge.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortBySeq(out)

	return out, nil
}

// ensureAdjacency creates the outer bucket for id.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// linkAdjacency records eid under adjacency[from][to].
func linkAdjacency(g *Graph, from, to, eid string) {
	ensureAdjacency(g, from)
	inner, ok := g.adjacency[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacency[from][to] = inner
	}
	inner[eid] = struct{}{}
}
