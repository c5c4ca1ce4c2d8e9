package dimacs

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/flowgen/core"
)

// NodeID renders a DIMACS node number as a core vertex ID.
func NodeID(n int) string {
	return strconv.Itoa(n)
}

// Graph loads p into a directed, weighted core.Graph with vertex IDs
// "1".."Nodes". Isolated nodes are present as vertices. Repeated arcs are
// kept as parallel edges so no capacity is lost; self-loops are kept too
// and left for consumers to ignore.
// Complexity: O(V + E).
func (p *Problem) Graph() (*core.Graph, error) {
	g := core.NewGraph(
		core.WithDirected(true),
		core.WithWeighted(),
		core.WithMultiEdges(),
		core.WithLoops(),
	)
	for n := 1; n <= p.Nodes; n++ {
		if err := g.AddVertex(NodeID(n)); err != nil {
			return nil, fmt.Errorf("dimacs: Graph: AddVertex(%d): %w", n, err)
		}
	}
	for _, a := range p.Edges {
		if _, err := g.AddEdge(NodeID(a.From), NodeID(a.To), a.Capacity); err != nil {
			return nil, fmt.Errorf("dimacs: Graph: AddEdge(%s): %w", a, err)
		}
	}

	return g, nil
}

// UndirectedEdges returns the arcs with direction dropped: the first of
// (u,v) and (v,u) in file order wins, later ones (and repeats) are skipped.
// Self-loops are skipped as well.
func (p *Problem) UndirectedEdges() []Arc {
	seen := make(map[[2]int]struct{}, len(p.Edges))
	out := make([]Arc, 0, len(p.Edges))
	for _, a := range p.Edges {
		if a.From == a.To {
			continue
		}
		key := [2]int{min(a.From, a.To), max(a.From, a.To)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}

	return out
}

// UndirectedGraph loads UndirectedEdges into an undirected, weighted
// core.Graph with vertex IDs "1".."Nodes".
// Complexity: O(V + E).
func (p *Problem) UndirectedGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for n := 1; n <= p.Nodes; n++ {
		if err := g.AddVertex(NodeID(n)); err != nil {
			return nil, fmt.Errorf("dimacs: UndirectedGraph: AddVertex(%d): %w", n, err)
		}
	}
	for _, a := range p.UndirectedEdges() {
		if _, err := g.AddEdge(NodeID(a.From), NodeID(a.To), a.Capacity); err != nil {
			return nil, fmt.Errorf("dimacs: UndirectedGraph: AddEdge(%s): %w", a, err)
		}
	}

	return g, nil
}
