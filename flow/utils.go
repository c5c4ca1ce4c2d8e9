package flow

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/flowgen/core"
)

// network is the residual state shared by all algorithms.
//
//	capMap[u][v] = remaining capacity u→v; every positive entry has a
//	               (possibly zero) reverse entry capMap[v][u].
//	adj[u]       = sorted keys of capMap[u], fixed for the whole run so that
//	               searches visit neighbors in a deterministic order.
type network struct {
	vertices []string
	capMap   map[string]map[string]int64
	adj      map[string][]string
}

// newNetwork validates the terminals and builds the residual network of g,
// aggregating parallel edges and ignoring loops.
//
// Steps:
//  1. Check g, source and sink.
//  2. For each vertex u in sorted order, sum the capacity of every edge
//     leaving u (undirected edges leave both endpoints); negative weights
//     fail with EdgeError.
//  3. Drop totals ≤ opts.Epsilon, then add zero reverse entries.
//  4. Freeze sorted adjacency.
//
// Complexity: O(V + E log E). Memory: O(V + E).
func newNetwork(method string, g *core.Graph, source, sink string, opts FlowOptions) (*network, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%s: %q: %w", method, source, ErrSourceNotFound)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%s: %q: %w", method, sink, ErrSinkNotFound)
	}

	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]int64)
	}

	for _, u := range vertices {
		if err := opts.Ctx.Err(); err != nil {
			return nil, err
		}
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("%s: neighbors of %q: %w", method, u, err)
		}
		for _, e := range edges {
			if e.From == e.To {
				continue
			}
			if e.Weight < 0 {
				return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
			}
			v := e.To
			if v == u {
				v = e.From
			}
			capMap[u][v] += e.Weight
		}
		for v, c := range capMap[u] {
			if c <= opts.Epsilon {
				delete(capMap[u], v)
			}
		}
	}

	for u, inner := range capMap {
		for v := range inner {
			if _, ok := capMap[v][u]; !ok {
				capMap[v][u] = 0
			}
		}
	}

	adj := make(map[string][]string, len(capMap))
	for u, inner := range capMap {
		nbrs := make([]string, 0, len(inner))
		for v := range inner {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		adj[u] = nbrs
	}

	return &network{vertices: vertices, capMap: capMap, adj: adj}, nil
}

// augment pushes delta along the path recorded in parent, from sink back
// to source.
func (n *network) augment(parent map[string]string, source, sink string, delta int64) {
	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		n.capMap[u][v] -= delta
		n.capMap[v][u] += delta
	}
}

// bottleneck returns the smallest residual capacity on the parent path.
func (n *network) bottleneck(parent map[string]string, source, sink string) int64 {
	var minCap int64 = -1
	for v := sink; v != source; v = parent[v] {
		if c := n.capMap[parent[v]][v]; minCap < 0 || c < minCap {
			minCap = c
		}
	}

	return minCap
}

// residual materializes the remaining capacities as a directed, weighted
// core.Graph over all input vertices; only positive entries become edges.
// Complexity: O(V + E_res).
func (n *network) residual() (*core.Graph, error) {
	res := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, u := range n.vertices {
		if err := res.AddVertex(u); err != nil {
			return nil, err
		}
	}
	for _, u := range n.vertices {
		for _, v := range n.adj[u] {
			if c := n.capMap[u][v]; c > 0 {
				if _, err := res.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return res, nil
}

// logAugment writes one augmentation at trace level to the context logger
// when verbose.
func logAugment(opts FlowOptions, method string, delta, total int64) {
	if !opts.Verbose {
		return
	}
	zerolog.Ctx(opts.Ctx).Trace().
		Str("method", method).
		Int64("pushed", delta).
		Int64("total", total).
		Msg("augmented")
}
