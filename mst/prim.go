package mst

import (
	"container/heap"
	"fmt"
	"strconv"

	"github.com/katalvlaran/flowgen/core"
	"github.com/katalvlaran/flowgen/dimacs"
)

// Prim computes the minimum spanning forest of an undirected, weighted
// core.Graph whose vertex IDs are DIMACS node numbers (see dimacs.NodeID),
// growing one tree per component with a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed, or unweighted.
//   - ErrVertexID     : a vertex ID does not parse as an integer.
//
// Steps:
//  1. Validate the graph.
//  2. For each unvisited vertex in sorted order, start a tree:
//     a. Mark it visited, push its incident edges.
//     b. Pop the lightest edge; skip it if its far end is visited.
//     c. Otherwise take it, mark the far end, push its edges.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph) (Forest, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return Forest{}, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	ids := make(map[string]int, len(vertices))
	for _, v := range vertices {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Forest{}, fmt.Errorf("mst: Prim: %q: %w", v, ErrVertexID)
		}
		ids[v] = n
	}

	var (
		f       Forest
		visited = make(map[string]bool, len(vertices))
		pq      = &edgePQ{}
		pushed  int
	)
	visit := func(u string) error {
		visited[u] = true
		edges, err := graph.Neighbors(u)
		if err != nil {
			return fmt.Errorf("mst: Prim: neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			v := e.To
			if v == u {
				v = e.From
			}
			if v == u || visited[v] {
				continue
			}
			heap.Push(pq, candidate{from: u, to: v, weight: e.Weight, order: pushed})
			pushed++
		}

		return nil
	}

	for _, root := range vertices {
		if visited[root] {
			continue
		}
		if err := visit(root); err != nil {
			return Forest{}, err
		}
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue
			}
			f.add(dimacs.Arc{From: ids[c.from], To: ids[c.to], Capacity: c.weight})
			if err := visit(c.to); err != nil {
				return Forest{}, err
			}
		}
	}

	return f, nil
}

// candidate is a heap entry; order breaks weight ties by push order.
type candidate struct {
	from, to string
	weight   int64
	order    int
}

// edgePQ implements heap.Interface as a min-heap of candidates.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].order < pq[j].order
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
