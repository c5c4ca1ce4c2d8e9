package mst

import (
	"sort"

	"github.com/katalvlaran/flowgen/dimacs"
)

// Kruskal computes the minimum spanning forest of the undirected edge list
// using a disjoint-set (union-find) with path compression and union by rank.
//
// Steps:
//  1. Register every endpoint as a singleton set; skip self-loops.
//  2. Stable-sort edges by ascending capacity (ties keep input order).
//  3. Keep each edge whose endpoints lie in different sets and merge them.
//
// Edge direction is ignored. Forest.Edges lists chosen edges in selection
// order.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(edges []dimacs.Arc) Forest {
	parent := make(map[int]int)
	rank := make(map[int]int)
	sorted := make([]dimacs.Arc, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		for _, v := range [2]int{e.From, e.To} {
			if _, ok := parent[v]; !ok {
				parent[v] = v
			}
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}

		return true
	}

	var f Forest
	limit := len(parent) - 1
	for _, e := range sorted {
		if len(f.Edges) == limit {
			break
		}
		if union(e.From, e.To) {
			f.add(e)
		}
	}

	return f
}
