// Package mst computes minimum spanning forests over the undirected view of
// a flow network. flowbench runs all four and checks that their weights
// agree.
//
// Algorithms Provided
//
//   - Kruskal(edges []dimacs.Arc) Forest
//     Offline: stable sort by capacity, then union-find with path halving
//     and union by rank. O(E log E).
//
//   - Prim(g *core.Graph) (Forest, error)
//     Grows one tree per component from the smallest unvisited vertex using
//     a min-heap of candidate edges. Vertex IDs must be DIMACS node numbers.
//     O(E log E).
//
//   - DynamicForest
//     Online: edges arrive one at a time through Add. A new edge joins two
//     trees, or replaces the heaviest edge on the cycle it closes when that
//     edge is heavier. O(V) per insertion.
//
//   - LinkCutForest
//     Online, same rule as DynamicForest, on a link-cut tree: expose finds
//     the heaviest edge on the tree path, link and cut restructure the
//     forest. O(log V) amortized per insertion.
//
// Edge direction and self-loops are ignored everywhere. A disconnected
// input yields a forest, never an error.
//
// Example:
//
//	p, _ := dimacs.Read(r)
//	edges := p.UndirectedEdges()
//	offline := mst.Kruskal(edges)
//	online := mst.NewDynamicForest()
//	for _, e := range edges {
//		online.Add(e.From, e.To, e.Capacity)
//	}
//	// offline.Weight == online.Weight()
package mst
