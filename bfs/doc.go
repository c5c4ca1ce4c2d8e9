// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// flowbench uses it to tell whether a fixture has any source→sink path
// (generated fixtures promise none) and how many hops the shortest one has.
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - OnVisit hook may abort the search with an error.
//   - MaxDepth limits the layers explored; MinWeight skips light edges
//     (MinWeight 1 keeps only arcs with capacity); FilterNeighbor skips
//     arbitrary neighbors.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
