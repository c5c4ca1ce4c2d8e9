// Package flowgen generates and consumes DIMACS maximum-flow fixtures.
//
// The module is organized as small packages:
//
//	builder/  rejection sampler that emits random "p max" instances
//	dimacs/   reader, writer and fixture checks for the DIMACS text format
//	core/     thread-safe Graph, Vertex and Edge primitives
//	flow/     Ford-Fulkerson, Edmonds-Karp and Dinic over core.Graph
//	mst/      Kruskal, Prim and incremental spanning forests (naive and link-cut)
//	bfs/      breadth-first search used for s-t reachability
//
// Two commands sit on top:
//
//	flowgen <nodes> <edges>     print a random instance to stdout
//	flowbench [options] <file>  check, solve and benchmark an instance
//
// A generated instance looks like:
//
//	p max 4 3
//	n 1 s
//	n 4 t
//	a 3 1 57
//	a 1 4 9
//	a 2 4 100
//
// Install:
//
//	go install github.com/katalvlaran/flowgen/cmd/flowgen@latest
package flowgen
