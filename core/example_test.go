package core_test

import (
	"fmt"

	"github.com/katalvlaran/flowgen/core"
)

// ExampleGraph_Neighbors builds a tiny flow network and lists the arcs
// leaving the source.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("1", "2", 17)
	_, _ = g.AddEdge("1", "3", 4)
	_, _ = g.AddEdge("2", "3", 9)

	nbs, _ := g.Neighbors("1")
	for _, e := range nbs {
		fmt.Printf("%s→%s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// 1→2 (17)
	// 1→3 (4)
}
