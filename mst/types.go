// Package mst defines the forest result type and sentinel errors.
package mst

import (
	"errors"

	"github.com/katalvlaran/flowgen/dimacs"
)

// ErrInvalidGraph indicates that Prim requires a non-nil, undirected,
// weighted graph.
var ErrInvalidGraph = errors.New("mst: forest requires undirected, weighted graph")

// ErrVertexID indicates a vertex ID that is not a DIMACS node number.
var ErrVertexID = errors.New("mst: vertex id is not a node number")

// Forest is a minimum spanning forest: one minimum spanning tree per
// connected component. Edges are undirected; Capacity is the edge weight.
type Forest struct {
	Edges  []dimacs.Arc
	Weight int64
}

// add appends e and accumulates its weight.
func (f *Forest) add(e dimacs.Arc) {
	f.Edges = append(f.Edges, e)
	f.Weight += e.Capacity
}
