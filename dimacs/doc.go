// Package dimacs reads and writes the DIMACS max-flow text format used by
// flowgen fixtures.
//
// A fixture looks like:
//
//	p max 4 3
//	n 1 s
//	n 4 t
//	a 1 2 57
//	a 3 4 12
//	a 2 1 99
//
// The "p" line declares node and arc counts, the "n" lines mark the source
// and the sink, each "a" line is one arc u→v with its capacity. Lines
// starting with "c" are comments.
//
// Writer emits the format byte for byte; Read parses it back into a Problem;
// Check verifies the properties a generated fixture promises (unique arcs, no
// self-loops, capacities in range, terminals at 1 and N). Problem.Graph
// loads an instance into a core.Graph for the flow and mst packages.
package dimacs
