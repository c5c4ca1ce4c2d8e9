// Package builder generates random DIMACS max-flow fixtures: directed
// networks over nodes 1..N with a requested number of unique arcs and
// random capacities.
//
// The package offers the following key components:
//
//   - Entry points:
//     – Generate:          stream accepted arcs to a callback.
//     – WriteInstance:     write a complete "p max" fixture to an io.Writer.
//     – RandomFlowNetwork: Constructor materializing the sample into a core.Graph
//     (run through BuildGraph).
//   - Configuration primitives:
//     – Option:            a function that mutates config before use.
//     – WithSeed / WithRand / WithSource: the random source. Without one,
//     Generate and WriteInstance seed from wall-clock time.
//     – WithCapacityFn / WithCapacityRange: the capacity distribution.
//     – WithMaxCells:      presence matrix budget (pair set above it).
//   - Capacity distributions (CapacityFn):
//     – DefaultCapacityFn:  uniform [1,100].
//     – UniformCapacityFn:  uniform [min,max].
//     – ConstantCapacityFn: fixed value.
//
// Algorithm: rejection sampling over a flat (N+1)×(N+1) presence matrix, or
// a set of accepted pairs when the matrix would exceed the cell budget.
// Each attempt draws u then v from [1,N]; self-loops and repeated ordered
// pairs are rejected; accepted pairs get a capacity and are emitted.
// Reverse pairs (v,u) are distinct arcs and may appear alongside (u,v).
//
// Guarantees:
//
//   - Exactly the requested number of arcs; none is a self-loop; no ordered
//     pair repeats; ids lie in [1,N]; capacities lie in the configured range.
//   - Requests above N·(N-1) fail fast with ErrTooManyArcs instead of
//     sampling forever.
//   - With WithMaxCells(0), presence matrices whose size overflows int or
//     whose length the runtime rejects fail with ErrAllocation before any
//     output.
//   - Same seed and arguments ⇒ byte-identical output.
//
// No connectivity is promised: a fixture may have no s–t path at all.
package builder
