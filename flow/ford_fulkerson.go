package flow

import (
	"github.com/katalvlaran/flowgen/core"
)

// MethodFordFulkerson tags Ford–Fulkerson errors and log lines.
const MethodFordFulkerson = "FordFulkerson"

// FordFulkerson computes the maximum flow from `source` to `sink` using the
// Ford–Fulkerson method (iterative DFS for any augmenting path).
//
// Returns and errors are the same as for Dinic.
//
// Complexity:
//
//	Time:   O(E · F) where F = maxFlow. With capacities bounded by a small
//	        constant (as in generated fixtures) this is practical.
//	Memory: O(V + E) for the residual network and DFS stack.
func FordFulkerson(g *core.Graph, source, sink string, opts FlowOptions) (maxFlow int64, residual *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	net, err := newNetwork(MethodFordFulkerson, g, source, sink, opts)
	if err != nil {
		return 0, nil, err
	}

	for source != sink {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		parent, found := net.anyPath(source, sink)
		if !found {
			break
		}
		delta := net.bottleneck(parent, source, sink)
		net.augment(parent, source, sink, delta)
		maxFlow += delta
		logAugment(opts, MethodFordFulkerson, delta, maxFlow)
	}

	if residual, err = net.residual(); err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// anyPath runs an iterative DFS and returns the parent links of the first
// path to reach sink.
func (n *network) anyPath(source, sink string) (map[string]string, bool) {
	parent := make(map[string]string)
	visited := map[string]bool{source: true}
	stack := []string{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range n.adj[u] {
			if visited[v] || n.capMap[u][v] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return parent, true
			}
			stack = append(stack, v)
		}
	}

	return nil, false
}
