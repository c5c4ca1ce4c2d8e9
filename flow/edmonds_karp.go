package flow

import (
	"github.com/katalvlaran/flowgen/core"
)

// MethodEdmondsKarp tags Edmonds–Karp errors and log lines.
const MethodEdmondsKarp = "EdmondsKarp"

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Returns and errors are the same as for Dinic.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (maxFlow int64, residual *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	net, err := newNetwork(MethodEdmondsKarp, g, source, sink, opts)
	if err != nil {
		return 0, nil, err
	}

	for source != sink {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		parent, found := net.shortestPath(source, sink)
		if !found {
			break
		}
		delta := net.bottleneck(parent, source, sink)
		net.augment(parent, source, sink, delta)
		maxFlow += delta
		logAugment(opts, MethodEdmondsKarp, delta, maxFlow)
	}

	if residual, err = net.residual(); err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// shortestPath finds a fewest-arc path of positive residual capacity and
// returns its parent links.
func (n *network) shortestPath(source, sink string) (map[string]string, bool) {
	parent := make(map[string]string)
	visited := map[string]bool{source: true}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.adj[u] {
			if visited[v] || n.capMap[u][v] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return parent, true
			}
			queue = append(queue, v)
		}
	}

	return nil, false
}
