package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/flowgen/core"
)

// MethodDinic tags Dinic errors and log lines.
const MethodDinic = "Dinic"

// Dinic computes the maximum flow from `source` to `sink` in the
// weighted graph `g` using Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : a directed *core.Graph of remaining capacities over all
//     vertices of g (forward leftovers and reverse flow edges)
//   - err      : ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, EdgeError,
//     or the context error
//
// Steps:
//  1. Normalize options and build the residual network.
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from source to assign levels.
//     c. DFS-based blocking flow along strictly increasing levels,
//     optionally rebuilding the level graph every LevelRebuildInterval
//     augmentations.
//  3. Materialize the residual graph.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (maxFlow int64, residual *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	net, err := newNetwork(MethodDinic, g, source, sink, opts)
	if err != nil {
		return 0, nil, err
	}

	augmentCount := 0
	for source != sink {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		level := net.levels(source)
		if _, ok := level[sink]; !ok {
			break
		}

		iter := make(map[string]int, len(level))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := net.dinicPush(ctx, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			logAugment(opts, MethodDinic, pushed, maxFlow)

			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	if residual, err = net.residual(); err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// levels runs BFS over positive residual arcs; unreachable vertices are
// absent from the result.
func (n *network) levels(source string) map[string]int {
	level := map[string]int{source: 0}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.adj[u] {
			if _, seen := level[v]; seen || n.capMap[u][v] <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// dinicPush sends up to `available` units from u to sink along the level
// graph, advancing iter[u] past exhausted arcs, and returns the amount sent.
func (n *network) dinicPush(
	ctx context.Context,
	level map[string]int,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if u == sink {
		return available
	}
	if ctx.Err() != nil {
		return 0
	}

	next := n.adj[u]
	for ; iter[u] < len(next); iter[u]++ {
		v := next[iter[u]]
		capUV := n.capMap[u][v]
		if capUV <= 0 {
			continue
		}
		if lv, ok := level[v]; !ok || lv != level[u]+1 {
			continue
		}

		send := available
		if capUV < send {
			send = capUV
		}
		if pushed := n.dinicPush(ctx, level, iter, v, sink, send); pushed > 0 {
			n.capMap[u][v] -= pushed
			n.capMap[v][u] += pushed

			return pushed
		}
	}

	return 0
}
