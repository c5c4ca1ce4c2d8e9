package mst_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgen/builder"
	"github.com/katalvlaran/flowgen/core"
	"github.com/katalvlaran/flowgen/dimacs"
	"github.com/katalvlaran/flowgen/mst"
)

// triangle: 1-2 (1), 2-3 (2), 1-3 (3). MST = {1-2, 2-3}, weight 3.
var triangle = []dimacs.Arc{
	{From: 1, To: 2, Capacity: 1},
	{From: 2, To: 3, Capacity: 2},
	{From: 1, To: 3, Capacity: 3},
}

func dynamic(edges []dimacs.Arc) *mst.DynamicForest {
	f := mst.NewDynamicForest()
	for _, e := range edges {
		f.Add(e.From, e.To, e.Capacity)
	}
	return f
}

func linkCut(edges []dimacs.Arc) *mst.LinkCutForest {
	f := mst.NewLinkCutForest()
	for _, e := range edges {
		f.Add(e.From, e.To, e.Capacity)
	}
	return f
}

func undirected(t *testing.T, nodes int, edges []dimacs.Arc) *core.Graph {
	t.Helper()
	g, err := (&dimacs.Problem{Nodes: nodes, Edges: edges}).UndirectedGraph()
	require.NoError(t, err)
	return g
}

func TestKruskal_Triangle(t *testing.T) {
	f := mst.Kruskal(triangle)
	assert.Equal(t, int64(3), f.Weight)
	assert.Equal(t, triangle[:2], f.Edges)
}

func TestKruskal_EmptyAndLoops(t *testing.T) {
	assert.Equal(t, mst.Forest{}, mst.Kruskal(nil))
	f := mst.Kruskal([]dimacs.Arc{{From: 4, To: 4, Capacity: 1}})
	assert.Empty(t, f.Edges)
	assert.Zero(t, f.Weight)
}

func TestKruskal_Disconnected(t *testing.T) {
	f := mst.Kruskal([]dimacs.Arc{
		{From: 1, To: 2, Capacity: 5},
		{From: 3, To: 4, Capacity: 7},
		{From: 4, To: 3, Capacity: 2},
	})
	assert.Equal(t, int64(7), f.Weight)
	assert.Len(t, f.Edges, 2)
}

func TestDynamicForest_ReplacesHeaviest(t *testing.T) {
	f := mst.NewDynamicForest()
	require.True(t, f.Add(1, 2, 10))
	require.True(t, f.Add(2, 3, 4))
	require.Equal(t, int64(14), f.Weight())

	require.False(t, f.Add(1, 3, 12), "heavier than every path edge")
	require.True(t, f.Add(3, 1, 6), "replaces 1-2 (10)")
	require.Equal(t, int64(10), f.Weight())
	require.Equal(t, []dimacs.Arc{
		{From: 1, To: 3, Capacity: 6},
		{From: 2, To: 3, Capacity: 4},
	}, f.Edges())

	require.False(t, f.Add(2, 2, 1))
	require.Equal(t, 2, f.Len())
}

func TestDynamicForest_ZeroValue(t *testing.T) {
	var f mst.DynamicForest
	require.True(t, f.Add(1, 2, 3))
	require.Equal(t, mst.Forest{Edges: []dimacs.Arc{{From: 1, To: 2, Capacity: 3}}, Weight: 3}, f.Forest())
}

func TestLinkCutForest_ReplacesHeaviest(t *testing.T) {
	f := mst.NewLinkCutForest()
	require.True(t, f.Add(1, 2, 10))
	require.True(t, f.Add(2, 3, 4))
	require.Equal(t, int64(14), f.Weight())

	require.False(t, f.Add(1, 3, 12), "heavier than every path edge")
	require.False(t, f.Add(3, 1, 10), "ties keep the forest")
	require.True(t, f.Add(3, 1, 6), "replaces 1-2 (10)")
	require.Equal(t, int64(10), f.Weight())
	require.Equal(t, []dimacs.Arc{
		{From: 1, To: 3, Capacity: 6},
		{From: 2, To: 3, Capacity: 4},
	}, f.Edges())

	require.False(t, f.Add(2, 2, 1))
	require.Equal(t, 2, f.Len())
}

func TestLinkCutForest_LongPathAndRelink(t *testing.T) {
	// Path 1-2-...-8 with the heaviest edge in the middle.
	f := mst.NewLinkCutForest()
	weights := []int64{3, 1, 4, 9, 2, 6, 5}
	for i, w := range weights {
		require.True(t, f.Add(i+1, i+2, w))
	}
	require.Equal(t, int64(30), f.Weight())

	// Closing the cycle with 8-1 drops 4-5 (9).
	require.True(t, f.Add(8, 1, 7))
	require.Equal(t, int64(28), f.Weight())
	require.NotContains(t, f.Edges(), dimacs.Arc{From: 4, To: 5, Capacity: 9})

	// 4 and 5 are now joined through 8-1 (7), the heaviest on that path.
	require.True(t, f.Add(5, 4, 1))
	require.Equal(t, int64(22), f.Weight())
	require.NotContains(t, f.Edges(), dimacs.Arc{From: 1, To: 8, Capacity: 7})

	// A second component, then a bridge between the two.
	require.True(t, f.Add(20, 21, 8))
	require.True(t, f.Add(21, 3, 50))
	require.Equal(t, int64(80), f.Weight())
	require.Equal(t, 9, f.Len())
	require.Equal(t, f.Weight(), f.Forest().Weight)
}

func TestLinkCutForest_ZeroValue(t *testing.T) {
	var f mst.LinkCutForest
	require.True(t, f.Add(2, 1, 3))
	require.Equal(t, mst.Forest{Edges: []dimacs.Arc{{From: 1, To: 2, Capacity: 3}}, Weight: 3}, f.Forest())
}

func TestLinkCutForest_MatchesDynamicPerInsertion(t *testing.T) {
	var edges []dimacs.Arc
	_, err := builder.Generate(context.Background(), 40, 600, func(a dimacs.Arc) error {
		edges = append(edges, a)
		return nil
	}, builder.WithSeed(11), builder.WithCapacityRange(1, 20))
	require.NoError(t, err)

	naive, lc := mst.NewDynamicForest(), mst.NewLinkCutForest()
	for i, e := range edges {
		require.Equal(t, naive.Add(e.From, e.To, e.Capacity), lc.Add(e.From, e.To, e.Capacity), "edge #%d %s", i, e)
		require.Equal(t, naive.Weight(), lc.Weight(), "edge #%d %s", i, e)
		require.Equal(t, naive.Len(), lc.Len(), "edge #%d %s", i, e)
	}
}

func TestPrim_Triangle(t *testing.T) {
	f, err := mst.Prim(undirected(t, 3, triangle))
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.Weight)
	assert.Len(t, f.Edges, 2)
}

func TestPrim_Errors(t *testing.T) {
	_, err := mst.Prim(nil)
	require.ErrorIs(t, err, mst.ErrInvalidGraph)

	_, err = mst.Prim(core.NewGraph(core.WithDirected(true), core.WithWeighted()))
	require.ErrorIs(t, err, mst.ErrInvalidGraph)

	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 1)
	_, err = mst.Prim(g)
	require.ErrorIs(t, err, mst.ErrVertexID)
}

func TestForestsAgreeOnGeneratedFixtures(t *testing.T) {
	for seed, size := range [][2]int{{1, 0}, {2, 2}, {6, 9}, {20, 60}, {50, 400}, {80, 3000}} {
		nodes, arcs := size[0], size[1]
		t.Run(fmt.Sprintf("n=%d,m=%d", nodes, arcs), func(t *testing.T) {
			p := &dimacs.Problem{Nodes: nodes}
			_, err := builder.Generate(context.Background(), nodes, arcs, func(a dimacs.Arc) error {
				p.Edges = append(p.Edges, a)
				return nil
			}, builder.WithSeed(int64(seed)))
			require.NoError(t, err)

			edges := p.UndirectedEdges()
			offline := mst.Kruskal(edges)
			online := dynamic(edges)
			lc := linkCut(edges)
			prim, err := mst.Prim(undirected(t, nodes, edges))
			require.NoError(t, err)

			require.Equal(t, offline.Weight, online.Weight())
			require.Equal(t, offline.Weight, prim.Weight)
			require.Equal(t, offline.Weight, lc.Weight())
			require.Equal(t, len(offline.Edges), lc.Len())
			require.Equal(t, len(offline.Edges), online.Len())
			require.Equal(t, len(offline.Edges), len(prim.Edges))
		})
	}
}

func BenchmarkForests(b *testing.B) {
	var edges []dimacs.Arc
	_, err := builder.Generate(context.Background(), 300, 6000, func(a dimacs.Arc) error {
		edges = append(edges, a)
		return nil
	}, builder.WithSeed(42))
	require.NoError(b, err)
	edges = (&dimacs.Problem{Nodes: 300, Edges: edges}).UndirectedEdges()

	b.Run("Kruskal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = mst.Kruskal(edges)
		}
	})
	b.Run("Dynamic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = dynamic(edges)
		}
	})
	b.Run("LinkCut", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = linkCut(edges)
		}
	})
}
