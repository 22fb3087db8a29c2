package routing

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daho94/chroute/comps"
	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/graph"
	"github.com/daho94/chroute/preproc"
	. "github.com/daho94/chroute/util"
)

type _TestEdge struct {
	from   int32
	to     int32
	weight float64
}

func _BuildComponents(t *testing.T, node_count int, edges []_TestEdge) (*comps.GraphBase, *comps.DefaultWeighting) {
	builder := graph.NewGraphBuilder()
	for i := 0; i < node_count; i++ {
		builder.AddNode(geo.Coord{0, 0})
	}
	for _, edge := range edges {
		_, err := builder.AddEdge(edge.from, edge.to, edge.weight)
		require.NoError(t, err)
	}
	return builder.Build()
}

func _BuildContracted(t *testing.T, node_count int, edges []_TestEdge) *graph.CHGraph {
	base, weight := _BuildComponents(t, node_count, edges)
	contractor := preproc.NewNodeContractor(base, weight, preproc.DefaultContractionParams())
	ch := contractor.Run()
	return graph.BuildCHGraph(base, weight, nil, ch)
}

func _BothWays(edges []_TestEdge) []_TestEdge {
	out := make([]_TestEdge, 0, 2*len(edges))
	for _, edge := range edges {
		out = append(out, edge)
		out = append(out, _TestEdge{from: edge.to, to: edge.from, weight: edge.weight})
	}
	return out
}

func _ComplexEdges() []_TestEdge {
	return _BothWays([]_TestEdge{
		{0, 1, 3}, {0, 2, 5}, {0, 10, 3},
		{1, 3, 5}, {1, 2, 3},
		{2, 3, 2}, {2, 9, 2},
		{3, 9, 4}, {3, 4, 7},
		{4, 9, 3}, {4, 5, 6},
		{5, 7, 2}, {5, 6, 4},
		{6, 7, 3}, {6, 8, 5},
		{7, 8, 3}, {7, 9, 2},
		{8, 9, 4}, {8, 10, 6},
		{9, 10, 3},
	})
}

func TestSearchOnTwoNodeGraph(t *testing.T) {
	ch_graph := _BuildContracted(t, 2, []_TestEdge{{0, 1, 5}})
	ch := NewCHRouting(ch_graph)

	found, err := ch.CalcShortestPath(0, 1)
	require.NoError(t, err)
	require.True(t, found)
	path := ch.GetShortestPath()
	assert.Equal(t, 5.0, path.GetWeight())
	assert.Equal(t, List[int32]{0, 1}, path.GetNodes())

	// edge is directed, the reverse query has no path
	found, err = ch.CalcShortestPath(1, 0)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchOnTriangleWithWitness(t *testing.T) {
	ch_graph := _BuildContracted(t, 3, []_TestEdge{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 2},
	})
	ch := NewCHRouting(ch_graph)

	found, err := ch.CalcShortestPath(0, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2.0, ch.GetShortestPath().GetWeight())
}

func TestSearchOnTriangleWithShortcut(t *testing.T) {
	base, weight := _BuildComponents(t, 3, []_TestEdge{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 10},
	})
	contractor := preproc.NewNodeContractor(base, weight, preproc.DefaultContractionParams())
	ch_data := contractor.RunWithOrder(Array[int32]{1, 0, 2})
	require.Equal(t, 1, ch_data.ShortcutCount())
	ch_graph := graph.BuildCHGraph(base, weight, nil, ch_data)

	ch := NewCHRouting(ch_graph)
	found, err := ch.CalcShortestPath(0, 2)
	require.NoError(t, err)
	require.True(t, found)
	path := ch.GetShortestPath()
	assert.Equal(t, 2.0, path.GetWeight())
	// the shortcut unpacks into the original two-hop path
	assert.Equal(t, List[int32]{0, 1, 2}, path.GetNodes())
}

func TestSearchOnLineGraph(t *testing.T) {
	edges := make([]_TestEdge, 0, 4)
	for i := int32(0); i < 4; i++ {
		edges = append(edges, _TestEdge{from: i, to: i + 1, weight: 1})
	}
	ch_graph := _BuildContracted(t, 5, edges)
	ch := NewCHRouting(ch_graph)

	found, err := ch.CalcShortestPath(0, 4)
	require.NoError(t, err)
	require.True(t, found)
	path := ch.GetShortestPath()
	assert.Equal(t, 4.0, path.GetWeight())
	assert.Equal(t, List[int32]{0, 1, 2, 3, 4}, path.GetNodes())
}

func TestSearchOnDisconnectedComponents(t *testing.T) {
	ch_graph := _BuildContracted(t, 4, []_TestEdge{
		{0, 1, 1}, {2, 3, 1},
	})
	ch := NewCHRouting(ch_graph)

	found, err := ch.CalcShortestPath(0, 3)
	require.NoError(t, err)
	assert.False(t, found)

	found, _ = ch.CalcShortestPath(0, 1)
	assert.True(t, found)
	assert.Equal(t, 1.0, ch.GetShortestPath().GetWeight())
	found, _ = ch.CalcShortestPath(2, 3)
	assert.True(t, found)
	assert.Equal(t, 1.0, ch.GetShortestPath().GetWeight())
}

func TestSearchWithParallelEdges(t *testing.T) {
	// only the cheaper of two parallel edges survives construction
	ch_graph := _BuildContracted(t, 2, []_TestEdge{
		{0, 1, 7}, {0, 1, 3},
	})
	ch := NewCHRouting(ch_graph)

	found, err := ch.CalcShortestPath(0, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3.0, ch.GetShortestPath().GetWeight())
}

func TestSearchWithInvalidNodes(t *testing.T) {
	ch_graph := _BuildContracted(t, 2, []_TestEdge{{0, 1, 5}})
	ch := NewCHRouting(ch_graph)

	_, err := ch.CalcShortestPath(0, 17)
	assert.ErrorIs(t, err, graph.ErrInvalidNodeID)
	_, err = ch.CalcShortestPath(-3, 1)
	assert.ErrorIs(t, err, graph.ErrInvalidNodeID)
}

func TestSearchMatchesDijkstra(t *testing.T) {
	base, weight := _BuildComponents(t, 11, _ComplexEdges())
	contractor := preproc.NewNodeContractor(base, weight, preproc.DefaultContractionParams())
	ch_data := contractor.Run()
	ch_graph := graph.BuildCHGraph(base, weight, nil, ch_data)
	base_graph := graph.BuildGraph(base, weight, nil)

	ch := NewCHRouting(ch_graph)
	dijkstra := NewDijkstra(base_graph)

	for start := int32(0); start < 11; start++ {
		for end := int32(0); end < 11; end++ {
			ch_found, err := ch.CalcShortestPath(start, end)
			require.NoError(t, err)
			d_found, err := dijkstra.CalcShortestPath(start, end)
			require.NoError(t, err)

			require.Equal(t, d_found, ch_found, "start %v end %v", start, end)
			if !ch_found {
				continue
			}
			ch_path := ch.GetShortestPath()
			d_path := dijkstra.GetShortestPath()
			assert.InDelta(t, d_path.GetWeight(), ch_path.GetWeight(), 1e-9, "start %v end %v", start, end)

			// the unpacked path is a walk through the original graph with
			// matching total cost
			nodes := ch_path.GetNodes()
			require.Equal(t, start, nodes[0])
			require.Equal(t, end, nodes[nodes.Length()-1])
			cost := 0.0
			for i := 0; i < nodes.Length()-1; i++ {
				cost += _EdgeWeightBetween(t, base_graph, nodes[i], nodes[i+1])
			}
			assert.InDelta(t, ch_path.GetWeight(), cost, 1e-9)
		}
	}
}

func _EdgeWeightBetween(t *testing.T, g graph.IGraph, from, to int32) float64 {
	explorer := g.GetGraphExplorer()
	weight := math.Inf(1)
	explorer.ForAdjacentEdges(from, graph.FORWARD, graph.ADJACENT_EDGES, func(ref graph.EdgeRef) {
		if ref.OtherID != to {
			return
		}
		if explorer.GetEdgeWeight(ref) < weight {
			weight = explorer.GetEdgeWeight(ref)
		}
	})
	require.False(t, math.IsInf(weight, 1), "no edge between %v and %v", from, to)
	return weight
}

func TestStallOnDemandKeepsWeights(t *testing.T) {
	base, weight := _BuildComponents(t, 11, _ComplexEdges())
	contractor := preproc.NewNodeContractor(base, weight, preproc.DefaultContractionParams())
	ch_data := contractor.Run()
	ch_graph := graph.BuildCHGraph(base, weight, nil, ch_data)

	with_stalling := NewCHRouting(ch_graph)
	without_stalling := NewCHRouting(ch_graph)
	without_stalling.SetStallOnDemand(false)

	for start := int32(0); start < 11; start++ {
		for end := int32(0); end < 11; end++ {
			found_a, err := with_stalling.CalcShortestPath(start, end)
			require.NoError(t, err)
			found_b, err := without_stalling.CalcShortestPath(start, end)
			require.NoError(t, err)

			require.Equal(t, found_b, found_a)
			if found_a {
				assert.InDelta(t,
					without_stalling.GetShortestPath().GetWeight(),
					with_stalling.GetShortestPath().GetWeight(), 1e-9)
			}
		}
	}
}

func TestSearchStats(t *testing.T) {
	ch_graph := _BuildContracted(t, 11, _ComplexEdges())
	ch := NewCHRouting(ch_graph)

	found, err := ch.CalcShortestPath(0, 6)
	require.NoError(t, err)
	require.True(t, found)
	stats := ch.Stats()
	assert.Greater(t, stats.NodesSettled, 0)
	assert.GreaterOrEqual(t, stats.Duration.Nanoseconds(), int64(0))
}

func TestSearchAfterRoundTrip(t *testing.T) {
	base, weight := _BuildComponents(t, 11, _ComplexEdges())
	contractor := preproc.NewNodeContractor(base, weight, preproc.DefaultContractionParams())
	ch_data := contractor.Run()
	ch_graph := graph.BuildCHGraph(base, weight, nil, ch_data)

	file := filepath.Join(t.TempDir(), "complex.chg")
	require.NoError(t, graph.StoreCHGraph(ch_graph, file))
	loaded, err := graph.LoadCHGraph(file)
	require.NoError(t, err)

	ch_a := NewCHRouting(ch_graph)
	ch_b := NewCHRouting(loaded)
	for start := int32(0); start < 11; start++ {
		for end := int32(0); end < 11; end++ {
			found_a, err := ch_a.CalcShortestPath(start, end)
			require.NoError(t, err)
			found_b, err := ch_b.CalcShortestPath(start, end)
			require.NoError(t, err)

			require.Equal(t, found_a, found_b)
			if found_a {
				path_a := ch_a.GetShortestPath()
				path_b := ch_b.GetShortestPath()
				assert.Equal(t, path_a.GetWeight(), path_b.GetWeight())
				assert.Equal(t, path_a.GetNodes(), path_b.GetNodes())
			}
		}
	}
}

func TestSearchSameStartAndEnd(t *testing.T) {
	ch_graph := _BuildContracted(t, 2, []_TestEdge{{0, 1, 5}})
	ch := NewCHRouting(ch_graph)

	found, err := ch.CalcShortestPath(0, 0)
	require.NoError(t, err)
	require.True(t, found)
	path := ch.GetShortestPath()
	assert.Equal(t, 0.0, path.GetWeight())
	assert.Equal(t, List[int32]{0}, path.GetNodes())
}
