package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daho94/chroute/graph"
	. "github.com/daho94/chroute/util"
)

func TestDijkstraOnLineGraph(t *testing.T) {
	base, weight := _BuildComponents(t, 5, []_TestEdge{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1},
	})
	g := graph.BuildGraph(base, weight, nil)
	dijkstra := NewDijkstra(g)

	found, err := dijkstra.CalcShortestPath(0, 4)
	require.NoError(t, err)
	require.True(t, found)
	path := dijkstra.GetShortestPath()
	assert.Equal(t, 4.0, path.GetWeight())
	assert.Equal(t, List[int32]{0, 1, 2, 3, 4}, path.GetNodes())

	found, err = dijkstra.CalcShortestPath(4, 0)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDijkstraInvalidNodes(t *testing.T) {
	base, weight := _BuildComponents(t, 2, []_TestEdge{{0, 1, 1}})
	dijkstra := NewDijkstra(graph.BuildGraph(base, weight, nil))

	_, err := dijkstra.CalcShortestPath(0, 9)
	assert.ErrorIs(t, err, graph.ErrInvalidNodeID)
}

func TestAStarMatchesDijkstra(t *testing.T) {
	// all nodes share a location, the potential vanishes and both
	// searches must agree everywhere
	base, weight := _BuildComponents(t, 11, _ComplexEdges())
	g := graph.BuildGraph(base, weight, nil)
	dijkstra := NewDijkstra(g)
	astar := NewAStar(g)

	for start := int32(0); start < 11; start++ {
		for end := int32(0); end < 11; end++ {
			found_d, err := dijkstra.CalcShortestPath(start, end)
			require.NoError(t, err)
			found_a, err := astar.CalcShortestPath(start, end)
			require.NoError(t, err)

			require.Equal(t, found_d, found_a)
			if found_d {
				assert.InDelta(t,
					dijkstra.GetShortestPath().GetWeight(),
					astar.GetShortestPath().GetWeight(), 1e-9)
			}
		}
	}
}
