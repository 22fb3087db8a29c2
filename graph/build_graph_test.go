package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daho94/chroute/geo"
)

func TestGraphBuilderValidation(t *testing.T) {
	builder := NewGraphBuilder()
	a := builder.AddNode(geo.Coord{0, 0})
	b := builder.AddNode(geo.Coord{1, 0})

	_, err := builder.AddEdge(a, 5, 1.0)
	assert.ErrorIs(t, err, ErrInvalidNodeID)
	_, err = builder.AddEdge(-1, b, 1.0)
	assert.ErrorIs(t, err, ErrInvalidNodeID)
	_, err = builder.AddEdge(a, b, -2.0)
	assert.ErrorIs(t, err, ErrNegativeWeight)

	_, err = builder.AddEdge(a, b, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, 2, builder.NodeCount())
	assert.Equal(t, 1, builder.EdgeCount())
}

func TestGraphBuilderParallelEdges(t *testing.T) {
	// only the cheapest of two parallel edges survives
	builder := NewGraphBuilder()
	u := builder.AddNode(geo.Coord{0, 0})
	v := builder.AddNode(geo.Coord{1, 0})

	first, err := builder.AddEdge(u, v, 7.0)
	require.NoError(t, err)
	second, err := builder.AddEdge(u, v, 3.0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, builder.EdgeCount())

	// the weaker edge never replaces the stronger one
	third, err := builder.AddEdge(u, v, 5.0)
	require.NoError(t, err)
	assert.Equal(t, first, third)

	base, weight := builder.Build()
	assert.Equal(t, 1, base.EdgeCount())
	assert.Equal(t, 3.0, weight.GetEdgeWeight(first))
}

func TestBaseGraphExplorer(t *testing.T) {
	builder := NewGraphBuilder()
	a := builder.AddNode(geo.Coord{0, 0})
	b := builder.AddNode(geo.Coord{1, 0})
	c := builder.AddNode(geo.Coord{2, 0})
	builder.AddEdge(a, b, 1.0)
	builder.AddEdge(b, c, 2.0)

	base, weight := builder.Build()
	g := BuildGraph(base, weight, nil)
	explorer := g.GetGraphExplorer()

	weights := make([]float64, 0)
	explorer.ForAdjacentEdges(b, FORWARD, ADJACENT_EDGES, func(ref EdgeRef) {
		assert.Equal(t, c, ref.OtherID)
		weights = append(weights, explorer.GetEdgeWeight(ref))
	})
	assert.Equal(t, []float64{2.0}, weights)

	incoming := make([]int32, 0)
	explorer.ForAdjacentEdges(b, BACKWARD, ADJACENT_EDGES, func(ref EdgeRef) {
		incoming = append(incoming, ref.OtherID)
	})
	assert.Equal(t, []int32{a}, incoming)
}
