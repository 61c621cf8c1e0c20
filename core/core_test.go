package core_test

import (
	"testing"

	"github.com/katalvlaran/selfadjust/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_OptionsConfigureFlags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())

	undirected := core.NewGraph()
	assert.False(t, undirected.Directed())
	assert.False(t, undirected.Weighted())
}

func TestGraph_AddVertexIsIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, []string{"A"}, g.Vertices())
}

func TestGraph_AddVertexRejectsEmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestGraph_AddEdgeCreatesEndpointsAndMirrorsUndirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, g.Vertices())

	nbrA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrA, 1)
	assert.Equal(t, int64(5), nbrA[0].Weight)

	nbrB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, nbrB, 1)
	assert.Equal(t, nbrA[0].ID, nbrB[0].ID)
}

func TestGraph_AddEdgeDirectedOnlyListsFromSource(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	nbrA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbrA, 1)

	nbrB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Len(t, nbrB, 0)
}

func TestGraph_AddEdgeRejectsWeightOnUnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestGraph_AddEdgeRejectsLoopUnlessEnabled(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	looped := core.NewGraph(core.WithLoops())
	_, err = looped.AddEdge("A", "A", 0)
	assert.NoError(t, err)
}

func TestGraph_AddEdgeRejectsMultiEdgeUnlessEnabled(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 2)
	assert.NoError(t, err)
}

func TestGraph_AddEdgeRejectsPerEdgeOverrideUnlessMixed(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	mixed := core.NewGraph(core.WithWeighted(), core.WithMixedEdges())
	_, err = mixed.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)
	assert.True(t, mixed.HasDirectedEdges())
}

func TestGraph_NeighborsRejectsMissingVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_EdgesSortedByID(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("A", "B", 2)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.True(t, edges[0].ID < edges[1].ID)
}

func TestGraph_EdgesOrderSurvivesDoubleDigitIDs(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("A", "B", 1)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e9", edges[8].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e11", edges[10].ID)
}
