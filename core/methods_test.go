package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-bcn/bcn/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("x1"))
	require.NoError(t, g.AddVertex("x1"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_AutoInsertsEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x1", "x2")
	require.NoError(t, err)
	assert.True(t, g.HasVertex("x1"))
	assert.True(t, g.HasVertex("x2"))
}

func TestAddEdge_SelfLoopAllowed(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x1", "x1")
	require.NoError(t, err)
	nbrs, err := g.NeighborIDs("x1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x1"}, nbrs)
}

func TestNeighbors_SortedAndScoped(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("x1", "x3")
	_, _ = g.AddEdge("x1", "x2")
	nbrs, err := g.NeighborIDs("x1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x2", "x3"}, nbrs)
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("x2", "x1")
	_, _ = g.AddEdge("x1", "x3")
	assert.Equal(t, []string{"x1", "x2", "x3"}, g.Vertices())
}
