package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redpath/core"
)

// buildTriangle constructs a -- b -- c -- a with b red.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []struct {
		id  string
		red bool
	}{{"a", false}, {"b", true}, {"c", false}} {
		_, err := g.AddVertex(v.id, v.red)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge("a", "b", false))
	require.NoError(t, g.AddEdge("b", "c", false))
	require.NoError(t, g.AddEdge("c", "a", false))

	return g
}

// TestAddVertex_Rejections verifies empty and duplicate IDs are refused.
func TestAddVertex_Rejections(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("", false)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddVertex("a", false)
	require.NoError(t, err)
	_, err = g.AddVertex("a", true)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

// TestAddEdge_UnknownEndpoint verifies edges must reference known vertices.
func TestAddEdge_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("a", false)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge("a", "ghost", false), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("ghost", "a", true), core.ErrVertexNotFound)
}

// TestRedBookkeeping checks color lookups and red index enumeration.
func TestRedBookkeeping(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.False(t, g.Red(0))
	assert.True(t, g.Red(1))
	assert.Equal(t, []int{1}, g.RedIndices())
}

// TestAdjacency_UndirectedBothWays checks undirected edges expand to two arcs.
func TestAdjacency_UndirectedBothWays(t *testing.T) {
	g := buildTriangle(t)
	adj := g.Adjacency(false)

	assert.ElementsMatch(t, []int{1, 2}, adj[0])
	assert.ElementsMatch(t, []int{0, 2}, adj[1])
	assert.ElementsMatch(t, []int{1, 0}, adj[2])
}

// TestAdjacency_ForceDirected checks the one-way interpretation.
func TestAdjacency_ForceDirected(t *testing.T) {
	g := buildTriangle(t)
	adj := g.Adjacency(true)

	assert.Equal(t, []int{1}, adj[0])
	assert.Equal(t, []int{2}, adj[1])
	assert.Equal(t, []int{0}, adj[2])
}

// TestReverse_DirectedFlips checks the transpose of directed arcs.
func TestReverse_DirectedFlips(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("u", false)
	_, _ = g.AddVertex("v", true)
	require.NoError(t, g.AddEdge("u", "v", true))

	rev := g.Reverse(false)
	assert.Empty(t, rev[0])
	assert.Equal(t, []int{0}, rev[1])
	assert.True(t, g.AllDirected())
}

// TestIDs_RoundTrip checks index-path to ID-path mapping.
func TestIDs_RoundTrip(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, []string{"a", "b", "c"}, g.IDs([]int{0, 1, 2}))
	assert.Nil(t, g.IDs(nil))

	i, ok := g.Index("b")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "b", g.Vertex(1).ID)
}
