package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redpath/classify"
)

// undirected expands an edge list into a both-ways adjacency list.
func undirected(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	return adj
}

// directed expands an edge list into a one-way adjacency list.
func directed(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}

	return adj
}

// TestReachable_Basics covers direct, transitive, and absent reachability.
func TestReachable_Basics(t *testing.T) {
	adj := directed(4, [][2]int{{0, 1}, {1, 2}})

	assert.True(t, classify.Reachable(adj, 0, 2))
	assert.True(t, classify.Reachable(adj, 3, 3))
	assert.False(t, classify.Reachable(adj, 2, 0))
	assert.False(t, classify.Reachable(adj, 0, 3))
}

// TestReachableSet_Disconnected verifies the component sweep.
func TestReachableSet_Disconnected(t *testing.T) {
	adj := undirected(4, [][2]int{{0, 1}, {2, 3}})
	seen := classify.ReachableSet(adj, 0)

	assert.Equal(t, []bool{true, true, false, false}, seen)
}

// TestIsTree_Positive accepts a star and a path.
func TestIsTree_Positive(t *testing.T) {
	assert.True(t, classify.IsTree(undirected(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})))
	assert.True(t, classify.IsTree(undirected(3, [][2]int{{0, 1}, {1, 2}})))
	assert.True(t, classify.IsTree(nil))
}

// TestIsTree_Negative rejects cycles and forests.
func TestIsTree_Negative(t *testing.T) {
	// Triangle: right edge count fails (3 edges for 3 vertices).
	assert.False(t, classify.IsTree(undirected(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})))
	// Forest: edge count n-2, disconnected.
	assert.False(t, classify.IsTree(undirected(4, [][2]int{{0, 1}, {2, 3}})))
}

// TestIsDAG covers the acyclic diamond and a directed cycle.
func TestIsDAG(t *testing.T) {
	diamond := directed(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	assert.True(t, classify.IsDAG(diamond))

	loop := directed(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	assert.False(t, classify.IsDAG(loop))

	// Paired arcs from an undirected edge must read as a 2-cycle.
	assert.False(t, classify.IsDAG(undirected(2, [][2]int{{0, 1}})))
}

// TestTopologicalOrder verifies order validity and cycle refusal.
func TestTopologicalOrder(t *testing.T) {
	diamond := directed(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	order, ok := classify.TopologicalOrder(diamond)
	require.True(t, ok)
	require.Len(t, order, 4)

	pos := make(map[int]int, 4)
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %v out of order", e)
	}

	_, ok = classify.TopologicalOrder(directed(2, [][2]int{{0, 1}, {1, 0}}))
	assert.False(t, ok)
}
