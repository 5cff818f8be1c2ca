package classify

// IsTree reports whether adj describes a tree: connected, with edge
// count equal to vertices−1. The adjacency list is assumed to carry
// each undirected edge as two arcs, so the arc total must be 2(n−1);
// graphs with genuinely directed edges therefore never classify as
// trees, matching the unique-path premise of the tree solver.
// Complexity: O(V + E).
func IsTree(adj [][]int) bool {
	n := len(adj)
	if n == 0 {
		return true
	}

	// 1) Edge count: total adjacency length must be exactly 2(n−1).
	var arcs int
	for v := range adj {
		arcs += len(adj[v])
	}
	if arcs != 2*(n-1) {
		return false
	}

	// 2) Connectivity from vertex 0.
	seen := ReachableSet(adj, 0)
	for v := range seen {
		if !seen[v] {
			return false
		}
	}

	return true
}
