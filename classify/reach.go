package classify

// ReachableSet returns the set of vertices reachable from start by a
// breadth-first sweep over adj. result[v] is true iff v is reachable
// (start included).
// Complexity: O(V + E) time, O(V) space.
func ReachableSet(adj [][]int, start int) []bool {
	seen := make([]bool, len(adj))
	seen[start] = true
	queue := make([]int, 0, len(adj))
	queue = append(queue, start)

	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// Reachable reports whether to is reachable from from.
// Complexity: O(V + E).
func Reachable(adj [][]int, from, to int) bool {
	if from == to {
		return true
	}

	return ReachableSet(adj, from)[to]
}
