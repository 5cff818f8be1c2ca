package solve

// bfsPath runs a FIFO breadth-first search over adj from s to t,
// optionally restricted to allowed vertices (nil allows all), and
// reconstructs the path from parent pointers. The returned path is the
// shortest in edge count; nil means t was not reached. Exploration
// follows adjacency order, so the result is deterministic for a fixed
// input.
// Complexity: O(V + E) time, O(V) space.
func bfsPath(adj [][]int, s, t int, allowed []bool) []int {
	n := len(adj)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range prev {
		prev[i] = -1
	}
	visited[s] = true

	queue := make([]int, 0, n)
	queue = append(queue, s)

	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		if u == t {
			break
		}
		for _, v := range adj[u] {
			if allowed != nil && !allowed[v] {
				continue
			}
			if !visited[v] {
				visited[v] = true
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}

	if !visited[t] {
		return nil
	}

	// Walk parent pointers back from t, then reverse.
	path := []int{}
	for x := t; x != -1; x = prev[x] {
		path = append(path, x)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
