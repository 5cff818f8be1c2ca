package classify

// Visitation states for the cycle-detecting sweep.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// frame is one level of the explicit DFS stack.
type frame struct {
	v    int // vertex under exploration
	next int // index of the next child to consider
}

// IsDAG reports whether adj is acyclic, using a depth-first sweep with
// an on-stack (gray) marker. Callers must ensure the adjacency encodes
// a genuinely directed graph — an undirected edge expanded to paired
// arcs reads as a 2-cycle and correctly fails the test.
//
// The traversal keeps its own stack, so arbitrarily deep graphs do not
// grow the call stack.
// Complexity: O(V + E) time, O(V) space.
func IsDAG(adj [][]int) bool {
	n := len(adj)
	state := make([]int, n)
	stack := make([]frame, 0, n)

	var root int
	for root = 0; root < n; root++ {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack = append(stack, frame{v: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(adj[top.v]) {
				child := adj[top.v][top.next]
				top.next++
				switch state[child] {
				case gray:
					return false // back-edge: cycle
				case white:
					state[child] = gray
					stack = append(stack, frame{v: child})
				}
				continue
			}
			state[top.v] = black
			stack = stack[:len(stack)-1]
		}
	}

	return true
}

// TopologicalOrder computes a topological ordering via Kahn's
// algorithm. The second result is false when the graph contains a
// cycle (the order is then incomplete and must not be used).
// Ties break in ascending vertex order seeded by the initial scan,
// keeping the ordering deterministic.
// Complexity: O(V + E) time, O(V) space.
func TopologicalOrder(adj [][]int) ([]int, bool) {
	n := len(adj)
	indeg := make([]int, n)
	for u := range adj {
		for _, v := range adj[u] {
			indeg[v]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		order = append(order, u)
		for _, v := range adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return order, len(order) == n
}
