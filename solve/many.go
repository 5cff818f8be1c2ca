package solve

import (
	"github.com/katalvlaran/redpath/classify"
	"github.com/katalvlaran/redpath/core"
)

// Many returns the maximum number of red vertices on any simple path
// between sourceID and targetID, or reports that no path exists.
//
// The solver first recognizes two tractable shapes:
//
//   - Tree: the unique s–t path is found by depth-first search and its
//     red vertices are tallied. Exact, linear time.
//   - DAG (every edge directed, or ForceDirected set): every path is
//     simple, so a longest-path dynamic program over a topological
//     order yields the exact maximum.
//
// On any other shape the problem is intractable in general and the
// configured SearchMode takes over: ModeExact runs branch and bound
// within the time limit, ModeGreedy runs seeded randomized walks, and
// ModeBeam runs a bounded-width best-first search. Heuristic answers
// and timed-out exact runs carry Proven=false.
func Many(g *core.Graph, sourceID, targetID string, opts ...Option) (Result, error) {
	q, err := prepare(g, sourceID, targetID, opts)
	if err != nil {
		return Result{}, err
	}

	adj := g.Adjacency(q.opts.ForceDirected)
	if !classify.Reachable(adj, q.s, q.t) {
		return Result{Outcome: OutcomeNoPath, RedCount: -1, Proven: true}, nil
	}

	directed := q.opts.ForceDirected || g.AllDirected()
	if !directed && classify.IsTree(adj) {
		return manyTree(q, adj), nil
	}
	if directed && classify.IsDAG(adj) {
		return manyDAG(q, adj), nil
	}

	switch q.opts.Mode {
	case ModeExact:
		return manyExact(q, adj), nil
	case ModeGreedy:
		return manyGreedy(q, adj), nil
	case ModeBeam:
		return manyBeam(q, adj), nil
	default:
		return Result{}, ErrUnknownMode
	}
}

// manyTree walks the unique s–t path of a tree with an explicit stack
// and tallies its red vertices.
//
// Complexity: O(V) time and space.
func manyTree(q query, adj [][]int) Result {
	n := len(adj)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	// 1) Iterative DFS from the source; on a tree any traversal finds
	//    the one path to the target.
	visited := make([]bool, n)
	visited[q.s] = true
	stack := []int{q.s}
	var v int
	for len(stack) > 0 {
		v, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if v == q.t {
			break
		}
		for _, u := range adj[v] {
			if !visited[u] {
				visited[u] = true
				parent[u] = v
				stack = append(stack, u)
			}
		}
	}

	// 2) Reconstruct target→source, then reverse.
	path := []int{}
	for v = q.t; v != -1; v = parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Outcome:  OutcomeTrue,
		RedCount: redTally(q.g, path),
		Path:     q.g.IDs(path),
		Proven:   true,
	}
}

// manyDAG runs a longest-path dynamic program over a topological order:
// dp[v] is the maximum red count over paths from the source to v, with
// unreachable vertices kept at -1 so they never seed a transition.
//
// Complexity: O(V + E) time and space.
func manyDAG(q query, adj [][]int) Result {
	order, ok := classify.TopologicalOrder(adj)
	if !ok {
		// Reachability was already established, so a cycle on the way
		// means the DAG precondition failed upstream; treat as hard.
		return manyExact(q, adj)
	}

	n := len(adj)
	dp := make([]int, n)
	parent := make([]int, n)
	for i := range dp {
		dp[i] = -1
		parent[i] = -1
	}
	dp[q.s] = 0
	if q.g.Red(q.s) {
		dp[q.s] = 1
	}

	for _, v := range order {
		if dp[v] < 0 {
			continue
		}
		for _, u := range adj[v] {
			gain := 0
			if q.g.Red(u) {
				gain = 1
			}
			if dp[v]+gain > dp[u] {
				dp[u] = dp[v] + gain
				parent[u] = v
			}
		}
	}

	// Every parent chain terminates at the source, the only vertex
	// seeded with dp ≥ 0 and no parent.
	path := []int{}
	for v := q.t; v != -1; v = parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Outcome:  OutcomeTrue,
		RedCount: dp[q.t],
		Path:     q.g.IDs(path),
		Proven:   true,
	}
}
