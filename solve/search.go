// Package solve — exact search for the maximum-red simple path.
//
// manyExact enumerates simple s–t paths via a depth-first branch and
// bound with deterministic branching, an admissible upper bound, and a
// soft time budget.
//
// Rationale (succinct):
//  1. Precompute canReach[v] (reverse reachability from the target) so
//     branches that can never complete a path are cut immediately.
//  2. Precompute redFrom[v], the number of red vertices reachable from
//     v in the full graph. Removing visited vertices only shrinks that
//     set, so curRed + redFrom[v] never underestimates any completion:
//     the bound is admissible and prunes whenever it cannot beat the
//     incumbent.
//  3. Branching order: red neighbors first, then descending redFrom,
//     then ascending index. Deterministic, and it tightens the
//     incumbent early.
//  4. Soft time limit: rare deadline checks (every 1024 node events)
//     keep overhead negligible. On expiry the incumbent, if any, is
//     returned with Proven=false.
//
// Complexity:
//   - Worst case exponential in V (exact search); pruning provides the
//     practical speed.
//   - Per node: O(deg) branching + O(1) bound.
//   - Memory: O(V) path/visited + O(V+E) precomputes.
package solve

import (
	"sort"
	"time"

	"github.com/katalvlaran/redpath/classify"
)

// pathEngine holds all search data and policies.
// A dedicated engine struct (instead of anonymous closures) keeps
// dependencies explicit and hot-path state predictable.
type pathEngine struct {
	// Configuration / policy
	n      int
	target int
	adj    [][]int
	red    []bool

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline checks counter
	expired     bool

	// Precomputes for bound / branching order
	rev      [][]int // transposed adjacency, for reverse reachability
	canReach []bool  // target reachable from v in the full graph
	redFrom  []int   // red vertices reachable from v (v included)
	order    [][]int // per-vertex neighbor order

	// Current search state
	visited []bool
	path    []int
	curRed  int

	// Current best incumbent
	best     int
	bestPath []int
}

// deadlineCheck performs a rare deadline test (every 1024 node events).
func (e *pathEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return e.expired
	}
	if time.Now().After(e.deadline) {
		e.expired = true
	}

	return e.expired
}

// newPathEngine assembles the shared search state used by both the
// exact enumeration and the beam heuristic.
func newPathEngine(q query, adj [][]int) *pathEngine {
	n := len(adj)
	e := &pathEngine{
		n:      n,
		target: q.t,
		adj:    adj,
		rev:    q.g.Reverse(q.opts.ForceDirected),
		red:    make([]bool, n),
	}
	for v := 0; v < n; v++ {
		e.red[v] = q.g.Red(v)
	}
	e.precompute()

	return e
}

// precompute fills canReach, redFrom and the neighbor orders.
func (e *pathEngine) precompute() {
	// 1) Reverse reachability from the target: a branch into v with
	//    canReach[v]==false can never finish a path.
	e.canReach = classify.ReachableSet(e.rev, e.target)

	var v int

	// 2) redFrom[v]: red vertices reachable from v (v itself included)
	//    that can still reach the target; reds off the reverse-reachable
	//    set can never sit on a completed path. One forward BFS per
	//    vertex; exact search only runs on instances small enough for
	//    the enumeration itself.
	e.redFrom = make([]int, e.n)
	for v = 0; v < e.n; v++ {
		seen := classify.ReachableSet(e.adj, v)
		for u, ok := range seen {
			if ok && e.red[u] && e.canReach[u] {
				e.redFrom[v]++
			}
		}
	}

	// 3) Deterministic branching order per vertex: red neighbors first,
	//    then by descending redFrom, then by ascending index.
	e.order = make([][]int, e.n)
	for v = 0; v < e.n; v++ {
		row := make([]int, len(e.adj[v]))
		copy(row, e.adj[v])
		sort.Slice(row, func(i, j int) bool {
			vi, vj := row[i], row[j]
			if e.red[vi] != e.red[vj] {
				return e.red[vi]
			}
			if e.redFrom[vi] != e.redFrom[vj] {
				return e.redFrom[vi] > e.redFrom[vj]
			}

			return vi < vj
		})
		e.order[v] = row
	}
}

// record commits a new incumbent.
func (e *pathEngine) record() {
	e.best = e.curRed
	e.bestPath = append(e.bestPath[:0], e.path...)
}

// dfs performs the core search: deterministic branching + pruning by
// the admissible bound curRed + redFrom[last] ≤ best.
func (e *pathEngine) dfs(last int) {
	if e.deadlineCheck() {
		return
	}

	if last == e.target {
		// A simple path must end here; extensions would revisit the
		// target, so record and backtrack.
		if e.curRed > e.best {
			e.record()
		}

		return
	}

	// Prune: no completion through 'last' can beat the incumbent.
	if e.curRed+e.redFrom[last] <= e.best {
		return
	}

	var gain int
	for _, v := range e.order[last] {
		if e.visited[v] || !e.canReach[v] {
			continue
		}
		gain = 0
		if e.red[v] {
			gain = 1
		}
		e.visited[v] = true
		e.path = append(e.path, v)
		e.curRed += gain
		e.dfs(v)
		e.curRed -= gain
		e.path = e.path[:len(e.path)-1]
		e.visited[v] = false
		if e.expired {
			return
		}
	}
}

// manyExact runs the branch-and-bound enumeration and maps the engine
// outcome onto the result taxonomy: a completed run is a proven
// optimum, a timed-out run downgrades to an unproven incumbent or, with
// no incumbent at all, to OutcomeUndetermined.
func manyExact(q query, adj [][]int) Result {
	n := len(adj)
	e := newPathEngine(q, adj)
	e.best = -1
	if q.opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(q.opts.TimeLimit)
	}

	e.visited = make([]bool, n)
	e.visited[q.s] = true
	e.path = append(e.path, q.s)
	if e.red[q.s] {
		e.curRed = 1
	}

	e.dfs(q.s)

	switch {
	case e.expired && e.best < 0:
		return Result{Outcome: OutcomeUndetermined, RedCount: -1}
	case e.best < 0:
		return Result{Outcome: OutcomeNoPath, RedCount: -1, Proven: true}
	default:
		return Result{
			Outcome:  OutcomeTrue,
			RedCount: e.best,
			Path:     q.g.IDs(e.bestPath),
			Proven:   !e.expired,
		}
	}
}
