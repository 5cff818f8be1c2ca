package solve

import (
	"math/rand"
	"time"
)

// manyGreedy runs Restarts randomized walks from the source and keeps
// the best witness. Each step picks the next vertex among neighbors
// that keep the target reachable through the unvisited remainder of
// the graph, preferring red candidates; that filter guarantees every
// walk terminates at the target, so a restart always yields a valid
// simple path. The result is a fast incumbent with no optimality
// claim (Proven=false).
//
// Determinism: walks draw from per-restart RNG streams derived from
// Options.Seed, so the same seed reproduces the same answer.
//
// Complexity: O(Restarts · V · (V + E)) worst case; each step performs
// one reachability probe over the unvisited subgraph.
func manyGreedy(q query, adj [][]int) Result {
	var deadline time.Time
	useDeadline := q.opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(q.opts.TimeLimit)
	}

	best := -1
	var bestPath []int
	for r := 0; r < q.opts.Restarts; r++ {
		if r > 0 && useDeadline && time.Now().After(deadline) {
			break
		}
		path := greedyWalk(q, adj, restartRNG(q.opts.Seed, uint64(r)))
		if path == nil {
			continue
		}
		if reds := redTally(q.g, path); reds > best {
			best = reds
			bestPath = path
		}
	}

	if best < 0 {
		return Result{Outcome: OutcomeUndetermined, RedCount: -1}
	}

	return Result{
		Outcome:  OutcomeTrue,
		RedCount: best,
		Path:     q.g.IDs(bestPath),
	}
}

// greedyWalk performs one randomized walk from source to target.
// Candidates that would disconnect the walk from the target are
// discarded before the random draw.
func greedyWalk(q query, adj [][]int, rng *rand.Rand) []int {
	n := len(adj)
	visited := make([]bool, n)
	visited[q.s] = true
	path := []int{q.s}

	reds := make([]int, 0, 8)
	plain := make([]int, 0, 8)
	cur := q.s
	for cur != q.t {
		reds = reds[:0]
		plain = plain[:0]
		for _, v := range adj[cur] {
			if visited[v] || !reachableAvoiding(adj, v, q.t, visited) {
				continue
			}
			if q.g.Red(v) {
				reds = append(reds, v)
			} else {
				plain = append(plain, v)
			}
		}

		pool := reds
		if len(pool) == 0 {
			pool = plain
		}
		if len(pool) == 0 {
			return nil
		}

		cur = pool[rng.Intn(len(pool))]
		visited[cur] = true
		path = append(path, cur)
	}

	return path
}

// reachableAvoiding reports whether to is reachable from from without
// entering any vertex marked in blocked.
func reachableAvoiding(adj [][]int, from, to int, blocked []bool) bool {
	if from == to {
		return true
	}
	seen := make([]bool, len(adj))
	seen[from] = true
	queue := []int{from}
	var v int
	for len(queue) > 0 {
		v, queue = queue[0], queue[1:]
		for _, u := range adj[v] {
			if u == to {
				return true
			}
			if !seen[u] && !blocked[u] {
				seen[u] = true
				queue = append(queue, u)
			}
		}
	}

	return false
}
