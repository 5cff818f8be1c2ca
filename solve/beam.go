package solve

import (
	"sort"
	"time"
)

// beamCand is one partial simple path kept on the frontier.
type beamCand struct {
	path    []int
	visited []bool
	reds    int
	score   int // reds + optimistic remainder, used for frontier ranking
}

// manyBeam runs a bounded-width best-first search: at every level the
// frontier keeps the BeamWidth highest-scored partial paths, where the
// score adds an optimistic estimate of reds still collectable (red
// vertices reachable from the tip in the full graph). Paths reaching
// the target update the incumbent and leave the frontier. The width
// cap is what makes the search tractable and what forfeits the
// optimality proof, so results carry Proven=false.
//
// Deterministic: candidate expansion order and the sort tiebreak on
// (score, reds, tip index) are all index-stable.
//
// Complexity: O(L · W · deg) expansions for path length L and width W,
// plus the O(V·(V+E)) redFrom precompute.
func manyBeam(q query, adj [][]int) Result {
	n := len(adj)
	eng := newPathEngine(q, adj)

	var deadline time.Time
	useDeadline := q.opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(q.opts.TimeLimit)
	}

	start := beamCand{
		path:    []int{q.s},
		visited: make([]bool, n),
	}
	start.visited[q.s] = true
	if eng.red[q.s] {
		start.reds = 1
	}

	best := -1
	var bestPath []int
	if q.s == q.t {
		best, bestPath = start.reds, start.path
	}
	frontier := []beamCand{start}
	for len(frontier) > 0 {
		if useDeadline && time.Now().After(deadline) {
			break
		}

		next := expandFrontier(frontier, eng, q.t, &best, &bestPath)

		// Keep the BeamWidth best-scored partials; drop the rest.
		sort.Slice(next, func(i, j int) bool {
			a, b := next[i], next[j]
			if a.score != b.score {
				return a.score > b.score
			}
			if a.reds != b.reds {
				return a.reds > b.reds
			}

			return a.path[len(a.path)-1] < b.path[len(b.path)-1]
		})
		if len(next) > q.opts.BeamWidth {
			next = next[:q.opts.BeamWidth]
		}
		frontier = next
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

// expandFrontier advances every candidate one step. A child landing on
// the target records the incumbent right away — it never re-enters the
// frontier, so the width cut cannot drop a witness already found.
func expandFrontier(frontier []beamCand, eng *pathEngine, target int, best *int, bestPath *[]int) []beamCand {
	out := make([]beamCand, 0, len(frontier)*2)
	for _, c := range frontier {
		tip := c.path[len(c.path)-1]
		for _, v := range eng.order[tip] {
			if c.visited[v] || !eng.canReach[v] {
				continue
			}
			child := beamCand{
				path:    append(append(make([]int, 0, len(c.path)+1), c.path...), v),
				visited: append([]bool(nil), c.visited...),
				reds:    c.reds,
			}
			child.visited[v] = true
			if eng.red[v] {
				child.reds++
			}
			if v == target {
				if child.reds > *best {
					*best = child.reds
					*bestPath = child.path
				}
				continue
			}
			child.score = child.reds + eng.redFrom[v]
			out = append(out, child)
		}
	}

	return out
}
