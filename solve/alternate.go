package solve

import "github.com/katalvlaran/redpath/core"

// Alternate decides whether an s–t path exists that strictly
// alternates red and non-red vertices. Only edges whose endpoints
// differ in redness can appear on such a path, so the edge set is
// filtered down to exactly those before a plain BFS — alternation then
// holds for free on any path in the filtered graph.
//
// Result: OutcomeTrue with a witness, or OutcomeFalse. Both proven.
// (An alternating path may fail to exist even when s and t are
// connected, so False here does not imply NoPath.)
//
// Complexity: O(V + E) time, O(V + E) space.
func Alternate(g *core.Graph, sourceID, targetID string, opts ...Option) (Result, error) {
	q, err := prepare(g, sourceID, targetID, opts)
	if err != nil {
		return Result{}, err
	}

	// 1) Keep only edges with exactly one red endpoint.
	adj := make([][]int, q.g.Order())
	for _, e := range q.g.Edges() {
		if q.g.Red(e.From) == q.g.Red(e.To) {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		if !q.opts.ForceDirected && !e.Directed {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	// 2) Reachability on the filtered adjacency.
	path := bfsPath(adj, q.s, q.t, nil)
	if path == nil {
		return Result{Outcome: OutcomeFalse, RedCount: -1, Proven: true}, nil
	}

	return Result{
		Outcome:  OutcomeTrue,
		RedCount: redTally(q.g, path),
		Path:     q.g.IDs(path),
		Proven:   true,
	}, nil
}
