package solve

import "github.com/katalvlaran/redpath/core"

// None finds a shortest s–t path that internally avoids red vertices:
// every red vertex except source and target themselves is masked out
// of the adjacency before a plain BFS. The witness, if any, is a
// shortest red-avoiding path; its length in edges is len(Path)-1.
//
// Result: OutcomeTrue with the witness (RedCount tallies the endpoints'
// own colors), or OutcomeNoPath when masking disconnects s from t.
// Both outcomes are proven.
//
// Complexity: O(V + E) time, O(V) space.
func None(g *core.Graph, sourceID, targetID string, opts ...Option) (Result, error) {
	q, err := prepare(g, sourceID, targetID, opts)
	if err != nil {
		return Result{}, err
	}

	// 1) Mask every red vertex other than the endpoints.
	n := q.g.Order()
	allowed := make([]bool, n)
	for v := 0; v < n; v++ {
		allowed[v] = !q.g.Red(v) || v == q.s || v == q.t
	}

	// 2) Shortest path on the masked adjacency.
	adj := q.g.Adjacency(q.opts.ForceDirected)
	path := bfsPath(adj, q.s, q.t, allowed)
	if path == nil {
		return Result{Outcome: OutcomeNoPath, RedCount: -1, Proven: true}, nil
	}

	return Result{
		Outcome:  OutcomeTrue,
		RedCount: redTally(q.g, path),
		Path:     q.g.IDs(path),
		Proven:   true,
	}, nil
}
