package solve

import (
	"github.com/katalvlaran/redpath/classify"
	"github.com/katalvlaran/redpath/core"
	"github.com/katalvlaran/redpath/flow"
	"github.com/katalvlaran/redpath/split"
)

// Some decides whether some simple s–t path contains at least one red
// vertex, producing a witness on success.
//
// The default flow strategy works on the split network:
//
//  1. One augmenting-path search out(s)→in(t). If the extracted
//     original path already crosses a red vertex, done.
//  2. Otherwise, for each red vertex r in ascending index order: search
//     s→r; block the vertices that path used (minus r itself) and
//     search r→t on a second network; splice the two segments at r.
//  3. Otherwise: if t is not reachable from s at all, the answer is a
//     proven OutcomeNoPath. If it is reachable, the decomposition may
//     simply have missed a witness — OutcomeUndetermined, never a false
//     proof.
//
// The alternative state-BFS strategy (WithSomeStrategy(SomeStateBFS))
// explores (vertex, seen-red) states instead; see someState.
//
// Complexity (flow strategy): O(R·(V + E)) time for R red vertices.
func Some(g *core.Graph, sourceID, targetID string, opts ...Option) (Result, error) {
	q, err := prepare(g, sourceID, targetID, opts)
	if err != nil {
		return Result{}, err
	}
	if q.opts.Strategy == SomeStateBFS {
		return someState(q)
	}

	return someFlow(q)
}

// someFlow implements the augmenting-path + decomposition strategy.
func someFlow(q query) (Result, error) {
	g, force := q.g, q.opts.ForceDirected

	// 1) Direct search: one augmenting path out(s)→in(t).
	nw := split.Build(g, force, nil)
	direct, err := flow.FindPath(nw, split.Out(q.s), split.In(q.t))
	if err != nil {
		return Result{}, err
	}
	if direct != nil {
		path := split.OriginalPath(direct, q.s)
		if reds := redTally(g, path); reds > 0 {
			return Result{Outcome: OutcomeTrue, RedCount: reds, Path: g.IDs(path), Proven: true}, nil
		}
	}

	// 2) Two-segment decomposition through each red vertex.
	n := g.Order()
	for _, r := range g.RedIndices() {
		segSR, err := flow.FindPath(split.Build(g, force, nil), split.Out(q.s), split.In(r))
		if err != nil {
			return Result{}, err
		}
		if segSR == nil {
			continue
		}
		first := split.OriginalPath(segSR, q.s)

		// Vertices of the first segment are off-limits for the second,
		// except r where the segments meet.
		blocked := make([]bool, n)
		for _, v := range first {
			blocked[v] = v != r
		}
		segRT, err := flow.FindPath(split.Build(g, force, blocked), split.Out(r), split.In(q.t))
		if err != nil {
			return Result{}, err
		}
		if segRT == nil {
			continue
		}
		second := split.OriginalPath(segRT, r)

		// Splice at r, dropping the duplicate: the first segment ends at
		// r because in(r) was its sink.
		combined := make([]int, 0, len(first)+len(second)-1)
		combined = append(combined, first[:len(first)-1]...)
		combined = append(combined, second...)

		return Result{
			Outcome:  OutcomeTrue,
			RedCount: redTally(g, combined),
			Path:     g.IDs(combined),
			Proven:   true,
		}, nil
	}

	// 3) No witness constructed. Only total disconnection proves "no".
	if !classify.Reachable(g.Adjacency(force), q.s, q.t) {
		return Result{Outcome: OutcomeNoPath, RedCount: -1, Proven: true}, nil
	}

	return Result{Outcome: OutcomeUndetermined, RedCount: -1}, nil
}
