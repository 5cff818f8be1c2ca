package solve

import (
	"fmt"

	"github.com/katalvlaran/redpath/core"
)

// query is a validated, index-resolved request shared by all solvers.
type query struct {
	g    *core.Graph
	s, t int
	opts Options
}

// prepare applies functional options, validates them, and resolves
// source/target IDs to indices. Malformed input is rejected here,
// before any solver runs.
// Complexity: O(#opts).
func prepare(g *core.Graph, sourceID, targetID string, opts []Option) (query, error) {
	if g == nil {
		return query{}, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return query{}, err
	}

	s, ok := g.Index(sourceID)
	if !ok {
		return query{}, fmt.Errorf("%w: source %q", ErrVertexNotFound, sourceID)
	}
	t, ok := g.Index(targetID)
	if !ok {
		return query{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, targetID)
	}

	return query{g: g, s: s, t: t, opts: o}, nil
}

// validateOptions checks internal consistency of Options.
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	if o.BeamWidth <= 0 {
		return ErrBadBeamWidth
	}
	if o.Restarts <= 0 {
		return ErrBadRestarts
	}
	switch o.Mode {
	case ModeExact, ModeGreedy, ModeBeam:
	default:
		return ErrUnknownMode
	}
	switch o.Strategy {
	case SomeFlow, SomeStateBFS:
	default:
		return ErrUnknownStrategy
	}

	return nil
}

// redTally counts red vertices on an index path.
// Complexity: O(len(path)).
func redTally(g *core.Graph, path []int) int {
	var reds int
	for _, v := range path {
		if g.Red(v) {
			reds++
		}
	}

	return reds
}
