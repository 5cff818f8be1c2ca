package solve

import (
	"errors"
	"time"
)

// Sentinel errors for query validation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("solve: graph is nil")

	// ErrVertexNotFound is returned when source or target is not a
	// vertex of the graph.
	ErrVertexNotFound = errors.New("solve: source or target vertex not found")

	// ErrUnknownVariant is returned for a Variant outside the known set.
	ErrUnknownVariant = errors.New("solve: unknown query variant")

	// ErrUnknownMode is returned for a SearchMode outside the known set.
	ErrUnknownMode = errors.New("solve: unknown search mode")

	// ErrUnknownStrategy is returned for a SomeStrategy outside the known set.
	ErrUnknownStrategy = errors.New("solve: unknown SOME strategy")

	// ErrBadTimeLimit is returned when a negative time budget is supplied.
	ErrBadTimeLimit = errors.New("solve: time limit must be non-negative")

	// ErrBadBeamWidth is returned when the beam width is not positive.
	ErrBadBeamWidth = errors.New("solve: beam width must be positive")

	// ErrBadRestarts is returned when the greedy restart count is not positive.
	ErrBadRestarts = errors.New("solve: restart count must be positive")
)

// Variant selects the red-vertex constraint of a query.
type Variant int

const (
	// VariantNone asks for a shortest path internally avoiding red vertices.
	VariantNone Variant = iota

	// VariantAlternate asks whether a path strictly alternating
	// red / non-red exists.
	VariantAlternate

	// VariantFew asks for the minimum red count over simple s–t paths.
	VariantFew

	// VariantSome asks whether a simple path containing a red vertex exists.
	VariantSome

	// VariantMany asks for the maximum red count over simple s–t paths.
	VariantMany
)

// String returns the canonical lower-case variant name.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "none"
	case VariantAlternate:
		return "alternate"
	case VariantFew:
		return "few"
	case VariantSome:
		return "some"
	case VariantMany:
		return "many"
	default:
		return "unknown"
	}
}

// Outcome classifies a query result.
type Outcome int

const (
	// OutcomeTrue: the constraint is satisfiable; Path carries a witness.
	OutcomeTrue Outcome = iota

	// OutcomeFalse: proven unsatisfiable even though an s–t path may exist.
	OutcomeFalse

	// OutcomeNoPath: no s–t path of any kind exists (always provable,
	// always distinct from OutcomeFalse).
	OutcomeNoPath

	// OutcomeUndetermined: the algorithm is inexact for this input and
	// neither proved nor refuted the constraint.
	OutcomeUndetermined
)

// SearchMode selects how Many runs on general (non-tree, non-DAG) graphs.
type SearchMode int

const (
	// ModeExact runs the branch-and-bound search to completion or deadline.
	ModeExact SearchMode = iota

	// ModeGreedy runs seeded random-restart walks (anytime, never proven).
	ModeGreedy

	// ModeBeam runs width-limited best-first search (anytime, never proven).
	ModeBeam
)

// SomeStrategy selects the algorithm behind Some.
type SomeStrategy int

const (
	// SomeFlow uses the augmenting-path search with per-red
	// two-segment decomposition (the default).
	SomeFlow SomeStrategy = iota

	// SomeStateBFS uses the (vertex, seen-red) state-augmented BFS.
	SomeStateBFS
)

// Result is the typed answer of every solver.
type Result struct {
	// Outcome classifies the answer; see the Outcome constants.
	Outcome Outcome

	// RedCount is the minimum (Few) or achieved (Many) red count, or
	// the red tally of the witness for existence variants. -1 when no
	// witness exists.
	RedCount int

	// Path is the witness as vertex IDs, source first, target last.
	// Empty when no witness was produced.
	Path []string

	// Proven is true for exact answers. It is false only for
	// best-effort outcomes: Some's undetermined fallback and Many's
	// heuristic or deadline-expired searches.
	Proven bool
}

// Options configures a query.
type Options struct {
	// ForceDirected treats every edge as the one-way arc From→To,
	// ignoring undirected markers.
	ForceDirected bool

	// Mode selects the general-graph engine for Many.
	Mode SearchMode

	// TimeLimit bounds the exact engine's wall-clock time. Zero means
	// no deadline.
	TimeLimit time.Duration

	// BeamWidth is the frontier size for ModeBeam.
	BeamWidth int

	// Restarts is the walk count for ModeGreedy.
	Restarts int

	// Seed drives the heuristics' RNG; zero selects the fixed default
	// stream so runs stay reproducible.
	Seed int64

	// Strategy selects the algorithm behind Some.
	Strategy SomeStrategy
}

// Option mutates Options in the functional style.
type Option func(*Options)

// DefaultOptions returns the defaults: honor per-edge directionality,
// exact search with a 10s budget, beam width 16, 128 greedy restarts,
// deterministic seed, flow-based Some.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeExact,
		TimeLimit: 10 * time.Second,
		BeamWidth: 16,
		Restarts:  128,
		Strategy:  SomeFlow,
	}
}

// WithForceDirected treats every edge as directed From→To.
func WithForceDirected() Option {
	return func(o *Options) { o.ForceDirected = true }
}

// WithMode selects the general-graph search mode for Many.
func WithMode(m SearchMode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithTimeLimit bounds the exact engine's wall-clock time.
// Zero disables the deadline; negative values are rejected at solve time.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithBeamWidth sets the frontier size for beam search.
func WithBeamWidth(k int) Option {
	return func(o *Options) { o.BeamWidth = k }
}

// WithRestarts sets the greedy walk restart count.
func WithRestarts(n int) Option {
	return func(o *Options) { o.Restarts = n }
}

// WithSeed fixes the heuristics' RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSomeStrategy selects the algorithm behind Some.
func WithSomeStrategy(s SomeStrategy) Option {
	return func(o *Options) { o.Strategy = s }
}
