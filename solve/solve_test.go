package solve_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redpath/core"
	"github.com/katalvlaran/redpath/solve"
)

// buildGraph assembles a graph from vertex specs (a trailing '*' marks
// a red vertex) and edge specs ("a-b" undirected, "a>b" directed).
func buildGraph(t *testing.T, vertices []string, edges []string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		id, red := v, false
		if id[len(id)-1] == '*' {
			id, red = id[:len(id)-1], true
		}
		_, err := g.AddVertex(id, red)
		require.NoError(t, err)
	}
	for _, e := range edges {
		for i := 0; i < len(e); i++ {
			if e[i] == '-' || e[i] == '>' {
				require.NoError(t, g.AddEdge(e[:i], e[i+1:], e[i] == '>'))
				break
			}
		}
	}

	return g
}

// chainWithOneRed is the textbook four-vertex chain 0-1-2-3 with only
// vertex 2 red.
func chainWithOneRed(t *testing.T) *core.Graph {
	return buildGraph(t,
		[]string{"0", "1", "2*", "3"},
		[]string{"0-1", "1-2", "2-3"})
}

func TestNone_ChainBlockedByRed(t *testing.T) {
	g := chainWithOneRed(t)

	res, err := solve.None(g, "0", "3")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeNoPath, res.Outcome)
	assert.Equal(t, -1, res.RedCount)
	assert.True(t, res.Proven)
}

func TestNone_RedEndpointsAllowed(t *testing.T) {
	g := buildGraph(t,
		[]string{"s*", "a", "t*"},
		[]string{"s-a", "a-t"})

	res, err := solve.None(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, []string{"s", "a", "t"}, res.Path)
	// Endpoint colors still count in the tally.
	assert.Equal(t, 2, res.RedCount)
}

func TestNone_PicksShortestAvoidingRoute(t *testing.T) {
	// Short route through the red vertex, long clean detour.
	g := buildGraph(t,
		[]string{"s", "r*", "a", "b", "t"},
		[]string{"s-r", "r-t", "s-a", "a-b", "b-t"})

	res, err := solve.None(g, "s", "t")
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, []string{"s", "a", "b", "t"}, res.Path)
	assert.Equal(t, 0, res.RedCount)
}

func TestAlternate_StrictAlternation(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b*", "c", "d*"},
		[]string{"a-b", "b-c", "c-d"})

	res, err := solve.Alternate(g, "a", "d")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Path)
	assert.Equal(t, 2, res.RedCount)
	assert.True(t, res.Proven)
}

func TestAlternate_SameColorEdgeBreaksPath(t *testing.T) {
	// a-b alternates but b-c joins two reds: c is unreachable even
	// though the graph is connected, so the answer is False, not NoPath.
	g := buildGraph(t,
		[]string{"a", "b*", "c*"},
		[]string{"a-b", "b-c"})

	res, err := solve.Alternate(g, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeFalse, res.Outcome)
	assert.True(t, res.Proven)
}

func TestFew_ChainCountsSingleRed(t *testing.T) {
	g := chainWithOneRed(t)

	res, err := solve.Few(g, "0", "3")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, 1, res.RedCount)
	assert.Equal(t, []string{"0", "1", "2", "3"}, res.Path)
}

func TestFew_PrefersExpensiveDetourOverRed(t *testing.T) {
	// Two-hop route through a red vertex vs. a three-hop clean route:
	// the count, not the length, is minimized.
	g := buildGraph(t,
		[]string{"s", "r*", "a", "b", "t"},
		[]string{"s-r", "r-t", "s-a", "a-b", "b-t"})

	res, err := solve.Few(g, "s", "t")
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, 0, res.RedCount)
	assert.Equal(t, []string{"s", "a", "b", "t"}, res.Path)
}

func TestFew_SourceColorNotCounted(t *testing.T) {
	g := buildGraph(t,
		[]string{"s*", "a", "t*"},
		[]string{"s-a", "a-t"})

	res, err := solve.Few(g, "s", "t")
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, res.Outcome)
	// Target's color is paid, source's is not.
	assert.Equal(t, 1, res.RedCount)
}

func TestSome_ChainWitness(t *testing.T) {
	g := chainWithOneRed(t)

	for _, strat := range []solve.SomeStrategy{solve.SomeFlow, solve.SomeStateBFS} {
		res, err := solve.Some(g, "0", "3", solve.WithSomeStrategy(strat))
		require.NoError(t, err)
		assert.Equal(t, solve.OutcomeTrue, res.Outcome)
		assert.Equal(t, []string{"0", "1", "2", "3"}, res.Path)
		assert.Equal(t, 1, res.RedCount)
		assert.True(t, res.Proven)
	}
}

func TestSome_DecompositionFindsDetour(t *testing.T) {
	// Seven vertices. The shortest s-t route is red-free; the witness
	// has to detour through the red vertex 3 and is only discovered by
	// the two-segment decomposition.
	g := buildGraph(t,
		[]string{"0", "1", "2", "3*", "4", "5", "6"},
		[]string{"0-1", "1-2", "2-6", "0-4", "4-3", "3-5", "5-6"})

	res, err := solve.Some(g, "0", "6")
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, res.Outcome)
	require.True(t, res.Proven)
	assert.GreaterOrEqual(t, res.RedCount, 1)
	assertSimplePath(t, g, res.Path, "0", "6")
}

func TestSome_DecompositionSkipsDeadEndRed(t *testing.T) {
	// Two reds: ra sits in a dead end behind x, so its second segment
	// cannot avoid the first segment's vertices; rb succeeds. The
	// solver must move past ra rather than give up on it.
	g := buildGraph(t,
		[]string{"s", "x", "ra*", "rb*", "z", "t", "w"},
		[]string{"s-x", "x-ra", "x-rb", "rb-z", "z-t", "s-w", "w-t"})

	res, err := solve.Some(g, "s", "t")
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, res.Outcome)
	require.True(t, res.Proven)
	assert.Contains(t, res.Path, "rb")
	assert.NotContains(t, res.Path, "ra")
	assertSimplePath(t, g, res.Path, "s", "t")
}

func TestSolve_DisconnectedEveryVariant(t *testing.T) {
	g := buildGraph(t,
		[]string{"0", "1", "2*", "3"},
		[]string{"0-1", "2-3"})

	for _, v := range []solve.Variant{
		solve.VariantNone, solve.VariantFew, solve.VariantSome, solve.VariantMany,
	} {
		res, err := solve.Solve(g, "0", "3", v)
		require.NoError(t, err)
		assert.Equal(t, solve.OutcomeNoPath, res.Outcome, "variant %s", v)
		assert.Equal(t, -1, res.RedCount, "variant %s", v)
		assert.True(t, res.Proven, "variant %s", v)
	}

	// Alternate reports plain False: its filtered graph cannot tell
	// disconnection from a missing alternation.
	res, err := solve.Solve(g, "0", "3", solve.VariantAlternate)
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeFalse, res.Outcome)
}

func TestSome_NoRedAnywhere(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c"},
		[]string{"a-b", "b-c"})

	res, err := solve.Some(g, "a", "c")
	require.NoError(t, err)
	// No red vertex exists, so t with red is unreachable but t is not.
	assert.Equal(t, solve.OutcomeUndetermined, res.Outcome)
	assert.False(t, res.Proven)

	// The state strategy can prove the negative outright.
	res, err = solve.Some(g, "a", "c", solve.WithSomeStrategy(solve.SomeStateBFS))
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeFalse, res.Outcome)
	assert.True(t, res.Proven)
}

func TestSome_Disconnected(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c*", "d"},
		[]string{"a-b", "c-d"})

	for _, strat := range []solve.SomeStrategy{solve.SomeFlow, solve.SomeStateBFS} {
		res, err := solve.Some(g, "a", "d", solve.WithSomeStrategy(strat))
		require.NoError(t, err)
		assert.Equal(t, solve.OutcomeNoPath, res.Outcome)
		assert.True(t, res.Proven)
	}
}

func TestMany_TreeUniquePath(t *testing.T) {
	g := buildGraph(t,
		[]string{"root", "l*", "r", "ll", "lr*"},
		[]string{"root-l", "root-r", "l-ll", "l-lr"})

	res, err := solve.Many(g, "ll", "lr")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, 2, res.RedCount)
	assert.Equal(t, []string{"ll", "l", "lr"}, res.Path)
	assert.True(t, res.Proven)
}

func TestMany_DAGLongestRedPath(t *testing.T) {
	// Diamond 0→1→3, 0→2→3 with 1 red: the DP must route via 1.
	g := buildGraph(t,
		[]string{"0", "1*", "2", "3"},
		[]string{"0>1", "0>2", "1>3", "2>3"})

	res, err := solve.Many(g, "0", "3")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, 1, res.RedCount)
	assert.Equal(t, []string{"0", "1", "3"}, res.Path)
	assert.True(t, res.Proven)
}

func TestMany_ExactOnCyclicGraph(t *testing.T) {
	// Cycle with a red detour: 0-1-4 is direct, 0-2-3-4 collects two.
	g := buildGraph(t,
		[]string{"0", "1", "2*", "3*", "4"},
		[]string{"0-1", "1-4", "0-2", "2-3", "3-4"})

	res, err := solve.Many(g, "0", "4")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.Equal(t, 2, res.RedCount)
	assert.Equal(t, []string{"0", "2", "3", "4"}, res.Path)
	assert.True(t, res.Proven)
}

func TestMany_Disconnected(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c"},
		[]string{"a-b"})

	res, err := solve.Many(g, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeNoPath, res.Outcome)
	assert.Equal(t, -1, res.RedCount)
	assert.True(t, res.Proven)
}

func TestMany_HeuristicsNeverBeatExact(t *testing.T) {
	g := petersenLike(t)

	exact, err := solve.Many(g, "v0", "v7")
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, exact.Outcome)
	require.True(t, exact.Proven)

	for _, mode := range []solve.SearchMode{solve.ModeGreedy, solve.ModeBeam} {
		res, err := solve.Many(g, "v0", "v7", solve.WithMode(mode), solve.WithSeed(7))
		require.NoError(t, err)
		require.Equal(t, solve.OutcomeTrue, res.Outcome)
		assert.False(t, res.Proven)
		assert.LessOrEqual(t, res.RedCount, exact.RedCount)
		assertSimplePath(t, g, res.Path, "v0", "v7")
		assert.Equal(t, res.RedCount, tallyRed(g, res.Path))
	}
}

func TestMany_ExactDeadlineDowngradesProof(t *testing.T) {
	// A 26-clique is far beyond what branch and bound can finish in a
	// few milliseconds, but its very first descent already reaches the
	// target with every red collected, so expiry must surface that
	// incumbent with the proof withdrawn rather than fail.
	g := clique(t, 26, 13)

	res, err := solve.Many(g, "c0", "c25", solve.WithTimeLimit(5*time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.False(t, res.Proven)
	assert.Equal(t, 13, res.RedCount)
	assertSimplePath(t, g, res.Path, "c0", "c25")
	assert.Equal(t, res.RedCount, tallyRed(g, res.Path))
}

func TestMany_ExactDeadlineNoIncumbent(t *testing.T) {
	// The search dives into a red-free 20-clique hanging off the source
	// before it ever tries the direct edge to the target: with no reds
	// there is nothing to prune on, so the first 1024 node events all
	// land inside the clique and the first deadline poll expires the
	// run before any witness exists.
	g := core.NewGraph()
	_, err := g.AddVertex("s", false)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		_, err = g.AddVertex(fmt.Sprintf("k%02d", i), false)
		require.NoError(t, err)
	}
	_, err = g.AddVertex("t", false)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.NoError(t, g.AddEdge("s", fmt.Sprintf("k%02d", i), false))
		for j := i + 1; j < 20; j++ {
			require.NoError(t, g.AddEdge(fmt.Sprintf("k%02d", i), fmt.Sprintf("k%02d", j), false))
		}
	}
	require.NoError(t, g.AddEdge("s", "t", false))

	res, err := solve.Many(g, "s", "t", solve.WithTimeLimit(time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeUndetermined, res.Outcome)
	assert.Equal(t, -1, res.RedCount)
	assert.False(t, res.Proven)
	assert.Empty(t, res.Path)
}

func TestMany_GreedyDeadlineStopsRestarts(t *testing.T) {
	// A restart count that would run for minutes: the deadline has to
	// cut the loop after at least one completed walk, which is enough
	// for a valid unproven answer.
	g := clique(t, 12, 6)

	res, err := solve.Many(g, "c0", "c11",
		solve.WithMode(solve.ModeGreedy),
		solve.WithRestarts(1<<20),
		solve.WithTimeLimit(5*time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, solve.OutcomeTrue, res.Outcome)
	assert.False(t, res.Proven)
	assertSimplePath(t, g, res.Path, "c0", "c11")
	assert.Equal(t, res.RedCount, tallyRed(g, res.Path))
}

func TestMany_GreedySeedDeterminism(t *testing.T) {
	g := petersenLike(t)

	a, err := solve.Many(g, "v0", "v7", solve.WithMode(solve.ModeGreedy), solve.WithSeed(42))
	require.NoError(t, err)
	b, err := solve.Many(g, "v0", "v7", solve.WithMode(solve.ModeGreedy), solve.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolve_DispatchAndUnknownVariant(t *testing.T) {
	g := chainWithOneRed(t)

	res, err := solve.Solve(g, "0", "3", solve.VariantFew)
	require.NoError(t, err)
	assert.Equal(t, 1, res.RedCount)

	_, err = solve.Solve(g, "0", "3", solve.Variant(99))
	assert.ErrorIs(t, err, solve.ErrUnknownVariant)
}

func TestSolve_Validation(t *testing.T) {
	g := chainWithOneRed(t)

	_, err := solve.None(nil, "0", "3")
	assert.ErrorIs(t, err, solve.ErrNilGraph)

	_, err = solve.None(g, "0", "nope")
	assert.ErrorIs(t, err, solve.ErrVertexNotFound)

	_, err = solve.Many(g, "0", "3", solve.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, solve.ErrBadTimeLimit)

	_, err = solve.Many(g, "0", "3", solve.WithBeamWidth(0))
	assert.ErrorIs(t, err, solve.ErrBadBeamWidth)

	_, err = solve.Many(g, "0", "3", solve.WithRestarts(0))
	assert.ErrorIs(t, err, solve.ErrBadRestarts)

	_, err = solve.Many(g, "0", "3", solve.WithMode(solve.SearchMode(9)))
	assert.ErrorIs(t, err, solve.ErrUnknownMode)

	_, err = solve.Some(g, "0", "3", solve.WithSomeStrategy(solve.SomeStrategy(9)))
	assert.ErrorIs(t, err, solve.ErrUnknownStrategy)
}

func TestSolve_ForceDirected(t *testing.T) {
	// Undirected edge t-s becomes the one-way arc t→s under force, so
	// s can no longer reach t.
	g := buildGraph(t,
		[]string{"s", "t"},
		[]string{"t-s"})

	res, err := solve.Few(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeTrue, res.Outcome)

	res, err = solve.Few(g, "s", "t", solve.WithForceDirected())
	require.NoError(t, err)
	assert.Equal(t, solve.OutcomeNoPath, res.Outcome)
}

func TestSolve_Idempotent(t *testing.T) {
	g := chainWithOneRed(t)
	for _, v := range []solve.Variant{
		solve.VariantNone, solve.VariantAlternate, solve.VariantFew,
		solve.VariantSome, solve.VariantMany,
	} {
		a, err := solve.Solve(g, "0", "3", v)
		require.NoError(t, err)
		b, err := solve.Solve(g, "0", "3", v)
		require.NoError(t, err)
		assert.Equal(t, a, b, "variant %s", v)
	}
}

// TestFewMany_BruteForceCrossCheck compares the exact solvers against
// a straight enumeration of all simple paths on small graphs.
func TestFewMany_BruteForceCrossCheck(t *testing.T) {
	cases := []struct {
		name     string
		vertices []string
		edges    []string
		s, tgt   string
	}{
		{
			name:     "chain",
			vertices: []string{"0", "1", "2*", "3"},
			edges:    []string{"0-1", "1-2", "2-3"},
			s:        "0", tgt: "3",
		},
		{
			name:     "diamond_with_cycle",
			vertices: []string{"a", "b*", "c", "d*", "e"},
			edges:    []string{"a-b", "b-c", "c-e", "a-d", "d-e", "b-d"},
			s:        "a", tgt: "e",
		},
		{
			name:     "directed_mesh",
			vertices: []string{"p", "q*", "r*", "s", "u"},
			edges:    []string{"p>q", "p>s", "q>r", "s>r", "r>u", "s>u", "q>s"},
			s:        "p", tgt: "u",
		},
		{
			// Red source: Few must not pay its color, Many must.
			name:     "red_source",
			vertices: []string{"s*", "a", "b*", "c"},
			edges:    []string{"s-a", "a-b", "b-c", "s-b"},
			s:        "s", tgt: "c",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.vertices, tc.edges)
			want := enumerateReds(g, tc.s, tc.tgt)

			few, err := solve.Few(g, tc.s, tc.tgt)
			require.NoError(t, err)
			assert.Equal(t, want.min, few.RedCount, "few")

			many, err := solve.Many(g, tc.s, tc.tgt)
			require.NoError(t, err)
			assert.Equal(t, want.max, many.RedCount, "many")
			assert.True(t, many.Proven)
		})
	}
}

// ---- test helpers ----

// clique builds the complete undirected graph c0..c{n-1} with vertices
// c1..c{reds} red.
func clique(t *testing.T, n, reds int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(fmt.Sprintf("c%d", i), i >= 1 && i <= reds)
		require.NoError(t, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddEdge(fmt.Sprintf("c%d", i), fmt.Sprintf("c%d", j), false))
		}
	}

	return g
}

// petersenLike returns a cyclic 10-vertex graph with three reds, hard
// enough that tree/DAG shortcuts do not apply.
func petersenLike(t *testing.T) *core.Graph {
	vertices := []string{"v0", "v1", "v2*", "v3", "v4*", "v5", "v6", "v7", "v8*", "v9"}
	edges := []string{
		"v0-v1", "v1-v2", "v2-v3", "v3-v4", "v4-v0",
		"v0-v5", "v1-v6", "v2-v7", "v3-v8", "v4-v9",
		"v5-v7", "v7-v9", "v9-v6", "v6-v8", "v8-v5",
	}

	return buildGraph(t, vertices, edges)
}

func tallyRed(g *core.Graph, path []string) int {
	reds := 0
	for _, id := range path {
		i, ok := g.Index(id)
		if ok && g.Red(i) {
			reds++
		}
	}

	return reds
}

func assertSimplePath(t *testing.T, g *core.Graph, path []string, s, tgt string) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, s, path[0])
	assert.Equal(t, tgt, path[len(path)-1])
	seen := map[string]bool{}
	for _, id := range path {
		assert.False(t, seen[id], "vertex %s repeats", id)
		seen[id] = true
		_, ok := g.Index(id)
		assert.True(t, ok)
	}
	adj := g.Adjacency(false)
	for k := 0; k+1 < len(path); k++ {
		u, _ := g.Index(path[k])
		v, _ := g.Index(path[k+1])
		found := false
		for _, w := range adj[u] {
			if w == v {
				found = true
				break
			}
		}
		assert.True(t, found, "edge %s-%s missing", path[k], path[k+1])
	}
}

type redBounds struct{ min, max int }

// enumerateReds walks every simple s–t path and records the minimum
// and maximum red tallies. The minimum mirrors Few's accounting: the
// walk starts past the source's vertex arc, so a red source is never
// paid. Every path carries the source equally, so subtracting its
// color once after the sweep is exact. Only for tiny test graphs.
func enumerateReds(g *core.Graph, s, tgt string) redBounds {
	si, _ := g.Index(s)
	ti, _ := g.Index(tgt)
	adj := g.Adjacency(false)

	bounds := redBounds{min: -1, max: -1}
	visited := make([]bool, g.Order())
	var walk func(v, reds int)
	walk = func(v, reds int) {
		if g.Red(v) {
			reds++
		}
		if v == ti {
			if bounds.min == -1 || reds < bounds.min {
				bounds.min = reds
			}
			if reds > bounds.max {
				bounds.max = reds
			}

			return
		}
		visited[v] = true
		for _, u := range adj[v] {
			if !visited[u] {
				walk(u, reds)
			}
		}
		visited[v] = false
	}
	walk(si, 0)

	if bounds.min > 0 && g.Red(si) {
		bounds.min--
	}

	return bounds
}
