// Package solve answers the five red-constrained path queries and
// routes each to its algorithm:
//
//	None      — shortest s–t path that internally avoids red vertices
//	            (masked BFS).
//	Alternate — existence of a path whose consecutive vertices differ
//	            in redness (BFS over the filtered edge set).
//	Few       — minimum red-vertex count over all simple s–t paths
//	            (Dijkstra on the split network).
//	Some      — existence of a simple path containing a red vertex
//	            (augmenting-path search plus a per-red two-segment
//	            decomposition; deliberately incomplete, may answer
//	            Undetermined but never a false proof).
//	Many      — maximum red-vertex count on a simple s–t path: exact
//	            linear solvers on trees and DAGs, and on general graphs
//	            an exact branch-and-bound with an admissible
//	            reachable-red bound, plus greedy-walk and beam-search
//	            anytime heuristics under a wall-clock budget.
//
// Control flow: input validation always precedes solving; Many
// classifies structure first and only falls through to the exponential
// engine when the graph is neither a tree nor a DAG. Every Result
// distinguishes proven answers from best-effort ones, and "no s–t path
// at all" from "a path exists but fails the red constraint".
//
// Execution is single-threaded and synchronous per query; all solver
// state is created and discarded within one invocation. The only
// suspension point is the exact engine's cooperative deadline poll.
package solve
