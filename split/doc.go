// Package split implements the vertex-splitting transform.
//
// "No vertex may be used twice on a path" is a unit-capacity resource
// per vertex. The transform makes that structural: each original vertex
// v becomes two nodes, in(v) and out(v), joined by a single arc of
// capacity 1 (weight 1 when v is red, 0 otherwise), and each original
// arc u→v becomes out(u)→in(v) with capacity 1 and weight 0. Any flow
// or shortest path on the result crosses each original vertex at most
// once — no visited-set bookkeeping required, and the same Network
// serves the weighted (FEW) and flow-based (SOME) solvers unchanged.
//
// Networks are ephemeral: one is built per query, per red vertex under
// consideration, or per decomposition segment, and discarded afterwards.
package split
