// Package classify recognizes graph structure before any solver runs:
// plain BFS reachability, tree recognition, DAG recognition, and Kahn
// topological ordering.
//
// The classifiers gate algorithm choice. Whenever the input happens to
// be tree- or DAG-shaped, the maximization variant is solved exactly in
// linear time and the exponential search engine must not run; the
// reachability primitives also provide the up-front "no s–t path at
// all" short-circuit and the reverse-reachability pruning set.
//
// All functions operate on index-based adjacency lists as produced by
// core.Graph.Adjacency, are deterministic for a fixed input, and use
// explicit stacks/queues throughout — classification never recurses.
package classify
