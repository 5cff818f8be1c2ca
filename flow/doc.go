// Package flow provides augmenting-path machinery over a split.Network.
//
// The SOME solver needs exactly the Edmonds–Karp primitive: a
// breadth-first search for the shortest path of positive residual
// capacity from source to sink, followed by augmentation along it. On a
// split network every capacity is one unit, so a single augmenting path
// is simultaneously a simple path in the original graph — the vertex
// arcs guarantee no original vertex is crossed twice.
//
// Residual state is local to one Residual value and is discarded with
// it; nothing is shared between queries.
package flow
