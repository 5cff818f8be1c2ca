// Package core defines the colored graph model shared by every solver:
// Vertex (with its red flag), Edge (with per-edge directionality),
// and Graph, plus adjacency construction.
//
// A Graph is built once per query — AddVertex / AddEdge — and is
// read-only afterwards. Solvers never mutate it; anything derived
// (adjacency lists, split networks, visited sets) lives and dies inside
// a single solver invocation. Because the lifecycle is
// build-then-query, the model carries no locks.
//
// Vertices are interned: algorithms work on dense indices in
// [0, Order()), and IDs reappear only at the boundary when witness
// paths are reported.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrDuplicateVertex  - vertex ID already present.
//	ErrVertexNotFound   - an edge or query referenced an unknown vertex.
package core
