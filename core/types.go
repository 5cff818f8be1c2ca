package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex with this ID already exists.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex is a node of the colored graph.
//
// ID uniquely identifies the vertex; Red marks membership in the
// distinguished red set. Both are fixed at construction time.
type Vertex struct {
	// ID is the unique identifier for this vertex.
	ID string

	// Red reports whether the vertex belongs to the red set.
	Red bool
}

// Edge connects two vertices by index.
//
// Directed edges contribute a single arc From→To; undirected edges are
// materialized as two arcs when adjacency is built. The flag is also
// consulted by DAG classification, which requires every edge to be
// genuinely directed.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Directed indicates the edge is one-way (true) or bidirectional (false).
	Directed bool
}

// Graph is the in-memory colored graph.
//
// It holds an ordered vertex sequence, the raw edge list, and an
// ID→index map. Construction is incremental; once handed to a solver
// the graph is treated as immutable.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	index    map[string]int
}

// NewGraph creates an empty colored graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}
