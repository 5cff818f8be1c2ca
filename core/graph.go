package core

import "fmt"

// AddVertex appends a vertex with the given ID and color and returns
// its index. Empty and duplicate IDs are rejected.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, red bool) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	if _, ok := g.index[id]; ok {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	idx := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Red: red})
	g.index[id] = idx

	return idx, nil
}

// AddEdge records an edge between two existing vertices, identified by
// ID. The edge is stored as given; undirected edges are expanded into
// paired arcs only when adjacency is built.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(fromID, toID string, directed bool) error {
	u, ok := g.index[fromID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, fromID)
	}
	v, ok := g.index[toID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, toID)
	}
	g.edges = append(g.edges, Edge{From: u, To: v, Directed: directed})

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of recorded edges (undirected edges count once).
func (g *Graph) Size() int { return len(g.edges) }

// Vertex returns the vertex at index i. The index must be valid.
func (g *Graph) Vertex(i int) Vertex { return g.vertices[i] }

// Index resolves a vertex ID to its index.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Red reports whether vertex i is red.
func (g *Graph) Red(i int) bool { return g.vertices[i].Red }

// RedIndices returns the indices of all red vertices in ascending order.
// Complexity: O(V).
func (g *Graph) RedIndices() []int {
	var reds []int
	for i := range g.vertices {
		if g.vertices[i].Red {
			reds = append(reds, i)
		}
	}

	return reds
}

// Edges returns a copy of the recorded edge list.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// AllDirected reports whether every recorded edge is genuinely directed.
// DAG classification is applicable only when this holds (or when a query
// forces directed interpretation).
// Complexity: O(E).
func (g *Graph) AllDirected() bool {
	for i := range g.edges {
		if !g.edges[i].Directed {
			return false
		}
	}

	return true
}

// IDs maps a path of vertex indices back to vertex IDs.
// Complexity: O(len(path)).
func (g *Graph) IDs(path []int) []string {
	if path == nil {
		return nil
	}
	ids := make([]string, len(path))
	for i, v := range path {
		ids[i] = g.vertices[v].ID
	}

	return ids
}
