package core

// Adjacency materializes the edge list as an index-based adjacency
// list. Undirected edges contribute arcs in both directions unless
// forceDirected is set, in which case every edge is treated as the
// one-way arc From→To regardless of its flag.
//
// Neighbor order follows edge insertion order, so traversals over the
// result are deterministic for a fixed input.
// Complexity: O(V + E) time and space.
func (g *Graph) Adjacency(forceDirected bool) [][]int {
	adj := make([][]int, len(g.vertices))
	for i := range g.edges {
		e := g.edges[i]
		adj[e.From] = append(adj[e.From], e.To)
		if !forceDirected && !e.Directed {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}

// Reverse materializes the adjacency list of the transposed graph,
// used for reverse reachability from the target. Undirected edges are
// symmetric, so only genuinely directed arcs flip.
// Complexity: O(V + E) time and space.
func (g *Graph) Reverse(forceDirected bool) [][]int {
	rev := make([][]int, len(g.vertices))
	for i := range g.edges {
		e := g.edges[i]
		rev[e.To] = append(rev[e.To], e.From)
		if !forceDirected && !e.Directed {
			rev[e.From] = append(rev[e.From], e.To)
		}
	}

	return rev
}
