package split

import "github.com/katalvlaran/redpath/core"

// Arc is a directed arc of the split network.
type Arc struct {
	// To is the destination node (split-space index).
	To int

	// Cap is the arc capacity: 1 for usable arcs, 0 for blocked vertex arcs.
	Cap int64

	// Weight is the arc cost: 1 on the vertex arc of a red vertex, else 0.
	Weight int64
}

// Network is a capacitated, weighted graph on 2n nodes derived from an
// n-vertex colored graph. Node 2v is in(v); node 2v+1 is out(v).
type Network struct {
	n   int
	adj [][]Arc
}

// In returns the in-node of original vertex v.
func In(v int) int { return 2 * v }

// Out returns the out-node of original vertex v.
func Out(v int) int { return 2*v + 1 }

// IsIn reports whether node is an in-node.
func IsIn(node int) bool { return node%2 == 0 }

// OriginalOf returns the original vertex a split node belongs to.
func OriginalOf(node int) int { return node / 2 }

// Build derives the split network from g.
//
// blocked, when non-nil, must have length g.Order(); a blocked vertex
// keeps its in(v)→out(v) arc but with capacity forced to zero, so no
// path or flow can cross it. forceDirected treats every edge as the
// one-way arc From→To.
//
// Complexity: O(V + E) time and space.
func Build(g *core.Graph, forceDirected bool, blocked []bool) *Network {
	n := g.Order()
	nw := &Network{n: n, adj: make([][]Arc, 2*n)}

	// 1) Vertex arcs in(v)→out(v): the unit vertex capacity, weighted by color.
	var v int
	for v = 0; v < n; v++ {
		a := Arc{To: Out(v), Cap: 1}
		if g.Red(v) {
			a.Weight = 1
		}
		if blocked != nil && blocked[v] {
			a.Cap = 0
		}
		nw.adj[In(v)] = append(nw.adj[In(v)], a)
	}

	// 2) Edge arcs out(u)→in(v), capacity 1, weight 0. Undirected edges
	//    contribute both directions unless forced.
	adj := g.Adjacency(forceDirected)
	var u int
	for u = 0; u < n; u++ {
		for _, w := range adj[u] {
			nw.adj[Out(u)] = append(nw.adj[Out(u)], Arc{To: In(w), Cap: 1})
		}
	}

	return nw
}

// Order returns the node count of the split network (2·|V|).
func (nw *Network) Order() int { return 2 * nw.n }

// Original returns the vertex count of the source graph.
func (nw *Network) Original() int { return nw.n }

// Arcs returns the outgoing arcs of a split node.
func (nw *Network) Arcs(node int) []Arc { return nw.adj[node] }

// OriginalPath recovers the original-graph vertex sequence underlying a
// split-node path that starts at out(source). It collects source itself
// plus every in-node traversed, preserving order and dropping repeats.
//
// Complexity: O(len(nodes)).
func OriginalPath(nodes []int, source int) []int {
	path := make([]int, 0, len(nodes)/2+1)
	seen := make(map[int]bool, len(nodes)/2+1)

	path = append(path, source)
	seen[source] = true

	for _, node := range nodes {
		if !IsIn(node) {
			continue
		}
		v := OriginalOf(node)
		if !seen[v] {
			seen[v] = true
			path = append(path, v)
		}
	}

	return path
}
