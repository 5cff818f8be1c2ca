package flow

import (
	"errors"

	"github.com/katalvlaran/redpath/split"
)

// ErrNodeOutOfRange is returned when source or sink is not a node of
// the network.
var ErrNodeOutOfRange = errors.New("flow: node out of range")

// arcKey identifies a directed arc in the residual capacity map.
type arcKey struct{ from, to int }

// Residual tracks remaining capacities over a split network. Forward
// arcs start at their build capacity; reverse arcs appear with the flow
// pushed onto their forward twin, which lets later searches undo
// earlier flow decisions.
type Residual struct {
	adj [][]int
	cap map[arcKey]int64
}

// NewResidual initializes residual state from nw. Blocked vertex arcs
// enter the map with capacity zero, so searches see them but never
// cross them.
// Complexity: O(V + E).
func NewResidual(nw *split.Network) *Residual {
	order := nw.Order()
	r := &Residual{
		adj: make([][]int, order),
		cap: make(map[arcKey]int64, order*2),
	}
	var node int
	for node = 0; node < order; node++ {
		for _, a := range nw.Arcs(node) {
			r.adj[node] = append(r.adj[node], a.To)
			r.cap[arcKey{node, a.To}] += a.Cap
		}
	}

	return r
}

// AugmentingPath finds the shortest (fewest-arcs) source→sink path with
// positive residual capacity, BFS style, and returns its node sequence.
// Returns nil when no such path exists.
// Complexity: O(V + E).
func (r *Residual) AugmentingPath(source, sink int) []int {
	n := len(r.adj)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}
	visited[source] = true

	queue := make([]int, 0, n)
	queue = append(queue, source)

	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		if u == sink {
			// Reconstruct source→sink from parent links.
			path := []int{sink}
			for cur := sink; cur != source; {
				cur = parent[cur]
				path = append(path, cur)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path
		}
		for _, v := range r.adj[u] {
			if visited[v] || r.cap[arcKey{u, v}] <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			queue = append(queue, v)
		}
	}

	return nil
}

// Augment pushes the bottleneck flow along path, decreasing forward
// residuals and increasing reverse ones (creating reverse arcs as
// needed). Returns the bottleneck value.
// Complexity: O(len(path)).
func (r *Residual) Augment(path []int) int64 {
	var bottle int64 = 1<<63 - 1
	var i int
	for i = 0; i < len(path)-1; i++ {
		if c := r.cap[arcKey{path[i], path[i+1]}]; c < bottle {
			bottle = c
		}
	}
	for i = 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		r.cap[arcKey{u, v}] -= bottle
		if _, ok := r.cap[arcKey{v, u}]; !ok {
			r.adj[v] = append(r.adj[v], u)
		}
		r.cap[arcKey{v, u}] += bottle
	}

	return bottle
}

// FindPath runs one augmenting-path search on a fresh residual of nw
// and, on success, commits the flow and returns the split-node path.
// A nil path with nil error means sink is not reachable from source
// under the unit vertex capacities.
// Complexity: O(V + E).
func FindPath(nw *split.Network, source, sink int) ([]int, error) {
	if source < 0 || sink < 0 || source >= nw.Order() || sink >= nw.Order() {
		return nil, ErrNodeOutOfRange
	}
	r := NewResidual(nw)
	path := r.AugmentingPath(source, sink)
	if path == nil {
		return nil, nil
	}
	r.Augment(path)

	return path, nil
}
