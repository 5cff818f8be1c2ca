package solve

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/redpath/core"
	"github.com/katalvlaran/redpath/split"
)

// nodeItem is a (split node, tentative distance) pair in the min-heap.
type nodeItem struct {
	node int
	dist int64
}

// nodePQ is a min-heap over tentative distances with lazy decrease-key:
// duplicates are pushed and stale entries skipped on pop.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// Few computes the minimum red-vertex count over all simple s–t paths.
// It runs Dijkstra on the split network — vertex arcs carry cost 1 for
// red vertices, 0 otherwise — from out(source) to out(target). Using
// out(target) as the goal counts the target's own color; the source's
// color is never paid because the walk starts past its vertex arc.
// Simplicity is structural: unit vertex capacities admit no repeats.
//
// Result: OutcomeTrue with the minimum count and a witness, or
// OutcomeNoPath (count -1) when the target is unreachable. Both proven.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Few(g *core.Graph, sourceID, targetID string, opts ...Option) (Result, error) {
	q, err := prepare(g, sourceID, targetID, opts)
	if err != nil {
		return Result{}, err
	}

	nw := split.Build(q.g, q.opts.ForceDirected, nil)
	start, goal := split.Out(q.s), split.Out(q.t)

	// 1) Dijkstra state over split nodes.
	order := nw.Order()
	dist := make([]int64, order)
	prev := make([]int, order)
	done := make([]bool, order)
	for i := range dist {
		dist[i] = math.MaxInt64
		prev[i] = -1
	}
	dist[start] = 0

	pq := make(nodePQ, 0, order)
	heap.Push(&pq, nodeItem{node: start})

	// 2) Main loop with lazy decrease-key.
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(nodeItem)
		if done[it.node] || it.dist > dist[it.node] {
			continue
		}
		done[it.node] = true
		if it.node == goal {
			break
		}
		for _, a := range nw.Arcs(it.node) {
			if a.Cap <= 0 {
				continue
			}
			if nd := it.dist + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				prev[a.To] = it.node
				heap.Push(&pq, nodeItem{node: a.To, dist: nd})
			}
		}
	}

	if dist[goal] == math.MaxInt64 {
		return Result{Outcome: OutcomeNoPath, RedCount: -1, Proven: true}, nil
	}

	// 3) Reconstruct the split-node path and project it back.
	nodes := []int{}
	for x := goal; x != -1; x = prev[x] {
		nodes = append(nodes, x)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	path := split.OriginalPath(nodes, q.s)

	return Result{
		Outcome:  OutcomeTrue,
		RedCount: int(dist[goal]),
		Path:     q.g.IDs(path),
		Proven:   true,
	}, nil
}
