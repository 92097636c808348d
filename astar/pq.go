package astar

import "github.com/katalvlaran/mazerun/grid"

// nodeItem is one heap entry. A node may appear several times with different
// g scores; only the entry matching the recorded best g is live.
type nodeItem struct {
	at grid.Coord
	f  int
	g  int
}

// nodePQ is a min-heap of nodeItem ordered by (f, g, at).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then lower g, then row-major coordinate.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.at.Less(b.at)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
