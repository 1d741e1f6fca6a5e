package astar

// node is the per-cell search record. A node exists only once its cell has
// been reached; prev is nil for the start cell only.
type node struct {
	id    int
	g     int
	f     float64
	prev  *node
	index int // position in the open heap, or -1 when not open
}

// openPQ is a min-heap of open nodes ordered by f, then by cell id.
// Each cell has at most one entry; improvements use heap.Fix.
type openPQ []*node

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].id < pq[j].id
}

func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be a *node, to the heap.
func (pq *openPQ) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

// Pop removes the last element; heap.Pop has already swapped the minimum there.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]

	return n
}
