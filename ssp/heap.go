package ssp

// pqueue is a binary min-heap of node ids keyed by tentative distance,
// supporting O(log N) decrease-key via a back-pointer stored in each
// node's scratch field (its heap slot index while resident). Grounded
// on original_source/mcf_ssp.hxx's PriorityQueue, adapted from a
// malloc'd C array to a reusable Go slice so repeated Dijkstra scans
// within one Solve do not reallocate.
type pqueue[T Number] struct {
	heap []nodeID
	dist []T // parallel array: dist[slot] is the key of heap[slot]
}

func (q *pqueue[T]) reset() {
	q.heap = q.heap[:0]
	q.dist = q.dist[:0]
}

func (q *pqueue[T]) empty() bool { return len(q.heap) == 0 }

func (q *pqueue[T]) less(i, j int) bool { return q.dist[i] < q.dist[j] }

func (q *pqueue[T]) swap(nodes []node[T], i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.dist[i], q.dist[j] = q.dist[j], q.dist[i]
	nodes[q.heap[i]].scratch = i
	nodes[q.heap[j]].scratch = j
}

func (q *pqueue[T]) siftUp(nodes []node[T], i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(nodes, i, parent)
		i = parent
	}
}

func (q *pqueue[T]) siftDown(nodes []node[T], i int) {
	n := len(q.heap)
	for {
		left, right, smallest := 2*i+1, 2*i+2, i
		if left < n && q.less(left, smallest) {
			smallest = left
		}
		if right < n && q.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(nodes, i, smallest)
		i = smallest
	}
}

// push inserts node i with key d. i must not already be in the queue.
func (q *pqueue[T]) push(nodes []node[T], i nodeID, d T) {
	slot := len(q.heap)
	q.heap = append(q.heap, i)
	q.dist = append(q.dist, d)
	nodes[i].scratch = slot
	q.siftUp(nodes, slot)
}

// decreaseKey lowers node i's key to d. i must already be in the queue
// with a key >= d.
func (q *pqueue[T]) decreaseKey(nodes []node[T], i nodeID, d T) {
	slot := nodes[i].scratch
	q.dist[slot] = d
	q.siftUp(nodes, slot)
}

// popMin removes and returns the minimum-key node id and its key.
func (q *pqueue[T]) popMin(nodes []node[T]) (nodeID, T) {
	top := q.heap[0]
	topDist := q.dist[0]
	last := len(q.heap) - 1
	q.swap(nodes, 0, last)
	q.heap = q.heap[:last]
	q.dist = q.dist[:last]
	if last > 0 {
		q.siftDown(nodes, 0)
	}
	return top, topDist
}
