package solver

import "container/heap"

// frameItem is one entry in the best-first search queue: a partial
// program paired with the priority (lower is explored first) a
// heuristic assigned it.
type frameItem struct {
	frame    searchFrame
	priority int
	index    int // managed by container/heap
}

// frameHeap implements heap.Interface over a slice of *frameItem,
// ordered as a min-heap on priority.
type frameHeap []*frameItem

func (h frameHeap) Len() int            { return len(h) }
func (h frameHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h frameHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frameHeap) Push(x interface{}) {
	item := x.(*frameItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *frameHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// priorityQueue is a single-threaded min-priority queue of search
// frames. Unlike the concurrent queue this is adapted from, the search
// driver here runs on one goroutine for its whole lifetime, so there is
// no locking or wait/signal.
type priorityQueue struct {
	items frameHeap
}

func newPriorityQueue() *priorityQueue {
	return &priorityQueue{}
}

func (q *priorityQueue) push(frame searchFrame, priority int) {
	heap.Push(&q.items, &frameItem{frame: frame, priority: priority})
}

func (q *priorityQueue) pop() (searchFrame, bool) {
	if len(q.items) == 0 {
		return searchFrame{}, false
	}
	item := heap.Pop(&q.items).(*frameItem)
	return item.frame, true
}
