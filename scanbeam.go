package clipper

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// scanbeamQueue is a max-heap of pending scanline Y coordinates. Y values may
// be pushed more than once (every local minimum and every edge top contributes
// one), so pop discards duplicates of the value it just returned
// rather than deduplicating on insert.
type scanbeamQueue struct {
	heap *binaryheap.Heap
	last int64
	has  bool
}

func int64MaxComparator(a, b interface{}) int {
	x, y := a.(int64), b.(int64)
	switch {
	case x > y:
		return -1
	case x < y:
		return 1
	default:
		return 0
	}
}

func newScanbeamQueue() *scanbeamQueue {
	return &scanbeamQueue{heap: binaryheap.NewWith(int64MaxComparator)}
}

func (q *scanbeamQueue) push(y int64) {
	q.heap.Push(y)
}

// pop returns the next distinct scanbeam Y below the previously returned one,
// and false once the queue is drained.
func (q *scanbeamQueue) pop() (int64, bool) {
	for {
		v, ok := q.heap.Pop()
		if !ok {
			return 0, false
		}
		y := v.(int64)
		if q.has && y == q.last {
			continue
		}
		q.last = y
		q.has = true
		return y, true
	}
}

func (q *scanbeamQueue) empty() bool {
	return q.heap.Empty()
}
