package routing

import "golang.org/x/exp/constraints"

// Key is the numeric type a PriorityQueue is ordered by
type Key interface {
	constraints.Integer | constraints.Float
}

type queueEntry[V any, K Key] struct {
	key   K
	seq   uint64
	value V
}

// PriorityQueue is an array-backed binary min-heap ordered by an explicit
// numeric key. Entries with equal keys come out in insertion order; values
// are never compared.
type PriorityQueue[V any, K Key] struct {
	entries []queueEntry[V, K]
	nextSeq uint64
}

// NewPriorityQueue creates an empty queue with room for capacity entries
func NewPriorityQueue[V any, K Key](capacity int) *PriorityQueue[V, K] {
	return &PriorityQueue[V, K]{
		entries: make([]queueEntry[V, K], 0, capacity),
	}
}

func (pq *PriorityQueue[V, K]) Len() int { return len(pq.entries) }

func (pq *PriorityQueue[V, K]) IsEmpty() bool { return len(pq.entries) == 0 }

// Enqueue inserts value with the given key in O(log n)
func (pq *PriorityQueue[V, K]) Enqueue(value V, key K) {
	pq.entries = append(pq.entries, queueEntry[V, K]{key: key, seq: pq.nextSeq, value: value})
	pq.nextSeq++
	pq.siftUp(len(pq.entries) - 1)
}

// Dequeue removes and returns the entry with the smallest key.
// The boolean is false when the queue is empty.
func (pq *PriorityQueue[V, K]) Dequeue() (V, K, bool) {
	if len(pq.entries) == 0 {
		var v V
		var k K
		return v, k, false
	}

	top := pq.entries[0]
	last := len(pq.entries) - 1
	pq.entries[0] = pq.entries[last]
	pq.entries[last] = queueEntry[V, K]{} // drop the reference for GC
	pq.entries = pq.entries[:last]
	if last > 0 {
		pq.siftDown(0)
	}

	return top.value, top.key, true
}

// Peek returns the smallest entry without removing it
func (pq *PriorityQueue[V, K]) Peek() (V, K, bool) {
	if len(pq.entries) == 0 {
		var v V
		var k K
		return v, k, false
	}
	return pq.entries[0].value, pq.entries[0].key, true
}

func (pq *PriorityQueue[V, K]) less(i, j int) bool {
	a, b := pq.entries[i], pq.entries[j]
	if a.key != b.key {
		return a.key < b.key
	}
	return a.seq < b.seq
}

func (pq *PriorityQueue[V, K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			return
		}
		pq.entries[i], pq.entries[parent] = pq.entries[parent], pq.entries[i]
		i = parent
	}
}

func (pq *PriorityQueue[V, K]) siftDown(i int) {
	n := len(pq.entries)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && pq.less(left, smallest) {
			smallest = left
		}
		if right < n && pq.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		pq.entries[i], pq.entries[smallest] = pq.entries[smallest], pq.entries[i]
		i = smallest
	}
}
