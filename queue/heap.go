package queue

import "container/heap"

// PriorityQueue is a min-heap ordered by a caller-supplied Less.
// Ties are broken only by Less, never by insertion order.
type PriorityQueue[T any] struct {
	h items[T]
}

// items adapts a slice plus comparator to heap.Interface.
type items[T any] struct {
	data []T
	less Less[T]
}

func (s items[T]) Len() int           { return len(s.data) }
func (s items[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }
func (s items[T]) Swap(i, j int)      { s.data[i], s.data[j] = s.data[j], s.data[i] }

func (s *items[T]) Push(x any) { s.data = append(s.data, x.(T)) }

func (s *items[T]) Pop() any {
	old := s.data
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // release reference for GC
	s.data = old[:n-1]

	return item
}

// NewPriorityQueue heapifies init in O(len(init)) using less.
// The queue takes ownership of init; callers must not reuse it.
func NewPriorityQueue[T any](init []T, less Less[T]) *PriorityQueue[T] {
	if less == nil {
		panic("queue: nil less function")
	}
	pq := &PriorityQueue[T]{h: items[T]{data: init, less: less}}
	heap.Init(&pq.h)

	return pq
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h.data) }

// Push inserts item in O(log n).
func (pq *PriorityQueue[T]) Push(item T) { heap.Push(&pq.h, item) }

// Pop removes and returns the minimum item. ok is false when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (item T, ok bool) {
	if len(pq.h.data) == 0 {
		return item, false
	}

	return heap.Pop(&pq.h).(T), true
}

// Peek returns the minimum item without removing it.
func (pq *PriorityQueue[T]) Peek() (item T, ok bool) {
	if len(pq.h.data) == 0 {
		return item, false
	}

	return pq.h.data[0], true
}
