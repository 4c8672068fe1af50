// Package queue provides the two ordering primitives used by route searches:
//
//   - PriorityQueue[T]: a binary min-heap whose order is defined entirely by
//     an injected less function. Build is O(n); Push and Pop are O(log n);
//     Peek is O(1).
//   - Ring[T]: a fixed-capacity FIFO circular buffer. Push, Pop and Front are
//     O(1) and never allocate after construction.
//
// Neither type is safe for concurrent use; searches own their queues.
//
// Errors (sentinel):
//
//	ErrFull  - Push on a Ring at capacity.
//	ErrEmpty - Pop or Front on an empty Ring.
package queue
