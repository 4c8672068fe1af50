package queue

import "errors"

// Sentinel errors for the bounded FIFO.
var (
	// ErrFull is returned by Ring.Push when the buffer holds Cap() items.
	ErrFull = errors.New("queue: ring is full")

	// ErrEmpty is returned by Ring.Pop and Ring.Front when no items remain.
	ErrEmpty = errors.New("queue: ring is empty")

	// ErrBadCapacity is the panic value for NewRing with a negative capacity.
	ErrBadCapacity = errors.New("queue: capacity must be non-negative")
)

// Less reports whether a must be extracted before b.
// It must be a strict weak ordering over the values actually inserted.
type Less[T any] func(a, b T) bool
