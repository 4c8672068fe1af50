package queue

// Ring is a bounded FIFO backed by a circular buffer.
type Ring[T any] struct {
	buf   []T
	front int
	size  int
}

// NewRing allocates a Ring able to hold capacity items.
// A negative capacity panics with ErrBadCapacity.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		panic(ErrBadCapacity.Error())
	}

	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends item at the back, or returns ErrFull.
func (r *Ring[T]) Push(item T) error {
	if r.size == len(r.buf) {
		return ErrFull
	}
	r.buf[(r.front+r.size)%len(r.buf)] = item
	r.size++

	return nil
}

// Pop removes and returns the front item, or returns ErrEmpty.
func (r *Ring[T]) Pop() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmpty
	}
	item := r.buf[r.front]
	r.buf[r.front] = zero
	r.front = (r.front + 1) % len(r.buf)
	r.size--

	return item, nil
}

// Front returns the front item without removing it, or ErrEmpty.
func (r *Ring[T]) Front() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return r.buf[r.front], nil
}

// Empty reports whether the ring holds no items.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Len returns the number of queued items.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Reset drops all items, keeping the buffer.
func (r *Ring[T]) Reset() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.front, r.size = 0, 0
}
