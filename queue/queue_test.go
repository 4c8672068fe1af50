package queue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/queue"
)

func intLess(a, b int) bool { return a < b }

// TestPriorityQueue_BuildAndDrain verifies heapified input drains in order.
func TestPriorityQueue_BuildAndDrain(t *testing.T) {
	pq := queue.NewPriorityQueue([]int{5, 3, 9, 1, 7, 1}, intLess)
	require.Equal(t, 6, pq.Len())

	top, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top)

	var got []int
	for {
		v, ok := pq.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 1, 3, 5, 7, 9}, got)
	assert.Equal(t, 0, pq.Len())
}

// TestPriorityQueue_EmptySentinel verifies Pop and Peek report ok=false when empty.
func TestPriorityQueue_EmptySentinel(t *testing.T) {
	pq := queue.NewPriorityQueue[int](nil, intLess)
	_, ok := pq.Pop()
	assert.False(t, ok)
	_, ok = pq.Peek()
	assert.False(t, ok)
}

// TestPriorityQueue_LexicographicComparator verifies ordering by a composite key.
func TestPriorityQueue_LexicographicComparator(t *testing.T) {
	type key struct{ hops, fare int64 }
	less := func(a, b key) bool {
		if a.hops != b.hops {
			return a.hops < b.hops
		}
		return a.fare < b.fare
	}
	pq := queue.NewPriorityQueue[key](nil, less)
	pq.Push(key{2, 10})
	pq.Push(key{1, 90})
	pq.Push(key{2, 5})
	pq.Push(key{1, 40})

	want := []key{{1, 40}, {1, 90}, {2, 5}, {2, 10}}
	for _, w := range want {
		got, ok := pq.Pop()
		require.True(t, ok)
		assert.Equal(t, w, got)
	}
}

// TestPriorityQueue_RandomAgainstSort verifies random pushes drain like a sorted slice.
func TestPriorityQueue_RandomAgainstSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	in := make([]int, 500)
	for i := range in {
		in[i] = rnd.Intn(100)
	}
	want := append([]int(nil), in...)
	sort.Ints(want)

	pq := queue.NewPriorityQueue(in[:250:250], intLess)
	for _, v := range in[250:] {
		pq.Push(v)
	}
	for i := range want {
		got, ok := pq.Pop()
		require.True(t, ok)
		require.Equal(t, want[i], got, "position %d", i)
	}
}

// TestPriorityQueue_NilLessPanics verifies a nil comparator panics.
func TestPriorityQueue_NilLessPanics(t *testing.T) {
	assert.Panics(t, func() { queue.NewPriorityQueue[int](nil, nil) })
}

// TestRing_FIFO verifies FIFO order, wraparound and ErrFull.
func TestRing_FIFO(t *testing.T) {
	r := queue.NewRing[string](3)
	assert.True(t, r.Empty())
	assert.Equal(t, 3, r.Cap())

	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	require.NoError(t, r.Push("c"))
	assert.ErrorIs(t, r.Push("d"), queue.ErrFull)

	front, err := r.Front()
	require.NoError(t, err)
	assert.Equal(t, "a", front)

	v, err := r.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	// wrap around
	require.NoError(t, r.Push("d"))
	var got []string
	for !r.Empty() {
		v, err := r.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"b", "c", "d"}, got)
}

// TestRing_EmptyErrors verifies Pop and Front return ErrEmpty.
func TestRing_EmptyErrors(t *testing.T) {
	r := queue.NewRing[int](1)
	_, err := r.Pop()
	assert.ErrorIs(t, err, queue.ErrEmpty)
	_, err = r.Front()
	assert.ErrorIs(t, err, queue.ErrEmpty)

	zero := queue.NewRing[int](0)
	assert.ErrorIs(t, zero.Push(1), queue.ErrFull)
}

// TestRing_Reset verifies Reset empties the ring and keeps its capacity.
func TestRing_Reset(t *testing.T) {
	r := queue.NewRing[int](2)
	require.NoError(t, r.Push(1))
	require.NoError(t, r.Push(2))
	r.Reset()
	assert.Equal(t, 0, r.Len())
	require.NoError(t, r.Push(3))
	v, err := r.Front()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

// TestRing_NegativeCapacityPanics verifies NewRing panics on a negative capacity.
func TestRing_NegativeCapacityPanics(t *testing.T) {
	assert.PanicsWithValue(t, queue.ErrBadCapacity.Error(), func() { queue.NewRing[int](-1) })
}
