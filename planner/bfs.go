package planner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/skyroute/flight"
	"github.com/katalvlaran/skyroute/queue"
)

// walker encapsulates the mutable state of one breadth-first run seeded at a
// single first leg. It is used for LeastFlightsEarliest.
type walker struct {
	ctx       context.Context
	idx       *flight.Index
	req       Request
	layover   int64
	firstStop bool

	visited []bool
	queue   *queue.Ring[int] // arena indexes
	arena   arena
}

// newWalker allocates fresh per-run scratch state.
func newWalker(ctx context.Context, p *Planner, req Request) *walker {
	return &walker{
		ctx:       ctx,
		idx:       p.idx,
		req:       req,
		layover:   p.opts.Layover,
		firstStop: p.opts.FirstArrivalStop,
		visited:   make([]bool, p.idx.Len()),
		queue:     queue.NewRing[int](p.idx.Len()),
	}
}

// enqueue marks slot visited and schedules its state.
// Each slot is enqueued at most once per run, so the ring never overflows.
func (w *walker) enqueue(s state) {
	w.visited[s.slot] = true
	if err := w.queue.Push(w.arena.add(s)); err != nil {
		panic(fmt.Sprintf("planner: bfs queue invariant violated at slot %d: %v", s.slot, err))
	}
}

// dequeue pops the next arena index. The caller checks Empty first.
func (w *walker) dequeue() int {
	i, err := w.queue.Pop()
	if err != nil {
		panic(fmt.Sprintf("planner: bfs dequeue on empty queue: %v", err))
	}

	return i
}

// run explores in non-decreasing hop order from seed. Once the destination is
// reached at depth d, every remaining state at depth d is still compared so
// the earliest arrival at that depth wins, unless firstStop is set.
//
// Loop termination conditions:
//
//   - The queue becomes empty (every reachable leg visited).
//   - A dequeued state is deeper than the winning depth.
//   - firstStop is set and a terminal state was dequeued.
//   - ctx is cancelled (returns ctx.Err()).
//
// Complexity:
//
//   - Time:  O(m + Σ deg) where m is the flight count; each slot is enqueued
//     at most once and each departure list is scanned once per expanded leg.
//   - Space: O(m) for visited, the ring and the arena.
func (w *walker) run(seed int) (outcome, error) {
	var out outcome
	best := noPrev
	winDepth := 0

	// 1) Seed the queue with the first leg at depth 1.
	w.enqueue(state{slot: seed, prev: noPrev, hops: 1, fare: w.idx.At(seed).Fare})
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return outcome{}, w.ctx.Err()
		default:
		}

		// 2) Pop the oldest state; FIFO order keeps depths non-decreasing.
		i := w.dequeue()
		s := w.arena.at(i)
		if winDepth > 0 && s.hops > winDepth {
			break
		}
		out.expanded++

		// 3) A terminal leg competes on arrival within the winning depth.
		f := w.idx.At(s.slot)
		if f.EndCity == w.req.End {
			if best == noPrev || f.ArrivalTime < w.idx.At(w.arena.at(best).slot).ArrivalTime {
				best = i
			}
			winDepth = s.hops
			if w.firstStop {
				break
			}
			continue
		}

		// 4) Children would be deeper than the winning depth.
		if winDepth > 0 {
			continue
		}

		// 5) Enqueue every feasible unvisited successor.
		w.expand(i, s, f)
	}

	// 6) Rebuild the winning chain, if any.
	if best != noPrev {
		out.set(w.arena.route(w.idx, best))
	}

	return out, nil
}

// expand enqueues every unvisited leg that can follow f within the window.
func (w *walker) expand(i int, s state, f flight.Flight) {
	slots := w.idx.DepartureSlots(f.EndCity)
	earliest := f.ArrivalTime + w.layover
	for k, g := range w.idx.Departures(f.EndCity) {
		if g.ArrivalTime > w.req.T2 {
			break // sorted by arrival
		}
		slot := slots[k]
		if w.visited[slot] || g.DepartureTime < earliest {
			continue
		}
		w.enqueue(state{slot: slot, prev: i, hops: s.hops + 1, fare: s.fare + g.Fare})
	}
}
