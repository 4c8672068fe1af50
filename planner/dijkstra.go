package planner

import (
	"context"
	"math"

	"github.com/katalvlaran/skyroute/flight"
	"github.com/katalvlaran/skyroute/queue"
)

// cost is the accumulated key of a state: legs taken and fare paid.
type cost struct {
	hops int
	fare int64
}

// infCost is the initial value of every best-cost cell.
var infCost = cost{hops: math.MaxInt, fare: math.MaxInt64}

// entry is a heap item. arrival is the arrival time of the state's current
// leg, copied so comparators need no arena lookup.
type entry struct {
	cost
	arrival int64
	state   int
}

// metric defines one cost-ordered search: how heap entries are ordered and
// when a new cost strictly improves the recorded one.
type metric struct {
	order   queue.Less[entry]
	improve func(candidate, recorded cost) bool
}

// fareMetric orders by fare, then by arrival of the current leg, and relaxes
// on strictly lower fare.
var fareMetric = metric{
	order: func(a, b entry) bool {
		if a.fare == b.fare {
			return a.arrival < b.arrival
		}
		return a.fare < b.fare
	},
	improve: func(c, r cost) bool { return c.fare < r.fare },
}

// hopsFareMetric orders and relaxes on (hops, fare) lexicographically.
var hopsFareMetric = metric{
	order:   func(a, b entry) bool { return lexLess(a.cost, b.cost) },
	improve: lexLess,
}

func lexLess(a, b cost) bool {
	if a.hops == b.hops {
		return a.fare < b.fare
	}

	return a.hops < b.hops
}

// runner holds the mutable state for one cost-ordered run seeded at a single
// first leg. It is used for Cheapest and LeastFlightsCheapest.
type runner struct {
	ctx     context.Context
	idx     *flight.Index
	req     Request
	layover int64
	m       metric

	best  []cost // slot → best cost recorded this run
	pq    *queue.PriorityQueue[entry]
	arena arena
}

// newRunner allocates fresh per-run scratch state.
func newRunner(ctx context.Context, p *Planner, req Request, m metric) *runner {
	best := make([]cost, p.idx.Len())
	for i := range best {
		best[i] = infCost
	}

	return &runner{
		ctx:     ctx,
		idx:     p.idx,
		req:     req,
		layover: p.opts.Layover,
		m:       m,
		best:    best,
		pq:      queue.NewPriorityQueue(make([]entry, 0, 16), m.order),
	}
}

// push records s in the arena and the heap.
func (r *runner) push(s state) {
	r.pq.Push(entry{
		cost:    cost{hops: s.hops, fare: s.fare},
		arrival: r.idx.At(s.slot).ArrivalTime,
		state:   r.arena.add(s),
	})
}

// run pops states in metric order and stops at the first one whose leg lands
// in the destination; heap order makes it the minimum for this seed.
//
// Loop termination conditions:
//
//   - The heap becomes empty (destination unreachable from seed).
//   - A terminal state is popped.
//   - ctx is cancelled (returns ctx.Err()).
//
// Complexity:
//
//   - Time:  O((m + P) log P) where P ≤ m + Σ deg is the number of pushes
//     under lazy decrease-key.
//   - Space: O(m + P) for best, the heap and the arena.
func (r *runner) run(seed int) (outcome, error) {
	var out outcome

	// 1) Seed: the first leg is its own best cost.
	f := r.idx.At(seed)
	r.best[seed] = cost{hops: 1, fare: f.Fare}
	r.push(state{slot: seed, prev: noPrev, hops: 1, fare: f.Fare})

	for {
		select {
		case <-r.ctx.Done():
			return outcome{}, r.ctx.Err()
		default:
		}

		// 2) Pop the minimum entry under the metric order.
		e, ok := r.pq.Pop()
		if !ok {
			break
		}

		// 3) Skip stale entries: a strictly better cost for this slot was recorded later.
		s := r.arena.at(e.state)
		if r.m.improve(r.best[s.slot], e.cost) {
			continue
		}
		out.expanded++

		// 4) The first terminal pop is optimal for this seed.
		f = r.idx.At(s.slot)
		if f.EndCity == r.req.End {
			out.set(r.arena.route(r.idx, e.state))
			break
		}

		// 5) Relax feasible successors.
		r.relax(e, f)
	}

	return out, nil
}

// relax pushes every feasible successor of f whose cost improves on the
// best recorded for its slot.
func (r *runner) relax(e entry, f flight.Flight) {
	slots := r.idx.DepartureSlots(f.EndCity)
	earliest := f.ArrivalTime + r.layover
	for k, g := range r.idx.Departures(f.EndCity) {
		if g.ArrivalTime > r.req.T2 {
			break // sorted by arrival
		}
		if g.DepartureTime < earliest {
			continue
		}
		slot := slots[k]
		c := cost{hops: e.hops + 1, fare: e.fare + g.Fare}
		if !r.m.improve(c, r.best[slot]) {
			continue
		}
		r.best[slot] = c
		r.push(state{slot: slot, prev: e.state, hops: c.hops, fare: c.fare})
	}
}
