package planner

import "github.com/katalvlaran/skyroute/flight"

// noPrev marks a first-leg state.
const noPrev = -1

// state is one step of a partial itinerary: the leg taken (by slot) and the
// arena index of the step before it.
type state struct {
	slot int
	prev int
	hops int
	fare int64
}

// arena owns every state created during one search run. States refer to
// their predecessors by index, so the chain is acyclic and trivially freed.
type arena struct {
	states []state
}

// add appends s and returns its index.
func (a *arena) add(s state) int {
	a.states = append(a.states, s)

	return len(a.states) - 1
}

// at returns the state stored at i.
func (a *arena) at(i int) state { return a.states[i] }

// route walks the predecessor chain from i back to the first leg and
// returns the legs in departure order.
func (a *arena) route(idx *flight.Index, i int) Route {
	n := a.states[i].hops
	out := make(Route, n)
	for k := n - 1; i != noPrev; k-- {
		s := a.states[i]
		out[k] = idx.At(s.slot)
		i = s.prev
	}

	return out
}
