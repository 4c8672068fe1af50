// Package planner finds a single best itinerary between two cities over a
// static set of scheduled flights, subject to a departure/arrival window and
// a minimum layover between consecutive legs.
//
// Three criteria are supported:
//
//	LeastFlightsEarliest – fewest legs, then earliest arrival (breadth-first search).
//	Cheapest             – lowest total fare (Dijkstra on fare).
//	LeastFlightsCheapest – fewest legs, then lowest fare (Dijkstra on (hops, fare)).
//
// Search model:
//
//   - A state is a flight taken; it is feasible after flight f iff it departs
//     f.EndCity at or after f.ArrivalTime+Layover and lands by T2.
//   - A query enumerates every feasible first leg (departs Start at or after
//     T1, lands by T2) and runs one independent search seeded at it. The
//     globally best terminal state wins; exact ties keep the earliest
//     candidate in index order (arrival order of first legs).
//   - Visited and best-cost tables are indexed by dense flight slots and are
//     allocated per run. Predecessors are arena indexes, not pointers.
//
// A least-flights-earliest run compares every terminal state at the depth
// where the destination is first reached. WithFirstArrivalStop restores the
// cheaper behaviour of stopping at the first terminal state dequeued.
//
// Failure semantics: "no route" is an empty Route with a nil error.
// Errors are returned only for misuse (ErrUnknownCriterion,
// ErrCityOutOfRange) or context cancellation. Internal queue overflow panics.
//
// Complexity per candidate (m flights):
//
//   - LeastFlightsEarliest: O(m + Σdeg) time, O(m) space.
//   - Cheapest / LeastFlightsCheapest: O(E log E) time with lazy deletion,
//     where E ≤ Σdeg relaxations.
//
// Concurrency: WithWorkers(n) fans the candidates out on an errgroup; output
// is identical for every n.
package planner
