// Package oracle enumerates every feasible itinerary by exhaustive
// depth-first search. It is exponential and meant only as a reference for
// verifying planners on small flight sets.
package oracle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skyroute/flight"
)

// ErrInfeasible is wrapped by Check for any itinerary that violates the
// query window, the layover, or leg connectivity.
var ErrInfeasible = errors.New("oracle: infeasible route")

// Query mirrors a planner request plus the layover it was run with.
type Query struct {
	Start, End int
	T1, T2     int64
	Layover    int64
}

// Routes returns every itinerary from q.Start to q.End within the window.
// A route ends the first time it lands in q.End. Start == End yields none.
func Routes(flights []flight.Flight, q Query) [][]flight.Flight {
	if q.Start == q.End {
		return nil
	}
	adj := make(map[int][]flight.Flight)
	for _, f := range flights {
		adj[f.StartCity] = append(adj[f.StartCity], f)
	}

	var all [][]flight.Flight
	var path []flight.Flight
	var dfs func(city int)
	dfs = func(city int) {
		if city == q.End {
			all = append(all, append([]flight.Flight(nil), path...))
			return
		}
		for _, f := range adj[city] {
			if f.ArrivalTime > q.T2 {
				continue
			}
			if len(path) == 0 {
				if f.DepartureTime < q.T1 {
					continue
				}
			} else if f.DepartureTime < path[len(path)-1].ArrivalTime+q.Layover {
				continue
			}
			path = append(path, f)
			dfs(f.EndCity)
			path = path[:len(path)-1]
		}
	}
	dfs(q.Start)

	return all
}

// Check verifies that route is a feasible answer to q. An empty route is
// always accepted.
func Check(route []flight.Flight, q Query) error {
	if len(route) == 0 {
		return nil
	}
	first, last := route[0], route[len(route)-1]
	if first.StartCity != q.Start {
		return fmt.Errorf("%w: starts in %d, want %d", ErrInfeasible, first.StartCity, q.Start)
	}
	if last.EndCity != q.End {
		return fmt.Errorf("%w: ends in %d, want %d", ErrInfeasible, last.EndCity, q.End)
	}
	if first.DepartureTime < q.T1 {
		return fmt.Errorf("%w: departs at %d before %d", ErrInfeasible, first.DepartureTime, q.T1)
	}
	if last.ArrivalTime > q.T2 {
		return fmt.Errorf("%w: arrives at %d after %d", ErrInfeasible, last.ArrivalTime, q.T2)
	}
	seen := make(map[int]bool, len(route))
	for i, f := range route {
		if seen[f.FlightNo] {
			return fmt.Errorf("%w: flight %d repeated", ErrInfeasible, f.FlightNo)
		}
		seen[f.FlightNo] = true
		if i == 0 {
			continue
		}
		prev := route[i-1]
		if prev.EndCity != f.StartCity {
			return fmt.Errorf("%w: leg %d lands in %d, leg %d leaves %d", ErrInfeasible, i-1, prev.EndCity, i, f.StartCity)
		}
		if f.DepartureTime-prev.ArrivalTime < q.Layover {
			return fmt.Errorf("%w: layover %d before flight %d", ErrInfeasible, f.DepartureTime-prev.ArrivalTime, f.FlightNo)
		}
	}

	return nil
}

// Fare sums the fares of route.
func Fare(route []flight.Flight) int64 {
	var total int64
	for _, f := range route {
		total += f.Fare
	}

	return total
}

// Key summarises the optimal value of an itinerary set under one criterion.
type Key struct {
	Hops    int
	Fare    int64
	Arrival int64
}

// LeastFlightsEarliest returns the minimum (hops, arrival) over routes.
// ok is false when routes is empty.
func LeastFlightsEarliest(routes [][]flight.Flight) (k Key, ok bool) {
	for _, r := range routes {
		c := Key{Hops: len(r), Arrival: r[len(r)-1].ArrivalTime}
		if !ok || c.Hops < k.Hops || (c.Hops == k.Hops && c.Arrival < k.Arrival) {
			k, ok = c, true
		}
	}

	return k, ok
}

// Cheapest returns the minimum total fare over routes.
func Cheapest(routes [][]flight.Flight) (k Key, ok bool) {
	for _, r := range routes {
		c := Key{Fare: Fare(r)}
		if !ok || c.Fare < k.Fare {
			k, ok = c, true
		}
	}

	return k, ok
}

// LeastFlightsCheapest returns the minimum (hops, fare) over routes.
func LeastFlightsCheapest(routes [][]flight.Flight) (k Key, ok bool) {
	for _, r := range routes {
		c := Key{Hops: len(r), Fare: Fare(r)}
		if !ok || c.Hops < k.Hops || (c.Hops == k.Hops && c.Fare < k.Fare) {
			k, ok = c, true
		}
	}

	return k, ok
}
