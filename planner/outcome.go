package planner

// outcome is the terminal result of one seeded run.
type outcome struct {
	found    bool
	route    Route
	hops     int
	fare     int64
	arrival  int64
	expanded int // states dequeued and examined
}

// set records r as the run's winner.
func (o *outcome) set(r Route) {
	o.found = true
	o.route = r
	o.hops = r.Hops()
	o.fare = r.Fare()
	o.arrival = r.Arrival()
}

// better reports whether a strictly beats b under c. Exact ties keep b, so
// the earliest candidate in index order wins.
func better(c Criterion, a, b outcome) bool {
	switch c {
	case LeastFlightsEarliest:
		if a.hops != b.hops {
			return a.hops < b.hops
		}
		return a.arrival < b.arrival
	case Cheapest:
		return a.fare < b.fare
	default:
		if a.hops != b.hops {
			return a.hops < b.hops
		}
		return a.fare < b.fare
	}
}
