// Package skyroute plans itineraries over a static set of scheduled flights.
//
// Given a departure city, an arrival city, an earliest departure t1 and a
// latest arrival t2, a query returns one best route under one of three
// criteria:
//
//	least-flights-earliest  – fewest legs, then earliest final arrival
//	cheapest                – lowest total fare
//	least-flights-cheapest  – fewest legs, then lowest total fare
//
// Consecutive legs must leave the city the previous leg landed in, no sooner
// than the layover (20 time units by default) after its arrival.
//
// Layout:
//
//	flight/   – Flight type, validation, per-city departure index
//	queue/    – generic comparator heap and bounded ring FIFO
//	planner/  – the three searches, options, metrics
//	oracle/   – exhaustive enumeration used as a reference in tests
//	dataset/  – random workloads, the plain-text case format, reports
//	server/   – HTTP API over a Planner
//	cmd/skyroute – CLI: generate, run, compare, verify, serve
//
// Quick start:
//
//	p, err := planner.New(flights)
//	if err != nil { ... }
//	route, err := p.Cheapest(0, 2, 0, 200)
//	fmt.Println(route.FlightNumbers(), route.Fare())
package skyroute
