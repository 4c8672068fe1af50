// Package flight defines the Flight record and the city adjacency Index
// that route searches expand over.
//
// A Flight is an immutable scheduled leg: it departs StartCity at
// DepartureTime, lands in EndCity at ArrivalTime and costs Fare.
// The Index groups flights by origin city so a search can enumerate the
// outgoing legs of a city in O(1), and compacts arbitrary flight numbers
// into dense slots 0..m-1 so per-search scratch tables are plain slices.
//
// Invariants enforced by NewIndex:
//
//   - FlightNo, StartCity, EndCity and Fare are non-negative.
//   - ArrivalTime is strictly after DepartureTime.
//   - FlightNo is unique across the set.
//
// Every departure list is sorted by ArrivalTime (stable on input order),
// so callers may stop scanning once a flight lands after their deadline.
//
// Errors (sentinel):
//
//	ErrInvalidFlight   - a record failed field validation.
//	ErrDuplicateFlight - two records share a FlightNo.
//
// Complexity:
//
//   - NewIndex: O(m log m) time, O(m + n) space, m = flights, n = cities.
//   - Departures, Slot: O(1).
package flight
