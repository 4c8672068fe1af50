package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/skyroute/flight"
)

// DefaultLayover is the minimum ground time between an arriving leg and the
// next departing leg at the same city.
const DefaultLayover int64 = 20

// Sentinel errors for planner construction and queries.
var (
	// ErrCityOutOfRange indicates a query referenced a negative city id.
	ErrCityOutOfRange = errors.New("planner: city id out of range")

	// ErrUnknownCriterion indicates a Criterion value outside the defined set.
	ErrUnknownCriterion = errors.New("planner: unknown criterion")

	// ErrBadLayover is the panic value for WithLayover with a negative duration.
	ErrBadLayover = errors.New("planner: layover must be non-negative")

	// ErrBadWorkers is the panic value for WithWorkers with n < 1.
	ErrBadWorkers = errors.New("planner: workers must be at least 1")
)

// Criterion selects which itinerary is "best".
type Criterion int

const (
	// LeastFlightsEarliest minimises hop count, then arrival time of the last leg.
	LeastFlightsEarliest Criterion = iota

	// Cheapest minimises total fare.
	Cheapest

	// LeastFlightsCheapest minimises hop count, then total fare.
	LeastFlightsCheapest
)

var criterionNames = [...]string{
	LeastFlightsEarliest: "least-flights-earliest",
	Cheapest:             "cheapest",
	LeastFlightsCheapest: "least-flights-cheapest",
}

// Criteria lists every supported Criterion in declaration order.
func Criteria() []Criterion {
	return []Criterion{LeastFlightsEarliest, Cheapest, LeastFlightsCheapest}
}

// String returns the kebab-case name used by the CLI and HTTP API.
func (c Criterion) String() string {
	if c < 0 || int(c) >= len(criterionNames) {
		return fmt.Sprintf("criterion(%d)", int(c))
	}

	return criterionNames[c]
}

// ParseCriterion maps a name produced by String back to its Criterion.
func ParseCriterion(s string) (Criterion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range criterionNames {
		if name == s {
			return Criterion(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// Request is one route query: leave Start no earlier than T1 and reach End
// no later than T2.
type Request struct {
	Start int
	End   int
	T1    int64
	T2    int64
}

// Route is an itinerary in departure order. An empty Route means no
// feasible itinerary (or Start == End).
type Route []flight.Flight

// Hops returns the number of legs.
func (r Route) Hops() int { return len(r) }

// Fare returns the summed fare of all legs.
func (r Route) Fare() int64 {
	var total int64
	for _, f := range r {
		total += f.Fare
	}

	return total
}

// Departure returns the departure time of the first leg, or 0 for an empty route.
func (r Route) Departure() int64 {
	if len(r) == 0 {
		return 0
	}

	return r[0].DepartureTime
}

// Arrival returns the arrival time of the last leg, or 0 for an empty route.
func (r Route) Arrival() int64 {
	if len(r) == 0 {
		return 0
	}

	return r[len(r)-1].ArrivalTime
}

// FlightNumbers returns the flight numbers of the legs in order.
func (r Route) FlightNumbers() []int {
	out := make([]int, len(r))
	for i, f := range r {
		out[i] = f.FlightNo
	}

	return out
}

// Options configures a Planner.
//
//	Layover          – minimum ground time between legs (default DefaultLayover).
//	Workers          – goroutines searching first-leg candidates per query (default 1).
//	FirstArrivalStop – end each least-flights-earliest run at its first terminal state.
//	Logger           – receives Debug records per query (default discards).
//	Metrics          – optional Prometheus collectors (default nil, disabled).
type Options struct {
	Layover          int64
	Workers          int
	FirstArrivalStop bool
	Logger           *slog.Logger
	Metrics          *Metrics
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Layover: DefaultLayover,
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLayover overrides the minimum connection time. Negative values panic.
func WithLayover(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadLayover.Error())
		}
		o.Layover = d
	}
}

// WithWorkers searches up to n first-leg candidates concurrently.
// Results do not depend on n. Values below 1 panic.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithFirstArrivalStop makes each least-flights-earliest run stop at the first
// terminal state it dequeues. Within one first leg this may return a later
// arrival than another route with the same hop count.
func WithFirstArrivalStop() Option {
	return func(o *Options) {
		o.FirstArrivalStop = true
	}
}

// WithLogger routes planner logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records per-query metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
