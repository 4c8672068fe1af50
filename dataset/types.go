package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skyroute/flight"
	"github.com/katalvlaran/skyroute/planner"
)

// Sentinel errors for dataset I/O.
var (
	// ErrMalformed indicates unparsable test-case input.
	ErrMalformed = errors.New("dataset: malformed input")

	// ErrBadConfig indicates an invalid GenerateConfig.
	ErrBadConfig = errors.New("dataset: invalid generator config")

	// ErrLineCount indicates two reports differ in length.
	ErrLineCount = errors.New("dataset: report line counts differ")
)

// Case is one flight set plus the query to run against it.
type Case struct {
	Flights []flight.Flight
	Query   planner.Request
}

// Result holds the three answers for one case.
type Result struct {
	Case                 int
	LeastFlightsEarliest planner.Route
	Cheapest             planner.Route
	LeastFlightsCheapest planner.Route
}

// Mismatch is returned by Compare for the first differing report line.
type Mismatch struct {
	Case  string // "Test Case <i> :" header in effect, if any
	Route int    // 1..3, or 0 when the line is not a route line
	Line  int    // 1-based line number
	Got   string
	Want  string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("dataset: mismatch at line %d (%s, route %d): got %q, want %q",
		m.Line, m.Case, m.Route, m.Got, m.Want)
}
