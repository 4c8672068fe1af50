package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/skyroute/flight"
	"github.com/katalvlaran/skyroute/planner"
)

// lineReader yields whitespace-split integer records with line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-empty line parsed as exactly n integers.
func (lr *lineReader) next(n int) ([]int64, error) {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != n {
			return nil, fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformed, lr.line, n, len(fields))
		}
		out := make([]int64, n)
		for i, s := range fields {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lr.line, err)
			}
			out[i] = v
		}
		return out, nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: unexpected end of input after line %d", ErrMalformed, lr.line)
}

// count reads a single non-negative record count no larger than math.MaxInt32.
func (lr *lineReader) count(what string) (int, error) {
	v, err := lr.next(1)
	if err != nil {
		return 0, err
	}
	if v[0] < 0 || v[0] > math.MaxInt32 {
		return 0, fmt.Errorf("%w: line %d: %s count %d out of range", ErrMalformed, lr.line, what, v[0])
	}

	return int(v[0]), nil
}

// ReadCases parses the test-case format described in the package doc.
func ReadCases(r io.Reader) ([]Case, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	lr := &lineReader{sc: sc}

	n, err := lr.count("case")
	if err != nil {
		return nil, err
	}

	// counts are untrusted, so slices grow with the records actually read
	var cases []Case
	for c := 0; c < n; c++ {
		m, err := lr.count("flight")
		if err != nil {
			return nil, err
		}
		var flights []flight.Flight
		for i := 0; i < m; i++ {
			v, err := lr.next(6)
			if err != nil {
				return nil, err
			}
			flights = append(flights, flight.Flight{
				FlightNo:      int(v[0]),
				StartCity:     int(v[1]),
				DepartureTime: v[2],
				EndCity:       int(v[3]),
				ArrivalTime:   v[4],
				Fare:          v[5],
			})
		}
		q, err := lr.next(4)
		if err != nil {
			return nil, err
		}
		if flights == nil {
			flights = []flight.Flight{}
		}
		cases = append(cases, Case{
			Flights: flights,
			Query:   planner.Request{Start: int(q[0]), End: int(q[1]), T1: q[2], T2: q[3]},
		})
	}

	if cases == nil {
		cases = []Case{}
	}

	return cases, nil
}

// WriteCases serialises cases in the format ReadCases accepts.
func WriteCases(w io.Writer, cases []Case) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(cases))
	for _, c := range cases {
		fmt.Fprintf(bw, "%d\n", len(c.Flights))
		for _, f := range c.Flights {
			fmt.Fprintf(bw, "%d %d %d %d %d %d\n",
				f.FlightNo, f.StartCity, f.DepartureTime, f.EndCity, f.ArrivalTime, f.Fare)
		}
		fmt.Fprintf(bw, "%d %d %d %d\n", c.Query.Start, c.Query.End, c.Query.T1, c.Query.T2)
	}

	return bw.Flush()
}
