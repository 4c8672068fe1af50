package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/skyroute/planner"
)

// Solve builds one planner per case and answers all three criteria.
// Planner construction errors abort with the failing case number.
func Solve(ctx context.Context, cases []Case, opts ...planner.Option) ([]Result, error) {
	out := make([]Result, 0, len(cases))
	for i, c := range cases {
		p, err := planner.New(c.Flights, opts...)
		if err != nil {
			return nil, fmt.Errorf("dataset: case %d: %w", i+1, err)
		}
		res := Result{Case: i + 1}
		routes := []*planner.Route{&res.LeastFlightsEarliest, &res.Cheapest, &res.LeastFlightsCheapest}
		for k, crit := range planner.Criteria() {
			r, err := p.Query(ctx, crit, c.Query)
			if err != nil {
				return nil, fmt.Errorf("dataset: case %d %s: %w", i+1, crit, err)
			}
			*routes[k] = r
		}
		out = append(out, res)
	}

	return out, nil
}

// WriteReport prints results in the report format described in the package doc.
func WriteReport(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		arrival := "No route"
		if r.LeastFlightsEarliest.Hops() > 0 {
			arrival = fmt.Sprint(r.LeastFlightsEarliest.Arrival())
		}
		fmt.Fprintf(bw, "Test Case %d :\n", r.Case)
		fmt.Fprintf(bw, "Route 1: %d, %s\n", r.LeastFlightsEarliest.Hops(), arrival)
		fmt.Fprintf(bw, "Route 2: %d\n", r.Cheapest.Fare())
		fmt.Fprintf(bw, "Route 3: %d, %d\n\n", r.LeastFlightsCheapest.Hops(), r.LeastFlightsCheapest.Fare())
	}

	return bw.Flush()
}

// Compare reads two reports and returns nil if they match line for line
// (ignoring surrounding whitespace), ErrLineCount if their lengths differ,
// or a *Mismatch describing the first differing line. "Test Case" header
// lines of out only set the context of later mismatches and are never
// compared themselves.
func Compare(out, model io.Reader) error {
	got, err := readLines(out)
	if err != nil {
		return err
	}
	want, err := readLines(model)
	if err != nil {
		return err
	}
	if len(got) != len(want) {
		return fmt.Errorf("%w: output %d, model %d", ErrLineCount, len(got), len(want))
	}

	header := ""
	for i := range got {
		g, w := got[i], want[i]
		if strings.HasPrefix(g, "Test Case") {
			header = g
			continue
		}
		if g == w {
			continue
		}
		m := &Mismatch{Case: header, Line: i + 1, Got: g, Want: w}
		for k := 1; k <= 3; k++ {
			if strings.HasPrefix(g, fmt.Sprintf("Route %d:", k)) {
				m.Route = k
				break
			}
		}
		return m
	}

	return nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}

	return lines, sc.Err()
}
