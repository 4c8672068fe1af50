package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skyroute/flight"
)

// Planner answers route queries over a fixed flight set.
//
// A Planner is immutable after New and safe for concurrent queries; every
// query allocates its own scratch tables and queues.
type Planner struct {
	idx  *flight.Index
	opts Options
}

// New validates flights, builds the city index and applies opts.
// Returns flight.ErrInvalidFlight or flight.ErrDuplicateFlight on bad input.
func New(flights []flight.Flight, opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	idx, err := flight.NewIndex(flights)
	if err != nil {
		return nil, fmt.Errorf("planner: build index: %w", err)
	}

	return &Planner{idx: idx, opts: cfg}, nil
}

// Index exposes the read-only city index.
func (p *Planner) Index() *flight.Index { return p.idx }

// LeastFlightsEarliest returns the route with the fewest legs, ties broken by
// earliest arrival of the last leg.
func (p *Planner) LeastFlightsEarliest(start, end int, t1, t2 int64) (Route, error) {
	return p.Query(context.Background(), LeastFlightsEarliest, Request{Start: start, End: end, T1: t1, T2: t2})
}

// Cheapest returns the route with the lowest total fare.
func (p *Planner) Cheapest(start, end int, t1, t2 int64) (Route, error) {
	return p.Query(context.Background(), Cheapest, Request{Start: start, End: end, T1: t1, T2: t2})
}

// LeastFlightsCheapest returns the route with the fewest legs, ties broken by
// lowest total fare.
func (p *Planner) LeastFlightsCheapest(start, end int, t1, t2 int64) (Route, error) {
	return p.Query(context.Background(), LeastFlightsCheapest, Request{Start: start, End: end, T1: t1, T2: t2})
}

// Query runs one search under criterion c.
//
// An infeasible query (including T2 < T1, or Start == End) yields an empty
// Route and a nil error. Errors are reserved for misuse: ErrUnknownCriterion,
// ErrCityOutOfRange, or ctx cancellation.
func (p *Planner) Query(ctx context.Context, c Criterion, req Request) (Route, error) {
	if c < LeastFlightsEarliest || c > LeastFlightsCheapest {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCriterion, int(c))
	}
	if req.Start < 0 || req.End < 0 {
		return nil, fmt.Errorf("%w: start=%d end=%d", ErrCityOutOfRange, req.Start, req.End)
	}

	began := time.Now()
	if req.Start == req.End {
		p.observe(c, Route{}, 0, 0, began)
		return Route{}, nil
	}

	cands := p.candidates(req)
	outs, err := p.searchAll(ctx, c, req, cands)
	if err != nil {
		p.opts.Metrics.failed(c)
		return nil, err
	}

	best := outcome{}
	expanded := 0
	for _, o := range outs {
		expanded += o.expanded
		if o.found && (!best.found || better(c, o, best)) {
			best = o
		}
	}
	route := Route{}
	if best.found {
		route = best.route
	}
	p.observe(c, route, len(cands), expanded, began)

	return route, nil
}

// candidates returns the slots of feasible first legs: departing Start at or
// after T1 and landing no later than T2.
func (p *Planner) candidates(req Request) []int {
	slots := p.idx.DepartureSlots(req.Start)
	var out []int
	for k, f := range p.idx.Departures(req.Start) {
		if f.ArrivalTime > req.T2 {
			break // sorted by arrival
		}
		if f.DepartureTime >= req.T1 {
			out = append(out, slots[k])
		}
	}

	return out
}

// searchAll runs one independent search per candidate. Results are stored by
// candidate position so the reduction order never depends on scheduling.
func (p *Planner) searchAll(ctx context.Context, c Criterion, req Request, cands []int) ([]outcome, error) {
	outs := make([]outcome, len(cands))
	if p.opts.Workers <= 1 || len(cands) <= 1 {
		for i, seed := range cands {
			o, err := p.searchOne(ctx, c, req, seed)
			if err != nil {
				return nil, err
			}
			outs[i] = o
		}

		return outs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, seed := range cands {
		g.Go(func() error {
			o, err := p.searchOne(gctx, c, req, seed)
			if err != nil {
				return err
			}
			outs[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outs, nil
}

// searchOne dispatches a single seeded run with fresh scratch state.
func (p *Planner) searchOne(ctx context.Context, c Criterion, req Request, seed int) (outcome, error) {
	switch c {
	case LeastFlightsEarliest:
		return newWalker(ctx, p, req).run(seed)
	case Cheapest:
		return newRunner(ctx, p, req, fareMetric).run(seed)
	default:
		return newRunner(ctx, p, req, hopsFareMetric).run(seed)
	}
}

// observe logs and records metrics for a finished query.
func (p *Planner) observe(c Criterion, r Route, cands, expanded int, began time.Time) {
	elapsed := time.Since(began)
	p.opts.Metrics.record(c, r, expanded, elapsed)
	p.opts.Logger.Debug("route query",
		slog.String("criterion", c.String()),
		slog.Int("candidates", cands),
		slog.Int("expanded", expanded),
		slog.Int("hops", r.Hops()),
		slog.Int64("fare", r.Fare()),
		slog.Duration("elapsed", elapsed),
	)
}
