package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/dataset"
	"github.com/katalvlaran/skyroute/oracle"
	"github.com/katalvlaran/skyroute/planner"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		cases int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the planner against exhaustive search on random small networks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.cfg.Generate
			if cmd.Flags().Changed("cases") {
				g.Cases = cases
			}
			if cmd.Flags().Changed("seed") {
				g.Seed = seed
			}
			if err := validateSection(g); err != nil {
				return err
			}

			rnd := rand.New(rand.NewSource(g.Seed))
			failed := 0
			for i := 1; i <= g.Cases; i++ {
				c, err := dataset.RandomCase(g.Network, rnd)
				if err != nil {
					return err
				}
				if err := verifyCase(cmd.Context(), c, a.cfg); err != nil {
					failed++
					a.logger.Error("verification failed", "case", i, "query", c.Query, "error", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d cases passed\n", g.Cases-failed, g.Cases)
			if failed > 0 {
				return fmt.Errorf("%d cases failed verification", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cases, "cases", 0, "number of random cases (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config)")

	return cmd
}

// verifyCase runs every criterion on c and compares against the oracle.
func verifyCase(ctx context.Context, c dataset.Case, cfg Config) error {
	p, err := planner.New(c.Flights, cfg.PlannerOptions()...)
	if err != nil {
		return err
	}
	q := oracle.Query{Start: c.Query.Start, End: c.Query.End, T1: c.Query.T1, T2: c.Query.T2, Layover: cfg.Planner.Layover}
	all := oracle.Routes(c.Flights, q)

	for _, crit := range planner.Criteria() {
		r, err := p.Query(ctx, crit, c.Query)
		if err != nil {
			return err
		}
		if err := oracle.Check(r, q); err != nil {
			return fmt.Errorf("%s: %w", crit, err)
		}

		var (
			want, got oracle.Key
			ok        bool
		)
		switch crit {
		case planner.LeastFlightsEarliest:
			want, ok = oracle.LeastFlightsEarliest(all)
			got = oracle.Key{Hops: r.Hops(), Arrival: r.Arrival()}
			if cfg.Planner.FirstArrivalStop {
				// only the hop count is guaranteed in this mode
				want.Arrival, got.Arrival = 0, 0
			}
		case planner.Cheapest:
			want, ok = oracle.Cheapest(all)
			got = oracle.Key{Fare: r.Fare()}
		default:
			want, ok = oracle.LeastFlightsCheapest(all)
			got = oracle.Key{Hops: r.Hops(), Fare: r.Fare()}
		}
		if !ok {
			if r.Hops() != 0 {
				return fmt.Errorf("%s: route %v where none exists", crit, r.FlightNumbers())
			}
			continue
		}
		if got != want {
			return fmt.Errorf("%s: got %+v, want %+v (route %v)", crit, got, want, r.FlightNumbers())
		}
	}

	return nil
}
