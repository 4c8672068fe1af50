package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/planner"
	"github.com/katalvlaran/skyroute/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr, flights string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := a.cfg.Serve
			if cmd.Flags().Changed("addr") {
				sc.Addr = addr
			}
			if cmd.Flags().Changed("flights") {
				sc.Flights = flights
			}
			if sc.Flights == "" {
				return errors.New("serve: no flight file given (--flights or serve.flights)")
			}

			handler, err := buildHandler(a, sc)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              sc.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				a.logger.Info("listening", "addr", sc.Addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&flights, "flights", "", "test-case file whose first case supplies the flights")

	return cmd
}

// buildHandler loads the flight set and wires planner, metrics, and router.
func buildHandler(a *app, sc ServeConfig) (*server.Handler, error) {
	cases, err := readCasesFile(os.Stdin, sc.Flights)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("serve: %s holds no cases", sc.Flights)
	}

	opts := append(a.cfg.PlannerOptions(), planner.WithLogger(a.logger))
	var sopts []server.Option
	if sc.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, planner.WithMetrics(planner.NewMetrics(reg)))
		sopts = append(sopts, server.WithGatherer(reg))
	}
	sopts = append(sopts, server.WithLogger(a.logger))

	p, err := planner.New(cases[0].Flights, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Info("flight set loaded", "flights", p.Index().Len(), "cities", p.Index().Cities())

	return server.New(p, sopts...), nil
}
