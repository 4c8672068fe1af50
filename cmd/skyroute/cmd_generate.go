package main

import (
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/dataset"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		output string
		cases  int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random test cases in the plain-text format",
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
			var out []dataset.Case
			for i := 0; i < g.Cases; i++ {
				c, err := dataset.RandomCase(g.Network, rnd)
				if err != nil {
					return err
				}
				out = append(out, c)
			}

			err := writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return dataset.WriteCases(w, out)
			})
			if err != nil {
				return err
			}
			a.logger.Info("generated cases", "cases", len(out), "seed", g.Seed, "output", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "destination file (- for stdout)")
	cmd.Flags().IntVar(&cases, "cases", 0, "number of cases (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config)")

	return cmd
}
