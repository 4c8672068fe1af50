package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/dataset"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <output> <model>",
		Short: "Compare a report against a model report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer out.Close()
			model, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer model.Close()

			err = dataset.Compare(out, model)
			var mm *dataset.Mismatch
			if errors.As(err, &mm) {
				a.logger.Warn("report mismatch", "case", mm.Case, "route", mm.Route, "line", mm.Line)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all test cases match")
			return nil
		},
	}
}
