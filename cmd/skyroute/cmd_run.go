package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/dataset"
)

func newRunCmd(a *app) *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer all three criteria for every case and write a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases, err := readCasesFile(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			began := time.Now()
			results, err := dataset.Solve(cmd.Context(), cases, a.cfg.PlannerOptions()...)
			if err != nil {
				return err
			}
			a.logger.Info("solved cases", "cases", len(results), "elapsed", time.Since(began))

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return dataset.WriteReport(w, results)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "test-case file (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "report file (- for stdout)")

	return cmd
}

// writeOutput runs write against path, or stdout when path is empty or "-".
// A failed Close on the created file is returned when write succeeded.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f)
}

// readCasesFile parses path, or stdin when path is empty or "-".
func readCasesFile(stdin io.Reader, path string) ([]dataset.Case, error) {
	if path == "" || path == "-" {
		return dataset.ReadCases(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return dataset.ReadCases(f)
}
