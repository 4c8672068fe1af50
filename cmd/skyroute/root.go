package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state resolved by the root command before any subcommand runs.
type app struct {
	configPath string
	logLevel   string
	cfg        Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "skyroute",
		Short:         "Constrained flight route planning",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(a),
		newRunCmd(a),
		newCompareCmd(a),
		newVerifyCmd(a),
		newServeCmd(a),
	)

	return root
}
