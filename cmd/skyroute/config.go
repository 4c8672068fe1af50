package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skyroute/dataset"
	"github.com/katalvlaran/skyroute/flight"
	"github.com/katalvlaran/skyroute/planner"
)

// errInvalidConfig wraps every field-rule violation in a Config section.
var errInvalidConfig = errors.New("invalid config")

// Config is the YAML configuration shared by all subcommands.
// Flags override file values.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Planner  PlannerConfig  `yaml:"planner"`
	Generate GenerateConfig `yaml:"generate"`
	Serve    ServeConfig    `yaml:"serve"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// PlannerConfig maps onto planner.Options.
type PlannerConfig struct {
	Layover          int64 `yaml:"layover" validate:"gte=0"`
	Workers          int   `yaml:"workers" validate:"gte=0"` // 0 means 1
	FirstArrivalStop bool  `yaml:"first_arrival_stop"`
}

// GenerateConfig drives the generate and verify subcommands.
type GenerateConfig struct {
	Network dataset.GenerateConfig `yaml:"network"`
	Cases   int                    `yaml:"cases" validate:"gte=0"`
	Seed    int64                  `yaml:"seed"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr    string `yaml:"addr"`
	Flights string `yaml:"flights"` // test-case file; the first case's flights are served
	Metrics bool   `yaml:"metrics"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Planner: PlannerConfig{Layover: planner.DefaultLayover, Workers: 1},
		Generate: GenerateConfig{
			Network: dataset.DefaultGenerateConfig(),
			Cases:   10,
			Seed:    1,
		},
		Serve: ServeConfig{Addr: ":8080", Metrics: true},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validateSection(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// validateSection checks v against its validate tags. Flag overrides are
// applied to a section copy and checked again before use.
func validateSection(v any) error {
	err := flight.Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s=%v failed %q", errInvalidConfig, fe.Namespace(), fe.Value(), fe.Tag())
	}

	return fmt.Errorf("%w: %v", errInvalidConfig, err)
}

// PlannerOptions converts the planner section into functional options.
func (c Config) PlannerOptions() []planner.Option {
	opts := []planner.Option{
		planner.WithLayover(c.Planner.Layover),
		planner.WithWorkers(max(c.Planner.Workers, 1)),
	}
	if c.Planner.FirstArrivalStop {
		opts = append(opts, planner.WithFirstArrivalStop())
	}

	return opts
}

// NewLogger builds the slog logger described by c.Log, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Log.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Log.Format)
	}
}
