package dataset

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/skyroute/flight"
	"github.com/katalvlaran/skyroute/planner"
)

// Generated leg durations are drawn from [MinDuration, MaxDuration].
const (
	MinDuration = 20
	MaxDuration = 100
	MinFare     = 10
)

// GenerateConfig bounds a random flight set.
type GenerateConfig struct {
	Cities  int   `yaml:"cities" validate:"gte=2"`
	Flights int   `yaml:"flights" validate:"gte=0"`
	MaxTime int64 `yaml:"max_time" validate:"gte=0"`
	MaxFare int64 `yaml:"max_fare" validate:"gte=10"`
}

// DefaultGenerateConfig mirrors a mid-sized regional network.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{Cities: 10, Flights: 100, MaxTime: 1000, MaxFare: 500}
}

// Generate draws cfg.Flights flights numbered 0..n-1. Each flight links two
// distinct cities, departs uniformly in [0, MaxTime], lasts
// [MinDuration, MaxDuration] and costs [MinFare, MaxFare].
func Generate(cfg GenerateConfig, rnd *rand.Rand) ([]flight.Flight, error) {
	if err := flight.Validator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s failed %q", ErrBadConfig, verrs[0].Field(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	out := make([]flight.Flight, cfg.Flights)
	for i := range out {
		start := rnd.Intn(cfg.Cities)
		end := rnd.Intn(cfg.Cities - 1)
		if end >= start {
			end++ // skip start without rejection sampling
		}
		dep := rnd.Int63n(cfg.MaxTime + 1)
		out[i] = flight.Flight{
			FlightNo:      i,
			StartCity:     start,
			DepartureTime: dep,
			EndCity:       end,
			ArrivalTime:   dep + MinDuration + rnd.Int63n(MaxDuration-MinDuration+1),
			Fare:          MinFare + rnd.Int63n(cfg.MaxFare-MinFare+1),
		}
	}

	return out, nil
}

// RandomCase generates a flight set and a query with distinct endpoints and
// a window inside [0, MaxTime+MaxDuration].
func RandomCase(cfg GenerateConfig, rnd *rand.Rand) (Case, error) {
	flights, err := Generate(cfg, rnd)
	if err != nil {
		return Case{}, err
	}
	horizon := cfg.MaxTime + MaxDuration
	t1 := rnd.Int63n(horizon/2 + 1)
	t2 := t1 + rnd.Int63n(horizon-t1+1)
	start := rnd.Intn(cfg.Cities)
	end := rnd.Intn(cfg.Cities - 1)
	if end >= start {
		end++
	}

	return Case{
		Flights: flights,
		Query:   planner.Request{Start: start, End: end, T1: t1, T2: t2},
	}, nil
}
