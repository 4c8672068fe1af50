package flight

import (
	"errors"
	"fmt"
)

// Sentinel errors for flight validation and indexing.
var (
	// ErrInvalidFlight indicates a Flight with negative ids, a negative fare,
	// or an arrival that is not after its departure.
	ErrInvalidFlight = errors.New("flight: invalid flight record")

	// ErrDuplicateFlight indicates two flights share the same FlightNo.
	ErrDuplicateFlight = errors.New("flight: duplicate flight number")
)

// Flight is one scheduled leg of the network.
type Flight struct {
	// FlightNo uniquely identifies the flight within its set.
	FlightNo int `json:"flight_no" validate:"gte=0"`

	// StartCity is the origin city id.
	StartCity int `json:"start_city" validate:"gte=0"`

	// DepartureTime is the scheduled departure.
	DepartureTime int64 `json:"departure_time"`

	// EndCity is the destination city id.
	EndCity int `json:"end_city" validate:"gte=0"`

	// ArrivalTime is the scheduled arrival; always after DepartureTime.
	ArrivalTime int64 `json:"arrival_time" validate:"gtfield=DepartureTime"`

	// Fare is the ticket price of this leg.
	Fare int64 `json:"fare" validate:"gte=0"`
}

// String renders the flight as "#no s@dep→e@arr $fare".
func (f Flight) String() string {
	return fmt.Sprintf("#%d %d@%d→%d@%d $%d",
		f.FlightNo, f.StartCity, f.DepartureTime, f.EndCity, f.ArrivalTime, f.Fare)
}

// ConnectsTo reports whether g can be boarded after f with at least layover
// time units on the ground at f.EndCity.
func (f Flight) ConnectsTo(g Flight, layover int64) bool {
	return g.StartCity == f.EndCity && g.DepartureTime >= f.ArrivalTime+layover
}
