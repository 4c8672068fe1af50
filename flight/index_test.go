package flight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/flight"
)

func sample() []flight.Flight {
	return []flight.Flight{
		{FlightNo: 0, StartCity: 0, DepartureTime: 0, EndCity: 1, ArrivalTime: 90, Fare: 10},
		{FlightNo: 1, StartCity: 0, DepartureTime: 10, EndCity: 2, ArrivalTime: 40, Fare: 25},
		{FlightNo: 2, StartCity: 1, DepartureTime: 120, EndCity: 2, ArrivalTime: 150, Fare: 5},
		{FlightNo: 3, StartCity: 0, DepartureTime: 5, EndCity: 3, ArrivalTime: 90, Fare: 7},
	}
}

// TestNewIndex_GroupsAndSorts verifies departures are grouped by city and sorted by arrival.
func TestNewIndex_GroupsAndSorts(t *testing.T) {
	idx, err := flight.NewIndex(sample())
	require.NoError(t, err)

	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, 4, idx.Cities())

	deps := idx.Departures(0)
	require.Len(t, deps, 3)
	// sorted by arrival, ties keep input order
	assert.Equal(t, []int{1, 0, 3}, []int{deps[0].FlightNo, deps[1].FlightNo, deps[2].FlightNo})
	assert.Equal(t, []int{1, 0, 3}, idx.DepartureSlots(0))

	assert.Len(t, idx.Departures(1), 1)
	assert.Empty(t, idx.Departures(2))
	assert.Nil(t, idx.Departures(-1))
	assert.Nil(t, idx.Departures(99))
	assert.Nil(t, idx.DepartureSlots(99))
}

// TestNewIndex_SparseFlightNumbers verifies sparse flight numbers map onto dense slots.
func TestNewIndex_SparseFlightNumbers(t *testing.T) {
	in := []flight.Flight{
		{FlightNo: 700, StartCity: 0, DepartureTime: 0, EndCity: 1, ArrivalTime: 10},
		{FlightNo: 42, StartCity: 1, DepartureTime: 30, EndCity: 0, ArrivalTime: 60},
	}
	idx, err := flight.NewIndex(in)
	require.NoError(t, err)

	s, ok := idx.Slot(700)
	require.True(t, ok)
	assert.Equal(t, 0, s)
	s, ok = idx.Slot(42)
	require.True(t, ok)
	assert.Equal(t, in[1], idx.At(s))

	_, ok = idx.Slot(1)
	assert.False(t, ok)
}

// TestNewIndex_CopiesInput verifies later changes to the input do not leak into the Index.
func TestNewIndex_CopiesInput(t *testing.T) {
	in := sample()
	idx, err := flight.NewIndex(in)
	require.NoError(t, err)

	in[0].Fare = 999
	assert.Equal(t, int64(10), idx.At(0).Fare)

	out := idx.Flights()
	out[1].Fare = 999
	assert.Equal(t, int64(25), idx.At(1).Fare)
}

// TestNewIndex_Errors verifies invalid and duplicate flights are rejected.
func TestNewIndex_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   []flight.Flight
		want error
	}{
		{"negative fare", []flight.Flight{{FlightNo: 0, EndCity: 1, ArrivalTime: 1, Fare: -1}}, flight.ErrInvalidFlight},
		{"negative city", []flight.Flight{{FlightNo: 0, StartCity: -2, EndCity: 1, ArrivalTime: 1}}, flight.ErrInvalidFlight},
		{"negative number", []flight.Flight{{FlightNo: -1, EndCity: 1, ArrivalTime: 1}}, flight.ErrInvalidFlight},
		{"arrival before departure", []flight.Flight{{FlightNo: 0, DepartureTime: 10, EndCity: 1, ArrivalTime: 10}}, flight.ErrInvalidFlight},
		{"duplicate", []flight.Flight{
			{FlightNo: 3, EndCity: 1, ArrivalTime: 5},
			{FlightNo: 3, StartCity: 1, ArrivalTime: 5},
		}, flight.ErrDuplicateFlight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := flight.NewIndex(tc.in)
			assert.Nil(t, idx)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewIndex_Empty verifies an empty flight set builds an empty Index.
func TestNewIndex_Empty(t *testing.T) {
	idx, err := flight.NewIndex(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 0, idx.Cities())
	assert.Nil(t, idx.Departures(0))
}

// TestFlight_ConnectsTo verifies the inclusive layover and city match.
func TestFlight_ConnectsTo(t *testing.T) {
	f := flight.Flight{FlightNo: 0, StartCity: 0, DepartureTime: 0, EndCity: 1, ArrivalTime: 30}
	g := flight.Flight{FlightNo: 1, StartCity: 1, DepartureTime: 50, EndCity: 2, ArrivalTime: 80}

	assert.True(t, f.ConnectsTo(g, 20))
	assert.False(t, f.ConnectsTo(g, 21))
	g.StartCity = 2
	assert.False(t, f.ConnectsTo(g, 0))
}

// TestFlight_String verifies the compact flight rendering.
func TestFlight_String(t *testing.T) {
	f := flight.Flight{FlightNo: 7, StartCity: 1, DepartureTime: 5, EndCity: 2, ArrivalTime: 9, Fare: 3}
	assert.Equal(t, "#7 1@5→2@9 $3", f.String())
}
