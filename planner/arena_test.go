package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/flight"
)

// TestArena_RouteReversesChain verifies the predecessor chain rebuilds in departure order.
func TestArena_RouteReversesChain(t *testing.T) {
	idx, err := flight.NewIndex([]flight.Flight{
		{FlightNo: 10, StartCity: 0, DepartureTime: 0, EndCity: 1, ArrivalTime: 10, Fare: 1},
		{FlightNo: 11, StartCity: 1, DepartureTime: 40, EndCity: 2, ArrivalTime: 50, Fare: 2},
		{FlightNo: 12, StartCity: 2, DepartureTime: 80, EndCity: 3, ArrivalTime: 90, Fare: 3},
	})
	require.NoError(t, err)

	var a arena
	first := a.add(state{slot: 0, prev: noPrev, hops: 1, fare: 1})
	_ = a.add(state{slot: 2, prev: first, hops: 2, fare: 4}) // dead branch
	second := a.add(state{slot: 1, prev: first, hops: 2, fare: 3})
	third := a.add(state{slot: 2, prev: second, hops: 3, fare: 6})

	r := a.route(idx, third)
	assert.Equal(t, []int{10, 11, 12}, r.FlightNumbers())
	assert.Equal(t, int64(6), r.Fare())
	assert.Equal(t, 2, a.at(third).prev)

	single := a.route(idx, first)
	assert.Equal(t, []int{10}, single.FlightNumbers())
}
