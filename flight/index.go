package flight

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance used for Flight records.
// It is safe for concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate checks a single record against its field rules.
func Validate(f Flight) error {
	if err := Validator().Struct(f); err != nil {
		return fmt.Errorf("%w: flight %d: %v", ErrInvalidFlight, f.FlightNo, err)
	}

	return nil
}

// Index groups flights by origin city.
//
// All fields are read-only after NewIndex returns, so an Index may be shared
// freely between goroutines.
type Index struct {
	flights []Flight    // slot → flight, in input order
	slotOf  map[int]int // FlightNo → slot
	byCity  [][]Flight  // city → departures sorted by ArrivalTime
	slots   [][]int     // city → slots aligned with byCity
	cities  int         // max city id + 1
}

// NewIndex validates flights and builds the adjacency index.
// The input slice is copied; later changes to it do not affect the Index.
func NewIndex(flights []Flight) (*Index, error) {
	idx := &Index{
		flights: make([]Flight, len(flights)),
		slotOf:  make(map[int]int, len(flights)),
	}
	copy(idx.flights, flights)

	// 1) Validate every record and assign dense slots.
	for i := range idx.flights {
		f := idx.flights[i]
		if err := Validate(f); err != nil {
			return nil, err
		}
		if prev, ok := idx.slotOf[f.FlightNo]; ok {
			return nil, fmt.Errorf("%w: %d at positions %d and %d", ErrDuplicateFlight, f.FlightNo, prev, i)
		}
		idx.slotOf[f.FlightNo] = i
		idx.cities = max(idx.cities, f.StartCity+1, f.EndCity+1)
	}

	// 2) Group slots by origin city.
	idx.slots = make([][]int, idx.cities)
	for i := range idx.flights {
		c := idx.flights[i].StartCity
		idx.slots[c] = append(idx.slots[c], i)
	}

	// 3) Sort each city by arrival and materialise the aligned flight lists.
	idx.byCity = make([][]Flight, idx.cities)
	for c, list := range idx.slots {
		sort.SliceStable(list, func(a, b int) bool {
			return idx.flights[list[a]].ArrivalTime < idx.flights[list[b]].ArrivalTime
		})
		deps := make([]Flight, len(list))
		for k, s := range list {
			deps[k] = idx.flights[s]
		}
		idx.byCity[c] = deps
	}

	return idx, nil
}

// Len returns the number of indexed flights.
func (idx *Index) Len() int { return len(idx.flights) }

// Cities returns one more than the largest city id seen.
func (idx *Index) Cities() int { return idx.cities }

// At returns the flight stored in slot s.
func (idx *Index) At(s int) Flight { return idx.flights[s] }

// Slot returns the dense slot assigned to flightNo.
func (idx *Index) Slot(flightNo int) (int, bool) {
	s, ok := idx.slotOf[flightNo]

	return s, ok
}

// Departures returns the flights leaving city, sorted by ArrivalTime.
// The returned slice must not be modified. Unknown cities yield nil.
func (idx *Index) Departures(city int) []Flight {
	if city < 0 || city >= idx.cities {
		return nil
	}

	return idx.byCity[city]
}

// DepartureSlots returns the slots of Departures(city), element for element.
// The returned slice must not be modified.
func (idx *Index) DepartureSlots(city int) []int {
	if city < 0 || city >= idx.cities {
		return nil
	}

	return idx.slots[city]
}

// Flights returns a copy of every indexed flight in input order.
func (idx *Index) Flights() []Flight {
	out := make([]Flight, len(idx.flights))
	copy(out, idx.flights)

	return out
}
