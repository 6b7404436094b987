package models

import (
	"errors"
	"fmt"
)

// MinConnectionBuffer is the minimum ground time between the arrival of one
// flight and the departure of the next flight in the same itinerary.
const MinConnectionBuffer int64 = 20

var (
	ErrDiscontinuous   = errors.New("itinerary is not continuous")
	ErrBufferViolation = errors.New("connection buffer violated")
	ErrOutsideWindow   = errors.New("itinerary outside time window")
)

// Objective selects what a route search optimizes for
type Objective string

const (
	ObjectiveFewestEarliest Objective = "fewest_earliest"
	ObjectiveCheapest       Objective = "cheapest"
	ObjectiveFewestCheapest Objective = "fewest_cheapest"
)

// Flight is a scheduled directed connection between two cities.
// Times share a single clock; fares are non-negative.
type Flight struct {
	ID          int64 `csv:"id" yaml:"id" json:"id" db:"id"`
	Origin      int   `csv:"origin" yaml:"origin" json:"origin" db:"origin_city"`
	Departure   int64 `csv:"departure" yaml:"departure" json:"departure" db:"departure_time"`
	Destination int   `csv:"destination" yaml:"destination" json:"destination" db:"destination_city"`
	Arrival     int64 `csv:"arrival" yaml:"arrival" json:"arrival" db:"arrival_time"`
	Fare        int64 `csv:"fare" yaml:"fare" json:"fare" db:"fare"`
}

func (f Flight) String() string {
	return fmt.Sprintf("flight %d: %d -> %d, %d-%d, fare %d",
		f.ID, f.Origin, f.Destination, f.Departure, f.Arrival, f.Fare)
}

// Window is the closed interval [From, To] bounding the first departure and
// the last arrival of an itinerary
type Window struct {
	From int64 `yaml:"t1" json:"t1"`
	To   int64 `yaml:"t2" json:"t2"`
}

// Contains reports whether t lies inside the window
func (w Window) Contains(t int64) bool {
	return t >= w.From && t <= w.To
}

// Query describes a single itinerary request
type Query struct {
	From      int       `json:"from"`
	To        int       `json:"to"`
	Window    Window    `json:"window"`
	Objective Objective `json:"objective"`
}

// Itinerary is an ordered chain of flights in departure order.
// An empty itinerary means no feasible route was found.
type Itinerary []Flight

func (it Itinerary) Len() int { return len(it) }

func (it Itinerary) IsEmpty() bool { return len(it) == 0 }

// FlightIDs returns the flight ids in travel order
func (it Itinerary) FlightIDs() []int64 {
	ids := make([]int64, len(it))
	for i, f := range it {
		ids[i] = f.ID
	}
	return ids
}

// TotalFare sums the fares of all flights
func (it Itinerary) TotalFare() int64 {
	var total int64
	for _, f := range it {
		total += f.Fare
	}
	return total
}

// DepartureTime returns the departure of the first flight (0 when empty)
func (it Itinerary) DepartureTime() int64 {
	if len(it) == 0 {
		return 0
	}
	return it[0].Departure
}

// ArrivalTime returns the arrival of the last flight (0 when empty)
func (it Itinerary) ArrivalTime() int64 {
	if len(it) == 0 {
		return 0
	}
	return it[len(it)-1].Arrival
}

// Validate checks continuity, connection buffer and window constraints.
// An empty itinerary is always valid.
func (it Itinerary) Validate(w Window) error {
	if len(it) == 0 {
		return nil
	}

	if it[0].Departure < w.From {
		return fmt.Errorf("%w: flight %d departs at %d before %d", ErrOutsideWindow, it[0].ID, it[0].Departure, w.From)
	}
	last := it[len(it)-1]
	if last.Arrival > w.To {
		return fmt.Errorf("%w: flight %d arrives at %d after %d", ErrOutsideWindow, last.ID, last.Arrival, w.To)
	}

	for i := 0; i+1 < len(it); i++ {
		cur, next := it[i], it[i+1]
		if cur.Destination != next.Origin {
			return fmt.Errorf("%w: flight %d ends at city %d but flight %d starts at city %d",
				ErrDiscontinuous, cur.ID, cur.Destination, next.ID, next.Origin)
		}
		if gap := next.Departure - cur.Arrival; gap < MinConnectionBuffer {
			return fmt.Errorf("%w: %d between flight %d and flight %d", ErrBufferViolation, gap, cur.ID, next.ID)
		}
	}

	return nil
}
