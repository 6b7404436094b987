package graph

import (
	"errors"
	"fmt"

	"github.com/passbi/flightplanner/internal/models"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyGraph    = errors.New("graph requires at least one flight")
	ErrInvalidFlight = errors.New("invalid flight")
	ErrNegativeFare  = errors.New("negative fare")
)

// NewFlightGraph builds the adjacency list from the complete flight list.
// Every flight lands in exactly one outgoing list, the one of its origin city,
// and keeps its relative input order there.
func NewFlightGraph(flights []models.Flight) (*FlightGraph, error) {
	if len(flights) == 0 {
		return nil, ErrEmptyGraph
	}

	// 1. Validate and find the city range
	maxCity := -1
	for _, f := range flights {
		if err := validateFlight(f); err != nil {
			return nil, err
		}
		if f.Origin > maxCity {
			maxCity = f.Origin
		}
		if f.Destination > maxCity {
			maxCity = f.Destination
		}
	}

	// 2. One independent list per city
	departures := make([][]models.Flight, maxCity+1)
	for i := range departures {
		departures[i] = []models.Flight{}
	}

	for _, f := range flights {
		departures[f.Origin] = append(departures[f.Origin], f)
	}

	g := &FlightGraph{
		departures:  departures,
		flightCount: len(flights),
		maxCity:     maxCity,
	}

	log.Trace().
		Int("cities", g.CityCount()).
		Int("flights", g.FlightCount()).
		Msg("Flight graph built")

	return g, nil
}

func validateFlight(f models.Flight) error {
	if f.Origin < 0 || f.Destination < 0 {
		return fmt.Errorf("%w: flight %d references negative city (%d -> %d)", ErrInvalidFlight, f.ID, f.Origin, f.Destination)
	}
	if f.Arrival < f.Departure {
		return fmt.Errorf("%w: flight %d arrives at %d before departing at %d", ErrInvalidFlight, f.ID, f.Arrival, f.Departure)
	}
	if f.Fare < 0 {
		return fmt.Errorf("%w: flight %d has fare %d", ErrNegativeFare, f.ID, f.Fare)
	}
	return nil
}
