package graph

import (
	"github.com/passbi/flightplanner/internal/models"
	"golang.org/x/exp/slices"
)

// FlightGraph holds the full flight schedule as an adjacency list indexed by
// origin city. It is never mutated after construction, so any number of
// searches may read it concurrently.
type FlightGraph struct {
	departures  [][]models.Flight // origin city -> flights in input order
	flightCount int
	maxCity     int
}

// MaxCity returns the largest city id referenced by any flight
func (g *FlightGraph) MaxCity() int {
	return g.maxCity
}

// CityCount returns the number of addressable cities, maxCity+1
func (g *FlightGraph) CityCount() int {
	return len(g.departures)
}

// FlightCount returns the number of flights in the graph
func (g *FlightGraph) FlightCount() int {
	return g.flightCount
}

// HasCity reports whether city lies in [0, MaxCity]
func (g *FlightGraph) HasCity(city int) bool {
	return city >= 0 && city <= g.maxCity
}

// Departures returns the outgoing flights of a city in input order.
// Cities outside the graph have no departures.
func (g *FlightGraph) Departures(city int) []models.Flight {
	if !g.HasCity(city) {
		return nil
	}
	return g.departures[city]
}

// Stats summarizes the shape of a graph
type Stats struct {
	Cities         int
	Flights        int
	IsolatedCities int // cities with no departures
	BusiestOrigin  int
	MaxDepartures  int
	TopOrigins     []int // up to five origins, most departures first
}

// Stats computes a summary of the graph
func (g *FlightGraph) Stats() Stats {
	s := Stats{
		Cities:        g.CityCount(),
		Flights:       g.FlightCount(),
		BusiestOrigin: -1,
	}

	origins := make([]int, 0, len(g.departures))
	for city, out := range g.departures {
		if len(out) == 0 {
			s.IsolatedCities++
			continue
		}
		origins = append(origins, city)
		if len(out) > s.MaxDepartures {
			s.MaxDepartures = len(out)
			s.BusiestOrigin = city
		}
	}

	slices.SortStableFunc(origins, func(a, b int) int {
		return len(g.departures[b]) - len(g.departures[a])
	})
	if len(origins) > 5 {
		origins = origins[:5]
	}
	s.TopOrigins = origins

	return s
}
