package routing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/passbi/flightplanner/internal/graph"
	"github.com/passbi/flightplanner/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const unreached = math.MaxInt

var ErrUnknownCity = errors.New("unknown city")

// Router answers itinerary queries against a single flight graph.
// It holds no per-query state, so one Router may serve many queries.
type Router struct {
	graph *graph.FlightGraph
}

// NewRouter creates a new router over g
func NewRouter(g *graph.FlightGraph) *Router {
	return &Router{graph: g}
}

// Plan runs the search selected by q.Objective
func (r *Router) Plan(ctx context.Context, q models.Query) (models.Itinerary, error) {
	strategy, err := GetStrategy(string(q.Objective))
	if err != nil {
		return nil, err
	}
	return strategy.Search(ctx, r, q.From, q.To, q.Window.From, q.Window.To)
}

// checkCities validates both endpoints before any per-city state is indexed
func (r *Router) checkCities(from, to int) error {
	if !r.graph.HasCity(from) {
		return fmt.Errorf("%w: origin %d not in [0, %d]", ErrUnknownCity, from, r.graph.MaxCity())
	}
	if !r.graph.HasCity(to) {
		return fmt.Errorf("%w: destination %d not in [0, %d]", ErrUnknownCity, to, r.graph.MaxCity())
	}
	return nil
}

// searchState is a city reached at a given time after a number of flights
type searchState struct {
	city    int
	arrival int64
	hops    int
}

// departureFloor returns the earliest departure allowed out of s. The origin
// seed may leave at t1 itself; every city reached by a flight needs the
// connection buffer first.
func (s searchState) departureFloor() int64 {
	if s.hops == 0 {
		return s.arrival
	}
	return s.arrival + models.MinConnectionBuffer
}

// admissible reports whether f can be taken from a state with the given
// departure floor while staying inside [t1, t2]
func admissible(f models.Flight, floor, t1, t2 int64) bool {
	return f.Departure >= max(floor, t1) && f.Arrival <= t2
}

// extendPath returns a fresh copy of path with f appended
func extendPath(path []models.Flight, f models.Flight) []models.Flight {
	next := make([]models.Flight, len(path), len(path)+1)
	copy(next, path)
	return append(next, f)
}

// backtrack follows predecessor flights from `to` until `from` and returns
// them in departure order
func backtrack(prev []models.Flight, hops []int, from, to int) models.Itinerary {
	route := make(models.Itinerary, 0, hops[to])
	for city := to; city != from && len(route) < hops[to]; {
		f := prev[city]
		route = append(route, f)
		city = f.Origin
	}
	slices.Reverse(route)
	return route
}

func logSearch(objective models.Objective, from, to int, explored int, route models.Itinerary) {
	log.Trace().
		Str("objective", string(objective)).
		Int("from", from).
		Int("to", to).
		Int("explored", explored).
		Int("flights", route.Len()).
		Int64("fare", route.TotalFare()).
		Msg("Search finished")
}
