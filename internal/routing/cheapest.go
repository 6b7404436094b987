package routing

import (
	"context"

	"github.com/passbi/flightplanner/internal/models"
)

// fareItem is a partial itinerary in the cheapest search
type fareItem struct {
	searchState
	path []models.Flight
}

// Cheapest finds the itinerary with the lowest total fare from `from` to `to`
// inside [t1, t2], regardless of the number of flights.
//
// Partial itineraries are expanded best-first by accumulated fare. The only
// pruning is the global bound: once a complete itinerary is known, anything
// at least as expensive is dropped. There is no per-city dominance check, so
// a city may be expanded many times along different paths.
func (r *Router) Cheapest(ctx context.Context, from, to int, t1, t2 int64) (models.Itinerary, error) {
	if err := r.checkCities(from, to); err != nil {
		return nil, err
	}
	if from == to {
		return models.Itinerary{}, nil
	}

	window := models.Window{From: t1, To: t2}
	pq := NewPriorityQueue[fareItem, int64](64)
	pq.Enqueue(fareItem{searchState: searchState{city: from, arrival: t1}}, 0)

	var (
		best     models.Itinerary
		bestFare int64
		found    bool
		explored int
	)

	for {
		item, fare, ok := pq.Dequeue()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		explored++

		if found && fare >= bestFare {
			continue
		}

		if item.city == to && window.Contains(item.arrival) {
			if !found || fare < bestFare {
				best = item.path
				bestFare = fare
				found = true
			}
			continue
		}

		floor := item.departureFloor()
		for _, f := range r.graph.Departures(item.city) {
			if !admissible(f, floor, t1, t2) {
				continue
			}
			pq.Enqueue(fareItem{
				searchState: searchState{city: f.Destination, arrival: f.Arrival, hops: item.hops + 1},
				path:        extendPath(item.path, f),
			}, fare+f.Fare)
		}
	}

	route := models.Itinerary{}
	if found {
		route = models.Itinerary(best)
	}

	logSearch(models.ObjectiveCheapest, from, to, explored, route)
	return route, nil
}
