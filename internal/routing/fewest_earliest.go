package routing

import (
	"context"

	"github.com/passbi/flightplanner/internal/models"
)

// FewestConnectionsEarliest finds the itinerary with the fewest flights from
// `from` to `to` inside [t1, t2], preferring the earliest arrival among
// itineraries with the same number of flights.
//
// The search is label-correcting relaxation over a FIFO worklist. A city can
// be queued again whenever it gets a strictly better (hops, arrival) label,
// because an earlier arrival opens flights the previous label could not take.
// Each requeue strictly improves a label drawn from a finite set, so the
// worklist drains.
func (r *Router) FewestConnectionsEarliest(ctx context.Context, from, to int, t1, t2 int64) (models.Itinerary, error) {
	if err := r.checkCities(from, to); err != nil {
		return nil, err
	}
	if from == to {
		return models.Itinerary{}, nil
	}

	n := r.graph.CityCount()
	hops := make([]int, n)
	arrival := make([]int64, n)
	prev := make([]models.Flight, n)
	for i := range hops {
		hops[i] = unreached
	}

	hops[from] = 0
	arrival[from] = t1
	queue := []searchState{{city: from, arrival: t1, hops: 0}}

	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[head]
		floor := current.departureFloor()

		for _, f := range r.graph.Departures(current.city) {
			if !admissible(f, floor, t1, t2) {
				continue
			}

			next := f.Destination
			candidate := current.hops + 1
			if candidate < hops[next] || (candidate == hops[next] && f.Arrival < arrival[next]) {
				hops[next] = candidate
				arrival[next] = f.Arrival
				prev[next] = f
				queue = append(queue, searchState{city: next, arrival: f.Arrival, hops: candidate})
			}
		}
	}

	route := models.Itinerary{}
	if hops[to] != unreached {
		route = backtrack(prev, hops, from, to)
	}

	logSearch(models.ObjectiveFewestEarliest, from, to, len(queue), route)
	return route, nil
}
