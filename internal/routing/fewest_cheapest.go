package routing

import (
	"context"

	"github.com/passbi/flightplanner/internal/models"
)

// hopItem is a partial itinerary in the fewest/cheapest search
type hopItem struct {
	searchState
	fare int64
	path []models.Flight
}

// FewestConnectionsCheapest finds the itinerary with the fewest flights from
// `from` to `to` inside [t1, t2], preferring the lowest total fare among
// itineraries with the same number of flights.
//
// Same relaxation as FewestConnectionsEarliest but on (hops, fare) labels and
// driven by a priority queue keyed on hop count. Each queued item carries its
// whole path, which replaces the stored path of its city on relaxation.
func (r *Router) FewestConnectionsCheapest(ctx context.Context, from, to int, t1, t2 int64) (models.Itinerary, error) {
	if err := r.checkCities(from, to); err != nil {
		return nil, err
	}
	if from == to {
		return models.Itinerary{}, nil
	}

	n := r.graph.CityCount()
	hops := make([]int, n)
	fares := make([]int64, n)
	paths := make([][]models.Flight, n) // one independent slot per city
	for i := range hops {
		hops[i] = unreached
	}

	hops[from] = 0
	pq := NewPriorityQueue[hopItem, int](64)
	pq.Enqueue(hopItem{searchState: searchState{city: from, arrival: t1}}, 0)

	explored := 0
	for {
		item, _, ok := pq.Dequeue()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		explored++

		floor := item.departureFloor()
		for _, f := range r.graph.Departures(item.city) {
			if !admissible(f, floor, t1, t2) {
				continue
			}

			next := f.Destination
			candidate := item.hops + 1
			fare := item.fare + f.Fare
			if candidate < hops[next] || (candidate == hops[next] && fare < fares[next]) {
				path := extendPath(item.path, f)
				hops[next] = candidate
				fares[next] = fare
				paths[next] = path
				pq.Enqueue(hopItem{
					searchState: searchState{city: next, arrival: f.Arrival, hops: candidate},
					fare:        fare,
					path:        path,
				}, candidate)
			}
		}
	}

	route := models.Itinerary{}
	if hops[to] != unreached {
		route = models.Itinerary(paths[to])
	}

	logSearch(models.ObjectiveFewestCheapest, from, to, explored, route)
	return route, nil
}
