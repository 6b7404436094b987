package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/passbi/flightplanner/internal/models"
)

var ErrUnknownObjective = errors.New("unknown objective")

// Strategy defines the interface for routing strategies
// Each strategy names one objective and runs the matching search
type Strategy interface {
	Name() string
	Objective() models.Objective
	Search(ctx context.Context, r *Router, from, to int, t1, t2 int64) (models.Itinerary, error)
}

// FewestEarliestStrategy minimizes the number of flights, then arrival time
type FewestEarliestStrategy struct{}

func (s *FewestEarliestStrategy) Name() string {
	return string(s.Objective())
}

func (s *FewestEarliestStrategy) Objective() models.Objective {
	return models.ObjectiveFewestEarliest
}

func (s *FewestEarliestStrategy) Search(ctx context.Context, r *Router, from, to int, t1, t2 int64) (models.Itinerary, error) {
	return r.FewestConnectionsEarliest(ctx, from, to, t1, t2)
}

// CheapestStrategy minimizes total fare with no limit on flights
type CheapestStrategy struct{}

func (s *CheapestStrategy) Name() string {
	return string(s.Objective())
}

func (s *CheapestStrategy) Objective() models.Objective {
	return models.ObjectiveCheapest
}

func (s *CheapestStrategy) Search(ctx context.Context, r *Router, from, to int, t1, t2 int64) (models.Itinerary, error) {
	return r.Cheapest(ctx, from, to, t1, t2)
}

// FewestCheapestStrategy minimizes the number of flights, then total fare
type FewestCheapestStrategy struct{}

func (s *FewestCheapestStrategy) Name() string {
	return string(s.Objective())
}

func (s *FewestCheapestStrategy) Objective() models.Objective {
	return models.ObjectiveFewestCheapest
}

func (s *FewestCheapestStrategy) Search(ctx context.Context, r *Router, from, to int, t1, t2 int64) (models.Itinerary, error) {
	return r.FewestConnectionsCheapest(ctx, from, to, t1, t2)
}

// GetStrategy returns a strategy by name
func GetStrategy(name string) (Strategy, error) {
	switch models.Objective(name) {
	case models.ObjectiveFewestEarliest:
		return &FewestEarliestStrategy{}, nil
	case models.ObjectiveCheapest:
		return &CheapestStrategy{}, nil
	case models.ObjectiveFewestCheapest:
		return &FewestCheapestStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjective, name)
	}
}

// GetAllStrategies returns all available strategies
func GetAllStrategies() []Strategy {
	return []Strategy{
		&FewestEarliestStrategy{},
		&CheapestStrategy{},
		&FewestCheapestStrategy{},
	}
}
