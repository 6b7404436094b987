package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/passbi/flightplanner/internal/models"
	"github.com/rs/zerolog/log"
)

const flightsQuery = `
	SELECT id, origin_city, departure_time, destination_city, arrival_time, fare
	FROM flight
	ORDER BY id
`

// Querier is the part of *pgxpool.Pool the loader needs
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadFromDB reads the whole flight table. The planner only ever reads it.
func LoadFromDB(ctx context.Context, db Querier) ([]models.Flight, error) {
	startTime := time.Now()

	rows, err := db.Query(ctx, flightsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load flights: %w", err)
	}

	flights, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Flight])
	if err != nil {
		return nil, fmt.Errorf("failed to scan flights: %w", err)
	}

	log.Info().
		Int("flights", len(flights)).
		Dur("duration", time.Since(startTime)).
		Msg("Loaded schedule from database")

	return flights, nil
}
