package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/passbi/flightplanner/internal/db"
	"github.com/passbi/flightplanner/internal/graph"
	"github.com/passbi/flightplanner/internal/models"
	"github.com/passbi/flightplanner/internal/routing"
	"github.com/passbi/flightplanner/internal/scenario"
	"github.com/passbi/flightplanner/internal/schedule"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var errNoSource = errors.New("either --schedule or --db is required")

func newApp() *cli.App {
	return &cli.App{
		Name:        "planner",
		Usage:       "Plan flight itineraries over a fixed schedule",
		Description: "Loads a flight schedule once and answers fewest-connection and cheapest itinerary queries",

		Commands: []*cli.Command{
			routeCommand(),
			checkCommand(),
			statsCommand(),
		},
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "schedule",
			Aliases: []string{"s"},
			Usage:   "schedule file (.csv, .yaml or .yml)",
		},
		&cli.BoolFlag{
			Name:  "db",
			Usage: "read the flight table from Postgres (DB_* environment variables)",
		},
	}
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "find an itinerary between two cities",
		Flags: append(sourceFlags(),
			&cli.IntFlag{Name: "from", Required: true, Usage: "origin city id"},
			&cli.IntFlag{Name: "to", Required: true, Usage: "destination city id"},
			&cli.Int64Flag{Name: "t1", Value: 0, Usage: "earliest departure"},
			&cli.Int64Flag{Name: "t2", Required: true, Usage: "latest arrival"},
			&cli.StringFlag{
				Name:  "objective",
				Value: string(models.ObjectiveFewestEarliest),
				Usage: "fewest_earliest, cheapest or fewest_cheapest",
			},
		),
		Action: func(c *cli.Context) error {
			g, err := loadGraph(c)
			if err != nil {
				return err
			}

			q := models.Query{
				From:      c.Int("from"),
				To:        c.Int("to"),
				Window:    models.Window{From: c.Int64("t1"), To: c.Int64("t2")},
				Objective: models.Objective(c.String("objective")),
			}

			route, err := routing.NewRouter(g).Plan(c.Context, q)
			if err != nil {
				return err
			}

			printItinerary(c.App.Writer, q, route)
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "run a scenario suite and validate every itinerary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "suite", Required: true, Usage: "scenario suite YAML file"},
		},
		Action: func(c *cli.Context) error {
			suite, err := scenario.LoadSuite(c.String("suite"))
			if err != nil {
				return err
			}

			report, err := scenario.RunSuite(c.Context, suite)
			if err != nil {
				return err
			}

			for _, res := range report.Results {
				status := "PASS"
				if !res.Passed() {
					status = "FAIL"
				}
				fmt.Fprintf(c.App.Writer, "%s  %s  %v\n", status, res.Scenario.Description, res.Got)
				if res.Err != nil {
					fmt.Fprintf(c.App.Writer, "      %v\n", res.Err)
				}
			}
			fmt.Fprintf(c.App.Writer, "%d/%d scenarios passed\n", len(report.Results)-report.Failed(), len(report.Results))

			if failed := report.Failed(); failed > 0 {
				return cli.Exit(fmt.Sprintf("%d scenarios failed", failed), 1)
			}
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "print schedule statistics",
		Flags: sourceFlags(),
		Action: func(c *cli.Context) error {
			g, err := loadGraph(c)
			if err != nil {
				return err
			}

			s := g.Stats()
			fmt.Fprintf(c.App.Writer, "cities:          %d\n", s.Cities)
			fmt.Fprintf(c.App.Writer, "flights:         %d\n", s.Flights)
			fmt.Fprintf(c.App.Writer, "isolated cities: %d\n", s.IsolatedCities)
			fmt.Fprintf(c.App.Writer, "busiest origin:  %d (%d departures)\n", s.BusiestOrigin, s.MaxDepartures)
			fmt.Fprintf(c.App.Writer, "top origins:     %v\n", s.TopOrigins)
			return nil
		},
	}
}

func loadGraph(c *cli.Context) (*graph.FlightGraph, error) {
	flights, err := loadFlights(c.Context, c.String("schedule"), c.Bool("db"))
	if err != nil {
		return nil, err
	}

	g, err := graph.NewFlightGraph(flights)
	if err != nil {
		return nil, fmt.Errorf("failed to build flight graph: %w", err)
	}

	log.Info().Int("cities", g.CityCount()).Int("flights", g.FlightCount()).Msg("Flight graph ready")
	return g, nil
}

func loadFlights(ctx context.Context, path string, fromDB bool) ([]models.Flight, error) {
	switch {
	case path != "":
		return schedule.LoadFile(path)
	case fromDB:
		pool, err := db.GetDB()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		return schedule.LoadFromDB(ctx, pool)
	default:
		return nil, errNoSource
	}
}

func printItinerary(w io.Writer, q models.Query, route models.Itinerary) {
	fmt.Fprintf(w, "%s from %d to %d within [%d, %d]\n", q.Objective, q.From, q.To, q.Window.From, q.Window.To)

	if route.IsEmpty() {
		fmt.Fprintln(w, "no route")
		return
	}

	for _, f := range route {
		fmt.Fprintf(w, "  flight %-4d %3d -> %-3d %6d - %-6d fare %d\n",
			f.ID, f.Origin, f.Destination, f.Departure, f.Arrival, f.Fare)
	}
	fmt.Fprintf(w, "%d flights, departs %d, arrives %d, total fare %d\n",
		route.Len(), route.DepartureTime(), route.ArrivalTime(), route.TotalFare())
}
