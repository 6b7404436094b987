// Package scenario runs suites of itinerary queries with known answers
// against a flight graph and checks every returned itinerary.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/passbi/flightplanner/internal/graph"
	"github.com/passbi/flightplanner/internal/models"
	"github.com/passbi/flightplanner/internal/routing"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var ErrUnexpectedRoute = errors.New("unexpected route")

// Scenario is one query together with the flight ids it should produce.
// An empty Expected list means no itinerary should be found.
type Scenario struct {
	Description string           `yaml:"description"`
	From        int              `yaml:"from"`
	To          int              `yaml:"to"`
	T1          int64            `yaml:"t1"`
	T2          int64            `yaml:"t2"`
	Objective   models.Objective `yaml:"objective"`
	Expected    []int64          `yaml:"expected"`
}

func (s Scenario) Query() models.Query {
	objective := s.Objective
	if objective == "" {
		objective = models.ObjectiveFewestEarliest
	}
	return models.Query{
		From:      s.From,
		To:        s.To,
		Window:    models.Window{From: s.T1, To: s.T2},
		Objective: objective,
	}
}

// Suite is a flight network plus the scenarios to run on it
type Suite struct {
	Name      string          `yaml:"name"`
	Flights   []models.Flight `yaml:"flights"`
	Scenarios []Scenario      `yaml:"scenarios"`
}

// LoadSuite reads a suite from a YAML file
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse suite %s: %w", path, err)
	}
	return &suite, nil
}

// Result is the outcome of one scenario
type Result struct {
	Scenario Scenario
	Got      []int64
	Err      error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects the results of a suite run in scenario order
type Report struct {
	Suite   string
	Results []Result
}

// Failed returns the number of failed scenarios
func (r Report) Failed() int {
	failed := 0
	for _, res := range r.Results {
		if !res.Passed() {
			failed++
		}
	}
	return failed
}

// RunSuite builds the suite's graph and runs all of its scenarios
func RunSuite(ctx context.Context, suite *Suite) (Report, error) {
	g, err := graph.NewFlightGraph(suite.Flights)
	if err != nil {
		return Report{}, fmt.Errorf("failed to build graph for suite %q: %w", suite.Name, err)
	}

	report := Run(ctx, routing.NewRouter(g), suite.Scenarios)
	report.Suite = suite.Name
	return report, nil
}

// Run executes each scenario, compares the flight ids with the expectation
// and validates continuity, buffer and window of every returned itinerary
func Run(ctx context.Context, router *routing.Router, scenarios []Scenario) Report {
	report := Report{Results: make([]Result, 0, len(scenarios))}

	for _, sc := range scenarios {
		res := check(ctx, router, sc)

		event := log.Info()
		if !res.Passed() {
			event = log.Warn().Err(res.Err)
		}
		event.
			Str("scenario", sc.Description).
			Str("objective", string(sc.Query().Objective)).
			Int("from", sc.From).
			Int("to", sc.To).
			Interface("flights", res.Got).
			Bool("passed", res.Passed()).
			Msg("Scenario checked")

		report.Results = append(report.Results, res)
	}

	return report
}

func check(ctx context.Context, router *routing.Router, sc Scenario) Result {
	q := sc.Query()

	route, err := router.Plan(ctx, q)
	if err != nil {
		return Result{Scenario: sc, Err: err}
	}

	res := Result{Scenario: sc, Got: route.FlightIDs()}

	if err := route.Validate(q.Window); err != nil {
		res.Err = err
		return res
	}

	expected := sc.Expected
	if expected == nil {
		expected = []int64{}
	}
	if !slices.Equal(expected, res.Got) {
		res.Err = fmt.Errorf("%w: expected flights %v, got %v", ErrUnexpectedRoute, expected, res.Got)
	}

	return res
}
