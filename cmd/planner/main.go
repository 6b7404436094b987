package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if os.Getenv("PLANNER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("PLANNER_DEBUG") == "YES" {
		// per-search and graph build logs are emitted at trace
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Logger = log.Logger.Level(zerolog.TraceLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
