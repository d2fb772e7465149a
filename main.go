package main

import (
	"context"
	"os"
	"time"

	"judgment/experiments"
	"judgment/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(meta.LOG_LEVEL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()
	seed := uint64(time.Now().UnixNano())

	if _, err := experiments.RunThroughputExperiment(ctx, seed); err != nil {
		log.Fatal().Err(err).Msg("throughput experiment failed")
	}
	if _, err := experiments.RunStrengthExperiment(ctx, seed); err != nil {
		log.Fatal().Err(err).Msg("strength experiment failed")
	}
}
