package main

import (
	"flag"
	"os"
	"time"

	"copsrobber/config"
	"copsrobber/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	flag.IntVar(&cfg.Board.GridSize, "grid", cfg.Board.GridSize, "Tiles per row of the square board")
	flag.IntVar(&cfg.Board.CopA, "cop-a", cfg.Board.CopA, "Starting tile of the first cop")
	flag.IntVar(&cfg.Board.CopB, "cop-b", cfg.Board.CopB, "Starting tile of the second cop")
	flag.IntVar(&cfg.Board.Robber, "robber", cfg.Board.Robber, "Starting tile of the robber")
	flag.IntVar(&cfg.Rules.HopLimit, "hops", cfg.Rules.HopLimit, "Maximum tiles a piece may travel per move")
	flag.IntVar(&cfg.Rules.MaxRounds, "rounds", cfg.Rules.MaxRounds, "Rounds the robber must survive")
	flag.IntVar(&cfg.Experiment.Games, "games", cfg.Experiment.Games, "Games per cop player")
	flag.Uint64Var(&cfg.Experiment.Seed, "seed", cfg.Experiment.Seed, "Seed of the randomized cop players")
	flag.Float64Var(&cfg.Experiment.Temperature, "temperature", cfg.Experiment.Temperature, "Sampling temperature of the sampler player")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	if err := experiments.Run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
