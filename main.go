package main

import (
	"flag"
	"os"

	"tictactoe/config"
	"tictactoe/report"
	"tictactoe/solver"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().Msg("solving tic-tac-toe with symmetry reduction...")
	table := solver.Solve()
	sum := report.Summarize(table)

	log.Info().Msgf("total canonical states: %d", sum.States)
	log.Info().Msgf("optimal outcome with X starting: %d (0 = draw)", sum.Outcome)
	log.Info().Msgf("initial moves available: %d (%d optimal)", sum.OpeningMoves, sum.OptimalOpenings)

	writer, err := report.NewWriter(cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create output writer")
	}
	size, err := writer.WriteTree(table)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write game tree")
	}
	if err := writer.WriteSummary(sum); err != nil {
		log.Fatal().Err(err).Msg("failed to write summary")
	}

	log.Info().Msgf("saved game_tree.json (%.2f KB) and summary.csv to %s",
		float64(size)/1024, cfg.OutputDir)
}
