package experiments

import (
	"fmt"
	"io"

	"copsrobber/config"
	"copsrobber/engine"
	"copsrobber/experiments/metrics"
	"copsrobber/game"
	"copsrobber/gamemaster"
	"copsrobber/player"
	"copsrobber/searcher"

	"github.com/rs/zerolog/log"
)

// newPlayer builds the cop player for one game. Seeded players get a fresh
// seed per game so runs are reproducible but games differ.
type newPlayer func(cfg config.Config, gameIndex int) player.Player

var matchUps = []newPlayer{
	func(cfg config.Config, i int) player.Player {
		return player.NewRandom(cfg.Experiment.Seed + uint64(i))
	},
	func(config.Config, int) player.Player {
		return player.NewChaser()
	},
	func(cfg config.Config, i int) player.Player {
		return player.NewSampler(cfg.Experiment.Seed+uint64(i), cfg.Experiment.Temperature)
	},
}

// Run plays cfg.Experiment.Games games for every cop player against the
// greedy robber and writes the summaries, game records and move records to w.
func Run(cfg config.Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid experiment config: %w", err)
	}
	rules, err := cfg.GameRules()
	if err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}

	count := 0
	collector := metrics.NewCollector()
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting experiment: %d games per player on a %dx%d board", cfg.Experiment.Games, cfg.Board.GridSize, cfg.Board.GridSize)

	for mi, create := range matchUps {
		for i := 0; i < cfg.Experiment.Games; i++ {
			p := create(cfg, i)
			log.Debug().Msgf("starting matchup %d of %d game %d of %d with %s...", mi+1, len(matchUps), i+1, cfg.Experiment.Games, p.Name())

			outcome, gameMetric, moveMetrics, err := runGame(cfg, rules, p)
			if err != nil {
				return err
			}
			count++
			collector.Add(gameMetric)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed game %d with outcome: %s", count, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	writer := metrics.NewWriter(w)
	if err := writer.WriteSummaries(collector.Summaries()); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("completed experiment with %d games", count)
	return nil
}

// runGame plays a single game of p against the greedy robber.
func runGame(cfg config.Config, rules game.Rules, p player.Player) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	robberMetrics := searcher.NewMetricsCollector()
	session := gamemaster.NewSession(
		gamemaster.WithRules(rules),
		gamemaster.WithRobberSearcher(searcher.NewGreedy(searcher.WithMetrics(robberMetrics))),
	)
	err := session.Initialize(cfg.Board.GridSize, cfg.Board.Cops(), cfg.Board.Robber)
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, fmt.Errorf("failed to initialize game: %w", err)
	}

	e := engine.New(session, p, engine.WithRobberMetrics(robberMetrics))
	outcome, gameMetric, moveMetrics := e.Run()
	return outcome, gameMetric, moveMetrics, nil
}
