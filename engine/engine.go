package engine

import (
	"copsrobber/experiments/metrics"
	"copsrobber/game"
	"copsrobber/meta"
)

const MaxMoves = meta.MAX_MOVES

type Engine interface {
	// Run plays a game till there's a winner or a max number of steps is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
