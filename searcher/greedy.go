package searcher

import (
	"copsrobber/game"

	"github.com/rs/zerolog/log"
)

type Option func(g *Greedy)

// Greedy looks one move ahead: it takes the destination that maximises the
// distance to the nearest cop. It never considers how the cops will respond.
type Greedy struct {
	distance DistanceFn
	metrics  MetricsCollector
}

func WithDistanceFn(distance DistanceFn) Option {
	return func(g *Greedy) {
		if distance != nil {
			g.distance = distance
		}
	}
}

func WithMetrics(collector MetricsCollector) Option {
	return func(g *Greedy) {
		if collector != nil {
			g.metrics = collector
		}
	}
}

func NewGreedy(options ...Option) *Greedy {
	g := &Greedy{ // Default values
		distance: game.ShortestDistance,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// FindNextMove scores every selectable tile of reach and returns the move to
// the best one. Candidates are visited in ascending tile order so the result
// is deterministic.
func (g *Greedy) FindNextMove(b *game.Board, reach *game.Reachability, cops []int) (game.Move, bool) {
	g.metrics.Start()

	candidates := reach.Selectable()
	if len(candidates) == 0 {
		log.Debug().Int("tile", reach.Origin()).Msg("robber has no legal destination")
		g.metrics.Complete()
		return game.Move{}, false
	}

	best := candidates[0]
	bestScore := SafetyScore(b, best, cops, g.distance)
	g.metrics.AddCandidate(bestScore)

	for _, c := range candidates[1:] {
		score := SafetyScore(b, c, cops, g.distance)
		g.metrics.AddCandidate(score)
		if better(score, bestScore) {
			best = c
			bestScore = score
		}
	}

	g.metrics.SetBestScore(bestScore)
	g.metrics.Complete()
	log.Debug().Msgf("robber picked tile %d with safety %d out of %d candidates", best, bestScore, len(candidates))

	return game.Move{
		Piece: game.Robber,
		From:  reach.Origin(),
		To:    best,
		Path:  reach.Path(best),
	}, true
}
