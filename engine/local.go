package engine

import (
	"fmt"
	"time"

	"copsrobber/experiments/metrics"
	"copsrobber/game"
	"copsrobber/gamemaster"
	"copsrobber/player"
	"copsrobber/searcher"

	"github.com/rs/zerolog/log"
)

// Local drives a session in-process, feeding it the choices of a cop player
// the same way a presentation layer forwards clicks.
type Local struct {
	Session *gamemaster.Session
	Player  player.Player

	robberMetrics searcher.MetricsCollector
	maxSteps      int
}

type Option func(e *Local)

// WithRobberMetrics reads the robber's search metrics from the collector
// given to the session's searcher.
func WithRobberMetrics(collector searcher.MetricsCollector) Option {
	return func(e *Local) {
		if collector != nil {
			e.robberMetrics = collector
		}
	}
}

// WithMaxSteps caps the number of inputs forwarded to the session.
func WithMaxSteps(steps int) Option {
	return func(e *Local) {
		if steps > 0 {
			e.maxSteps = steps
		}
	}
}

func New(session *gamemaster.Session, p player.Player, options ...Option) *Local {
	if session == nil {
		panic("engine needs a session")
	}
	if p == nil {
		panic("engine needs a cop player")
	}

	e := &Local{ // Default values
		Session:       session,
		Player:        p,
		robberMetrics: searcher.NewNoMetricsCollector(),
		maxSteps:      MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the session ends, the player gives up or
// the step cap is reached. An unfinished game reports InProgress.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Player:    e.Player.Name(),
		StartTime: time.Now(),
	}
	moveMetrics := e.drain(nil)

	log.Debug().Msgf("%s is playing the cops", e.Player.Name())

	steps := 0
	for steps < e.maxSteps {
		state, err := e.Session.CurrentState()
		if err != nil {
			log.Error().Err(err).Msg("cannot play session")
			break
		}
		if state == game.End {
			break
		}

		ok, err := e.step(state)
		if err != nil {
			log.Error().Err(err).Msgf("stopped game in state %s", state)
			break
		}
		if !ok {
			log.Warn().Msgf("%s has no legal move, stopping", e.Player.Name())
			break
		}
		steps++
		moveMetrics = e.drain(moveMetrics)
	}

	outcome, err := e.Session.CurrentOutcome()
	if err != nil {
		outcome = game.InProgress
	}
	rounds, _ := e.Session.RoundCount()

	if outcome == game.InProgress {
		log.Debug().Msgf("stopped after %d steps without a winner", steps)
	}

	gameMetric.Outcome = outcome
	gameMetric.Rounds = rounds
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return outcome, gameMetric, moveMetrics
}

// step forwards the input the current state expects. It returns false when
// the player has nothing to play.
func (e *Local) step(state game.TurnState) (bool, error) {
	switch state {
	case game.Init, game.CopSelected:
		choice, ok, err := e.Player.Choose(e.Session)
		if err != nil {
			return false, fmt.Errorf("player %s failed to choose: %w", e.Player.Name(), err)
		}
		if !ok {
			return false, nil
		}
		if _, err := e.Session.SelectCop(choice.Cop); err != nil {
			return false, fmt.Errorf("failed to select cop %d: %w", choice.Cop, err)
		}
		moved, err := e.Session.SelectTile(choice.Tile)
		if err != nil {
			return false, fmt.Errorf("failed to select tile %d: %w", choice.Tile, err)
		}
		if !moved {
			return false, fmt.Errorf("player %s chose an illegal move %+v", e.Player.Name(), choice)
		}
		return true, nil

	case game.TileSelected, game.RobberTurn:
		if _, err := e.Session.FinishTurn(); err != nil {
			return false, fmt.Errorf("failed to finish turn: %w", err)
		}
		return true, nil
	}

	return false, fmt.Errorf("unexpected state %s", state)
}

// drain consumes the session's update feed and appends one metric per piece
// move.
func (e *Local) drain(moveMetrics []metrics.MoveMetric) []metrics.MoveMetric {
	for {
		u, ok := e.Session.NextUpdate()
		if !ok {
			return moveMetrics
		}
		if u.Move == nil {
			continue
		}

		m := metrics.MoveMetric{
			Step:  len(moveMetrics) + 1,
			Round: u.Round,
			Piece: u.Move.Piece,
			From:  u.Move.From,
			To:    u.Move.To,
			Hops:  u.Move.Hops(),
		}
		if u.Action == game.RobberMoveAction {
			search := e.robberMetrics.Last()
			m.Candidates = search.Candidates
			m.Safety = search.BestScore
			m.Duration = search.Duration
		}
		moveMetrics = append(moveMetrics, m)
	}
}
