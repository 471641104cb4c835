package engine

import (
	"copsrobber/game"
	"copsrobber/gamemaster"
	"copsrobber/player"
	"copsrobber/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedPlayer struct {
	choice player.Choice
	ok     bool
}

func (p *fixedPlayer) Name() string { return "fixed" }

func (p *fixedPlayer) Choose(*gamemaster.Session) (player.Choice, bool, error) {
	return p.choice, p.ok, nil
}

func newSession(t *testing.T, robber int, options ...gamemaster.Option) *gamemaster.Session {
	t.Helper()
	s := gamemaster.NewSession(options...)
	require.NoError(t, s.Initialize(5, [2]int{0, 4}, robber))
	return s
}

func TestNewPanics(t *testing.T) {
	require.Panics(t, func() { New(nil, player.NewChaser()) })
	require.Panics(t, func() { New(gamemaster.NewSession(), nil) })
}

func TestRunCapture(t *testing.T) {
	s := newSession(t, 2)

	outcome, gm, moves := New(s, player.NewChaser()).Run()

	require.Equal(t, game.CopsWin, outcome)
	require.Equal(t, game.CopsWin, gm.Outcome)
	require.Equal(t, "chaser", gm.Player)
	require.Equal(t, 0, gm.Rounds)
	require.Equal(t, 1, gm.TotalMoves)
	require.Len(t, moves, 1)
	require.Equal(t, game.CopA, moves[0].Piece)
	require.Equal(t, 0, moves[0].From)
	require.Equal(t, 2, moves[0].To)
	require.Equal(t, 2, moves[0].Hops)
	require.Equal(t, 1, moves[0].Step)
	require.Equal(t, 0, s.PendingUpdates())
}

func TestRunPlaysToTheEnd(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		s := newSession(t, 12)

		outcome, gm, moves := New(s, player.NewRandom(seed)).Run()

		require.NotEqual(t, game.InProgress, outcome, "seed %d", seed)
		require.LessOrEqual(t, gm.Rounds, 10)
		if outcome == game.RobberWins {
			require.Equal(t, 10, gm.Rounds)
		}
		require.Equal(t, len(moves), gm.TotalMoves)
		require.True(t, moves[0].Piece.IsCop())
		for i, m := range moves {
			require.Equal(t, i+1, m.Step)
			require.GreaterOrEqual(t, m.Hops, 1)
			require.LessOrEqual(t, m.Hops, 2)
		}
		if outcome == game.CopsWin {
			require.True(t, moves[len(moves)-1].Piece.IsCop())
		}

		state, err := s.CurrentState()
		require.NoError(t, err)
		require.Equal(t, game.End, state)
	}
}

func TestRunDeterministic(t *testing.T) {
	_, _, first := New(newSession(t, 12), player.NewChaser()).Run()
	_, _, second := New(newSession(t, 12), player.NewChaser()).Run()

	require.Equal(t, first, second)
}

func TestRobberMetrics(t *testing.T) {
	collector := searcher.NewMetricsCollector()
	s := newSession(t, 12, gamemaster.WithRobberSearcher(searcher.NewGreedy(searcher.WithMetrics(collector))))

	_, _, moves := New(s, player.NewChaser(), WithRobberMetrics(collector), WithMaxSteps(2)).Run()

	require.Len(t, moves, 2)
	require.Equal(t, game.Robber, moves[1].Piece)
	require.Greater(t, moves[1].Candidates, 0)
	require.Greater(t, moves[1].Safety, 0)
	require.Zero(t, moves[0].Candidates, "cop moves carry no search metrics")
}

func TestRunStops(t *testing.T) {
	t.Run("at the step cap", func(t *testing.T) {
		outcome, gm, moves := New(newSession(t, 12), player.NewChaser(), WithMaxSteps(1)).Run()

		require.Equal(t, game.InProgress, outcome)
		require.Equal(t, game.InProgress, gm.Outcome)
		require.Len(t, moves, 1)
	})

	t.Run("when the player has no move", func(t *testing.T) {
		outcome, _, moves := New(newSession(t, 12), &fixedPlayer{}).Run()

		require.Equal(t, game.InProgress, outcome)
		require.Empty(t, moves)
	})

	t.Run("on an illegal choice", func(t *testing.T) {
		s := newSession(t, 12)
		outcome, _, moves := New(s, &fixedPlayer{choice: player.Choice{Cop: 0, Tile: 24}, ok: true}).Run()

		require.Equal(t, game.InProgress, outcome)
		require.Empty(t, moves)
		tile, err := s.CopTile(0)
		require.NoError(t, err)
		require.Equal(t, 0, tile)
	})

	t.Run("on an uninitialized session", func(t *testing.T) {
		outcome, gm, moves := New(gamemaster.NewSession(), player.NewChaser()).Run()

		require.Equal(t, game.InProgress, outcome)
		require.Zero(t, gm.Rounds)
		require.Empty(t, moves)
	})
}
