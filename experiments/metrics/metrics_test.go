package metrics

import (
	"bytes"
	"copsrobber/game"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollectorSummaries(t *testing.T) {
	c := NewCollector()
	c.Add(GameMetric{Player: "chaser", Outcome: game.CopsWin, Rounds: 2, TotalMoves: 7})
	c.Add(GameMetric{Player: "random", Outcome: game.RobberWins, Rounds: 10, TotalMoves: 30})
	c.Add(GameMetric{Player: "chaser", Outcome: game.RobberWins, Rounds: 10, TotalMoves: 30})
	c.Add(GameMetric{Player: "chaser", Outcome: game.InProgress, Rounds: 3, TotalMoves: 8})

	summaries := c.Summaries()

	require.Len(t, summaries, 2)
	require.Equal(t, Summary{
		Player:     "chaser",
		Games:      3,
		CopsWins:   1,
		RobberWins: 1,
		Unfinished: 1,
		MeanRounds: 5,
		MeanMoves:  15,
	}, summaries[0])
	require.Equal(t, "random", summaries[1].Player)
	require.Equal(t, 1, summaries[1].RobberWins)
}

func TestCollectorEmpty(t *testing.T) {
	require.Empty(t, NewCollector().Summaries())
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, w.WriteSummaries([]Summary{{Player: "chaser", Games: 2, CopsWins: 2, MeanRounds: 1.5, MeanMoves: 4}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, GameMetric: GameMetric{
		Player:     "chaser",
		Outcome:    game.CopsWin,
		Rounds:     1,
		StartTime:  start,
		EndTime:    start.Add(time.Millisecond),
		Duration:   time.Millisecond,
		TotalMoves: 4,
	}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{
		Step:       2,
		Round:      0,
		Piece:      game.Robber,
		From:       12,
		To:         10,
		Hops:       2,
		Candidates: 8,
		Safety:     3,
	}}}))

	sections := strings.Split(buf.String(), "\n\n")
	require.Len(t, sections, 4)
	require.Equal(t, "player,games,cops_wins,robber_wins,unfinished,mean_rounds,mean_moves\nchaser,2,2,0,0,1.50,4.00", sections[0])
	require.Equal(t, "id,player,outcome,rounds,moves,start_time,end_time,duration\n1,chaser,cops-win,1,4,2024-05-01T12:00:00Z,2024-05-01T12:00:00Z,1ms", sections[1])
	require.Equal(t, "game,step,round,piece,from,to,hops,candidates,safety,duration\n1,2,0,robber,12,10,2,8,3,0s", sections[2])
	require.Equal(t, "", sections[3])
}
