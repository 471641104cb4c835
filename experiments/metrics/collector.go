package metrics

import (
	"time"

	"copsrobber/game"
)

// MoveMetric describes one piece move of a simulated game.
type MoveMetric struct {
	Step  int
	Round int
	Piece game.PieceID
	From  int
	To    int
	Hops  int
	// Robber moves only
	Candidates int
	Safety     int
	Duration   time.Duration
}

type GameMetric struct {
	Player     string
	Outcome    game.Outcome
	Rounds     int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Summary aggregates the games one cop player played.
type Summary struct {
	Player     string
	Games      int
	CopsWins   int
	RobberWins int
	Unfinished int
	MeanRounds float64
	MeanMoves  float64
}

// Collector accumulates finished games per cop player, in the order players
// first appear.
type Collector interface {
	Add(g GameMetric)
	Summaries() []Summary
}

type collector struct {
	order []string
	games map[string][]GameMetric
}

func NewCollector() Collector {
	return &collector{games: make(map[string][]GameMetric)}
}

func (c *collector) Add(g GameMetric) {
	if _, ok := c.games[g.Player]; !ok {
		c.order = append(c.order, g.Player)
	}
	c.games[g.Player] = append(c.games[g.Player], g)
}

func (c *collector) Summaries() []Summary {
	out := make([]Summary, 0, len(c.order))
	for _, player := range c.order {
		s := Summary{Player: player}
		rounds, moves := 0, 0
		for _, g := range c.games[player] {
			s.Games++
			switch g.Outcome {
			case game.CopsWin:
				s.CopsWins++
			case game.RobberWins:
				s.RobberWins++
			default:
				s.Unfinished++
			}
			rounds += g.Rounds
			moves += g.TotalMoves
		}
		if s.Games > 0 {
			s.MeanRounds = float64(rounds) / float64(s.Games)
			s.MeanMoves = float64(moves) / float64(s.Games)
		}
		out = append(out, s)
	}
	return out
}
