package player

import (
	"copsrobber/game"
	"copsrobber/gamemaster"
)

type chaser struct{}

// NewChaser returns a player that captures whenever it can and otherwise
// moves whichever cop ends up closest to the robber.
func NewChaser() Player {
	return chaser{}
}

func (chaser) Name() string {
	return "chaser"
}

func (chaser) Choose(s *gamemaster.Session) (Choice, bool, error) {
	possible, err := options(s)
	if err != nil {
		return Choice{}, false, err
	}
	if len(possible) == 0 {
		return Choice{}, false, nil
	}

	b, err := s.Board()
	if err != nil {
		return Choice{}, false, err
	}
	robber, err := s.RobberTile()
	if err != nil {
		return Choice{}, false, err
	}

	best := possible[0]
	bestDistance := game.Unreachable
	for _, c := range possible {
		d := game.ShortestDistance(b, c.Tile, robber)
		if d == 0 {
			return c, true, nil
		}
		if d < bestDistance {
			best = c
			bestDistance = d
		}
	}
	return best, true, nil
}
