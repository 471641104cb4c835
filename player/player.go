package player

import (
	"fmt"

	"copsrobber/game"
	"copsrobber/gamemaster"

	"golang.org/x/exp/rand"
)

// Choice is a cop and the tile it should move to.
type Choice struct {
	Cop  int
	Tile int
}

// Player decides the cops' move, the way a human would by clicking a cop and
// then a tile.
type Player interface {
	// Choose returns false when neither cop has a legal destination.
	Choose(s *gamemaster.Session) (Choice, bool, error)
	Name() string
}

// options lists every legal (cop, tile) pair, cop by cop in ascending tile order.
func options(s *gamemaster.Session) ([]Choice, error) {
	var out []Choice
	for c := 0; c < game.NumCops; c++ {
		tiles, err := s.Destinations(c)
		if err != nil {
			return nil, fmt.Errorf("failed to list destinations of cop %d: %w", c, err)
		}
		for _, t := range tiles {
			out = append(out, Choice{Cop: c, Tile: t})
		}
	}
	return out, nil
}

type randomPlayer struct {
	rng *rand.Rand
}

// NewRandom returns a player picking uniformly among all legal moves.
func NewRandom(seed uint64) Player {
	return &randomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPlayer) Name() string {
	return "random"
}

func (p *randomPlayer) Choose(s *gamemaster.Session) (Choice, bool, error) {
	possible, err := options(s)
	if err != nil {
		return Choice{}, false, err
	}
	if len(possible) == 0 {
		return Choice{}, false, nil
	}
	return possible[p.rng.Intn(len(possible))], true, nil
}
