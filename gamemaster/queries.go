package gamemaster

import (
	"fmt"

	"copsrobber/game"
)

func (s *Session) CurrentState() (game.TurnState, error) {
	if err := s.checkInitialized(); err != nil {
		return 0, err
	}
	return s.state, nil
}

func (s *Session) CurrentOutcome() (game.Outcome, error) {
	if err := s.checkInitialized(); err != nil {
		return 0, err
	}
	return s.outcome, nil
}

func (s *Session) RoundCount() (int, error) {
	if err := s.checkInitialized(); err != nil {
		return 0, err
	}
	return s.round, nil
}

// SelectableTiles returns the legal destinations of the selected cop in
// ascending order. It is empty whenever no cop is waiting to move.
func (s *Session) SelectableTiles() ([]int, error) {
	if err := s.checkInitialized(); err != nil {
		return nil, err
	}
	if s.reach == nil || s.state != game.CopSelected {
		return []int{}, nil
	}
	return s.reach.Selectable(), nil
}

// PathTo returns the tiles the selected cop would cross to reach t, or nil
// if t is not a legal destination.
func (s *Session) PathTo(t int) ([]int, error) {
	if err := s.checkInitialized(); err != nil {
		return nil, err
	}
	if s.reach == nil || s.state != game.CopSelected || !s.reach.IsSelectable(t) {
		return nil, nil
	}
	return s.reach.Path(t), nil
}

func (s *Session) CopTile(c int) (int, error) {
	if err := s.checkInitialized(); err != nil {
		return game.NoTile, err
	}
	if c < 0 || c >= game.NumCops {
		return game.NoTile, fmt.Errorf("%w: %d", game.ErrInvalidCop, c)
	}
	return s.cops[c].Tile, nil
}

// CopTiles returns the tiles of both cops, indexed by cop.
func (s *Session) CopTiles() ([]int, error) {
	if err := s.checkInitialized(); err != nil {
		return nil, err
	}
	return s.copTiles(), nil
}

func (s *Session) RobberTile() (int, error) {
	if err := s.checkInitialized(); err != nil {
		return game.NoTile, err
	}
	return s.robber.Tile, nil
}

// SelectedCop returns the cop waiting to move, or NoCop.
func (s *Session) SelectedCop() (int, error) {
	if err := s.checkInitialized(); err != nil {
		return NoCop, err
	}
	return s.selectedCop, nil
}

func (s *Session) Board() (*game.Board, error) {
	if err := s.checkInitialized(); err != nil {
		return nil, err
	}
	return s.board, nil
}

func (s *Session) Rules() game.Rules {
	return s.rules
}

// Destinations returns where cop c could move right now, in ascending order,
// without selecting it. Outside the cops' half of the round it is empty.
func (s *Session) Destinations(c int) ([]int, error) {
	if err := s.checkInitialized(); err != nil {
		return nil, err
	}
	if c < 0 || c >= game.NumCops {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidCop, c)
	}
	if s.state != game.Init && s.state != game.CopSelected {
		return []int{}, nil
	}
	return s.copReach(c).Selectable(), nil
}
