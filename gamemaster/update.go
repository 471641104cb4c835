package gamemaster

import "copsrobber/game"

// maxPendingUpdates bounds the feed when nobody reads it; the oldest entries go first.
const maxPendingUpdates = 1024

// Update describes one accepted input and what it did to the session. The
// presentation layer reads them to animate moves and refresh its labels.
type Update struct {
	Action  game.ActionType
	Move    *game.Move // Set when a piece moved
	State   game.TurnState
	Round   int
	Outcome game.Outcome
}

// NextUpdate pops the oldest pending update. It never blocks and returns
// false once every update has been consumed.
func (s *Session) NextUpdate() (Update, bool) {
	if len(s.updates) == 0 {
		return Update{}, false
	}
	u := s.updates[0]
	s.updates = s.updates[1:]
	return u, true
}

// PendingUpdates returns how many updates have not been consumed yet.
func (s *Session) PendingUpdates() int {
	return len(s.updates)
}

func (s *Session) record(action game.ActionType, move *game.Move) {
	if len(s.updates) >= maxPendingUpdates {
		s.updates = s.updates[1:]
	}
	s.updates = append(s.updates, Update{
		Action:  action,
		Move:    move,
		State:   s.state,
		Round:   s.round,
		Outcome: s.outcome,
	})
}
