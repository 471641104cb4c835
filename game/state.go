package game

// TurnState governs which inputs a session accepts.
type TurnState int

const (
	Init TurnState = iota
	CopSelected
	TileSelected
	RobberTurn
	End
	Restarting // Transient, re-enters Init once a reset completes
)

func (s TurnState) String() string {
	switch s {
	case Init:
		return "init"
	case CopSelected:
		return "cop-selected"
	case TileSelected:
		return "tile-selected"
	case RobberTurn:
		return "robber-turn"
	case End:
		return "end"
	case Restarting:
		return "restarting"
	}
	return "unknown"
}

// Outcome is the result of a game. It is set once and never changes until reset.
type Outcome int

const (
	InProgress Outcome = iota
	CopsWin            // A cop moved onto the robber's tile
	RobberWins         // The round limit passed without a capture
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in-progress"
	case CopsWin:
		return "cops-win"
	case RobberWins:
		return "robber-wins"
	}
	return "unknown"
}

// Winner returns the name of the winning side, "" while the game is running.
func (o Outcome) Winner() string {
	switch o {
	case CopsWin:
		return "cops"
	case RobberWins:
		return "robber"
	}
	return ""
}
