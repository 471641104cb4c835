package game

// ActionType represents an input a session may receive from its caller.
type ActionType int

const (
	SelectCopAction ActionType = iota
	SelectTileAction
	FinishTurnAction
	PlayAgainAction
	InitializeAction
	RobberMoveAction // Issued by the session itself when the robber moves
)

func (a ActionType) String() string {
	switch a {
	case SelectCopAction:
		return "select-cop"
	case SelectTileAction:
		return "select-tile"
	case FinishTurnAction:
		return "finish-turn"
	case PlayAgainAction:
		return "play-again"
	case InitializeAction:
		return "initialize"
	case RobberMoveAction:
		return "robber-move"
	}
	return "unknown"
}
