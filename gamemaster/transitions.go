package gamemaster

import "copsrobber/game"

// accepted lists the inputs each turn state reacts to. Anything not listed is
// ignored without touching the session. Guards that depend on the board (is
// the tile selectable, is the round limit reached, was the robber captured)
// are applied by the session on top of this table.
var accepted = map[game.TurnState]map[game.ActionType]bool{
	game.Init: {
		game.SelectCopAction: true,
	},
	game.CopSelected: {
		game.SelectCopAction:  true,
		game.SelectTileAction: true,
	},
	game.TileSelected: {
		game.SelectTileAction: true,
		game.FinishTurnAction: true,
	},
	game.RobberTurn: {
		game.SelectTileAction: true,
		game.FinishTurnAction: true,
	},
	game.End: {
		game.PlayAgainAction: true,
	},
	game.Restarting: {},
}

// Accepts reports whether a session in state s reacts to action a.
func Accepts(s game.TurnState, a game.ActionType) bool {
	return accepted[s][a]
}
