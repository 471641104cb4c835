package searcher

import "copsrobber/game"

// Searcher picks the robber's destination for the current turn.
type Searcher interface {
	// FindNextMove returns the chosen move, or false if the robber has no
	// legal destination and must stay put.
	FindNextMove(b *game.Board, reach *game.Reachability, cops []int) (game.Move, bool)
}

// DistanceFn measures the distance between two tiles of a board.
type DistanceFn func(b *game.Board, from, to int) int
