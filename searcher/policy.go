package searcher

import "copsrobber/game"

// SafetyScore is the distance from tile to the nearest cop. The robber
// prefers tiles with a higher score.
func SafetyScore(b *game.Board, tile int, cops []int, distance DistanceFn) int {
	if len(cops) == 0 {
		return game.Unreachable
	}

	best := game.Unreachable
	for _, cop := range cops {
		if d := distance(b, tile, cop); d < best {
			best = d
		}
	}
	return best
}

// better reports whether a candidate with score replaces the incumbent.
// Candidates arrive in ascending tile order, so only a strictly higher score
// wins and ties keep the lowest tile.
func better(score, incumbent int) bool {
	return score > incumbent
}
