package game

type Rules interface {
	// HopLimit is the maximum number of edges a piece may travel in one move
	HopLimit() int
	// MaxRounds is the number of completed robber turns after which the robber wins
	MaxRounds() int
}
