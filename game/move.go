package game

// Move is a piece travelling from one tile to another along Path.
type Move struct {
	Piece PieceID
	From  int
	To    int
	Path  []int // From..To inclusive
}

// Hops returns the number of edges travelled.
func (m Move) Hops() int {
	if len(m.Path) == 0 {
		return 0
	}
	return len(m.Path) - 1
}
