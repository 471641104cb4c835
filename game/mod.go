package game

import "math"

// NoTile marks the absence of a tile, e.g. the parent of a search origin.
const NoTile = -1

// Unreachable is the distance reported between tiles with no path between
// them. It is larger than any path on a board that fits in memory.
const Unreachable = math.MaxInt32

// NumCops is the number of cop pieces in a game.
const NumCops = 2

// PieceID identifies one of the three pieces on the board.
type PieceID int

const (
	CopA PieceID = iota
	CopB
	Robber
)

// CopPiece returns the piece ID of cop c (0 or 1).
func CopPiece(c int) PieceID {
	return PieceID(c)
}

func (p PieceID) IsCop() bool {
	return p == CopA || p == CopB
}

func (p PieceID) String() string {
	switch p {
	case CopA:
		return "cop-a"
	case CopB:
		return "cop-b"
	case Robber:
		return "robber"
	}
	return "unknown"
}

// Piece is a game actor and the tile it stands on.
type Piece struct {
	ID   PieceID
	Tile int
}
