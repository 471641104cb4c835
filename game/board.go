package game

import "fmt"

// Tile is one cell of the board.
type Tile struct {
	Index     int   // Unique identifier, row*size + col
	Row       int   // Row on the grid
	Col       int   // Column on the grid
	Adjacency []int // Indices of neighbouring tiles, ascending
}

// Board represents the square game board and its tile adjacency. The tile set
// is fixed once the board is built.
type Board struct {
	size  int
	tiles []*Tile
}

// NewBoard creates a size x size board with its adjacency lists built.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGridSize, size)
	}

	b := &Board{
		size:  size,
		tiles: make([]*Tile, size*size),
	}
	for i := range b.tiles {
		b.tiles[i] = &Tile{
			Index:     i,
			Row:       i / size,
			Col:       i % size,
			Adjacency: []int{},
		}
	}
	b.BuildAdjacency()

	return b, nil
}

// BuildAdjacency connects every tile to the tiles above, below, left and right
// of it. Existing adjacency is replaced, so calling it twice is harmless.
func (b *Board) BuildAdjacency() {
	n := b.size
	for _, t := range b.tiles {
		t.Adjacency = t.Adjacency[:0]
	}

	// Ascending order: up, left, right, down
	for i, t := range b.tiles {
		row, col := i/n, i%n
		if row > 0 {
			b.addBorder(t, i-n)
		}
		if col > 0 {
			b.addBorder(t, i-1)
		}
		if col < n-1 {
			b.addBorder(t, i+1)
		}
		if row < n-1 {
			b.addBorder(t, i+n)
		}
	}
}

// addBorder adds a one-way edge; the grid construction adds the reverse edge
// when it visits the neighbour.
func (b *Board) addBorder(t *Tile, neighbour int) {
	if !contains(t.Adjacency, neighbour) {
		t.Adjacency = append(t.Adjacency, neighbour)
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// NumTiles returns the number of tiles on the board.
func (b *Board) NumTiles() int {
	return len(b.tiles)
}

// Contains reports whether i is a valid tile index.
func (b *Board) Contains(i int) bool {
	return i >= 0 && i < len(b.tiles)
}

// Tile returns the tile with index i. It panics if i is out of range.
func (b *Board) Tile(i int) *Tile {
	return b.tiles[i]
}

// Neighbors returns the adjacency list of tile i.
func (b *Board) Neighbors(i int) []int {
	return b.tiles[i].Adjacency
}

// Adjacent reports whether tiles a and c share an edge.
func (b *Board) Adjacent(a, c int) bool {
	if !b.Contains(a) || !b.Contains(c) {
		return false
	}
	return contains(b.tiles[a].Adjacency, c)
}

// Index converts grid coordinates to a tile index, or NoTile if they are off the board.
func (b *Board) Index(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return NoTile
	}
	return row*b.size + col
}

// contains checks if a slice contains a specific item.
func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
