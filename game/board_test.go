package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("rejects grid sizes below one", func(t *testing.T) {
		_, err := NewBoard(0)
		require.ErrorIs(t, err, ErrInvalidGridSize)

		_, err = NewBoard(-3)
		require.ErrorIs(t, err, ErrInvalidGridSize)
	})

	t.Run("single tile board has no neighbours", func(t *testing.T) {
		b, err := NewBoard(1)
		require.NoError(t, err)
		require.Equal(t, 1, b.NumTiles())
		require.Empty(t, b.Neighbors(0))
	})

	t.Run("tiles are indexed row major", func(t *testing.T) {
		b, err := NewBoard(5)
		require.NoError(t, err)
		require.Equal(t, 25, b.NumTiles())
		require.Equal(t, 12, b.Index(2, 2))
		require.Equal(t, 2, b.Tile(13).Row)
		require.Equal(t, 3, b.Tile(13).Col)
		require.Equal(t, NoTile, b.Index(5, 0))
		require.Equal(t, NoTile, b.Index(0, -1))
	})
}

func TestBuildAdjacency(t *testing.T) {
	b, err := NewBoard(5)
	require.NoError(t, err)

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for a := 0; a < b.NumTiles(); a++ {
			for _, n := range b.Neighbors(a) {
				require.True(t, b.Adjacent(n, a), "%d lists %d but not the other way round", a, n)
			}
		}
	})

	t.Run("degree depends on position", func(t *testing.T) {
		for i := 0; i < b.NumTiles(); i++ {
			tile := b.Tile(i)
			onRowEdge := tile.Row == 0 || tile.Row == b.Size()-1
			onColEdge := tile.Col == 0 || tile.Col == b.Size()-1

			expected := 4
			switch {
			case onRowEdge && onColEdge:
				expected = 2
			case onRowEdge || onColEdge:
				expected = 3
			}
			require.Len(t, b.Neighbors(i), expected, "tile %d", i)
		}
	})

	t.Run("no diagonals or wraparound", func(t *testing.T) {
		require.Equal(t, []int{1, 5}, b.Neighbors(0))
		require.Equal(t, []int{3, 9}, b.Neighbors(4))
		require.Equal(t, []int{7, 11, 13, 17}, b.Neighbors(12))
		require.False(t, b.Adjacent(4, 5), "row ends must not wrap")
		require.False(t, b.Adjacent(0, 6))
	})

	t.Run("rebuilding replaces instead of appending", func(t *testing.T) {
		before := append([]int(nil), b.Neighbors(12)...)
		b.BuildAdjacency()
		b.BuildAdjacency()
		require.Equal(t, before, b.Neighbors(12))
	})
}

func TestAdjacentOutOfRange(t *testing.T) {
	b, err := NewBoard(3)
	require.NoError(t, err)
	require.False(t, b.Adjacent(-1, 0))
	require.False(t, b.Adjacent(0, 9))
	require.False(t, b.Contains(9))
	require.True(t, b.Contains(8))
}
