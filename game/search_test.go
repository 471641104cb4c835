package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	return b
}

func blockedSet(tiles ...int) map[int]bool {
	out := map[int]bool{}
	for _, t := range tiles {
		out[t] = true
	}
	return out
}

func TestReach(t *testing.T) {
	b := newTestBoard(t, 5)

	t.Run("cop in the corner reaches tiles within two hops", func(t *testing.T) {
		r := Reach(b, 0, blockedSet(0, 4), 2)

		require.Equal(t, []int{1, 2, 5, 6, 10}, r.Selectable())
		require.Equal(t, 0, r.Distance(0))
		require.False(t, r.IsSelectable(0), "origin is never selectable")
		require.True(t, r.Annotation(0).Current)
		require.False(t, r.IsSelectable(4), "occupied tile is never selectable")
	})

	t.Run("selectable tiles are one or two hops away", func(t *testing.T) {
		r := Reach(b, 12, blockedSet(), 2)

		for i := 0; i < b.NumTiles(); i++ {
			d := ManhattanDistance(b, 12, i)
			require.Equal(t, d >= 1 && d <= 2, r.IsSelectable(i), "tile %d at distance %d", i, d)
			if r.IsSelectable(i) {
				require.Equal(t, d, r.Distance(i))
			}
		}
		require.Len(t, r.Selectable(), 12)
	})

	t.Run("blocked tiles are never used as a hop", func(t *testing.T) {
		// Cops on both neighbours of the corner box it in
		r := Reach(b, 0, blockedSet(1, 5), 2)
		require.Empty(t, r.Selectable())

		r = Reach(b, 12, blockedSet(7, 11), 2)
		for _, tile := range r.Selectable() {
			path := r.Path(tile)
			for _, hop := range path {
				require.NotContains(t, []int{7, 11}, hop, "path %v", path)
			}
		}
		require.False(t, r.IsSelectable(2), "2 is only reachable through 7")
		require.False(t, r.IsSelectable(10), "10 is only reachable through 11")
	})

	t.Run("paths start at the origin and follow parents", func(t *testing.T) {
		r := Reach(b, 12, blockedSet(), 2)

		for _, tile := range r.Selectable() {
			path := r.Path(tile)
			require.Equal(t, 12, path[0])
			require.Equal(t, tile, path[len(path)-1])
			require.Len(t, path, r.Distance(tile)+1)
			require.Equal(t, path[len(path)-2], r.Annotation(tile).Parent)
			for i := 1; i < len(path); i++ {
				require.True(t, b.Adjacent(path[i-1], path[i]))
			}
		}
	})

	t.Run("unreached tiles keep default annotations", func(t *testing.T) {
		r := Reach(b, 0, blockedSet(), 2)
		a := r.Annotation(24)
		require.False(t, a.Visited)
		require.Equal(t, -1, a.Distance)
		require.Equal(t, NoTile, a.Parent)
		require.Nil(t, a.Path)
		require.Nil(t, r.Path(24))
	})

	t.Run("repeated searches are identical", func(t *testing.T) {
		first := Reach(b, 7, blockedSet(12, 3), 2)
		second := Reach(b, 7, blockedSet(12, 3), 2)
		require.Equal(t, first, second)
	})

	t.Run("path copies do not alias the result", func(t *testing.T) {
		r := Reach(b, 0, blockedSet(), 2)
		p := r.Path(2)
		p[0] = 99
		require.Equal(t, 0, r.Path(2)[0])
	})
}

func TestReachWithStops(t *testing.T) {
	b := newTestBoard(t, 5)

	t.Run("stop tile is a destination but not a waypoint", func(t *testing.T) {
		r := ReachWithStops(b, 0, blockedSet(0, 24), blockedSet(1), 2)

		require.Equal(t, []int{1, 5, 6, 10}, r.Selectable())
		require.Equal(t, []int{0, 1}, r.Path(1))
		require.False(t, r.IsSelectable(2), "only reachable through the stop")
		require.Nil(t, r.Path(2))
		for _, tile := range r.Selectable() {
			path := r.Path(tile)
			require.NotContains(t, path[:len(path)-1], 1, "path to %d crosses the stop", tile)
		}
	})

	t.Run("stop on the origin does not stop the search", func(t *testing.T) {
		r := ReachWithStops(b, 12, blockedSet(), blockedSet(12), 2)
		require.Len(t, r.Selectable(), 12)
	})

	t.Run("no stops behaves like reach", func(t *testing.T) {
		require.Equal(t, Reach(b, 7, blockedSet(7, 17), 2), ReachWithStops(b, 7, blockedSet(7, 17), nil, 2))
	})
}

func TestShortestDistance(t *testing.T) {
	b := newTestBoard(t, 5)

	t.Run("same tile", func(t *testing.T) {
		require.Equal(t, 0, ShortestDistance(b, 12, 12))
	})

	t.Run("matches manhattan distance on an open grid", func(t *testing.T) {
		for from := 0; from < b.NumTiles(); from++ {
			for to := 0; to < b.NumTiles(); to++ {
				require.Equal(t, ManhattanDistance(b, from, to), ShortestDistance(b, from, to), "%d -> %d", from, to)
			}
		}
	})

	t.Run("disconnected tiles are unreachable", func(t *testing.T) {
		b := newTestBoard(t, 2)
		for _, tile := range []int{0, 1, 2, 3} {
			b.Tile(tile).Adjacency = nil
		}
		require.Equal(t, Unreachable, ShortestDistance(b, 0, 3))
	})
}

func TestStandardRules(t *testing.T) {
	r := NewStandardRules()
	require.Equal(t, 2, r.HopLimit())

	_, err := NewRules(0, 5)
	require.ErrorIs(t, err, ErrInvalidHops)
	_, err = NewRules(2, 0)
	require.ErrorIs(t, err, ErrInvalidRounds)

	custom, err := NewRules(3, 7)
	require.NoError(t, err)
	require.Equal(t, 3, custom.HopLimit())
	require.Equal(t, 7, custom.MaxRounds())
}
