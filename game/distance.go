package game

// ShortestDistance returns the number of edges on a shortest path between
// from and to, ignoring occupancy, or Unreachable if no path exists.
func ShortestDistance(b *Board, from, to int) int {
	if from == to {
		return 0
	}

	type step struct {
		tile     int
		distance int
	}

	visited := make([]bool, b.NumTiles())
	visited[from] = true
	queue := []step{{tile: from, distance: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range b.Neighbors(current.tile) {
			if n == to {
				return current.distance + 1
			}
			if !visited[n] {
				visited[n] = true
				queue = append(queue, step{tile: n, distance: current.distance + 1})
			}
		}
	}

	return Unreachable
}

// ManhattanDistance is the closed form of ShortestDistance on an unobstructed grid.
func ManhattanDistance(b *Board, from, to int) int {
	a, c := b.Tile(from), b.Tile(to)
	return abs(a.Row-c.Row) + abs(a.Col-c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
