package game

// Annotation holds what one reachability search learned about a tile.
type Annotation struct {
	Visited    bool
	Distance   int   // Hops from the origin, -1 if not reached
	Parent     int   // Tile this one was first reached from, NoTile if none
	Path       []int // Origin..tile inclusive, nil if not reached
	Selectable bool  // Legal destination for the current move
	Current    bool  // A piece stands here
}

// Reachability is the result of one bounded search from an origin tile. Each
// search allocates a fresh result; nothing is stored on the board itself.
type Reachability struct {
	origin int
	tiles  []Annotation
}

type queued struct {
	tile     int
	path     []int
	distance int
}

// Reach runs a breadth-first search from origin over b, never entering a
// blocked tile, and marks every tile within hops edges as selectable. Tiles at
// exactly hops edges are recorded but not expanded.
func Reach(b *Board, origin int, blocked map[int]bool, hops int) *Reachability {
	return ReachWithStops(b, origin, blocked, nil, hops)
}

// ReachWithStops is Reach where a stop tile may be landed on but never
// crossed: it is selectable when in range and is not expanded further.
func ReachWithStops(b *Board, origin int, blocked, stops map[int]bool, hops int) *Reachability {
	r := &Reachability{
		origin: origin,
		tiles:  make([]Annotation, b.NumTiles()),
	}
	for i := range r.tiles {
		r.tiles[i] = Annotation{Distance: -1, Parent: NoTile}
	}

	start := &r.tiles[origin]
	start.Visited = true
	start.Current = true
	start.Distance = 0
	start.Path = []int{origin}

	queue := []queued{{tile: origin, path: start.Path, distance: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.distance >= hops || (current.tile != origin && stops[current.tile]) {
			continue
		}

		for _, n := range b.Neighbors(current.tile) {
			next := &r.tiles[n]
			if next.Visited || blocked[n] {
				continue
			}

			path := make([]int, len(current.path), len(current.path)+1)
			copy(path, current.path)
			path = append(path, n)

			next.Visited = true
			next.Parent = current.tile
			next.Distance = current.distance + 1
			next.Path = path
			next.Selectable = next.Distance > 0 && next.Distance <= hops

			queue = append(queue, queued{tile: n, path: path, distance: next.Distance})
		}
	}

	return r
}

// Origin returns the tile the search started from.
func (r *Reachability) Origin() int {
	return r.origin
}

// Selectable returns the legal destinations in ascending tile order.
func (r *Reachability) Selectable() []int {
	out := []int{}
	for i, a := range r.tiles {
		if a.Selectable {
			out = append(out, i)
		}
	}
	return out
}

func (r *Reachability) IsSelectable(t int) bool {
	if t < 0 || t >= len(r.tiles) {
		return false
	}
	return r.tiles[t].Selectable
}

// Distance returns the hop count from the origin to t, or -1 if t was not reached.
func (r *Reachability) Distance(t int) int {
	if t < 0 || t >= len(r.tiles) {
		return -1
	}
	return r.tiles[t].Distance
}

// Path returns a copy of the path from the origin to t, or nil if t was not reached.
func (r *Reachability) Path(t int) []int {
	if t < 0 || t >= len(r.tiles) || r.tiles[t].Path == nil {
		return nil
	}
	return append([]int(nil), r.tiles[t].Path...)
}

// Annotation returns everything the search recorded for tile t.
func (r *Reachability) Annotation(t int) Annotation {
	return r.tiles[t]
}

// MarkCurrent flags t as occupied, e.g. once a piece has landed there.
func (r *Reachability) MarkCurrent(t int) {
	if t >= 0 && t < len(r.tiles) {
		r.tiles[t].Current = true
	}
}
