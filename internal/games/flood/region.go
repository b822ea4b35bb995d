package flood

// Region is a set of board coordinates. The board's region always holds
// exactly the tiles 4-connected to the anchor that share its color.
type Region map[Coord]struct{}

// Has reports whether the coordinate is part of the region.
func (r Region) Has(p Coord) bool {
	_, ok := r[p]
	return ok
}

// add inserts a coordinate.
func (r Region) add(p Coord) {
	r[p] = struct{}{}
}

// neighborSteps are the four cardinal offsets; no diagonals, no wraparound.
var neighborSteps = [4]Coord{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Flood computes the maximal set of tiles reachable from the anchor (0,0)
// through 4-directional steps between equal-colored cells. The anchor itself
// is always included, even as a singleton. Iterative breadth-first search
// with an explicit queue; each cell is visited at most once.
func Flood(cells [][]Color) Region {
	region := make(Region)
	target := cells[0][0]
	height := len(cells)
	width := len(cells[0])

	queue := []Coord{anchor}
	region.add(anchor)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, step := range neighborSteps {
			n := Coord{X: p.X + step.X, Y: p.Y + step.Y}
			if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
				continue
			}
			if region.Has(n) || cells[n.Y][n.X] != target {
				continue
			}
			region.add(n)
			queue = append(queue, n)
		}
	}

	return region
}
