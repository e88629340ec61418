package pipes

// FlowMask marks which cells carry water. It is derived state: a pure
// function of the grid it was computed from.
type FlowMask struct {
	W, H    int
	reached []bool
}

// NewFlowMask returns an all-false mask for a w x h grid.
func NewFlowMask(w, h int) FlowMask {
	return FlowMask{W: w, H: h, reached: make([]bool, w*h)}
}

// Reached reports whether water reaches c. Out-of-bounds reads false.
func (m FlowMask) Reached(c Coord) bool {
	if c.X < 0 || c.X >= m.W || c.Y < 0 || c.Y >= m.H {
		return false
	}
	return m.reached[c.Y*m.W+c.X]
}

func (m FlowMask) set(c Coord) {
	m.reached[c.Y*m.W+c.X] = true
}

// Count returns the number of reached cells.
func (m FlowMask) Count() int {
	n := 0
	for _, r := range m.reached {
		if r {
			n++
		}
	}
	return n
}

// Coords returns the reached cells, ordered by row then column.
func (m FlowMask) Coords() []Coord {
	var coords []Coord
	for i, r := range m.reached {
		if r {
			coords = append(coords, C(i%m.W, i/m.W))
		}
	}
	return coords
}

// Rows returns the mask as a [y][x] boolean matrix.
func (m FlowMask) Rows() [][]bool {
	rows := make([][]bool, m.H)
	for y := range rows {
		rows[y] = make([]bool, m.W)
		copy(rows[y], m.reached[y*m.W:(y+1)*m.W])
	}
	return rows
}

// ComputeFlow runs a breadth-first search from the starter cell and returns
// every cell reachable through mutually open connectors. A neighbour is
// entered only if it is in bounds, holds a pipe, is not Blocked, and opens
// back towards the cell water comes from. Each cell is visited at most once.
//
// A grid without a Starter pipe at its starter position yields an all-false mask.
func ComputeFlow(g *Grid) FlowMask {
	mask := NewFlowMask(g.Width(), g.Height())

	start, ok := g.Starter()
	if !ok || g.Get(start).Pipe != Starter {
		return mask
	}

	mask.set(start)
	queue := make([]Coord, 0, g.Width()*g.Height())
	queue = append(queue, start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		kind := g.Get(cur).Pipe

		for _, d := range kind.Mask().Dirs() {
			next := cur.Step(d)
			if !g.InBounds(next) || mask.Reached(next) {
				continue
			}
			cell := g.Get(next)
			if cell.Pipe == None || cell.Blocked() {
				continue
			}
			if !Connects(kind, d, cell.Pipe) {
				continue
			}
			mask.set(next)
			queue = append(queue, next)
		}
	}

	return mask
}
