package pipes

import "fmt"

// Default board dimensions.
const (
	DefaultCols = 9
	DefaultRows = 7
)

// CellState tells whether a cell accepts pieces.
type CellState uint8

const (
	Free CellState = iota
	Blocked
)

// String returns the state name.
func (s CellState) String() string {
	if s == Blocked {
		return "blocked"
	}
	return "free"
}

// Cell is a single grid square.
type Cell struct {
	State CellState
	Pipe  Kind
}

// Blocked reports whether the cell is blocked.
func (c Cell) Blocked() bool {
	return c.State == Blocked
}

// Grid is the board: a W x H rectangle of cells plus the starter location.
// Cells are stored in row-major order: index = y*W + x.
//
// The starter cell always holds a Starter pipe and is always Blocked; no
// Grid method can change either once it is placed.
type Grid struct {
	w, h       int
	cells      []Cell
	starter    Coord
	hasStarter bool
}

// NewGrid creates an empty grid with all cells Free and no pipes.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the cell at c. Out-of-bounds positions read as an empty Free cell.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Cell{}
	}
	return g.cells[g.index(c)]
}

// Starter returns the starter position, if one has been placed.
func (g *Grid) Starter() (Coord, bool) {
	return g.starter, g.hasStarter
}

// IsStarter reports whether c is the starter cell.
func (g *Grid) IsStarter(c Coord) bool {
	return g.hasStarter && g.starter == c
}

// Reset clears every cell to Free with no pipe and forgets the starter.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	g.starter = Coord{}
	g.hasStarter = false
}

// PlaceStarter puts the Starter pipe at c and blocks the cell.
// A grid holds exactly one starter; a second call returns ErrImmutable.
func (g *Grid) PlaceStarter(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: starter %v out of bounds", ErrRejected, c)
	}
	if g.hasStarter {
		return fmt.Errorf("%w: starter already at %v", ErrImmutable, g.starter)
	}
	g.cells[g.index(c)] = Cell{State: Blocked, Pipe: Starter}
	g.starter = c
	g.hasStarter = true
	return nil
}

// Lay puts a pipe of kind k on a Free cell, replacing any pipe already there.
// Used by layouts and tests; players go through PlacePiece.
func (g *Grid) Lay(c Coord, k Kind) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrRejected, c)
	}
	if k == Starter || !k.Valid() {
		return fmt.Errorf("%w: cannot lay %s", ErrRejected, k)
	}
	i := g.index(c)
	if g.cells[i].Blocked() {
		return fmt.Errorf("%w: %v is blocked", ErrRejected, c)
	}
	g.cells[i].Pipe = k
	return nil
}

// SetBlocked sets the blocked state of c. The starter cell is immutable.
func (g *Grid) SetBlocked(c Coord, blocked bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrRejected, c)
	}
	if g.IsStarter(c) {
		return ErrImmutable
	}
	state := Free
	if blocked {
		state = Blocked
	}
	g.cells[g.index(c)].State = state
	return nil
}

// ToggleBlocked flips c between Free and Blocked.
// Returns ErrImmutable for the starter cell and ErrRejected when out of bounds.
func (g *Grid) ToggleBlocked(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrRejected, c)
	}
	return g.SetBlocked(c, !g.cells[g.index(c)].Blocked())
}

// PlacePiece takes the active piece from inv and lays it on c.
// The inventory draws a replacement at its back end. On a Blocked cell,
// an out-of-bounds position or an empty inventory it returns ErrRejected
// and neither the grid nor the inventory changes.
func (g *Grid) PlacePiece(inv *Inventory, c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrRejected, c)
	}
	i := g.index(c)
	if g.cells[i].Blocked() {
		return fmt.Errorf("%w: %v is blocked", ErrRejected, c)
	}
	k, ok := inv.Take()
	if !ok {
		return fmt.Errorf("%w: inventory is empty", ErrRejected)
	}
	g.cells[i].Pipe = k
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:          g.w,
		h:          g.h,
		cells:      cells,
		starter:    g.starter,
		hasStarter: g.hasStarter,
	}
}

// BlockedCount returns the number of Blocked cells, starter included.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell.Blocked() {
			n++
		}
	}
	return n
}

// AllCoords returns every coordinate, ordered by row then column.
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}
