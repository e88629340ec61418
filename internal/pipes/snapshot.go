package pipes

// Snapshot is a read-only copy of a session, used for rendering,
// replay checks and determinism tests.
type Snapshot struct {
	Cols      int
	Rows      int
	Seed      int64
	Starter   Coord
	Cells     [][]Cell // [y][x]
	Flow      [][]bool // [y][x]
	Inventory []Kind
	Cursor    Coord
	Reached   int
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	w, h := s.grid.Width(), s.grid.Height()
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
		for x := range cells[y] {
			cells[y][x] = s.grid.Get(C(x, y))
		}
	}
	starter, _ := s.grid.Starter()

	return Snapshot{
		Cols:      w,
		Rows:      h,
		Seed:      s.seed,
		Starter:   starter,
		Cells:     cells,
		Flow:      s.flow.Rows(),
		Inventory: s.inv.Items(),
		Cursor:    s.cursor,
		Reached:   s.flow.Count(),
	}
}
