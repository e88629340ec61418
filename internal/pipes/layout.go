package pipes

import "fmt"

// Board prepares a freshly created grid for play.
type Board interface {
	Prepare(g *Grid, r Rand) error
}

// RandomBoard blocks random cells and picks a random starter.
type RandomBoard struct {
	Params SetupParams
}

// Prepare implements Board.
func (b RandomBoard) Prepare(g *Grid, r Rand) error {
	return g.Setup(b.Params, r)
}

// PlacedPipe is a pipe laid on the board before play starts.
type PlacedPipe struct {
	At   Coord
	Kind Kind
}

// Layout is a hand-authored board.
type Layout struct {
	ID      string
	Name    string
	Cols    int
	Rows    int
	Starter Coord
	Blocked []Coord
	Pipes   []PlacedPipe
}

// Validate checks that the layout describes a playable board: positive size,
// everything in bounds, and a starter whose own cell, lower neighbour and
// right neighbour are not blocked. Pre-laid pipes may not cover the starter
// or a blocked cell.
func (l *Layout) Validate() error {
	if l.Cols < 2 || l.Rows < 2 {
		return fmt.Errorf("%w: layout %q: size %dx%d too small", ErrUnsatisfiable, l.ID, l.Cols, l.Rows)
	}
	in := func(c Coord) bool {
		return c.X >= 0 && c.X < l.Cols && c.Y >= 0 && c.Y < l.Rows
	}
	if l.Starter.X > l.Cols-2 || l.Starter.Y > l.Rows-2 || !in(l.Starter) {
		return fmt.Errorf("%w: layout %q: starter %v must leave a free cell below and to the right",
			ErrUnsatisfiable, l.ID, l.Starter)
	}

	blocked := make(map[Coord]bool, len(l.Blocked))
	for _, c := range l.Blocked {
		if !in(c) {
			return fmt.Errorf("%w: layout %q: blocked cell %v out of bounds", ErrUnsatisfiable, l.ID, c)
		}
		blocked[c] = true
	}
	for _, c := range []Coord{l.Starter, l.Starter.Step(South), l.Starter.Step(East)} {
		if blocked[c] {
			return fmt.Errorf("%w: layout %q: %v next to the starter is blocked", ErrUnsatisfiable, l.ID, c)
		}
	}

	for _, p := range l.Pipes {
		switch {
		case !in(p.At):
			return fmt.Errorf("%w: layout %q: pipe at %v out of bounds", ErrUnsatisfiable, l.ID, p.At)
		case p.At == l.Starter:
			return fmt.Errorf("%w: layout %q: pipe overwrites the starter", ErrUnsatisfiable, l.ID)
		case blocked[p.At]:
			return fmt.Errorf("%w: layout %q: pipe at %v on a blocked cell", ErrUnsatisfiable, l.ID, p.At)
		case p.Kind == Starter || !p.Kind.Valid() || p.Kind == None:
			return fmt.Errorf("%w: layout %q: invalid pipe %s at %v", ErrUnsatisfiable, l.ID, p.Kind, p.At)
		}
	}
	return nil
}

// Prepare implements Board. The grid must match the layout size.
func (l *Layout) Prepare(g *Grid, _ Rand) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if g.Width() != l.Cols || g.Height() != l.Rows {
		return fmt.Errorf("%w: layout %q is %dx%d, grid is %dx%d",
			ErrUnsatisfiable, l.ID, l.Cols, l.Rows, g.Width(), g.Height())
	}

	g.Reset()
	for _, c := range l.Blocked {
		if err := g.SetBlocked(c, true); err != nil {
			return err
		}
	}
	if err := g.PlaceStarter(l.Starter); err != nil {
		return err
	}
	for _, p := range l.Pipes {
		if err := g.Lay(p.At, p.Kind); err != nil {
			return err
		}
	}
	return nil
}
