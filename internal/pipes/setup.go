package pipes

import "fmt"

// DefaultSetupAttempts bounds the random search for a starter position.
const DefaultSetupAttempts = 1000

// SetupParams configures a random board.
type SetupParams struct {
	MinBlocked  int
	MaxBlocked  int
	MaxAttempts int // Starter search attempts; <= 0 uses DefaultSetupAttempts
}

// Setup clears the grid, blocks a random number of cells in
// [MinBlocked, MaxBlocked], then searches random candidates with
// x in [0, W-2] and y in [0, H-2] for a starter whose own cell, the cell
// below and the cell to the right are all Free. The chosen cell gets the
// Starter pipe and is blocked.
//
// Returns ErrUnsatisfiable when the parameters cannot produce a board or
// no candidate is found within MaxAttempts.
func (g *Grid) Setup(p SetupParams, r Rand) error {
	g.Reset()

	if g.w < 2 || g.h < 2 {
		return fmt.Errorf("%w: grid %dx%d too small for a starter", ErrUnsatisfiable, g.w, g.h)
	}
	if p.MinBlocked < 0 || p.MaxBlocked < p.MinBlocked {
		return fmt.Errorf("%w: invalid blocked range [%d, %d]", ErrUnsatisfiable, p.MinBlocked, p.MaxBlocked)
	}

	count := p.MinBlocked + r.Intn(p.MaxBlocked-p.MinBlocked+1)
	if count > len(g.cells) {
		return fmt.Errorf("%w: %d blocked cells do not fit in %dx%d", ErrUnsatisfiable, count, g.w, g.h)
	}

	for blocked := 0; blocked < count; {
		c := C(r.Intn(g.w), r.Intn(g.h))
		i := g.index(c)
		if g.cells[i].Blocked() {
			continue
		}
		g.cells[i].State = Blocked
		blocked++
	}

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultSetupAttempts
	}
	for range attempts {
		c := C(r.Intn(g.w-1), r.Intn(g.h-1))
		if g.Get(c).Blocked() || g.Get(c.Step(South)).Blocked() || g.Get(c.Step(East)).Blocked() {
			continue
		}
		return g.PlaceStarter(c)
	}

	return fmt.Errorf("%w: no free starter position after %d attempts", ErrUnsatisfiable, attempts)
}
