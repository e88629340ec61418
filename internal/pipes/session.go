package pipes

import (
	"errors"
	"fmt"

	"github.com/FelipeeMaia/pipemania/internal/core"
)

// Options configures a Session. It is journaled as YAML, so a layout is
// referenced by LayoutID and resolved by the caller on replay.
type Options struct {
	Cols          int    `yaml:"cols"`
	Rows          int    `yaml:"rows"`
	InventorySize int    `yaml:"inventory_size"`
	MinBlocked    int    `yaml:"min_blocked"`
	MaxBlocked    int    `yaml:"max_blocked"`
	SetupAttempts int    `yaml:"setup_attempts"`
	Seed          int64  `yaml:"seed"`
	LayoutID      string `yaml:"layout,omitempty"`

	Layout *Layout `yaml:"-"`
}

// DefaultOptions returns the reference board: 9x7, six pieces, 4 to 8 blocked cells.
func DefaultOptions() Options {
	return Options{
		Cols:          DefaultCols,
		Rows:          DefaultRows,
		InventorySize: DefaultInventorySize,
		MinBlocked:    4,
		MaxBlocked:    8,
		SetupAttempts: DefaultSetupAttempts,
	}
}

func (o Options) board() Board {
	if o.Layout != nil {
		return o.Layout
	}
	return RandomBoard{Params: SetupParams{
		MinBlocked:  o.MinBlocked,
		MaxBlocked:  o.MaxBlocked,
		MaxAttempts: o.SetupAttempts,
	}}
}

func (o Options) size() (int, int) {
	if o.Layout != nil {
		return o.Layout.Cols, o.Layout.Rows
	}
	return o.Cols, o.Rows
}

// Session owns one game: the grid, the inventory, the cursor, the flow mask
// and the random source they draw from. All commands go through it and every
// mutation recomputes flow before returning.
//
// A Session is not safe for concurrent use.
type Session struct {
	opts   Options
	seed   int64
	grid   *Grid
	inv    *Inventory
	cursor Coord
	flow   FlowMask
	rec    Recorder
}

// NewSession sets up a board from opts.Seed.
// Returns ErrUnsatisfiable if no board can be built from the options.
func NewSession(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if err := s.Restart(opts.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// SetRecorder attaches a recorder that observes every applied command.
func (s *Session) SetRecorder(r Recorder) {
	s.rec = r
}

// Options returns the options the session was created with.
func (s *Session) Options() Options {
	return s.opts
}

// Seed returns the seed of the current board.
func (s *Session) Seed() int64 {
	return s.seed
}

// Apply executes cmd, reports it to the recorder and returns its result.
// Rejected and Immutable results leave the session unchanged.
func (s *Session) Apply(cmd Command) error {
	var err error
	switch cmd.Op {
	case OpMove:
		s.MoveSelection(cmd.DX, cmd.DY)
	case OpPlace:
		cmd.At = s.cursor
		err = s.PlaceActivePiece()
	case OpToggle:
		err = s.ToggleBlocked(cmd.At)
	case OpFlow:
		s.RecomputeFlow()
	case OpRestart:
		err = s.Restart(cmd.Seed)
	default:
		err = fmt.Errorf("%w: unknown command %s", ErrRejected, cmd.Op)
	}
	if s.rec != nil {
		s.rec.Record(cmd, err)
	}
	return err
}

// MoveSelection shifts the cursor, clamped to the grid.
func (s *Session) MoveSelection(dx, dy int) {
	s.cursor = Coord{
		X: core.Clamp(s.cursor.X+dx, 0, s.grid.Width()-1),
		Y: core.Clamp(s.cursor.Y+dy, 0, s.grid.Height()-1),
	}
}

// PlaceActivePiece lays the active piece at the cursor.
func (s *Session) PlaceActivePiece() error {
	return s.PlaceAt(s.cursor)
}

// PlaceAt lays the active piece at c.
func (s *Session) PlaceAt(c Coord) error {
	if err := s.grid.PlacePiece(s.inv, c); err != nil {
		return err
	}
	s.RecomputeFlow()
	return nil
}

// ToggleBlocked flips the blocked state of c.
func (s *Session) ToggleBlocked(c Coord) error {
	if err := s.grid.ToggleBlocked(c); err != nil {
		return err
	}
	s.RecomputeFlow()
	return nil
}

// RecomputeFlow rebuilds the flow mask from the grid. It is idempotent.
func (s *Session) RecomputeFlow() {
	s.flow = ComputeFlow(s.grid)
}

// Restart replaces the whole game with a new board drawn from seed.
// On failure the current game is kept.
func (s *Session) Restart(seed int64) error {
	w, h := s.opts.size()
	rng := NewRand(seed)

	grid := NewGrid(w, h)
	if err := s.opts.board().Prepare(grid, rng); err != nil {
		if !errors.Is(err, ErrUnsatisfiable) {
			err = fmt.Errorf("%w: %v", ErrUnsatisfiable, err)
		}
		return err
	}

	size := s.opts.InventorySize
	if size <= 0 {
		size = DefaultInventorySize
	}

	s.seed = seed
	s.grid = grid
	s.inv = NewInventory(size, rng)
	s.cursor = Coord{}
	s.RecomputeFlow()
	return nil
}

// Grid returns a copy of the board.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Cell returns the cell at c.
func (s *Session) Cell(c Coord) Cell {
	return s.grid.Get(c)
}

// Width returns the number of columns.
func (s *Session) Width() int {
	return s.grid.Width()
}

// Height returns the number of rows.
func (s *Session) Height() int {
	return s.grid.Height()
}

// Inventory returns the pending pieces, active piece first.
func (s *Session) Inventory() []Kind {
	return s.inv.Items()
}

// Cursor returns the selected cell.
func (s *Session) Cursor() Coord {
	return s.cursor
}

// Flow returns the current flow mask.
func (s *Session) Flow() FlowMask {
	return s.flow
}
