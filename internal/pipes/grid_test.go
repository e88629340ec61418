package pipes_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

func starterGrid(t *testing.T, w, h int, starter pipes.Coord) *pipes.Grid {
	t.Helper()
	g := pipes.NewGrid(w, h)
	if err := g.PlaceStarter(starter); err != nil {
		t.Fatalf("PlaceStarter(%v) error: %v", starter, err)
	}
	return g
}

func gridCells(g *pipes.Grid) []pipes.Cell {
	cells := make([]pipes.Cell, 0, g.Width()*g.Height())
	for _, c := range g.AllCoords() {
		cells = append(cells, g.Get(c))
	}
	return cells
}

func TestPlaceStarterBlocksCell(t *testing.T) {
	g := starterGrid(t, 3, 3, pipes.C(1, 1))

	cell := g.Get(pipes.C(1, 1))
	if cell.Pipe != pipes.Starter || !cell.Blocked() {
		t.Errorf("starter cell = %+v, expected blocked Starter", cell)
	}
	if err := g.PlaceStarter(pipes.C(0, 0)); !errors.Is(err, pipes.ErrImmutable) {
		t.Errorf("second PlaceStarter() error = %v, expected ErrImmutable", err)
	}
}

func TestPlacePiece(t *testing.T) {
	g := starterGrid(t, 3, 3, pipes.C(0, 0))
	inv := pipes.NewInventoryOf(pipes.NewRand(1), pipes.Cross, pipes.Vertical, pipes.Horizontal)

	if err := g.PlacePiece(inv, pipes.C(1, 0)); err != nil {
		t.Fatalf("PlacePiece() error: %v", err)
	}
	if got := g.Get(pipes.C(1, 0)).Pipe; got != pipes.Cross {
		t.Errorf("placed pipe = %v, expected cross", got)
	}

	items := inv.Items()
	if len(items) != 3 {
		t.Fatalf("inventory length = %d, expected 3", len(items))
	}
	if items[0] != pipes.Vertical || items[1] != pipes.Horizontal {
		t.Errorf("inventory front = %v, expected [vertical horizontal ...]", items[:2])
	}
	if items[2] == pipes.Starter || items[2] == pipes.None {
		t.Errorf("refill drew %v", items[2])
	}
}

func TestPlacePieceOverwrites(t *testing.T) {
	g := starterGrid(t, 3, 3, pipes.C(0, 0))
	inv := pipes.NewInventoryOf(nil, pipes.Vertical, pipes.Horizontal)

	for range 2 {
		if err := g.PlacePiece(inv, pipes.C(2, 2)); err != nil {
			t.Fatalf("PlacePiece() error: %v", err)
		}
	}
	if got := g.Get(pipes.C(2, 2)).Pipe; got != pipes.Horizontal {
		t.Errorf("pipe = %v, expected horizontal", got)
	}
}

func TestPlacePieceRejected(t *testing.T) {
	tests := []struct {
		name  string
		at    pipes.Coord
		items []pipes.Kind
	}{
		{"blocked cell", pipes.C(1, 1), []pipes.Kind{pipes.Cross, pipes.Vertical}},
		{"starter cell", pipes.C(0, 0), []pipes.Kind{pipes.Cross}},
		{"empty inventory", pipes.C(2, 0), nil},
		{"out of bounds", pipes.C(3, 0), []pipes.Kind{pipes.Cross}},
		{"negative", pipes.C(-1, 0), []pipes.Kind{pipes.Cross}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := starterGrid(t, 3, 3, pipes.C(0, 0))
			if err := g.SetBlocked(pipes.C(1, 1), true); err != nil {
				t.Fatalf("SetBlocked() error: %v", err)
			}
			inv := pipes.NewInventoryOf(pipes.NewRand(7), tt.items...)

			before := g.Clone()
			beforeItems := inv.Items()

			err := g.PlacePiece(inv, tt.at)
			if !errors.Is(err, pipes.ErrRejected) {
				t.Fatalf("PlacePiece() error = %v, expected ErrRejected", err)
			}
			if diff := cmp.Diff(gridCells(before), gridCells(g)); diff != "" {
				t.Errorf("grid changed after rejected placement (-before +after):\n%s", diff)
			}
			if diff := cmp.Diff(beforeItems, inv.Items()); diff != "" {
				t.Errorf("inventory changed after rejected placement (-before +after):\n%s", diff)
			}
		})
	}
}

func TestToggleBlocked(t *testing.T) {
	g := starterGrid(t, 3, 3, pipes.C(0, 0))
	c := pipes.C(2, 1)

	if err := g.ToggleBlocked(c); err != nil {
		t.Fatalf("ToggleBlocked() error: %v", err)
	}
	if !g.Get(c).Blocked() {
		t.Error("expected cell to be blocked after first toggle")
	}
	if err := g.ToggleBlocked(c); err != nil {
		t.Fatalf("ToggleBlocked() error: %v", err)
	}
	if g.Get(c).Blocked() {
		t.Error("expected cell to be free after second toggle")
	}

	if err := g.ToggleBlocked(pipes.C(5, 5)); !errors.Is(err, pipes.ErrRejected) {
		t.Errorf("ToggleBlocked(out of bounds) error = %v, expected ErrRejected", err)
	}
}

func TestStarterIsImmutable(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := pipes.NewGrid(pipes.DefaultCols, pipes.DefaultRows)
		if err := g.Setup(pipes.SetupParams{MinBlocked: 0, MaxBlocked: 10}, pipes.NewRand(seed)); err != nil {
			t.Fatalf("seed %d: Setup() error: %v", seed, err)
		}
		starter, _ := g.Starter()

		for range 3 {
			if err := g.ToggleBlocked(starter); !errors.Is(err, pipes.ErrImmutable) {
				t.Fatalf("seed %d: ToggleBlocked(starter) error = %v, expected ErrImmutable", seed, err)
			}
		}
		if err := g.SetBlocked(starter, false); !errors.Is(err, pipes.ErrImmutable) {
			t.Fatalf("seed %d: SetBlocked(starter) error = %v, expected ErrImmutable", seed, err)
		}
		cell := g.Get(starter)
		if !cell.Blocked() || cell.Pipe != pipes.Starter {
			t.Errorf("seed %d: starter cell = %+v", seed, cell)
		}
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := starterGrid(t, 3, 3, pipes.C(0, 0))
	clone := g.Clone()

	if err := clone.Lay(pipes.C(2, 2), pipes.Cross); err != nil {
		t.Fatalf("Lay() error: %v", err)
	}
	if g.Get(pipes.C(2, 2)).Pipe != pipes.None {
		t.Error("clone shares cells with the original")
	}
	if cmp.Equal(gridCells(g), gridCells(clone)) {
		t.Error("clone still matches the original after Lay()")
	}
}

func TestGridLay(t *testing.T) {
	g := starterGrid(t, 3, 3, pipes.C(0, 0))

	if err := g.Lay(pipes.C(1, 0), pipes.Starter); !errors.Is(err, pipes.ErrRejected) {
		t.Errorf("Lay(starter kind) error = %v, expected ErrRejected", err)
	}
	if err := g.Lay(pipes.C(0, 0), pipes.Cross); !errors.Is(err, pipes.ErrRejected) {
		t.Errorf("Lay(on starter) error = %v, expected ErrRejected", err)
	}
	if err := g.Lay(pipes.C(1, 0), pipes.Horizontal); err != nil {
		t.Errorf("Lay() error: %v", err)
	}
}

func TestInventoryTake(t *testing.T) {
	inv := pipes.NewInventoryOf(nil, pipes.Cross)

	k, ok := inv.Take()
	if !ok || k != pipes.Cross {
		t.Errorf("Take() = %v, %v, expected cross, true", k, ok)
	}
	if _, ok := inv.Take(); ok {
		t.Error("Take() on drained inventory returned ok")
	}
	if _, ok := inv.Active(); ok {
		t.Error("Active() on drained inventory returned ok")
	}
}

func TestNewInventoryFills(t *testing.T) {
	inv := pipes.NewInventory(pipes.DefaultInventorySize, pipes.NewRand(42))
	if inv.Len() != pipes.DefaultInventorySize {
		t.Fatalf("Len() = %d, expected %d", inv.Len(), pipes.DefaultInventorySize)
	}

	for range 100 {
		if _, ok := inv.Take(); !ok {
			t.Fatal("Take() failed on a refilling inventory")
		}
		if inv.Len() != pipes.DefaultInventorySize {
			t.Fatalf("Len() = %d after Take, expected %d", inv.Len(), pipes.DefaultInventorySize)
		}
	}
	for _, k := range inv.Items() {
		if k == pipes.Starter || k == pipes.None {
			t.Errorf("inventory holds %v", k)
		}
	}
}
