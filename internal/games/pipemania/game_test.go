package pipemania

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/registry"
)

func newGame(t *testing.T, id string, s registry.Settings, seed int64) *Game {
	t.Helper()
	g, err := registry.Create(id, s)
	if err != nil {
		t.Fatalf("Create(%s) error: %v", id, err)
	}
	game := g.(*Game)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return game
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id         string
		cols, rows int
	}{
		{"pipemania", 9, 7},
		{"pipemania_mini", 6, 5},
		{"pipemania_wide", 12, 8},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if !registry.Exists(tt.id) {
				t.Fatalf("variant %s not registered", tt.id)
			}
			g := newGame(t, tt.id, registry.Settings{}, 1)
			s := g.Session()
			if s == nil {
				t.Fatalf("setup failed: %s", g.State().Status)
			}
			if s.Width() != tt.cols || s.Height() != tt.rows {
				t.Errorf("board = %dx%d, expected %dx%d", s.Width(), s.Height(), tt.cols, tt.rows)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	actions := []core.Action{
		core.ActionRight, core.ActionPlace, core.ActionDown, core.ActionPlace,
		core.ActionBlock, core.ActionFlow, core.ActionRestart, core.ActionRight,
		core.ActionRight, core.ActionPlace, core.ActionLeft, core.ActionBlock,
	}

	run := func() Snapshot {
		g := newGame(t, "pipemania", registry.Settings{}, 4242)
		for _, a := range actions {
			g.Step(core.NewInputFrame(a))
		}
		return g.Snapshot()
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed and input diverged (-first +second):\n%s", diff)
	}
}

func TestStepMovesCursor(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 1)

	g.Step(core.NewInputFrame(core.ActionRight, core.ActionRight, core.ActionDown))
	if got := g.Session().Cursor(); got != pipes.C(2, 1) {
		t.Errorf("cursor = %v, expected (2,1)", got)
	}

	g.Step(core.NewInputFrame(core.ActionUp, core.ActionUp, core.ActionLeft))
	if got := g.Session().Cursor(); got != pipes.C(1, 0) {
		t.Errorf("cursor = %v, expected (1,0)", got)
	}
}

func TestPauseIgnoresInput(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 1)

	res := g.Step(core.NewInputFrame(core.ActionPause, core.ActionRight, core.ActionPlace))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	if got := g.Session().Cursor(); got != pipes.C(0, 0) {
		t.Errorf("cursor moved while paused: %v", got)
	}

	res = g.Step(core.NewInputFrame(core.ActionPause, core.ActionRight))
	if res.State.Paused {
		t.Error("expected unpaused state")
	}
	if got := g.Session().Cursor(); got != pipes.C(1, 0) {
		t.Errorf("cursor = %v, expected (1,0) after unpause", got)
	}
}

func TestBlockOnStarterFlashesAlert(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 9)
	starter, _ := g.Session().Grid().Starter()

	for range starter.X {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	for range starter.Y {
		g.Step(core.NewInputFrame(core.ActionDown))
	}
	res := g.Step(core.NewInputFrame(core.ActionBlock))

	if res.State.Status != "the starter cannot be changed" || !g.alert {
		t.Errorf("status = %q alert=%v", res.State.Status, g.alert)
	}
	if !g.Session().Cell(starter).Blocked() {
		t.Error("starter lost its blocked state")
	}
}

func TestRestartDrawsNewSeed(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 100)
	first := g.Session().Seed()

	g.Step(core.NewInputFrame(core.ActionRestart))
	if g.Session().Seed() == first {
		t.Error("restart kept the same seed")
	}
	if !strings.HasPrefix(g.State().Status, "new board") {
		t.Errorf("status = %q", g.State().Status)
	}
}

func TestPresetChangesBlockedRange(t *testing.T) {
	g := New(Variants[0], registry.Settings{Preset: config.DifficultyFixed})
	opts := g.Options(1)
	if opts.MinBlocked != 6 || opts.MaxBlocked != 6 {
		t.Errorf("fixed preset range = [%d, %d], expected [6, 6]", opts.MinBlocked, opts.MaxBlocked)
	}
}

func TestLayoutSettings(t *testing.T) {
	layout := &pipes.Layout{ID: "tiny", Name: "Tiny", Cols: 4, Rows: 3, Starter: pipes.C(0, 0)}
	g := newGame(t, "pipemania_wide", registry.Settings{Layout: layout}, 1)

	if g.Title() != "Pipemania (Wide): Tiny" {
		t.Errorf("Title() = %q", g.Title())
	}
	if s := g.Session(); s.Width() != 4 || s.Height() != 3 {
		t.Errorf("layout size not used: %dx%d", s.Width(), s.Height())
	}
	if opts := g.Options(1); opts.LayoutID != "tiny" {
		t.Errorf("LayoutID = %q", opts.LayoutID)
	}
}

func TestSetupFailure(t *testing.T) {
	cfg := config.DefaultPipeConfig()
	cfg.Board.Cols, cfg.Board.Rows = 2, 2
	cfg.Setup.MinBlocked, cfg.Setup.MaxBlocked = 4, 4
	cfg.Setup.Attempts = 10

	g := newGame(t, "pipemania", registry.Settings{Config: cfg}, 1)
	res := g.Step(core.NewInputFrame(core.ActionRight, core.ActionPlace))
	if !res.State.Failed {
		t.Fatal("expected failed state")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "BOARD SETUP FAILED") {
		t.Error("failure not rendered")
	}
}

func TestFailedRestartHidesOldBoard(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 1)
	if g.Session() == nil {
		t.Fatal("expected a running session")
	}

	// A restart that hits Unsatisfiable keeps the previous session around.
	g.failed = true
	g.setStatus("board setup gave up", true)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "BOARD SETUP FAILED") {
		t.Errorf("failure not rendered:\n%s", out)
	}
	if strings.Contains(out, "NEXT") {
		t.Errorf("stale board still rendered:\n%s", out)
	}
}

type fakeJournal struct {
	variant string
	opts    pipes.Options
	rec     *fakeRecorder
}

type fakeRecorder struct {
	cmds []pipes.Command
}

func (r *fakeRecorder) Record(cmd pipes.Command, _ error) {
	r.cmds = append(r.cmds, cmd)
}

func (r *fakeRecorder) SessionID() int64 {
	return 17
}

func (j *fakeJournal) Begin(variant string, opts pipes.Options) (pipes.Recorder, error) {
	j.variant = variant
	j.opts = opts
	j.rec = &fakeRecorder{}
	return j.rec, nil
}

func TestJournalReceivesCommands(t *testing.T) {
	j := &fakeJournal{}
	g := newGame(t, "pipemania_mini", registry.Settings{Journal: j}, 55)

	if j.variant != "pipemania_mini" || j.opts.Seed != 55 {
		t.Errorf("journal began with %s %+v", j.variant, j.opts)
	}
	if g.JournalID() != 17 {
		t.Errorf("JournalID() = %d, expected 17", g.JournalID())
	}

	g.Step(core.NewInputFrame(core.ActionRight, core.ActionPlace, core.ActionFlow))
	ops := make([]pipes.Op, len(j.rec.cmds))
	for i, c := range j.rec.cmds {
		ops[i] = c.Op
	}
	expected := []pipes.Op{pipes.OpMove, pipes.OpPlace, pipes.OpFlow}
	if diff := cmp.Diff(expected, ops); diff != "" {
		t.Errorf("journaled ops mismatch (-want +got):\n%s", diff)
	}
}
