package pipemania

import (
	"strings"
	"testing"

	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/registry"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		kind     pipes.Kind
		wet      bool
		expected rune
	}{
		{pipes.Starter, false, '▶'},
		{pipes.Horizontal, false, '─'},
		{pipes.Horizontal, true, '━'},
		{pipes.CurveNE, false, '└'},
		{pipes.CurveSW, true, '┓'},
		{pipes.None, false, '·'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.kind, tt.wet); got != tt.expected {
			t.Errorf("Glyph(%s, %v) = %q, expected %q", tt.kind, tt.wet, got, tt.expected)
		}
	}
}

func TestRenderASCIIShowsWater(t *testing.T) {
	opts := pipes.DefaultOptions()
	opts.Layout = &pipes.Layout{
		ID:      "ascii",
		Cols:    3,
		Rows:    2,
		Starter: pipes.C(0, 0),
		Pipes: []pipes.PlacedPipe{
			{At: pipes.C(1, 0), Kind: pipes.Horizontal},
			{At: pipes.C(2, 1), Kind: pipes.Vertical},
		},
	}
	s, err := pipes.NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	lines := strings.Split(RenderASCII(s.Snapshot()), "\n")
	expected := []string{
		"┌─────────┐",
		"│ ▶━━━━ · │",
		"│ ·  ·  │ │",
		"└─────────┘",
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want)
		}
	}
	if !strings.Contains(RenderASCII(s.Snapshot()), "flow: 2 cells") {
		t.Error("flow count missing")
	}
}

func TestBoardRowsCursor(t *testing.T) {
	opts := pipes.DefaultOptions()
	opts.Layout = &pipes.Layout{ID: "c", Cols: 2, Rows: 2, Starter: pipes.C(0, 0)}
	s, err := pipes.NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	s.MoveSelection(1, 1)

	rows := BoardRows(s.Snapshot(), true)
	if rows[1] != " · [·]" {
		t.Errorf("row 1 = %q, expected cursor brackets", rows[1])
	}
}

func TestRenderScreen(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 3)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"P I P E M A N I A", "NEXT", "FLOW", "[", "▶"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}

	active := g.Session().Inventory()[0]
	if !strings.Contains(out, string(activeMarker)+" "+string(Glyph(active, false))+" "+active.String()) {
		t.Errorf("active piece %s not marked", active)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 3)
	g.Resize(20, 10)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestRenderPaused(t *testing.T) {
	g := newGame(t, "pipemania", registry.Settings{}, 3)
	g.Step(core.NewInputFrame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}
}
