// Package pipemania provides the pipe-connection puzzle for the platform.
// All board rules live in internal/pipes; this package maps platform
// actions to session commands and draws the session.
package pipemania

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/registry"
)

// Variant is a registered board size.
type Variant struct {
	ID    string
	Title string
	Cols  int // 0 uses the configured board size
	Rows  int
}

// Variants lists the registered game variants.
var Variants = []Variant{
	{ID: "pipemania", Title: "Pipemania"},
	{ID: "pipemania_mini", Title: "Pipemania (Mini)", Cols: 6, Rows: 5},
	{ID: "pipemania_wide", Title: "Pipemania (Wide)", Cols: 12, Rows: 8},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func(s registry.Settings) registry.Game {
			return New(v, s)
		})
	}
}

// Game implements registry.Game on top of a pipes.Session.
type Game struct {
	variant  Variant
	settings registry.Settings

	session *pipes.Session
	seeds   *rand.Rand
	journal int64 // Journal session ID, 0 when not journaled

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	failed   bool
	tooSmall bool
	status   string
	alert    bool
}

// New creates a game for a variant.
func New(v Variant, s registry.Settings) *Game {
	return &Game{variant: v, settings: s}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.settings.Layout != nil {
		return fmt.Sprintf("%s: %s", g.variant.Title, g.settings.Layout.Name)
	}
	return g.variant.Title
}

// Options returns the session options for a seed.
func (g *Game) Options(seed int64) pipes.Options {
	cfg := g.settings.Config
	if cfg.Board.Cols == 0 {
		cfg = config.DefaultPipeConfig()
	}
	if g.variant.Cols > 0 {
		cfg.Board.Cols = g.variant.Cols
		cfg.Board.Rows = g.variant.Rows
	}
	if g.settings.Preset != "" {
		config.ApplyPreset(&cfg, g.settings.Preset)
	}

	opts := cfg.Options(seed)
	if g.settings.Layout != nil {
		opts.Layout = g.settings.Layout
		opts.LayoutID = g.settings.Layout.ID
	}
	return opts
}

// Reset sets up a new board from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.failed = false
	g.journal = 0
	g.setStatus("", false)

	opts := g.Options(cfg.Seed)
	session, err := pipes.NewSession(opts)
	if err != nil {
		g.session = nil
		g.failed = true
		g.setStatus(describe(err), true)
		return
	}
	g.session = session

	if g.settings.Journal != nil {
		rec, err := g.settings.Journal.Begin(g.ID(), opts)
		if err != nil {
			g.setStatus("journal unavailable", true)
		} else {
			session.SetRecorder(rec)
			if j, ok := rec.(interface{ SessionID() int64 }); ok {
				g.journal = j.SessionID()
			}
		}
	}

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step applies the actions of one input event in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	if g.failed || g.session == nil {
		return
	}

	if a == core.ActionPause {
		g.paused = !g.paused
		return
	}
	if g.paused {
		return
	}

	switch a {
	case core.ActionUp:
		g.exec(pipes.Move(0, -1))
	case core.ActionDown:
		g.exec(pipes.Move(0, 1))
	case core.ActionLeft:
		g.exec(pipes.Move(-1, 0))
	case core.ActionRight:
		g.exec(pipes.Move(1, 0))
	case core.ActionPlace:
		g.exec(pipes.Place())
	case core.ActionBlock:
		g.exec(pipes.Toggle(g.session.Cursor()))
	case core.ActionFlow:
		g.exec(pipes.Flow())
	case core.ActionRestart:
		g.exec(pipes.Restart(g.seeds.Int63()))
	}
}

func (g *Game) exec(cmd pipes.Command) {
	cursor := g.session.Cursor()
	active, _ := g.activePiece()

	err := g.session.Apply(cmd)
	switch {
	case errors.Is(err, pipes.ErrUnsatisfiable):
		g.failed = true
		g.setStatus(describe(err), true)
	case err != nil:
		g.setStatus(describe(err), true)
	case cmd.Op == pipes.OpPlace:
		g.setStatus(fmt.Sprintf("placed %s at %v", active, cursor), false)
	case cmd.Op == pipes.OpToggle:
		state := "freed"
		if g.session.Cell(cmd.At).Blocked() {
			state = "blocked"
		}
		g.setStatus(fmt.Sprintf("%v %s", cmd.At, state), false)
	case cmd.Op == pipes.OpFlow:
		g.setStatus(fmt.Sprintf("water reaches %d cells", g.session.Flow().Count()), false)
	case cmd.Op == pipes.OpRestart:
		g.setStatus(fmt.Sprintf("new board, seed %d", cmd.Seed), false)
	}
}

func (g *Game) activePiece() (pipes.Kind, bool) {
	inv := g.session.Inventory()
	if len(inv) == 0 {
		return pipes.None, false
	}
	return inv[0], true
}

func (g *Game) setStatus(s string, alert bool) {
	g.status = s
	g.alert = alert
}

// describe turns a session error into a status line.
func describe(err error) string {
	switch {
	case errors.Is(err, pipes.ErrImmutable):
		return "the starter cannot be changed"
	case errors.Is(err, pipes.ErrRejected):
		msg := strings.TrimPrefix(err.Error(), pipes.ErrRejected.Error()+": ")
		return "rejected: " + msg
	default:
		return strings.TrimPrefix(err.Error(), "pipes: ")
	}
}

// ClearStatus drops the status line. The setup failure reason stays.
func (g *Game) ClearStatus() {
	if g.failed {
		return
	}
	g.setStatus("", false)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused: g.paused,
		Failed: g.failed,
		Status: g.status,
	}
}

// Session returns the running session, nil if setup failed.
func (g *Game) Session() *pipes.Session {
	return g.session
}

// JournalID returns the journal session ID, 0 when not journaled.
func (g *Game) JournalID() int64 {
	return g.journal
}

func (g *Game) checkScreenSize() {
	if g.session == nil {
		g.tooSmall = false
		return
	}
	w, h := layoutSize(g.session.Width(), g.session.Height(), len(g.session.Inventory()))
	g.tooSmall = g.screenW < w || g.screenH < h
}
