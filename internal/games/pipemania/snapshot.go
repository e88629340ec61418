package pipemania

import "github.com/FelipeeMaia/pipemania/internal/pipes"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	ID      string
	Paused  bool
	Failed  bool
	Status  string
	Session pipes.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		ID:     g.ID(),
		Paused: g.paused,
		Failed: g.failed,
		Status: g.status,
	}
	if g.session != nil {
		snap.Session = g.session.Snapshot()
	}
	return snap
}

// ASCII renders the board as plain text, "" if setup failed.
func (g *Game) ASCII() string {
	if g.session == nil {
		return ""
	}
	return RenderASCII(g.session.Snapshot())
}
