package pipes

import (
	"fmt"
	"strings"
)

// Op identifies a session command.
type Op uint8

const (
	OpNone Op = iota
	OpMove
	OpPlace
	OpToggle
	OpFlow
	OpRestart
)

var opNames = map[Op]string{
	OpNone:    "none",
	OpMove:    "move",
	OpPlace:   "place",
	OpToggle:  "toggle",
	OpFlow:    "flow",
	OpRestart: "restart",
}

// String returns the op name used in the journal.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOp resolves an op name.
func ParseOp(s string) (Op, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, name := range opNames {
		if name == s && op != OpNone {
			return op, true
		}
	}
	return OpNone, false
}

// Command is one discrete input applied to a Session.
//
//	Move     shifts the cursor by (DX, DY)
//	Place    lays the active piece at the cursor; At is filled in on apply
//	Toggle   flips the blocked state of At
//	Flow     recomputes the flow mask
//	Restart  sets up a new board from Seed
type Command struct {
	Op   Op
	DX   int
	DY   int
	At   Coord
	Seed int64
}

// Move returns a cursor move command.
func Move(dx, dy int) Command {
	return Command{Op: OpMove, DX: dx, DY: dy}
}

// Place returns a placement command for the cursor cell.
func Place() Command {
	return Command{Op: OpPlace}
}

// Toggle returns a blocking toggle command for c.
func Toggle(c Coord) Command {
	return Command{Op: OpToggle, At: c}
}

// Flow returns an explicit flow recompute command.
func Flow() Command {
	return Command{Op: OpFlow}
}

// Restart returns a restart command with the seed of the new board.
func Restart(seed int64) Command {
	return Command{Op: OpRestart, Seed: seed}
}

// String returns a compact human readable form.
func (c Command) String() string {
	switch c.Op {
	case OpMove:
		return fmt.Sprintf("move %+d,%+d", c.DX, c.DY)
	case OpPlace:
		return fmt.Sprintf("place %v", c.At)
	case OpToggle:
		return fmt.Sprintf("toggle %v", c.At)
	case OpRestart:
		return fmt.Sprintf("restart seed=%d", c.Seed)
	default:
		return c.Op.String()
	}
}

// Recorder receives every command a session applies together with its result.
// Implementations must not fail the session; errors are theirs to report.
type Recorder interface {
	Record(cmd Command, err error)
}

// Journal opens a Recorder for a new session. The journal stores options
// and commands only; a journaled session can be replayed, never resumed.
type Journal interface {
	Begin(variant string, opts Options) (Recorder, error)
}
