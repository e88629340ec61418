package pipemania

import (
	"fmt"

	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/pipes/layouts"
)

// ReplayResult is a journaled session rebuilt from its commands.
type ReplayResult struct {
	Session    *pipes.Session
	Mismatches []pipes.Mismatch
	Board      string
}

// Replay rebuilds a journaled session. A layout referenced by the options
// is looked up in layoutDir first and then among the built-in layouts.
func Replay(opts pipes.Options, entries []pipes.Entry, layoutDir string) (ReplayResult, error) {
	if opts.LayoutID != "" && opts.Layout == nil {
		lay, err := layouts.Resolve(layoutDir, opts.LayoutID)
		if err != nil {
			return ReplayResult{}, fmt.Errorf("replay: layout %q: %w", opts.LayoutID, err)
		}
		opts.Layout = &lay.Layout
	}

	s, mismatches, err := pipes.Replay(opts, entries)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay: %w", err)
	}
	return ReplayResult{
		Session:    s,
		Mismatches: mismatches,
		Board:      RenderASCII(s.Snapshot()),
	}, nil
}
