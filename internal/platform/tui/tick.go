// Package tui provides the Bubble Tea integration for pipemania.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
const statusTTL = 3 * time.Second

// ClearStatusMsg asks the model to drop the status line it set with Seq.
type ClearStatusMsg struct {
	Seq int
}

// clearStatusCmd returns a command that fires once the status has expired.
func clearStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
