package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FelipeeMaia/pipemania/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPlace, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace, false},
		{"x", runeKey("x"), core.ActionBlock, false},
		{"f", runeKey("f"), core.ActionFlow, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameSkipsQuit(t *testing.T) {
	km := NewKeyMapper()
	var frame core.InputFrame

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("expected quit")
	}
	if !frame.Empty() {
		t.Errorf("quit should not reach the frame, got %v", frame.Actions)
	}

	km.MapKeyToFrame(runeKey("d"), &frame)
	if !frame.Has(core.ActionRight) {
		t.Error("expected ActionRight in frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
