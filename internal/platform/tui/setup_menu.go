package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
	"github.com/FelipeeMaia/pipemania/internal/pipes/layouts"
)

// SetupSelection holds the board choice made before a game starts.
// Layout is nil for a random board.
type SetupSelection struct {
	Preset config.DifficultyPreset
	Layout *pipes.Layout
}

// SetupModel lets users choose a difficulty preset or a hand-made layout.
type SetupModel struct {
	title          string
	presets        []config.DifficultyPreset
	layouts        []layouts.Layout
	cursor         int
	layoutCursor   int
	inLayoutSelect bool
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      SetupSelection
	choosing       bool
	quitting       bool
	back           bool
}

// NewSetupModel creates a new setup selection model.
func NewSetupModel(title string, available []layouts.Layout, width, height int) SetupModel {
	return SetupModel{
		title:     title,
		presets:   config.Presets(),
		layouts:   available,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLayoutSelect {
		return m.handleLayoutSelectKey(action)
	}
	return m.handlePresetSelectKey(action)
}

// optionCount is the number of presets plus the layout entry when layouts exist.
func (m SetupModel) optionCount() int {
	if len(m.layouts) == 0 {
		return len(m.presets)
	}
	return len(m.presets) + 1
}

func (m SetupModel) handlePresetSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor < len(m.presets) {
			m.choosing = false
			m.selection = SetupSelection{Preset: m.presets[m.cursor]}
			return m, tea.Quit
		}
		m.inLayoutSelect = true
		m.layoutCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleLayoutSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.layoutCursor > 0 {
			m.layoutCursor--
		}
	case MenuActionDown:
		if m.layoutCursor < len(m.layouts)-1 {
			m.layoutCursor++
		}
	case MenuActionSelect:
		lay := m.layouts[m.layoutCursor].Layout
		m.choosing = false
		m.selection = SetupSelection{Layout: &lay}
		return m, tea.Quit
	case MenuActionBack:
		m.inLayoutSelect = false
	}

	return m, nil
}

// View renders the preset/layout selection.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLayoutSelect {
		return m.viewLayoutSelect()
	}
	return m.viewPresetSelect()
}

func (m SetupModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i := range m.optionCount() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := "Board layout..."
		if i < len(m.presets) {
			p := m.presets[i]
			line = fmt.Sprintf("%-7s %s", p, p.Description())
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewLayoutSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LAYOUT", m.width))
	b.WriteString("\n\n")

	for i, l := range m.layouts {
		cursor := "  "
		if i == m.layoutCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12s %dx%d, %d blocked", cursor, l.Name, l.Cols, l.Rows, len(l.Blocked))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetupSelector runs the difficulty/layout selection and returns the selection.
// Returns nil when the user backs out or quits.
func RunSetupSelector(title string, available []layouts.Layout, cfg core.RuntimeConfig) (*SetupSelection, error) {
	model := NewSetupModel(title, available, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
