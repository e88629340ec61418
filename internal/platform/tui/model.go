package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/registry"
)

// Optional game capabilities the model uses when present.
type (
	resizer interface {
		Resize(w, h int)
	}
	statusClearer interface {
		ClearStatus()
	}
	asciiRenderer interface {
		ASCII() string
	}
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a running game.
// Input is event driven: each key press becomes one game Step.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	statusSeq  int
	embedded   bool // Run inside a SessionModel: back returns to the menu
	quitting   bool
	backToMenu bool
	lastShot   string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
	m.game.Reset(m.boardConfig())
	m.gameState = m.game.State()
	return m
}

// newEmbeddedModel creates a game model driven by a SessionModel.
func newEmbeddedModel(game registry.Game, cfg core.RuntimeConfig) Model {
	m := NewModel(game, cfg)
	m.embedded = true
	return m
}

// Init implements tea.Model. The board is set up by NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			if c, ok := m.game.(statusClearer); ok {
				c.ClearStatus()
			}
			m.gameState = m.game.State()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err == nil {
			m.lastShot = path
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	var frame core.InputFrame
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if frame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}
	if frame.Empty() {
		return m, nil
	}

	m.gameState = m.game.Step(frame).State
	if m.gameState.Status == "" {
		return m, nil
	}
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq, statusTTL)
}

// layout sizes the screen to the space above the help bar.
func (m *Model) layout() {
	cfg := m.boardConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	}
}

// boardConfig is the runtime config minus the rows taken by the help bar.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.helpHeight(), 1)
	return cfg
}

func (m Model) helpHeight() int {
	return strings.Count(m.help.View(m.keyMapper.Keys()), "\n") + 1
}

// saveScreenshot writes the board as plain text to ~/.pipemania/screenshots.
func (m Model) saveScreenshot() (string, error) {
	text := ""
	if r, ok := m.game.(asciiRenderer); ok {
		text = r.ASCII()
	}
	if text == "" {
		m.game.Render(m.screen)
		text = m.screen.String()
	}

	dir := config.UserPath("screenshots")
	if dir == "" {
		return "", fmt.Errorf("screenshot: home directory unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastScreenshot returns the path of the last saved screenshot.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// Run starts the Bubble Tea program for a single game.
// Returns true if the player pressed back rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig) (bool, error) {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
