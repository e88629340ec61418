package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FelipeeMaia/pipemania/internal/config"
	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenSetup
	screenGame
	screenHistory
)

// SessionModel manages the full flow of one terminal: menu -> setup -> game -> menu.
// It is the top-level model for SSH sessions and for `play` without a board.
type SessionModel struct {
	env      Env
	config   core.RuntimeConfig
	username string
	screen   sessionScreen
	gameID   string
	menu     MenuModel
	setup    SetupModel
	game     Model
	history  HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		env:      env,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenSetup:
		return m.updateSetup(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu resets the menu and shows it.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.screen = screenHistory
		m.history = NewHistoryModel(m.env.Store, config.ExpandHome(m.env.Config.Layouts.Dir), m.config.ScreenW, m.config.ScreenH)
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		selected := m.menu.Selected()
		m.gameID = selected.GameID
		m.screen = screenSetup
		m.setup = NewSetupModel(selected.Title, m.env.Layouts, m.config.ScreenW, m.config.ScreenH)
		return m, m.setup.Init()
	}

	return m, cmd
}

// updateSetup handles the difficulty/layout choice.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setupModel, ok := newSetup.(SetupModel); ok {
		m.setup = setupModel
	}

	switch {
	case m.setup.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.setup.WantsBack():
		return m.toMenu()

	case m.setup.Selected() != nil:
		sel := m.setup.Selected()
		game, err := registry.Create(m.gameID, m.env.Settings(sel.Preset, sel.Layout))
		if err != nil {
			// Menu only lists registered games.
			return m.toMenu()
		}
		if m.env.Logger != nil {
			m.env.Logger.Info("game started", "user", m.username, "game", m.gameID, "preset", sel.Preset)
		}

		cfg := m.config
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		m.game = newEmbeddedModel(game, cfg)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateHistory handles the journal table.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHistory, cmd := m.history.Update(msg)
	if historyModel, ok := newHistory.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSetup:
		return m.setup.View()
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// IsQuitting returns true if the user quit the session.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg, "local"),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
