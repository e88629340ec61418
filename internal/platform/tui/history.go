package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FelipeeMaia/pipemania/internal/games/pipemania"
	"github.com/FelipeeMaia/pipemania/internal/storage"
)

// History layout constants
const (
	minWidthForPreview = 90  // Minimum width to show the replayed board
	maxSessions        = 100 // Max sessions to load
)

// HistoryKeyMap defines the key bindings for the history table.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Replay},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "x"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the journal history screen.
type HistoryModel struct {
	store     *storage.Store
	layoutDir string
	sessions  []storage.SessionRecord
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	preview   string
	message   string
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, layoutDir string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:     store,
		layoutDir: layoutDir,
		keys:      DefaultHistoryKeyMap(),
		help:      h,
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.loadSessions()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Board", Width: 16},
		{Title: "Seed", Width: 12},
		{Title: "Cmds", Width: 6},
		{Title: "Rej", Width: 5},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions reads the most recent sessions from the journal.
func (m *HistoryModel) loadSessions() {
	m.sessions = nil
	if m.store != nil {
		sessions, err := m.store.RecentSessions(maxSessions)
		if err != nil {
			m.message = err.Error()
		} else {
			m.sessions = sessions
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		board := s.Variant
		if s.LayoutID != "" {
			board += ":" + s.LayoutID
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", s.ID),
			board,
			fmt.Sprintf("%d", s.Seed%1_000_000_000),
			fmt.Sprintf("%d", s.Commands),
			fmt.Sprintf("%d", s.Rejected),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectedSession returns the session under the table cursor.
func (m HistoryModel) selectedSession() (storage.SessionRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return storage.SessionRecord{}, false
	}
	return m.sessions[i], true
}

// replaySelected rebuilds the selected session and stores its board as preview.
func (m *HistoryModel) replaySelected() {
	rec, ok := m.selectedSession()
	if !ok {
		return
	}
	entries, err := m.store.Commands(rec.ID)
	if err != nil {
		m.message = err.Error()
		return
	}
	opts := rec.Options
	opts.LayoutID = rec.LayoutID
	res, err := pipemania.Replay(opts, entries, m.layoutDir)
	if err != nil {
		m.message = err.Error()
		m.preview = ""
		return
	}

	m.preview = fmt.Sprintf("Session #%d\n\n%s", rec.ID, res.Board)
	m.message = ""
	if n := len(res.Mismatches); n > 0 {
		m.message = fmt.Sprintf("%d outcomes differ on replay", n)
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			m.replaySelected()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if rec, ok := m.selectedSession(); ok {
				if err := m.store.DeleteSession(rec.ID); err != nil {
					m.message = err.Error()
				}
				m.preview = ""
				m.loadSessions()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("JOURNAL", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableView := boxStyle.Render(m.renderTableContent())
	if m.preview != "" && m.width >= minWidthForPreview {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableView, "  ", boxStyle.Render(m.preview)))
	} else if m.preview != "" {
		b.WriteString(boxStyle.Render(m.preview))
	} else {
		b.WriteString(tableView)
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.message))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.store == nil {
			return emptyStyle.Render("Journal is disabled.")
		}
		return emptyStyle.Render("No sessions journaled yet.\nPlay a board to start one!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// Preview returns the replayed board of the selected session, if any.
func (m HistoryModel) Preview() string {
	return m.preview
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, layoutDir string, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, layoutDir, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
