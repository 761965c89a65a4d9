package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avanyukov/skyflap/internal/storage"
)

// maxScoreboardRows caps how many runs the scoreboard loads.
const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run-history screen.
type ScoreboardModel struct {
	store    *storage.Store
	stats    *storage.RunStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	loadErr  error
	quitting bool
}

// NewScoreboardModel creates the scoreboard, loading runs up front.
func NewScoreboardModel(store *storage.Store, height int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	entries, err := store.TopRuns(maxScoreboardRows)
	if err != nil {
		m.loadErr = err
	}
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	if stats, err := store.Stats(); err == nil {
		m.stats = stats
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard input.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("Could not load scores: %v\n", m.loadErr)
	}

	title := lipgloss.NewStyle().Bold(true).Render("Skyflap - Run History")

	summary := ""
	if m.stats != nil && m.stats.RunCount > 0 {
		summary = fmt.Sprintf("Runs: %d   Best: %d   Avg: %.1f",
			m.stats.RunCount, m.stats.BestScore, m.stats.AvgScore)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the run-history screen in the terminal.
func RunScoreboard(store *storage.Store, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
