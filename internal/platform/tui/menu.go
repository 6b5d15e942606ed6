package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// ModeItem is one selectable game mode.
type ModeItem struct {
	GameID string
	Title  string
	Goal   string
}

// ModeItems lists every registered game as a menu entry.
func ModeItems() []ModeItem {
	games := registry.List()
	items := make([]ModeItem, 0, len(games))
	for _, g := range games {
		goal := "Reach the win tile, then keep going"
		if strings.HasSuffix(g.ID, "_endless") {
			goal = "Play until the board locks"
		}
		items = append(items, ModeItem{GameID: g.ID, Title: g.Title, Goal: goal})
	}
	return items
}

// ModeMenuModel lets users choose a game mode.
type ModeMenuModel struct {
	items    []ModeItem
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	title    lipgloss.Style
	hint     lipgloss.Style
	width    int
	height   int
	selected *ModeItem
	quitting bool
	back     bool
	// embedded menus hand control back to a parent model instead of quitting
	embedded bool
}

// NewModeMenuModel creates a mode menu. r may be nil for local use.
func NewModeMenuModel(cfg core.RuntimeConfig, r *lipgloss.Renderer) ModeMenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	items := ModeItems()

	rows := make([]table.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, table.Row{it.Title, it.Goal})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Mode", Width: 16},
			{Title: "Goal", Width: 36},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("208")).
		Bold(false)
	t.SetStyles(s)

	// The table handles up/down itself; keep it off our own keys.
	t.KeyMap = table.KeyMap{
		LineUp:   key.NewBinding(key.WithKeys("up", "k", "w")),
		LineDown: key.NewBinding(key.WithKeys("down", "j", "s")),
	}

	return ModeMenuModel{
		items:  items,
		table:  t,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		title:  r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		hint:   r.NewStyle().Foreground(lipgloss.Color("245")),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init initializes the model.
func (m ModeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, m.exit()
		case key.Matches(msg, m.keys.Select):
			if len(m.items) == 0 {
				return m, nil
			}
			it := m.items[m.table.Cursor()]
			m.selected = &it
			return m, m.exit()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ModeMenuModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the mode selection.
func (m ModeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.title.Render("2 0 4 8"),
		"",
		m.hint.Render("Select game mode"),
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen mode, or nil if still choosing.
func (m ModeMenuModel) Selected() *ModeItem {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ModeMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeMenuModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the mode menu and returns the chosen game ID.
// The ID is empty when the user quit.
func RunModeSelector(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewModeMenuModel(cfg, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(ModeMenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().GameID, nil
}
