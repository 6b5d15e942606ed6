package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Options configures a game Model.
type Options struct {
	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger

	// Renderer is the lipgloss renderer for the output. Nil means stdout.
	Renderer *lipgloss.Renderer

	// AllowBack enables the back-to-menu key (SSH sessions).
	AllowBack bool

	// ScreenshotDir is where ctrl+s writes dumps. Empty disables screenshots.
	ScreenshotDir string
}

type loggable interface {
	SetLogger(*log.Logger)
}

type snapshotter interface {
	Snapshot() t2048.Snapshot
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	log        *log.Logger
	shotDir    string
	width      int
	height     int
	quitting   bool
	backToMenu bool
	overLogged bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if l, ok := game.(loggable); ok {
		l.SetLogger(logger)
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)

	m := Model{
		game:       game,
		renderer:   NewScreenRenderer(opts.Renderer),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		help:       help.New(),
		log:        logger,
		shotDir:    opts.ScreenshotDir,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height), nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height), nil
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.Finished() || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionRestart && !m.gameState.Finished() {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// gameHeight is the terminal height left after the help footer.
func (m Model) gameHeight() int {
	lines := strings.Count(m.help.View(m.keys), "\n") + 1
	return max(m.height-lines, 1)
}

func (m Model) handleResize(w, h int) Model {
	m.width, m.height = w, h
	m.help.Width = w
	m.config.ScreenW = w
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.Finished() {
		m.game.Reset(m.config)
	}
	return m
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Finished() {
		m.config.Seed = time.Now().UnixNano()
		m.log.Info("restart", "moves", m.gameState.Moves, "max", m.gameState.MaxTile)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.overLogged = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.overLogged {
		m.log.Debug("game over reported", "moves", m.gameState.Moves, "max", m.gameState.MaxTile)
		m.overLogged = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as text, plus the game snapshot
// as YAML when the game provides one.
func (m *Model) saveScreenshot() error {
	if m.shotDir == "" {
		return nil
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}

	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	if s, ok := m.game.(snapshotter); ok {
		data, err := yaml.Marshal(s.Snapshot())
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		if err := os.WriteFile(base+".yaml", data, 0o600); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	m.log.Info("screenshot saved", "path", base+".txt")
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
