package t2048

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// ParseMode maps a CLI mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeClassic, "":
		return ModeClassic, true
	case ModeEndless:
		return ModeEndless, true
	}
	return "", false
}

// GameID returns the registry ID for a mode.
func GameID(m Mode) string {
	if m == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Options tunes rules, animation and colours.
type Options struct {
	FourProbability float64
	WinTile         int

	Animate       bool
	SlideDuration time.Duration
	PopDuration   time.Duration
	Easing        string

	Theme Theme
}

// DefaultOptions returns the classic rules with animation on.
func DefaultOptions() Options {
	return Options{
		FourProbability: 0.5,
		WinTile:         2048,
		Animate:         true,
		SlideDuration:   100 * time.Millisecond,
		PopDuration:     120 * time.Millisecond,
		Easing:          "out-quad",
		Theme:           DefaultTheme(),
	}
}

// Game implements the 2048 puzzle on top of a Controller.
type Game struct {
	mode Mode
	opts Options
	log  *log.Logger

	ctrl *Controller
	anim *animator
	turn *Turn
	tick uint64
	dt   float32

	// Closed when the tile spawned by a losing turn finishes appearing.
	lossGate <-chan struct{}

	screenW int
	screenH int

	gameOver bool
	showWin  bool
	paused   bool
	tooSmall bool
}

// Package-level defaults used by registry factories.
var defaultOptions = DefaultOptions()

// SetDefaults replaces the options used by New, NewEndless and the registry.
func SetDefaults(opts Options) {
	defaultOptions = opts
}

// New creates a classic mode game.
func New() *Game {
	return NewWithOptions(ModeClassic, defaultOptions)
}

// NewEndless creates an endless mode game with no win tile.
func NewEndless() *Game {
	return NewWithOptions(ModeEndless, defaultOptions)
}

// NewWithOptions creates a game in the given mode.
func NewWithOptions(mode Mode, opts Options) *Game {
	if mode == ModeEndless {
		opts.WinTile = 0
	}
	return &Game{
		mode: mode,
		opts: opts,
		log:  log.New(io.Discard),
	}
}

func init() {
	registry.Register(GameID(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(GameID(ModeEndless), func() registry.Game {
		return NewEndless()
	})
}

// SetLogger routes turn and lifecycle events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.log = l.With("game", g.ID())
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Controller exposes the rules engine.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1 / float32(tickRate)

	g.ctrl = NewController(ControllerOptions{
		Size:            grid.Size,
		Random:          grid.NewRandom(cfg.Seed),
		FourProbability: g.opts.FourProbability,
		WinTile:         g.opts.WinTile,
	})
	g.anim = newAnimator(g.opts)
	g.turn = nil
	g.lossGate = nil
	g.tick = 0
	g.gameOver = false
	g.showWin = false
	g.paused = false

	for _, t := range g.ctrl.Start() {
		g.anim.startPop(t)
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.log.Info("new game", "mode", g.mode, "seed", cfg.Seed)
}

// Resize adapts to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform.
	if in.Has(core.ActionRestart) && g.State().Finished() {
		return core.StepResult{State: g.State()}
	}

	resolved := g.advance()

	if g.gameOver {
		return core.StepResult{State: g.State(), Resolved: resolved}
	}

	if dir, ok := directionFor(in.Direction()); ok {
		if g.try(dir) {
			resolved = resolved || g.turn == nil
		}
	}

	return core.StepResult{State: g.State(), Resolved: resolved}
}

// advance runs animation and finishes the turn in flight once it settles.
func (g *Game) advance() bool {
	g.anim.update(g.dt)

	resolved := false
	if g.turn != nil && g.turn.Settled() {
		turn := g.turn
		g.turn = nil
		if err := g.ctrl.Finish(turn); err != nil {
			// Finish only fails on misuse; the turn is ours and settled.
			panic(err)
		}
		g.afterTurn(turn)
		resolved = true
	}

	if g.lossGate != nil {
		select {
		case <-g.lossGate:
			g.lossGate = nil
			g.setGameOver()
		default:
		}
	}
	return resolved
}

// try starts a move. Input is dropped while a turn is resolving.
func (g *Game) try(dir grid.Direction) bool {
	if !g.opts.Animate {
		turn, ok := g.ctrl.Move(dir)
		if !ok {
			return false
		}
		g.showWin = false
		g.afterTurn(turn)
		if turn.Lost {
			g.setGameOver()
		}
		return true
	}

	turn, ok := g.ctrl.Begin(dir)
	if !ok {
		return false
	}
	g.showWin = false
	g.turn = turn
	g.anim.startSlide(turn.Moves)
	return true
}

func (g *Game) afterTurn(turn *Turn) {
	g.log.Debug("turn resolved",
		"dir", turn.Direction,
		"moved", len(turn.Moves),
		"merges", turn.Merges,
		"spawned", turn.Spawned.Value(),
		"moves", g.ctrl.Moves(),
		"max", g.ctrl.Grid().MaxTile(),
	)

	if turn.Won {
		g.showWin = true
		g.log.Info("win tile reached", "tile", g.opts.WinTile, "moves", g.ctrl.Moves())
	}

	if g.opts.Animate {
		if turn.Lost {
			g.lossGate = turn.Spawned.WaitForSettle()
		}
		g.anim.startPop(turn.Spawned)
	}
}

func (g *Game) setGameOver() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.log.Info("game over", "moves", g.ctrl.Moves(), "max", g.ctrl.Grid().MaxTile())
}

func directionFor(a core.Action) (grid.Direction, bool) {
	switch a {
	case core.ActionUp:
		return grid.Up, true
	case core.ActionDown:
		return grid.Down, true
	case core.ActionLeft:
		return grid.Left, true
	case core.ActionRight:
		return grid.Right, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Moves:    g.ctrl.Moves(),
		MaxTile:  g.ctrl.Grid().MaxTile(),
		GameOver: g.gameOver,
		Won:      g.ctrl.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}
