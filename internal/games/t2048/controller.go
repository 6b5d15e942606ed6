package t2048

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

// Phase is the controller's turn state.
type Phase int

const (
	PhaseAwaitingInput Phase = iota
	PhaseResolving
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseResolving:
		return "resolving"
	case PhaseLost:
		return "lost"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	// ErrNotResolving is returned by Finish when the turn is not the one in flight.
	ErrNotResolving = errors.New("t2048: no turn is resolving")
	// ErrUnsettled is returned by Finish while moved tiles are still animating.
	ErrUnsettled = errors.New("t2048: turn has unsettled tiles")
)

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Size            int
	Random          grid.Random
	FourProbability float64
	// WinTile is the value that raises Won. Zero disables winning.
	WinTile int
}

// DefaultControllerOptions returns the classic rules.
func DefaultControllerOptions() ControllerOptions {
	return ControllerOptions{
		Size:            grid.Size,
		FourProbability: 0.5,
		WinTile:         2048,
	}
}

// Turn is one accepted move between Begin and Finish.
type Turn struct {
	Direction grid.Direction
	Moves     []grid.Move

	// Filled in by Finish.
	Merges  int
	Spawned *grid.Tile
	Won     bool
	Lost    bool

	settled []<-chan struct{}
}

// Settled reports whether every moved tile has settled.
func (t *Turn) Settled() bool {
	for _, ch := range t.settled {
		select {
		case <-ch:
		default:
			return false
		}
	}
	return true
}

// Wait blocks until every moved tile has settled or ctx is done.
func (t *Turn) Wait(ctx context.Context) error {
	for _, ch := range t.settled {
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Controller owns one game's board and runs the turn cycle:
// awaiting input, resolving, then back to awaiting input or lost.
type Controller struct {
	opts  ControllerOptions
	grid  *grid.Grid
	phase Phase
	turn  *Turn
	moves int
	won   bool
}

// NewController creates a controller. Zero Size and nil Random take defaults.
// Call Start before the first move.
func NewController(opts ControllerOptions) *Controller {
	if opts.Size == 0 {
		opts.Size = grid.Size
	}
	if opts.Random == nil {
		opts.Random = grid.NewRandom(1)
	}
	return &Controller{
		opts: opts,
		grid: grid.New(opts.Size),
	}
}

// Start clears the board and places the two opening tiles.
func (c *Controller) Start() []*grid.Tile {
	c.grid.Reset()
	c.phase = PhaseAwaitingInput
	c.turn = nil
	c.moves = 0
	c.won = false
	return []*grid.Tile{c.spawn(), c.spawn()}
}

func (c *Controller) spawn() *grid.Tile {
	t, err := c.grid.Spawn(c.opts.Random, c.opts.FourProbability)
	if err != nil {
		// Spawns only follow a move that emptied or freed a cell.
		panic(fmt.Sprintf("t2048: spawn: %v", err))
	}
	return t
}

// Begin starts a turn in dir. It returns false and leaves everything as it
// was when a turn is already resolving, the game is lost, or the move is
// illegal.
func (c *Controller) Begin(dir grid.Direction) (*Turn, bool) {
	if c.phase != PhaseAwaitingInput || !c.grid.CanMove(dir) {
		return nil, false
	}
	turn := &Turn{Direction: dir}
	turn.Moves = c.grid.Slide(dir)
	for _, m := range turn.Moves {
		turn.settled = append(turn.settled, m.Tile.WaitForSettle())
	}
	c.turn = turn
	c.phase = PhaseResolving
	return turn, true
}

// Finish merges, spawns one tile and decides whether the game is lost.
// The turn must be the one returned by the last Begin and fully settled.
func (c *Controller) Finish(turn *Turn) error {
	if c.phase != PhaseResolving || turn == nil || turn != c.turn {
		return ErrNotResolving
	}
	if !turn.Settled() {
		return ErrUnsettled
	}

	turn.Merges = c.grid.MergeTiles()
	turn.Spawned = c.spawn()
	c.moves++
	c.turn = nil

	if c.opts.WinTile > 0 && !c.won && c.grid.MaxTile() >= c.opts.WinTile {
		c.won = true
		turn.Won = true
	}

	if c.grid.CanMoveAny() {
		c.phase = PhaseAwaitingInput
	} else {
		c.phase = PhaseLost
		turn.Lost = true
	}
	return nil
}

// Move plays a whole turn without waiting for animation.
func (c *Controller) Move(dir grid.Direction) (*Turn, bool) {
	turn, ok := c.Begin(dir)
	if !ok {
		return nil, false
	}
	for _, m := range turn.Moves {
		m.Tile.Settle()
	}
	if err := c.Finish(turn); err != nil {
		panic(fmt.Sprintf("t2048: finish settled turn: %v", err))
	}
	return turn, true
}

// Phase returns the current turn state.
func (c *Controller) Phase() Phase { return c.phase }

// Grid returns the live board.
func (c *Controller) Grid() *grid.Grid { return c.grid }

// Moves returns the number of completed turns.
func (c *Controller) Moves() int { return c.moves }

// Won reports whether the win tile has been reached this game.
func (c *Controller) Won() bool { return c.won }

// Lost reports whether no move is left.
func (c *Controller) Lost() bool { return c.phase == PhaseLost }

// Pending returns the turn in flight, or nil.
func (c *Controller) Pending() *Turn { return c.turn }

// Load replaces the board with the given values and resets the turn state.
func (c *Controller) Load(s grid.Snapshot) error {
	g, err := grid.FromSnapshot(s)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}
	c.grid = g
	c.turn = nil
	c.moves = 0
	c.won = c.opts.WinTile > 0 && g.MaxTile() >= c.opts.WinTile
	c.phase = PhaseAwaitingInput
	if !g.CanMoveAny() {
		c.phase = PhaseLost
	}
	return nil
}
