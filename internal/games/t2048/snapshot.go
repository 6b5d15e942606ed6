package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/grid"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and debug dumps.
type Snapshot struct {
	Tick    uint64        `yaml:"tick" json:"tick"`
	Mode    string        `yaml:"mode" json:"mode"`
	Phase   string        `yaml:"phase" json:"phase"`
	Moves   int           `yaml:"moves" json:"moves"`
	MaxTile int           `yaml:"max_tile" json:"max_tile"`
	Board   grid.Snapshot `yaml:"board,flow" json:"board"`
	State   GameStateType `yaml:"state" json:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{Mode: string(g.mode), State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.showWin:
		state = StateWon
	case g.turn != nil:
		state = StateResolving
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Phase:   g.ctrl.Phase().String(),
		Moves:   g.ctrl.Moves(),
		MaxTile: g.ctrl.Grid().MaxTile(),
		Board:   g.ctrl.Grid().Snapshot(),
		State:   state,
	}
}
