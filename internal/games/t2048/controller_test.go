package t2048

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid/gridtest"
)

type ControllerSuite struct {
	suite.Suite
	rnd  *gridtest.Random
	ctrl *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.rnd = gridtest.NewRandom()
	opts := DefaultControllerOptions()
	opts.Random = s.rnd
	s.ctrl = NewController(opts)
}

func (s *ControllerSuite) load(rows ...[]int) {
	s.Require().NoError(s.ctrl.Load(grid.Snapshot(rows)))
}

// Start tests

func (s *ControllerSuite) TestStartSpawnsTwoTiles() {
	s.rnd.Spawn(0, false).Spawn(0, true)

	tiles := s.ctrl.Start()

	s.Len(tiles, 2)
	s.Equal(PhaseAwaitingInput, s.ctrl.Phase())
	s.Equal([]int{2, 4, 0, 0}, s.ctrl.Grid().Snapshot()[0])
	s.Equal(2, s.ctrl.Grid().TileCount())
	s.Zero(s.ctrl.Moves())
}

func (s *ControllerSuite) TestStartClearsPreviousGame() {
	s.load(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	s.True(s.ctrl.Lost())

	s.ctrl.Start()
	s.False(s.ctrl.Lost())
	s.Equal(2, s.ctrl.Grid().TileCount())
}

// Begin tests

func (s *ControllerSuite) TestBeginIllegalMoveChangesNothing() {
	s.load(
		[]int{2, 4, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	before := s.ctrl.Grid().Snapshot()

	turn, ok := s.ctrl.Begin(grid.Left)
	s.False(ok)
	s.Nil(turn)
	s.Equal(PhaseAwaitingInput, s.ctrl.Phase())
	s.Equal(before, s.ctrl.Grid().Snapshot())
	s.Zero(s.ctrl.Moves())
}

func (s *ControllerSuite) TestSecondInputWhileResolvingIsDropped() {
	s.load(
		[]int{2, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	turn, ok := s.ctrl.Begin(grid.Left)
	s.Require().True(ok)
	s.Equal(PhaseResolving, s.ctrl.Phase())
	s.Same(turn, s.ctrl.Pending())

	_, ok = s.ctrl.Begin(grid.Right)
	s.False(ok)
	s.Equal(PhaseResolving, s.ctrl.Phase())
}

// Finish tests

func (s *ControllerSuite) TestFinishRequiresSettledTiles() {
	s.load(
		[]int{2, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	turn, ok := s.ctrl.Begin(grid.Left)
	s.Require().True(ok)
	s.False(turn.Settled())
	s.ErrorIs(s.ctrl.Finish(turn), ErrUnsettled)
	s.Equal(PhaseResolving, s.ctrl.Phase())

	for _, m := range turn.Moves {
		m.Tile.Settle()
	}
	s.True(turn.Settled())
	s.rnd.Spawn(0, false)
	s.Require().NoError(s.ctrl.Finish(turn))

	s.Equal(PhaseAwaitingInput, s.ctrl.Phase())
	s.Equal(1, s.ctrl.Moves())
	s.Equal(1, turn.Merges)
	s.Require().NotNil(turn.Spawned)
	s.Equal(4, s.ctrl.Grid().Cell(0, 0).Tile().Value())
	s.Same(turn.Spawned, s.ctrl.Grid().Cell(1, 0).Tile())
	s.Nil(s.ctrl.Pending())
}

func (s *ControllerSuite) TestFinishRejectsForeignTurn() {
	s.ErrorIs(s.ctrl.Finish(nil), ErrNotResolving)

	s.load(
		[]int{2, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	_, ok := s.ctrl.Begin(grid.Right)
	s.Require().True(ok)
	s.ErrorIs(s.ctrl.Finish(&Turn{}), ErrNotResolving)
}

func (s *ControllerSuite) TestWaitReturnsOnceTilesSettle() {
	s.load(
		[]int{2, 0, 2, 0},
		[]int{0, 4, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	turn, ok := s.ctrl.Begin(grid.Left)
	s.Require().True(ok)
	s.Len(turn.Moves, 2)

	tiles := make([]*grid.Tile, 0, len(turn.Moves))
	for _, m := range turn.Moves {
		tiles = append(tiles, m.Tile)
	}
	go func() {
		for _, t := range tiles {
			time.Sleep(time.Millisecond)
			t.Settle()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Require().NoError(turn.Wait(ctx))
	s.True(turn.Settled())

	s.rnd.Spawn(0, false)
	s.NoError(s.ctrl.Finish(turn))
}

func (s *ControllerSuite) TestWaitHonoursContext() {
	s.load(
		[]int{0, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	turn, ok := s.ctrl.Begin(grid.Left)
	s.Require().True(ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(turn.Wait(ctx), context.Canceled)
}

// Move tests

func (s *ControllerSuite) TestMoveSpawnsExactlyOneTile() {
	s.load(
		[]int{2, 2, 4, 0},
		[]int{0, 0, 0, 8},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	before := s.ctrl.Grid().TileCount()
	s.rnd.Spawn(5, false)

	turn, ok := s.ctrl.Move(grid.Left)
	s.Require().True(ok)

	s.Equal(before-turn.Merges+1, s.ctrl.Grid().TileCount())
	s.Equal(2, turn.Spawned.Value())
	for _, c := range s.ctrl.Grid().Cells() {
		s.Nil(c.MergeTile())
	}
}

func (s *ControllerSuite) TestLossWhenNoDirectionRemains() {
	s.load(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{2, 4, 2, 0},
	)
	s.rnd.Spawn(0, true)

	turn, ok := s.ctrl.Move(grid.Right)
	s.Require().True(ok)

	s.True(turn.Lost)
	s.True(s.ctrl.Lost())
	s.Equal(PhaseLost, s.ctrl.Phase())
	s.Equal([]int{4, 2, 4, 2}, s.ctrl.Grid().Snapshot()[3])

	for _, d := range grid.Directions {
		_, ok := s.ctrl.Begin(d)
		s.False(ok, d.String())
	}
}

func (s *ControllerSuite) TestWinRaisedOnce() {
	s.load(
		[]int{1024, 1024, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 2},
	)
	s.rnd.Spawn(0, false).Spawn(0, false)

	turn, ok := s.ctrl.Move(grid.Left)
	s.Require().True(ok)
	s.True(turn.Won)
	s.True(s.ctrl.Won())
	s.Equal(PhaseAwaitingInput, s.ctrl.Phase())

	turn, ok = s.ctrl.Move(grid.Down)
	s.Require().True(ok)
	s.False(turn.Won)
	s.True(s.ctrl.Won())
}

func (s *ControllerSuite) TestEndlessNeverWins() {
	opts := DefaultControllerOptions()
	opts.Random = s.rnd
	opts.WinTile = 0
	s.ctrl = NewController(opts)
	s.load(
		[]int{1024, 1024, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	s.rnd.Spawn(0, false)

	turn, ok := s.ctrl.Move(grid.Left)
	s.Require().True(ok)
	s.False(turn.Won)
	s.False(s.ctrl.Won())
}

func (s *ControllerSuite) TestLoadRejectsInvalidBoard() {
	s.Error(s.ctrl.Load(grid.Snapshot{{3, 0}, {0, 0}}))
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseAwaitingInput, "awaiting_input"},
		{PhaseResolving, "resolving"},
		{PhaseLost, "lost"},
		{Phase(9), "Phase(9)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}
