package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid/gridtest"
)

type GridSuite struct {
	suite.Suite
	rnd *gridtest.Random
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

func (s *GridSuite) SetupTest() {
	s.rnd = gridtest.NewRandom()
}

func (s *GridSuite) board(rows ...[]int) *grid.Grid {
	g, err := grid.FromSnapshot(grid.Snapshot(rows))
	s.Require().NoError(err)
	return g
}

// resolve runs a full slide and merge pass and returns the resulting board.
func (s *GridSuite) resolve(g *grid.Grid, dir grid.Direction) grid.Snapshot {
	g.Slide(dir)
	g.MergeTiles()
	return g.Snapshot()
}

// New tests

func (s *GridSuite) TestNewAllocatesEveryCoordinate() {
	g := grid.New(grid.Size)

	s.Equal(grid.Size, g.Size())
	s.Len(g.Cells(), grid.Size*grid.Size)
	for y := range grid.Size {
		for x := range grid.Size {
			c := g.Cell(x, y)
			s.Require().NotNil(c)
			s.Equal(x, c.X())
			s.Equal(y, c.Y())
			s.True(c.Empty())
		}
	}
	s.Nil(g.Cell(-1, 0))
	s.Nil(g.Cell(0, grid.Size))
}

func (s *GridSuite) TestCellsByColumnAndRowOrder() {
	g := grid.New(grid.Size)

	for x, col := range g.CellsByColumn() {
		for y, c := range col {
			s.Equal(x, c.X())
			s.Equal(y, c.Y())
		}
	}
	for y, row := range g.CellsByRow() {
		for x, c := range row {
			s.Equal(x, c.X())
			s.Equal(y, c.Y())
		}
	}
}

// Groups tests

func (s *GridSuite) TestGroupsOrientation() {
	g := grid.New(grid.Size)
	last := grid.Size - 1

	tests := []struct {
		dir          grid.Direction
		firstX       int
		firstY       int
		secondX      int
		secondY      int
		groupFixedAt func(c *grid.Cell) int
	}{
		{grid.Up, 0, 0, 0, 1, (*grid.Cell).X},
		{grid.Down, 0, last, 0, last - 1, (*grid.Cell).X},
		{grid.Left, 0, 0, 1, 0, (*grid.Cell).Y},
		{grid.Right, last, 0, last - 1, 0, (*grid.Cell).Y},
	}

	for _, tt := range tests {
		groups := g.Groups(tt.dir)
		s.Len(groups, grid.Size, tt.dir.String())
		first := groups[0]
		s.Equal(tt.firstX, first[0].X(), tt.dir.String())
		s.Equal(tt.firstY, first[0].Y(), tt.dir.String())
		s.Equal(tt.secondX, first[1].X(), tt.dir.String())
		s.Equal(tt.secondY, first[1].Y(), tt.dir.String())

		// Reversal must not reorder groups themselves.
		for i, group := range groups {
			for _, c := range group {
				s.Equal(i, tt.groupFixedAt(c), tt.dir.String())
			}
		}
	}
}

// Slide examples

func (s *GridSuite) TestSlideLeftMergesAdjacentPair() {
	g := s.board(
		[]int{2, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	s.Equal([]int{4, 0, 0, 0}, s.resolve(g, grid.Left)[0])
}

func (s *GridSuite) TestSlideLeftMergesAcrossGap() {
	g := s.board(
		[]int{2, 0, 2, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	s.Equal([]int{4, 0, 0, 0}, s.resolve(g, grid.Left)[0])
}

func (s *GridSuite) TestSlideLeftUnequalTilesDoNotMove() {
	g := s.board(
		[]int{2, 4, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	s.False(g.CanMove(grid.Left))
	s.Empty(g.Slide(grid.Left))
	s.Equal([]int{2, 4, 0, 0}, g.Snapshot()[0])
}

func (s *GridSuite) TestSlideMergesOncePerCell() {
	tests := []struct {
		name string
		row  []int
		dir  grid.Direction
		want []int
	}{
		{"four equal left", []int{2, 2, 2, 2}, grid.Left, []int{4, 4, 0, 0}},
		{"four equal right", []int{2, 2, 2, 2}, grid.Right, []int{0, 0, 4, 4}},
		{"merged tile blocks chain", []int{2, 2, 4, 0}, grid.Left, []int{4, 4, 0, 0}},
		{"three equal left", []int{4, 4, 4, 0}, grid.Left, []int{8, 4, 0, 0}},
		{"three equal right", []int{4, 4, 4, 0}, grid.Right, []int{0, 0, 4, 8}},
		{"slide without merge", []int{0, 0, 0, 2}, grid.Left, []int{2, 0, 0, 0}},
		{"mixed", []int{2, 0, 4, 4}, grid.Left, []int{2, 8, 0, 0}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			g := s.board(
				tt.row,
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
			)
			s.Equal(tt.want, s.resolve(g, tt.dir)[0])
		})
	}
}

func (s *GridSuite) TestSlideVertical() {
	g := s.board(
		[]int{2, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{2, 0, 0, 0},
		[]int{4, 0, 0, 0},
	)
	got := s.resolve(g, grid.Down)
	s.Equal(grid.Snapshot{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 0},
		{4, 0, 0, 0},
	}, got)

	got = s.resolve(g, grid.Up)
	s.Equal(grid.Snapshot{
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, got)
}

func (s *GridSuite) TestSlideReportsMoves() {
	g := s.board(
		[]int{0, 2, 0, 2},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	moves := g.Slide(grid.Left)
	s.Require().Len(moves, 2)

	s.Equal(1, moves[0].FromX)
	s.Equal(0, moves[0].ToX)
	s.False(moves[0].Merge)

	s.Equal(3, moves[1].FromX)
	s.Equal(0, moves[1].ToX)
	s.True(moves[1].Merge)

	x, y := moves[1].Tile.Position()
	s.Equal(0, x)
	s.Equal(0, y)
	s.Same(moves[1].Tile, g.Cell(0, 0).MergeTile())
}

// Rule properties

func (s *GridSuite) TestIllegalMoveLeavesBoardUnchanged() {
	g := s.board(
		[]int{2, 4, 8, 16},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	before := g.Snapshot()

	s.False(g.CanMove(grid.Left))
	s.False(g.CanMove(grid.Right))
	s.False(g.CanMove(grid.Up))
	s.True(g.CanMove(grid.Down))
	s.Equal(before, g.Snapshot())

	s.Empty(g.Slide(grid.Up))
	s.Equal(before, g.Snapshot())
}

func (s *GridSuite) TestMergeFinalizeConservesSum() {
	g := s.board(
		[]int{2, 2, 4, 4},
		[]int{8, 8, 0, 2},
		[]int{0, 4, 4, 4},
		[]int{16, 0, 16, 2},
	)
	sum := g.Sum()

	g.Slide(grid.Left)
	s.Equal(sum, g.Sum())
	merges := g.MergeTiles()
	s.Equal(sum, g.Sum())
	s.Equal(5, merges)

	for _, c := range g.Cells() {
		s.Nil(c.MergeTile(), "pending merge at (%d,%d)", c.X(), c.Y())
	}
}

func (s *GridSuite) TestCanMoveAnyFalseOnLockedBoard() {
	g := s.board(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	s.False(g.CanMoveAny())

	g.Cell(3, 3).SetTile(grid.NewTile(4))
	s.True(g.CanMoveAny())
	s.True(g.CanMove(grid.Down))
	s.True(g.CanMove(grid.Right))
}

// Spawn tests

func (s *GridSuite) TestSpawnFillsChosenEmptyCell() {
	g := s.board(
		[]int{2, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	s.rnd.Spawn(0, true)

	t, err := g.Spawn(s.rnd, 0.5)
	s.Require().NoError(err)
	s.Equal(4, t.Value())
	s.Same(t, g.Cell(1, 0).Tile())
	s.Equal(2, g.TileCount())
}

func (s *GridSuite) TestSpawnValueFollowsProbability() {
	g := grid.New(grid.Size)
	s.rnd.Spawn(0, false).Spawn(0, true)

	t, err := g.Spawn(s.rnd, 0.5)
	s.Require().NoError(err)
	s.Equal(2, t.Value())

	t, err = g.Spawn(s.rnd, 0.5)
	s.Require().NoError(err)
	s.Equal(4, t.Value())
}

func (s *GridSuite) TestRandomEmptyCellOnFullBoard() {
	g := s.board(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	_, err := g.RandomEmptyCell(s.rnd)
	s.ErrorIs(err, grid.ErrNoEmptyCell)

	_, err = g.Spawn(s.rnd, 0.5)
	s.ErrorIs(err, grid.ErrNoEmptyCell)
}

func (s *GridSuite) TestRandomEmptyCellSkipsOccupied() {
	g := grid.New(grid.Size)
	for _, c := range g.Cells()[:15] {
		c.SetTile(grid.NewTile(2))
	}
	s.rnd.QueueIntn(0)

	c, err := g.RandomEmptyCell(s.rnd)
	s.Require().NoError(err)
	s.Equal(3, c.X())
	s.Equal(3, c.Y())
}

// Queries

func (s *GridSuite) TestQueries() {
	g := s.board(
		[]int{2, 0, 0, 0},
		[]int{0, 64, 0, 0},
		[]int{0, 0, 8, 0},
		[]int{0, 0, 0, 0},
	)
	s.Equal(64, g.MaxTile())
	s.Equal(74, g.Sum())
	s.Equal(3, g.TileCount())
	s.Len(g.Tiles(), 3)
	s.Len(g.EmptyCells(), 13)

	g.Reset()
	s.Zero(g.TileCount())
	s.Zero(g.MaxTile())
}

func TestFromSnapshotRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		snap grid.Snapshot
	}{
		{"too small", grid.Snapshot{{2}}},
		{"ragged", grid.Snapshot{{2, 0}, {0}}},
		{"not power of two", grid.Snapshot{{3, 0}, {0, 0}}},
		{"one", grid.Snapshot{{1, 0}, {0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grid.FromSnapshot(tt.snap)
			assert.Error(t, err)
		})
	}
}

func TestSnapshotString(t *testing.T) {
	s := grid.Snapshot{{2, 0}, {0, 1024}}
	assert.Equal(t, "2 .\n. 1024", s.String())
	assert.True(t, s.Equal(grid.Snapshot{{2, 0}, {0, 1024}}))
	assert.False(t, s.Equal(grid.Snapshot{{2, 0}, {0, 2}}))
}

func TestParseDirection(t *testing.T) {
	for _, d := range grid.Directions {
		got, err := grid.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := grid.ParseDirection(" LEFT ")
	require.NoError(t, err)
	assert.Equal(t, grid.Left, got)

	_, err = grid.ParseDirection("sideways")
	assert.Error(t, err)
}
