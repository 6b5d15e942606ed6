package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

const (
	tileW     = 7
	tileH     = 3
	tileGap   = 1
	hudHeight = 3

	boardW = grid.Size*tileW + (grid.Size+1)*tileGap
	boardH = grid.Size*tileH + (grid.Size+1)*tileGap

	minScreenW = boardW + 2
	minScreenH = boardH + hudHeight + 1
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.ctrl == nil {
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorOrange, core.ColorDefault)

	moves := fmt.Sprintf("Moves: %d", g.ctrl.Moves())
	dst.DrawText(boardX, 1, moves)

	best := fmt.Sprintf("Max: %d", g.ctrl.Grid().MaxTile())
	dst.DrawText(boardX+boardW-len(best), 1, best)
}

// cellOrigin converts a (possibly fractional) board position to screen cells.
func cellOrigin(boardX, boardY int, x, y float32) (int, int) {
	px := boardX + tileGap + int(math.Round(float64(x)*(tileW+tileGap)))
	py := boardY + tileGap + int(math.Round(float64(y)*(tileH+tileGap)))
	return px, py
}

func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	th := g.opts.Theme
	dst.FillRect(core.NewRect(boardX, boardY, boardW, boardH), core.Cell{Rune: ' ', Bg: th.BoardColor()})

	cells := g.ctrl.Grid().Cells()
	for _, c := range cells {
		px, py := cellOrigin(boardX, boardY, float32(c.X()), float32(c.Y()))
		dst.FillRect(core.NewRect(px, py, tileW, tileH), core.Cell{Rune: ' ', Bg: th.EmptyColor()})
	}

	// Resting tiles first so sliding ones pass over them.
	var moving []*grid.Tile
	for _, c := range cells {
		for _, t := range []*grid.Tile{c.Tile(), c.MergeTile()} {
			if t == nil {
				continue
			}
			if _, _, ok := g.anim.position(t); ok {
				moving = append(moving, t)
				continue
			}
			x, y := t.Position()
			g.drawTile(dst, t, boardX, boardY, float32(x), float32(y))
		}
	}
	for _, t := range moving {
		x, y, _ := g.anim.position(t)
		g.drawTile(dst, t, boardX, boardY, x, y)
	}
}

func (g *Game) drawTile(dst *core.Screen, t *grid.Tile, boardX, boardY int, x, y float32) {
	px, py := cellOrigin(boardX, boardY, x, y)
	fg, bg := g.opts.Theme.TileColors(t.Value())

	w, h := tileW, tileH
	if s, ok := g.anim.scale(t); ok {
		s = float32(math.Min(float64(s), 1))
		w = core.Clamp(int(math.Round(float64(tileW*s))), 1, tileW)
		h = core.Clamp(int(math.Round(float64(tileH*s))), 1, tileH)
	}
	dst.FillRect(core.NewRect(px+(tileW-w)/2, py+(tileH-h)/2, w, h), core.Cell{Rune: ' ', Bg: bg})

	text := strconv.Itoa(t.Value())
	if len(text) <= w {
		dst.DrawTextColored(px+(tileW-len(text))/2, py+tileH/2, text, fg, bg)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch {
	case g.paused:
		drawOverlay(dst, centerX, centerY, core.ColorYellow, "PAUSED", "Press P to resume")
	case g.gameOver:
		drawOverlay(dst, centerX, centerY, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", g.ctrl.Grid().MaxTile()),
			fmt.Sprintf("Moves: %d", g.ctrl.Moves()),
			"Press R to restart")
	case g.showWin:
		drawOverlay(dst, centerX, centerY, core.ColorGreen,
			"YOU WIN!",
			fmt.Sprintf("%d reached", g.opts.WinTile),
			"Slide to keep going",
			"Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func drawOverlay(dst *core.Screen, centerX, centerY int, accent core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, accent)

	for i, line := range lines {
		fg := core.ColorDefault
		if i == 0 {
			fg = accent
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, fg, core.ColorDefault)
	}
}

