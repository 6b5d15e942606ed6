package t2048

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme picks the board palette. Tiles share one hue and get darker as
// they grow.
type Theme struct {
	Hue        float64 // degrees
	Saturation float64 // percent
}

// DefaultTheme returns the blue-grey palette.
func DefaultTheme() Theme {
	return Theme{Hue: 200, Saturation: 50}
}

// TileLightness returns the background lightness percent for a value.
func TileLightness(value int) float64 {
	if value <= 0 {
		return 100
	}
	l := 100 - math.Log2(float64(value))*9
	return math.Max(0, l)
}

// TileColors returns the text and background colours for a tile.
func (t Theme) TileColors(value int) (fg, bg core.Color) {
	l := TileLightness(value)
	textL := 10.0
	if l <= 50 {
		textL = 90
	}
	return t.hsl(textL), t.hsl(l)
}

// BoardColor is the gap colour between cells.
func (t Theme) BoardColor() core.Color {
	return hslColor(t.Hue, 0, 80)
}

// EmptyColor is the background of an empty cell.
func (t Theme) EmptyColor() core.Color {
	return hslColor(t.Hue, 0, 67)
}

func (t Theme) hsl(lightness float64) core.Color {
	return hslColor(t.Hue, t.Saturation, lightness)
}

func hslColor(h, s, l float64) core.Color {
	return core.Color(colorful.Hsl(h, s/100, l/100).Clamped().Hex())
}
