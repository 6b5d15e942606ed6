package core

// Color is a terminal colour understood by the platform renderer.
// It holds either an ANSI code ("1", "208") or a hex value ("#aabbcc").
// The empty Color means the terminal default.
type Color string

// Named colours used by HUD and overlay drawing.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorYellow  Color = "3"
	ColorCyan    Color = "6"
	ColorWhite   Color = "7"
	ColorOrange  Color = "208"
	ColorGray    Color = "245"
	ColorDimGray Color = "238"
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the cell used when clearing the screen.
var blank = Cell{Rune: ' '}
