package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// ScreenRenderer turns a Screen buffer into styled terminal output.
// Styles are cached per colour pair. Not safe for concurrent use; each
// program owns one.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[styleKey]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// default one for stdout; SSH sessions pass their own.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		r:      r,
		styles: make(map[styleKey]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(k styleKey) lipgloss.Style {
	if st, ok := sr.styles[k]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if k.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(k.bg))
	}
	sr.styles[k] = st
	return st
}

// Render groups adjacent cells with the same colours to minimize ANSI
// escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != k.fg || cell.Bg != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if k == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(k).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}

