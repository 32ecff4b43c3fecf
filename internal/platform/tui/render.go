package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flippity/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
// ColorDefault is absent so it leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:  lipgloss.Color("16"),
	core.ColorRed:    lipgloss.Color("196"),
	core.ColorYellow: lipgloss.Color("226"),
	core.ColorNavy:   lipgloss.Color("17"),
	core.ColorWhite:  lipgloss.Color("231"),
}

type cellStyle struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings for one renderer.
// Each SSH session gets its own Painter so colors follow the client terminal.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewPainter creates a painter for the given renderer.
// A nil renderer uses the process-wide default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

// style returns the cached style for a color pair.
func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	k := cellStyle{fg: fg, bg: bg}
	if st, ok := p.styles[k]; ok {
		return st
	}

	st := p.renderer.NewStyle()
	if c, ok := palette[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		st = st.Background(c)
	}
	p.styles[k] = st
	return st
}

// Paint converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
