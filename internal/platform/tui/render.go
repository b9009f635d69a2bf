package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer converts Screen buffers to styled strings for one output.
// Styles are built once per color and cached.
type Renderer struct {
	lg     *lipgloss.Renderer
	mu     sync.Mutex
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer for the given lipgloss renderer.
// A nil renderer uses the process default (stdout).
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

var defaultRenderer = NewRenderer(nil)

// style returns the cached style for a cell color.
func (r *Renderer) style(c core.Color) lipgloss.Style {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.styles[c]; ok {
		return s
	}

	s := r.lg.NewStyle()
	switch {
	case c.IsRGB():
		s = s.Foreground(lipgloss.Color(c.RGB().Hex()))
	case c != core.ColorDefault:
		if code, ok := c.ANSI(); ok {
			s = s.Foreground(lipgloss.Color(strconv.Itoa(code)))
		}
	}
	r.styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the process default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultRenderer.RenderScreen(s)
}

