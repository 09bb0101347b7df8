package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shapematch/internal/core"
)

type styleKey struct {
	color core.Color
	bold  bool
}

// Renderer converts Screen buffers to styled strings, caching one
// lipgloss style per color and weight.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !k.color.IsDefault() {
		st = st.Foreground(lipgloss.Color(k.color.Hex()))
	}
	if k.bold {
		st = st.Bold(true)
	}
	r.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{color: cell.Color, bold: cell.Bold}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{color: cell.Color, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with a fresh style cache.
func RenderScreen(s *core.Screen) string {
	return NewRenderer().Render(s)
}
