package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/destroy-the-flags/internal/core"
)

// Style returns the palette style for a color role, falling back to the
// default role for colors the theme does not set.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if st, ok := t.Palette[c]; ok {
		return st
	}
	return t.Palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen, theme Theme) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y, theme)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one screen row, one escape sequence per run of cells
// sharing a color.
func renderRow(s *core.Screen, y int, theme Theme) string {
	var sb, run strings.Builder
	runColor := core.ColorDefault
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(theme.Style(runColor).Render(run.String()))
			run.Reset()
		}
	}
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return sb.String()
}
