package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// palette maps core colors to ANSI 256 codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

type styleKey struct {
	color core.Color
	bold  bool
}

var styles = buildStyles()

func buildStyles() map[styleKey]lipgloss.Style {
	m := make(map[styleKey]lipgloss.Style, 2*(len(palette)+1))
	for _, bold := range []bool{false, true} {
		base := lipgloss.NewStyle().Bold(bold)
		m[styleKey{core.ColorDefault, bold}] = base
		for c, code := range palette {
			m[styleKey{c, bold}] = base.Foreground(lipgloss.Color(code))
		}
	}
	return m
}

func styleFor(c core.Cell) lipgloss.Style {
	if st, ok := styles[styleKey{c.Color, c.Bold}]; ok {
		return st
	}
	return styles[styleKey{core.ColorDefault, c.Bold}]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing color and weight are styled as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != first.Color || cell.Bold != first.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if first.Color == core.ColorDefault && !first.Bold {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(first).Render(run.String()))
		}
	}
	return sb.String()
}
