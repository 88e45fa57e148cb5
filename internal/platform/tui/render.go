package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
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

// tileText is the text color drawn on top of a filled cell.
const tileText = lipgloss.Color("0")

// runKey identifies cells that render with the same style.
type runKey struct {
	color core.Color
	attr  core.Attr
}

// cellStyle builds the lipgloss style for a color and attribute set.
// Reversed cells are filled with the color and drawn with dark text, so
// tiles read as solid blocks.
func cellStyle(c core.Color, a core.Attr) lipgloss.Style {
	style := lipgloss.NewStyle()
	fg, ok := palette[c]

	switch {
	case a.Has(core.AttrReverse) && ok:
		style = style.Background(fg).Foreground(tileText)
	case a.Has(core.AttrReverse):
		style = style.Reverse(true)
	case ok:
		style = style.Foreground(fg)
	}

	if a.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if a.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing color and attributes are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[runKey]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := runKey{color: first.Color, attr: first.Attr}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != key.color || cell.Attr != key.attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (runKey{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[key]
			if !ok {
				style = cellStyle(key.color, key.attr)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
