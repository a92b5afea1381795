package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/textris/internal/config"
	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/tetris"
)

// boardStyle frames the playfield.
var boardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(c core.Color) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = lipgloss.NewStyle()
			if c != core.ColorDefault {
				st = st.Foreground(lipgloss.Color(string(c)))
			}
			styles[c] = st
		}
		return st
	}

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

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// DrawBoard draws the game grid into dst at the top-left corner using the
// same layout as the text protocol: one marker per cell, space separated.
// Cells of the falling piece use the active color, all other occupied
// cells the locked color. Only an active piece is highlighted: once a
// move or rotation ends in a landing the current cells no longer match
// the rendered grid.
func DrawBoard(dst *core.Screen, game *tetris.Game, display config.DisplayConfig) {
	grid := game.Grid()
	active := make(map[int]bool, 4)
	if game.State() == tetris.StatePieceActive {
		for _, idx := range game.Cells() {
			active[idx] = true
		}
	}

	empty := display.EmptyRune()
	filled := display.FilledRune()

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			idx := row*grid.Cols() + col
			x := col * 2

			switch {
			case grid.At(idx) != tetris.CellOccupied:
				dst.SetColored(x, row, empty, core.ColorGray)
			case active[idx]:
				dst.SetColored(x, row, filled, core.Color(display.ActiveColor))
			default:
				dst.SetColored(x, row, filled, core.Color(display.LockedColor))
			}
		}
	}
}

// boardScreenSize returns the screen size needed for a board.
func boardScreenSize(game *tetris.Game) (int, int) {
	return game.Width()*2 - 1, game.Height()
}
