package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColors cycles through the palette as tiles grow.
var tileColors = []core.Color{
	core.ColorWhite,        // 2
	core.ColorBrightWhite,  // 4
	core.ColorYellow,       // 8
	core.ColorOrange,       // 16
	core.ColorRed,          // 32
	core.ColorBrightRed,    // 64
	core.ColorBrightYellow, // 128
	core.ColorGreen,        // 256
	core.ColorBrightGreen,  // 512
	core.ColorCyan,         // 1024
	core.ColorBrightCyan,   // 2048
	core.ColorBlue,         // 4096
	core.ColorBrightBlue,   // 8192
	core.ColorMagenta,      // 16384
	core.ColorBrightMagenta,
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorDefault
	}
	exp := 0
	for v := value; v > 2; v >>= 1 {
		exp++
	}
	return tileColors[exp%len(tileColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "Cannot start game"
		dst.DrawTextCentered(g.screenH/2, msg)
		if g.err != nil {
			dst.DrawTextCentered(g.screenH/2+1, g.err.Error())
		}
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.boardSize()
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)

	dst.DrawTextCentered(boardY+boardH+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score, best score and target.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	s := g.session

	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", s.Score()))

	best := fmt.Sprintf("Best: %d", s.HighScore())
	bestX := boardX + boardW - len(best)
	if bestX < boardX {
		bestX = boardX
	}
	dst.DrawText(bestX, 1, best)

	info := fmt.Sprintf("Target: %d", s.Target())
	if s.Won() {
		info = fmt.Sprintf("%d reached! Keep going", s.Target())
	}
	dst.DrawTextColored(boardX, 2, info, TileColor(s.Target()))

	if s.AllowUndo() {
		undo := "Undo: -"
		if s.CanUndo() {
			undo = "Undo: U"
		}
		dst.DrawText(boardX+boardW-len(undo), 2, undo)
	}
}

// renderBoard draws the grid with tiles. Tiles merged or spawned on the
// last move are highlighted.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.boardSize()

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for _, tile := range g.session.Tiles() {
		cellX := boardX + tile.Col*cellWidth + 1
		cellY := boardY + tile.Row*cellHeight + 1
		dst.DrawTextStyled(cellX, cellY, tileLabel(tile.Value), TileColor(tile.Value), TileAttr(tile))
	}
}

// tileLabel centers a value in the inner width of a board cell.
func tileLabel(value int) string {
	label := strconv.Itoa(value)
	inner := cellWidth - 1
	if len(label) >= inner {
		return label[:inner]
	}
	left := (inner - len(label)) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", inner-len(label)-left)
}

// TileAttr returns how a tile is drawn: every tile is a filled block,
// merged tiles are bold and new tiles underlined.
func TileAttr(t Tile) core.Attr {
	attr := core.AttrReverse
	if t.Merged {
		attr |= core.AttrBold
	}
	if t.New {
		attr |= core.AttrUnderline
	}
	return attr
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.session.GameOver() {
		maxStr := fmt.Sprintf("Max tile: %d", g.session.grid.MaxTile())
		lines := []string{"GAME OVER", maxStr, "Press R to restart"}
		if g.session.CanUndo() {
			lines = append(lines, "or U to undo")
		}
		g.drawOverlay(dst, centerX, centerY, lines...)
		return
	}

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | U: Undo | P: Pause | R: Restart | Q: Quit"
}
