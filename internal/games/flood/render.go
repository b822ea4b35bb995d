package flood

import (
	"fmt"

	"github.com/dchistyakov/flood-tui/internal/core"
)

const tileWidth = 2 // each tile renders as two block characters

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.board.Width * tileWidth
	boardX := (g.screenW - boardW) / 2
	boardY := 3

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderPalette(dst, boardY+g.board.Height+1)
	g.renderOverlays(dst, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title line and the level/score/moves line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	left := fmt.Sprintf("Level %d", g.level)
	dst.DrawText(boardX, 1, left)

	right := fmt.Sprintf("Score %d  Moves %d", g.board.Score, g.board.Moves)
	rightX := boardX + boardW - len(right)
	if rightX < boardX+len(left)+2 {
		rightX = boardX + len(left) + 2
	}
	dst.DrawText(rightX, 1, right)
}

// renderBoard draws the tile grid. Region tiles use a solid block, the rest
// a slightly dimmer one, so the flooded area reads at a glance.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			r := '▒'
			if g.board.Region.Has(Coord{X: x, Y: y}) {
				r = '█'
			}
			color := core.PaletteColor(int(g.board.At(x, y)))
			for i := 0; i < tileWidth; i++ {
				dst.SetColored(boardX+x*tileWidth+i, boardY+y, r, color)
			}
		}
	}
}

// renderPalette draws the selectable colors with their digit labels and the
// cursor brackets.
func (g *Game) renderPalette(dst *core.Screen, y int) {
	paletteW := g.board.Colors * 4
	x := (g.screenW - paletteW) / 2

	for i := 0; i < g.board.Colors; i++ {
		cx := x + i*4
		if i == g.cursor {
			dst.Set(cx, y, '[')
			dst.Set(cx+3, y, ']')
		}
		color := core.PaletteColor(i)
		dst.SetColored(cx+1, y, '█', color)
		dst.SetColored(cx+2, y, '█', color)
		if i < 9 {
			dst.Set(cx+1, y+1, rune('1'+i))
		}
	}
}

// renderOverlays draws pause and level-complete banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardY int) {
	y := boardY + g.board.Height/2

	switch {
	case g.paused:
		dst.DrawTextCentered(y, " PAUSED ")
	case g.board.Finished:
		dst.DrawTextCentered(y, " Board complete! ")
		if g.mode == ModeZen {
			dst.DrawTextCentered(y+1, " Enter for a fresh board ")
		} else {
			next := fmt.Sprintf(" Enter for level %d (%dx%d) ", g.level+1, g.board.Width+1, g.board.Height+1)
			dst.DrawTextCentered(y+1, next)
		}
	}
}
