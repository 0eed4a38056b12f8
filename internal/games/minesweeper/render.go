package minesweeper

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/minesweeper/mines"
)

const (
	hudHeight = 2
	cellWidth = 2
)

var numberColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the HUD and the board centered on the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	boardW := g.board.Width()*cellWidth + 3
	boardH := g.board.Height() + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight+1 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight+1), core.ColorGray)
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	frame := area.Centered(boardW, boardH)
	dst.DrawBox(frame, core.ColorGray)

	highlighted := lo.SliceToMap(g.highlight, func(p core.Point) (core.Point, bool) {
		return p, true
	})

	ox, oy := frame.X+1, frame.Y+1
	for _, c := range g.board.Cells() {
		glyph, color := g.glyph(c, highlighted[c.Pos])
		dst.SetCell(ox+c.Pos.X*cellWidth+1, oy+c.Pos.Y, core.Cell{Rune: glyph, Color: color, Bold: c.Exploded})
	}

	if !g.board.Status().Finished() {
		cx := ox + g.cursor.X*cellWidth
		cy := oy + g.cursor.Y
		dst.SetColored(cx, cy, '[', core.ColorBrightYellow)
		dst.SetColored(cx+2, cy, ']', core.ColorBrightYellow)
	}

	g.renderFooter(dst)
}

// glyph picks the character and color for a cell.
func (g *Game) glyph(c mines.Cell, highlighted bool) (rune, core.Color) {
	lost := g.board.Status() == mines.Lost

	switch {
	case c.Exploded:
		return '*', core.ColorBrightRed
	case lost && c.Misflagged:
		return 'X', core.ColorRed
	case c.State == mines.Flagged:
		return 'F', core.ColorBrightRed
	case lost && c.Mine:
		return '*', core.ColorWhite
	case c.State == mines.Questioned:
		return '?', core.ColorYellow
	case c.State == mines.Hidden && highlighted:
		return '-', core.ColorCyan
	case c.State == mines.Hidden:
		return '.', core.ColorGray
	case c.Adjacent == 0:
		return ' ', core.ColorDefault
	}
	return rune('0' + c.Adjacent), numberColors[c.Adjacent]
}

// face is the status indicator between the counters.
func (g *Game) face() string {
	switch g.board.Status() {
	case mines.Won:
		return "B)"
	case mines.Lost:
		return "X("
	}
	if g.highlightTicks > 0 {
		return ":o"
	}
	return ":)"
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Mines: %03d", g.board.RemainingMines())
	dst.DrawText(0, 0, left)

	face := g.face()
	faceColor := core.ColorBrightYellow
	if g.board.Status() == mines.Lost {
		faceColor = core.ColorBrightRed
	}
	dst.DrawTextColored((dst.Width()-len(face))/2, 0, face, faceColor)

	right := fmt.Sprintf("Time: %03d  Score: %d ", g.Elapsed(), g.score)
	dst.DrawText(dst.Width()-len(right), 0, right)

	dst.FillRect(core.NewRect(0, 1, dst.Width(), 1), '─', core.ColorGray)
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	switch {
	case g.board.Status() == mines.Won:
		dst.DrawTextCentered(y, fmt.Sprintf("Cleared in %ds! Score %d  R: new board  B: menu", g.Elapsed(), g.score), core.ColorBrightGreen)
	case g.board.Status() == mines.Lost:
		dst.DrawTextCentered(y, "Boom! R: new board  B: menu", core.ColorBrightRed)
	case g.paused:
		dst.DrawTextCentered(y, "Paused - P to continue", core.ColorYellow)
	default:
		dst.DrawTextCentered(y, "Arrows: move  Space: reveal  F: flag  C: chord  P: pause", core.ColorGray)
	}
}
