package gemgem

import (
	"fmt"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/gemgem/match3"
)

const (
	hudHeight = 2
	cellW     = 4
	cellH     = 2
)

type gemLook struct {
	glyph rune
	color core.Color
}

var gemLooks = [...]gemLook{
	{'@', core.ColorBrightRed},
	{'#', core.ColorBrightGreen},
	{'$', core.ColorBrightYellow},
	{'%', core.ColorBrightBlue},
	{'&', core.ColorBrightMagenta},
	{'*', core.ColorBrightCyan},
	{'+', core.ColorOrange},
	{'=', core.ColorWhite},
	{'~', core.ColorGray},
}

func lookFor(t match3.GemType) gemLook {
	if t < 0 {
		return gemLook{' ', core.ColorDefault}
	}
	return gemLooks[int(t)%len(gemLooks)]
}

// Render draws the HUD, the board and the indicators.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	size := g.board.Size()
	frameW, frameH := size*cellW+2, size*cellH+2
	if dst.Width() < frameW || dst.Height() < frameH+hudHeight+1 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	frame := area.Centered(frameW, frameH)
	dst.DrawBox(frame, core.ColorGray)
	inner := core.NewRect(frame.X+1, frame.Y+1, size*cellW, size*cellH)

	unit := g.cfg.Board.CellSize
	for _, gem := range g.board.Gems() {
		// gems still above the board are not drawn
		if gem.Pos.Y < 0 {
			continue
		}
		x := inner.X + gem.Pos.X*cellW/unit
		y := inner.Y + gem.Pos.Y*cellH/unit
		look := lookFor(gem.Type)
		dst.SetColored(x+1, y, look.glyph, look.color)
		dst.SetColored(x+2, y, look.glyph, look.color)
	}

	if g.selected != nil {
		g.drawMarker(dst, inner, *g.selected, '<', '>', core.ColorBrightGreen)
	}
	if !g.gameOver {
		g.drawMarker(dst, inner, g.cursor, '[', ']', core.ColorBrightYellow)
	}

	for _, f := range g.floaters {
		rise := (floaterTicks - f.ticks) / 5
		x := inner.X + f.cell.X*cellW
		y := inner.Y + f.cell.Y*cellH - rise
		if y >= inner.Y {
			dst.DrawTextColored(x, y, f.text, core.ColorBrightWhite)
		}
	}

	g.renderFooter(dst)
}

func (g *Game) drawMarker(dst *core.Screen, inner core.Rect, p core.Point, l, r rune, c core.Color) {
	x := inner.X + p.X*cellW
	y := inner.Y + p.Y*cellH
	dst.SetColored(x, y, l, c)
	dst.SetColored(x+cellW-1, y, r, c)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf(" Gemgem  Score: %d", g.score))

	secs := g.SecondsLeft()
	timer := fmt.Sprintf("Time left: %d:%02d ", secs/60, secs%60)
	color := core.ColorDefault
	if secs <= 10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(timer), 0, timer, color)

	dst.FillRect(core.NewRect(0, 1, dst.Width(), 1), '─', core.ColorGray)
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	switch {
	case g.gameOver:
		dst.DrawTextCentered(y, fmt.Sprintf("Time up! Final score %d  R: play again  B: menu", g.score), core.ColorBrightYellow)
	case g.paused:
		dst.DrawTextCentered(y, "Paused - P to continue", core.ColorYellow)
	default:
		dst.DrawTextCentered(y, "Arrows: move  Space: pick/swap  P: pause  R: restart", core.ColorGray)
	}
}
