package match3

import "github.com/vovakirdan/grid-arcade/internal/core"

// moveTo queues waypoints for the gem and marks it as moving.
func (g *Gem) moveTo(waypoints ...core.Point) {
	g.path = append(g.path[:0], waypoints...)
	g.Fixed = len(g.path) == 0
}

// advance moves the gem up to speed units toward its next waypoint and
// snaps onto it on arrival.
func (g *Gem) advance(speed int) {
	if len(g.path) == 0 {
		g.Fixed = true
		return
	}
	target := g.path[0]
	dx, dy := target.X-g.Pos.X, target.Y-g.Pos.Y
	g.Pos.X += core.Sign(dx) * min(core.Abs(dx), speed)
	g.Pos.Y += core.Sign(dy) * min(core.Abs(dy), speed)
	if g.Pos == target {
		g.path = g.path[1:]
		g.Fixed = len(g.path) == 0
	}
}

// Step advances every moving gem by one tick and reports whether the board
// has come to rest.
func (b *Board) Step() bool {
	for _, g := range b.gems {
		if g != nil && !g.Fixed {
			g.advance(b.cfg.Speed)
		}
	}
	return b.IsSettled()
}

// Settle steps until the board rests or maxTicks have passed.
func (b *Board) Settle(maxTicks int) bool {
	for range maxTicks {
		if b.Step() {
			return true
		}
	}
	return b.IsSettled()
}

// IsSettled reports whether every gem rests on its cell.
func (b *Board) IsSettled() bool {
	for _, g := range b.gems {
		if g != nil && !g.Fixed {
			return false
		}
	}
	return true
}
