package match3

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// SwapOutcome reports what a swap did. Accepted is true when the two gems
// were exchanged (and possibly bounced back); Matched is true when the
// exchange produced a run, which is then pending for ResolveMatches.
type SwapOutcome struct {
	Accepted bool
	Matched  bool
	Match    Match
}

// ResolutionResult reports one resolution step.
type ResolutionResult struct {
	Removed int
	Reward  int
	Match   Match
}

// findMatch scans rows top to bottom, left to right, then columns left to
// right, top to bottom, and returns the first run accepted by keep. A nil
// keep accepts any run.
func findMatch(g core.Grid, typeAt func(core.Point) GemType, keep func(Match) bool) (Match, bool) {
	accept := func(m Match) bool { return keep == nil || keep(m) }
	for y := 0; y < g.H; y++ {
		for x := 0; x+RunLength <= g.W; x++ {
			if t, ok := run(typeAt, core.Pt(x, y), core.Pt(1, 0)); ok {
				if m := (Match{Type: t, Start: core.Pt(x, y), Horizontal: true}); accept(m) {
					return m, true
				}
			}
		}
	}
	for x := 0; x < g.W; x++ {
		for y := 0; y+RunLength <= g.H; y++ {
			if t, ok := run(typeAt, core.Pt(x, y), core.Pt(0, 1)); ok {
				if m := (Match{Type: t, Start: core.Pt(x, y)}); accept(m) {
					return m, true
				}
			}
		}
	}
	return Match{}, false
}

// covering accepts runs that pass through any of cells.
func covering(cells ...core.Point) func(Match) bool {
	return func(m Match) bool {
		return lo.Some(m.Cells(), cells)
	}
}

func run(typeAt func(core.Point) GemType, start, step core.Point) (GemType, bool) {
	t := typeAt(start)
	if t == Empty {
		return Empty, false
	}
	p := start
	for i := 1; i < RunLength; i++ {
		p = p.Add(step)
		if typeAt(p) != t {
			return Empty, false
		}
	}
	return t, true
}

// FindMatch returns the first run on the board, rows before columns.
func (b *Board) FindMatch() (Match, bool) {
	return findMatch(b.grid, b.Type, nil)
}

// matchThrough returns the first run that passes through a or c.
func (b *Board) matchThrough(a, c core.Point) (Match, bool) {
	return findMatch(b.grid, b.Type, covering(a, c))
}

// TrySwap exchanges the gems at a and b. Only runs through one of the two
// cells count. Without such a run the board is restored and the gems bounce back; with one the run is held for
// ResolveMatches. Swapping a cell with itself does nothing.
func (b *Board) TrySwap(a, c core.Point) (SwapOutcome, error) {
	if !b.grid.InBounds(a) || !b.grid.InBounds(c) {
		return SwapOutcome{}, fmt.Errorf("match3: swap %v-%v: %w", a, c, core.ErrOutOfBounds)
	}
	if a == c {
		return SwapOutcome{}, nil
	}
	if !a.Adjacent(c) {
		return SwapOutcome{}, fmt.Errorf("match3: swap %v-%v: %w", a, c, ErrNotAdjacent)
	}
	if !b.IsSettled() {
		return SwapOutcome{}, ErrSwapInFlight
	}

	ga, gc := b.gems[b.grid.Index(a)], b.gems[b.grid.Index(c)]
	b.exchange(a, c)

	m, found := b.matchThrough(a, c)
	if !found {
		b.exchange(a, c)
		ga.moveTo(b.rest(c), b.rest(a))
		gc.moveTo(b.rest(a), b.rest(c))
		return SwapOutcome{Accepted: true}, nil
	}

	ga.moveTo(b.rest(c))
	gc.moveTo(b.rest(a))
	b.pending = &m
	return SwapOutcome{Accepted: true, Matched: true, Match: m}, nil
}

// exchange swaps the gems at two cells without animating them.
func (b *Board) exchange(a, c core.Point) {
	ia, ic := b.grid.Index(a), b.grid.Index(c)
	b.gems[ia], b.gems[ic] = b.gems[ic], b.gems[ia]
	if g := b.gems[ia]; g != nil {
		g.Cell = a
	}
	if g := b.gems[ic]; g != nil {
		g.Cell = c
	}
}

// ResolveMatches removes one run, lets the affected columns fall and drops
// new gems in from above. It returns a zero result when no run exists.
// Callers repeat it until Removed is zero to play out cascades.
func (b *Board) ResolveMatches() ResolutionResult {
	var m Match
	if b.pending != nil {
		m = *b.pending
		b.pending = nil
	} else {
		var found bool
		if m, found = b.FindMatch(); !found {
			return ResolutionResult{}
		}
	}

	cells := m.Cells()
	for _, p := range cells {
		b.gems[b.grid.Index(p)] = nil
	}

	columns := lo.Uniq(lo.Map(cells, func(p core.Point, _ int) int { return p.X }))
	for _, x := range columns {
		b.collapse(x)
	}

	return ResolutionResult{Removed: len(cells), Reward: b.cfg.Reward, Match: m}
}

// collapse moves the gems of column x down over empty cells, keeping their
// order, and fills the vacated top cells with new gems falling from above.
func (b *Board) collapse(x int) {
	write := b.cfg.Size - 1
	for y := b.cfg.Size - 1; y >= 0; y-- {
		p := core.Pt(x, y)
		g := b.gems[b.grid.Index(p)]
		if g == nil {
			continue
		}
		if y != write {
			dst := core.Pt(x, write)
			b.gems[b.grid.Index(p)] = nil
			b.gems[b.grid.Index(dst)] = g
			g.Cell = dst
			g.moveTo(b.rest(dst))
		}
		write--
	}

	missing := write + 1
	for y := 0; y < missing; y++ {
		p := core.Pt(x, y)
		target := b.rest(p)
		g := &Gem{
			Type: b.randomType(),
			Cell: p,
			Pos:  core.Pt(target.X, (y-missing)*b.cfg.CellSize),
		}
		g.moveTo(target)
		b.gems[b.grid.Index(p)] = g
	}
}

// HasLegalMove reports whether some adjacent swap would produce a run.
func (b *Board) HasLegalMove() bool {
	type pair struct{ a, c core.Point }
	var pairs []pair
	for i := 0; i < b.grid.Size(); i++ {
		p := b.grid.At(i)
		for _, d := range [...]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}} {
			if q := p.Add(d); b.grid.InBounds(q) {
				pairs = append(pairs, pair{p, q})
			}
		}
	}
	return lo.ContainsBy(pairs, func(s pair) bool {
		ia, ic := b.grid.Index(s.a), b.grid.Index(s.c)
		b.gems[ia], b.gems[ic] = b.gems[ic], b.gems[ia]
		_, found := b.matchThrough(s.a, s.c)
		b.gems[ia], b.gems[ic] = b.gems[ic], b.gems[ia]
		return found
	})
}

// maxRegenerateAttempts bounds the search for a board with a legal move.
const maxRegenerateAttempts = 1000

// Regenerate replaces every gem with a fresh run-free board that offers at
// least one legal move when one can be found. The new gems fall in from
// above like a new board.
func (b *Board) Regenerate() {
	for range maxRegenerateAttempts {
		b.fill()
		if b.HasLegalMove() {
			return
		}
	}
}
