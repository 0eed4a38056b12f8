package mines

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// RevealResult lists the cells opened by one move, in the order they were
// opened.
type RevealResult struct {
	Opened  []Cell
	HitMine bool
}

// ChordResult is the outcome of a chord. When the flag count did not match,
// nothing was opened and Highlight names the hidden neighbours.
type ChordResult struct {
	Opened    []Cell
	HitMine   bool
	Highlight []core.Point
}

func (b *Board) start() {
	if b.status == NotStarted {
		b.status = InProgress
	}
}

// Reveal opens the cell at p. A zero cell opens its whole connected region
// and that region's numbered border. Flagged and already revealed cells are
// left alone; question marks do not protect a cell.
func (b *Board) Reveal(p core.Point) (RevealResult, error) {
	cell, err := b.checkMove(p)
	if err != nil {
		return RevealResult{}, err
	}
	if cell.State == Revealed || cell.State == Flagged {
		return RevealResult{}, nil
	}
	b.start()

	if cell.Mine {
		cell.State = Revealed
		cell.Exploded = true
		b.status = Lost
		return RevealResult{Opened: []Cell{*cell}, HitMine: true}, nil
	}

	opened := b.flood(b.grid.Index(p))
	if b.IsWon() {
		b.status = Won
	}
	return RevealResult{Opened: opened}, nil
}

// flood reveals start and spreads through zero cells with a FIFO worklist.
// Each index is queued at most once.
func (b *Board) flood(start int) []Cell {
	queued := map[int]bool{start: true}
	queue := []int{start}
	var opened []Cell

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		c := &b.cells[i]
		c.State = Revealed
		c.Adjacent = b.counts[i]
		b.revealed++
		opened = append(opened, *c)

		if c.Adjacent != 0 {
			continue
		}
		for _, n := range b.grid.Neighbors8(c.Pos) {
			j := b.grid.Index(n)
			if queued[j] {
				continue
			}
			nc := &b.cells[j]
			if nc.Mine || nc.State == Revealed || nc.State == Flagged {
				continue
			}
			queued[j] = true
			queue = append(queue, j)
		}
	}
	return opened
}

// ToggleFlag cycles a covered cell Hidden -> Flagged -> Questioned -> Hidden
// and returns the new state. Revealed cells do not change.
func (b *Board) ToggleFlag(p core.Point) (CellState, error) {
	cell, err := b.checkMove(p)
	if err != nil {
		return Hidden, err
	}
	b.start()

	switch cell.State {
	case Hidden:
		cell.State = Flagged
		b.flagged++
	case Flagged:
		cell.State = Questioned
		b.flagged--
	case Questioned:
		cell.State = Hidden
	}
	return cell.State, nil
}

// Chord opens every hidden neighbour of a revealed number once the number
// of flags around it matches. Question-marked neighbours are not opened.
// Opening stops at the first mine.
func (b *Board) Chord(p core.Point) (ChordResult, error) {
	cell, err := b.checkMove(p)
	if err != nil {
		return ChordResult{}, err
	}
	if cell.State != Revealed || cell.Adjacent <= 0 {
		return ChordResult{}, fmt.Errorf("mines: chord at %v: %w", p, ErrNotChordable)
	}

	neighbours := b.grid.Neighbors8(p)
	flags := lo.CountBy(neighbours, func(n core.Point) bool {
		return b.cells[b.grid.Index(n)].State == Flagged
	})
	hidden := lo.Filter(neighbours, func(n core.Point, _ int) bool {
		return b.cells[b.grid.Index(n)].State == Hidden
	})

	if flags != cell.Adjacent {
		return ChordResult{Highlight: hidden}, nil
	}

	var res ChordResult
	for _, n := range hidden {
		r, err := b.Reveal(n)
		if err != nil {
			return res, err
		}
		res.Opened = append(res.Opened, r.Opened...)
		if r.HitMine {
			res.HitMine = true
			break
		}
		if b.status == Won {
			break
		}
	}
	return res, nil
}

// ExposeMines marks misplaced flags on a lost board and returns every mine
// together with those mis-flags, row-major. It returns nil unless the game
// was lost.
func (b *Board) ExposeMines() []Cell {
	if b.status != Lost {
		return nil
	}
	for i := range b.cells {
		c := &b.cells[i]
		if c.State == Flagged && !c.Mine {
			c.Misflagged = true
		}
	}
	return lo.Filter(b.cells, func(c Cell, _ int) bool {
		return c.Mine || c.Misflagged
	})
}
