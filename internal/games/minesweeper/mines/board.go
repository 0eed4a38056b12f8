// Package mines implements the Minesweeper board: mine placement, the cell
// reveal state machine, flood fill, flag cycling, chording and win/loss
// detection. It knows nothing about rendering or input devices.
package mines

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// CellState is the visible state of a cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
	Questioned
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Status is the lifecycle of a board.
type Status uint8

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Finished reports whether the board accepts no more moves.
func (s Status) Finished() bool {
	return s == Won || s == Lost
}

var (
	// ErrFrozen is returned for any move on a won or lost board.
	ErrFrozen = fmt.Errorf("board is finished: %w", core.ErrIllegalMove)

	// ErrNotChordable is returned when chording a cell that is not a
	// revealed number.
	ErrNotChordable = fmt.Errorf("cell is not a revealed number: %w", core.ErrIllegalMove)
)

// Cell is a snapshot of one board position.
type Cell struct {
	Pos   core.Point
	Mine  bool
	State CellState

	// Adjacent is the number of mined neighbours. It is -1 until the cell
	// has been revealed.
	Adjacent int

	Exploded   bool // the mine that ended the game
	Misflagged bool // a flag on a safe cell, marked after a loss
}

// Config describes a board to generate.
type Config struct {
	Width  int
	Height int
	Mines  int
}

// Validate reports whether cfg can produce a board.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("mines: board %dx%d: %w", c.Width, c.Height, core.ErrInvalidConfig)
	}
	if c.Mines < 0 || c.Mines >= c.Width*c.Height {
		return fmt.Errorf("mines: %d mines on %d cells: %w", c.Mines, c.Width*c.Height, core.ErrInvalidConfig)
	}
	return nil
}

// Board is a Minesweeper grid. It is not safe for concurrent use.
type Board struct {
	grid   core.Grid
	cells  []Cell
	counts []int // mined neighbours per cell, fixed at creation
	mines  int
	status Status

	revealed int // safe cells revealed
	flagged  int
}

// New places cfg.Mines mines uniformly at random over the whole grid.
// The first reveal is not exempt: it may land on a mine.
func New(cfg Config, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.Grid{W: cfg.Width, H: cfg.Height}
	perm := rng.Perm(grid.Size())
	positions := lo.Map(perm[:cfg.Mines], func(i int, _ int) core.Point {
		return grid.At(i)
	})
	return build(grid, positions), nil
}

// NewWithMines builds a board with mines at exactly the given positions.
func NewWithMines(width, height int, mines []core.Point) (*Board, error) {
	if err := (Config{Width: width, Height: height, Mines: len(mines)}).Validate(); err != nil {
		return nil, err
	}
	grid := core.Grid{W: width, H: height}
	for _, p := range mines {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("mines: mine at %v outside %dx%d: %w", p, width, height, core.ErrInvalidConfig)
		}
	}
	if dup := lo.FindDuplicates(mines); len(dup) > 0 {
		return nil, fmt.Errorf("mines: duplicate mine at %v: %w", dup[0], core.ErrInvalidConfig)
	}
	return build(grid, mines), nil
}

func build(grid core.Grid, mines []core.Point) *Board {
	b := &Board{
		grid:   grid,
		cells:  make([]Cell, grid.Size()),
		counts: make([]int, grid.Size()),
		mines:  len(mines),
	}
	for i := range b.cells {
		b.cells[i] = Cell{Pos: grid.At(i), Adjacent: -1}
	}
	for _, p := range mines {
		b.cells[grid.Index(p)].Mine = true
		for _, n := range grid.Neighbors8(p) {
			b.counts[grid.Index(n)]++
		}
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.W }

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.H }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mines }

// Status returns the board lifecycle state.
func (b *Board) Status() Status { return b.status }

// RevealedCount returns how many safe cells are revealed.
func (b *Board) RevealedCount() int { return b.revealed }

// FlaggedCount returns how many cells carry a flag.
func (b *Board) FlaggedCount() int { return b.flagged }

// RemainingMines is the mine counter shown to the player: mines minus
// flags, never below zero.
func (b *Board) RemainingMines() int {
	return max(b.mines-b.flagged, 0)
}

// IsWon reports whether every safe cell has been revealed.
func (b *Board) IsWon() bool {
	return b.status != Lost && b.revealed == b.grid.Size()-b.mines
}

// Cell returns a snapshot of the cell at p.
func (b *Board) Cell(p core.Point) (Cell, error) {
	if !b.grid.InBounds(p) {
		return Cell{}, fmt.Errorf("mines: cell %v: %w", p, core.ErrOutOfBounds)
	}
	return b.cells[b.grid.Index(p)], nil
}

// Cells returns a row-major copy of every cell.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// checkMove validates a mutating call at p.
func (b *Board) checkMove(p core.Point) (*Cell, error) {
	if !b.grid.InBounds(p) {
		return nil, fmt.Errorf("mines: move at %v: %w", p, core.ErrOutOfBounds)
	}
	if b.status.Finished() {
		return nil, ErrFrozen
	}
	return &b.cells[b.grid.Index(p)], nil
}

