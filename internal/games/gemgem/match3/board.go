// Package match3 implements a gem swap board: generation without initial
// runs, adjacent swaps, run detection, column gravity with refill, and the
// per-tick movement of gems between cells.
package match3

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// GemType identifies a gem kind, 0 to GemTypes-1.
type GemType int8

// Empty marks a cell whose gem has been removed.
const Empty GemType = -1

// RunLength is the number of equal gems that form a match.
const RunLength = 3

var (
	// ErrNotAdjacent is returned when swapping cells that do not share an edge.
	ErrNotAdjacent = fmt.Errorf("cells are not adjacent: %w", core.ErrIllegalMove)

	// ErrSwapInFlight is returned when swapping while gems are still moving.
	ErrSwapInFlight = fmt.Errorf("gems are still moving: %w", core.ErrIllegalMove)
)

// Config describes a board.
type Config struct {
	Size     int // cells per side
	GemTypes int // distinct gem kinds
	CellSize int // movement units per cell
	Speed    int // movement units per tick
	Reward   int // points per resolved run
}

// Validate reports whether cfg can produce a board.
func (c Config) Validate() error {
	switch {
	case c.Size < RunLength:
		return fmt.Errorf("match3: size %d: %w", c.Size, core.ErrInvalidConfig)
	case c.GemTypes < 4:
		return fmt.Errorf("match3: %d gem types: %w", c.GemTypes, core.ErrInvalidConfig)
	case c.CellSize <= 0 || c.Speed <= 0:
		return fmt.Errorf("match3: cell size %d speed %d: %w", c.CellSize, c.Speed, core.ErrInvalidConfig)
	}
	return nil
}

// Gem is a gem on the board. Pos is its movement position in units, with
// cell (x, y) resting at (x*CellSize, y*CellSize).
type Gem struct {
	Type  GemType
	Cell  core.Point
	Pos   core.Point
	Fixed bool // resting on its cell with no waypoints left

	path []core.Point
}

// Match is a run of RunLength equal gems.
type Match struct {
	Type       GemType
	Start      core.Point // leftmost or topmost cell
	Horizontal bool
}

// Cells returns the cells covered by the run.
func (m Match) Cells() []core.Point {
	step := core.Pt(0, 1)
	if m.Horizontal {
		step = core.Pt(1, 0)
	}
	out := make([]core.Point, RunLength)
	p := m.Start
	for i := range out {
		out[i] = p
		p = p.Add(step)
	}
	return out
}

// Board is a square gem grid. It is not safe for concurrent use.
type Board struct {
	cfg     Config
	grid    core.Grid
	gems    []*Gem // row-major; nil while a cell is empty
	rng     *rand.Rand
	pending *Match
}

// New fills a board at random, repeating until no run exists. Every gem
// starts one board height above its cell and falls into place.
func New(cfg Config, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		cfg:  cfg,
		grid: core.Grid{W: cfg.Size, H: cfg.Size},
		gems: make([]*Gem, cfg.Size*cfg.Size),
		rng:  rng,
	}
	b.fill()
	return b, nil
}

// FromTypes builds a resting board from rows of gem types. Runs already on
// the board are kept.
func FromTypes(rows [][]GemType, cfg Config, rng *rand.Rand) (*Board, error) {
	cfg.Size = len(rows)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		cfg:  cfg,
		grid: core.Grid{W: cfg.Size, H: cfg.Size},
		gems: make([]*Gem, cfg.Size*cfg.Size),
		rng:  rng,
	}
	for y, row := range rows {
		if len(row) != cfg.Size {
			return nil, fmt.Errorf("match3: row %d has %d gems, want %d: %w", y, len(row), cfg.Size, core.ErrInvalidConfig)
		}
		for x, t := range row {
			if t < 0 || int(t) >= cfg.GemTypes {
				return nil, fmt.Errorf("match3: gem type %d at (%d,%d): %w", t, x, y, core.ErrInvalidConfig)
			}
			p := core.Pt(x, y)
			b.gems[b.grid.Index(p)] = &Gem{Type: t, Cell: p, Pos: b.rest(p), Fixed: true}
		}
	}
	return b, nil
}

// fill draws random types until the board has no run, then drops them in.
func (b *Board) fill() {
	types := make([]GemType, b.grid.Size())
	for {
		for i := range types {
			types[i] = b.randomType()
		}
		if _, found := findMatch(b.grid, func(p core.Point) GemType { return types[b.grid.Index(p)] }, nil); !found {
			break
		}
	}

	fall := b.cfg.Size * b.cfg.CellSize
	for i, t := range types {
		p := b.grid.At(i)
		target := b.rest(p)
		g := &Gem{Type: t, Cell: p, Pos: core.Pt(target.X, target.Y-fall)}
		g.moveTo(target)
		b.gems[i] = g
	}
	b.pending = nil
}

func (b *Board) randomType() GemType {
	return GemType(b.rng.Intn(b.cfg.GemTypes))
}

// rest is the movement position of a gem resting on cell p.
func (b *Board) rest(p core.Point) core.Point {
	return core.Pt(p.X*b.cfg.CellSize, p.Y*b.cfg.CellSize)
}

// Config returns the board configuration.
func (b *Board) Config() Config { return b.cfg }

// Size returns the number of cells per side.
func (b *Board) Size() int { return b.cfg.Size }

// Type returns the gem type at p, or Empty for an empty or outside cell.
func (b *Board) Type(p core.Point) GemType {
	if !b.grid.InBounds(p) {
		return Empty
	}
	if g := b.gems[b.grid.Index(p)]; g != nil {
		return g.Type
	}
	return Empty
}

// Gem returns a copy of the gem resting in or heading for cell p. ok is
// false for an empty or outside cell.
func (b *Board) Gem(p core.Point) (g Gem, ok bool) {
	if !b.grid.InBounds(p) {
		return Gem{}, false
	}
	if gem := b.gems[b.grid.Index(p)]; gem != nil {
		return *gem, true
	}
	return Gem{}, false
}

// Types returns the gem types as rows.
func (b *Board) Types() [][]GemType {
	rows := make([][]GemType, b.cfg.Size)
	for y := range rows {
		rows[y] = make([]GemType, b.cfg.Size)
		for x := range rows[y] {
			rows[y][x] = b.Type(core.Pt(x, y))
		}
	}
	return rows
}

// Gems returns a copy of every gem on the board in row-major cell order.
func (b *Board) Gems() []Gem {
	out := make([]Gem, 0, len(b.gems))
	for _, g := range b.gems {
		if g != nil {
			out = append(out, *g)
		}
	}
	return out
}
