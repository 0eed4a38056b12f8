// Package core provides the shared vocabulary of the arcade: grid geometry,
// the character screen buffer, input actions and the error taxonomy used by
// the board engines. It has no external dependencies (especially no Bubble
// Tea) so game logic stays pure and testable.
package core

// Point is a cell position on a board grid. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Adjacent reports whether q shares an edge with p (4-neighbourhood).
func (p Point) Adjacent(q Point) bool {
	return Abs(p.X-q.X)+Abs(p.Y-q.Y) == 1
}

// Grid describes the bounds of a W x H board and enumerates neighbours.
type Grid struct {
	W, H int
}

// InBounds returns true if p lies on the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Index converts p into a row-major slice index.
func (g Grid) Index(p Point) int {
	return p.Y*g.W + p.X
}

// At converts a row-major index back into a point.
func (g Grid) At(i int) Point {
	return Point{X: i % g.W, Y: i / g.W}
}

// Size returns the number of cells on the grid.
func (g Grid) Size() int {
	return g.W * g.H
}

// Neighbors8 returns the in-bounds cells around p, scanning row above,
// same row, row below, each left to right.
func (g Grid) Neighbors8(p Point) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := Point{X: p.X + dx, Y: p.Y + dy}
			if g.InBounds(q) {
				out = append(out, q)
			}
		}
	}
	return out
}

// Neighbors4 returns the in-bounds edge neighbours of p: up, left, right, down.
func (g Grid) Neighbors4(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range [...]Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
		q := p.Add(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
