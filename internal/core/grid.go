package core

import "fmt"

// Pos is a cell position on a floor grid.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanDist returns the L1 distance between two cells.
func ManhattanDist(a, b Pos) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid holds the passable/blocked classification for one floor. It is
// built once during floor setup and read-only during pathfinding.
//
// Cells outside [0,W)x[0,H) are impassable as far as Passable is
// concerned; mutators and Blocked reject them with ErrOutOfBounds
// instead of clamping.
type Grid struct {
	W, H    int
	blocked []bool
}

// NewGrid creates an all-passable w x h grid.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	return &Grid{W: w, H: h, blocked: make([]bool, w*h)}, nil
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Passable reports whether an agent may occupy (x, y). Out-of-range
// cells are never passable.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && !g.blocked[y*g.W+x]
}

// Blocked reports the stored occupancy of (x, y). Unlike Passable it
// treats an out-of-range query as a caller error.
func (g *Grid) Blocked(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.blocked[y*g.W+x], nil
}

func (g *Grid) set(x, y int, v bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.blocked[y*g.W+x] = v
	return nil
}

// BlockCell marks a single cell blocked.
func (g *Grid) BlockCell(x, y int) error {
	return g.set(x, y, true)
}

// ClearCell marks a single cell passable, overriding any earlier block.
func (g *Grid) ClearCell(x, y int) error {
	return g.set(x, y, false)
}

// BlockRect marks the w x h rectangle with top-left corner (x, y)
// blocked. The whole rectangle must lie on the grid.
func (g *Grid) BlockRect(x, y, w, h int) error {
	if !g.InBounds(x, y) || !g.InBounds(x+w-1, y+h-1) {
		return fmt.Errorf("%w: rect (%d,%d) %dx%d", ErrOutOfBounds, x, y, w, h)
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			g.blocked[yy*g.W+xx] = true
		}
	}
	return nil
}

// BlockHLine marks the horizontal segment from (x0, y) to (x1, y)
// blocked, endpoints inclusive and in either order.
func (g *Grid) BlockHLine(x0, x1, y int) error {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if !g.InBounds(x0, y) || !g.InBounds(x1, y) {
		return fmt.Errorf("%w: hline x=%d..%d y=%d", ErrOutOfBounds, x0, x1, y)
	}
	for xx := x0; xx <= x1; xx++ {
		g.blocked[y*g.W+xx] = true
	}
	return nil
}

// BlockVLine marks the vertical segment from (x, y0) to (x, y1) blocked,
// endpoints inclusive and in either order.
func (g *Grid) BlockVLine(x, y0, y1 int) error {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if !g.InBounds(x, y0) || !g.InBounds(x, y1) {
		return fmt.Errorf("%w: vline x=%d y=%d..%d", ErrOutOfBounds, x, y0, y1)
	}
	for yy := y0; yy <= y1; yy++ {
		g.blocked[yy*g.W+x] = true
	}
	return nil
}
