// Package layout describes floor geometry declaratively: obstacle
// directives, cluster placements, and the fixed agent positions that
// together realize one floor's grid.
package layout

import (
	"fmt"

	"github.com/ecotrack/patrolsim/internal/core"
)

// Op selects a directive shape.
type Op string

const (
	OpRect  Op = "rect"  // block a w x h rectangle at (x, y)
	OpHLine Op = "hline" // block the horizontal segment (x..x2, y)
	OpVLine Op = "vline" // block the vertical segment (x, y..y2)
	OpCell  Op = "cell"  // block a single cell
	OpClear Op = "clear" // force a single cell passable
)

// Directive marks one region of a floor grid blocked, or passable again
// for OpClear. Fields beyond the op's shape are ignored.
type Directive struct {
	Op Op  `json:"op"`
	X  int `json:"x"`
	Y  int `json:"y"`
	W  int `json:"w,omitempty"`
	H  int `json:"h,omitempty"`
	X2 int `json:"x2,omitempty"`
	Y2 int `json:"y2,omitempty"`
}

// Apply replays the directive onto the grid. Out-of-range geometry is an
// error, never clamped.
func (d Directive) Apply(g *core.Grid) error {
	switch d.Op {
	case OpRect:
		return g.BlockRect(d.X, d.Y, d.W, d.H)
	case OpHLine:
		return g.BlockHLine(d.X, d.X2, d.Y)
	case OpVLine:
		return g.BlockVLine(d.X, d.Y, d.Y2)
	case OpCell:
		return g.BlockCell(d.X, d.Y)
	case OpClear:
		return g.ClearCell(d.X, d.Y)
	default:
		return fmt.Errorf("layout: unknown directive op %q", d.Op)
	}
}

// Rect builds an OpRect directive.
func Rect(x, y, w, h int) Directive {
	return Directive{Op: OpRect, X: x, Y: y, W: w, H: h}
}

// HLine builds an OpHLine directive from (x0, y) to (x1, y).
func HLine(x0, x1, y int) Directive {
	return Directive{Op: OpHLine, X: x0, X2: x1, Y: y}
}

// VLine builds an OpVLine directive from (x, y0) to (x, y1).
func VLine(x, y0, y1 int) Directive {
	return Directive{Op: OpVLine, X: x, Y: y0, Y2: y1}
}
