package core

import (
	"errors"
	"testing"
)

func TestNewGrid_Errors(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{0, 10},
		{10, 0},
		{-1, 5},
		{0, 0},
	}

	for _, tt := range tests {
		if _, err := NewGrid(tt.w, tt.h); !errors.Is(err, ErrEmptyGrid) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrEmptyGrid", tt.w, tt.h, err)
		}
	}
}

func TestGrid_PassableAndBounds(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if !g.Passable(0, 0) || !g.Passable(3, 2) {
		t.Error("fresh grid cells should be passable")
	}

	// Outside cells are never passable.
	outside := []Pos{{-1, 0}, {4, 0}, {0, 3}, {0, -1}}
	for _, p := range outside {
		if g.Passable(p.X, p.Y) {
			t.Errorf("Passable(%d, %d) = true outside grid", p.X, p.Y)
		}
	}

	// But querying stored occupancy outside is a caller error.
	if _, err := g.Blocked(4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Blocked(4, 0) error = %v, want ErrOutOfBounds", err)
	}
}

func TestGrid_Mutators(t *testing.T) {
	g, err := NewGrid(10, 10)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if err := g.BlockRect(2, 2, 3, 2); err != nil {
		t.Fatalf("BlockRect: %v", err)
	}
	if g.Passable(2, 2) || g.Passable(4, 3) {
		t.Error("rect cells should be blocked")
	}
	if !g.Passable(5, 2) || !g.Passable(2, 4) {
		t.Error("cells next to the rect should stay passable")
	}

	// Line endpoints may come in either order.
	if err := g.BlockHLine(8, 6, 0); err != nil {
		t.Fatalf("BlockHLine: %v", err)
	}
	if err := g.BlockVLine(0, 9, 7); err != nil {
		t.Fatalf("BlockVLine: %v", err)
	}
	for x := 6; x <= 8; x++ {
		if g.Passable(x, 0) {
			t.Errorf("hline cell (%d, 0) should be blocked", x)
		}
	}
	for y := 7; y <= 9; y++ {
		if g.Passable(0, y) {
			t.Errorf("vline cell (0, %d) should be blocked", y)
		}
	}

	// Clear overrides any earlier block.
	if err := g.ClearCell(3, 2); err != nil {
		t.Fatalf("ClearCell: %v", err)
	}
	if !g.Passable(3, 2) {
		t.Error("cleared cell should be passable again")
	}
}

func TestGrid_MutatorsOutOfBounds(t *testing.T) {
	g, err := NewGrid(5, 5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"BlockCell", func() error { return g.BlockCell(5, 0) }},
		{"ClearCell", func() error { return g.ClearCell(0, -1) }},
		{"BlockRect overhang", func() error { return g.BlockRect(3, 3, 4, 1) }},
		{"BlockHLine overhang", func() error { return g.BlockHLine(0, 5, 2) }},
		{"BlockVLine overhang", func() error { return g.BlockVLine(2, -1, 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("error = %v, want ErrOutOfBounds", err)
			}
		})
	}

	// Failed mutations must not clamp: nothing inside the grid changed.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if !g.Passable(x, y) {
				t.Fatalf("cell (%d, %d) blocked by a rejected mutation", x, y)
			}
		}
	}
}

func TestManhattanDist(t *testing.T) {
	tests := []struct {
		a, b Pos
		want int
	}{
		{Pos{0, 0}, Pos{0, 0}, 0},
		{Pos{1, 19}, Pos{2, 16}, 4},
		{Pos{3, 6}, Pos{2, 16}, 11},
		{Pos{5, 2}, Pos{1, 7}, 9},
	}

	for _, tt := range tests {
		if got := ManhattanDist(tt.a, tt.b); got != tt.want {
			t.Errorf("ManhattanDist(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := ManhattanDist(tt.b, tt.a); got != tt.want {
			t.Errorf("ManhattanDist(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}
