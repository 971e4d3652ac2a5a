package core

import "testing"

func TestByteGridClampIsCoordinateWise(t *testing.T) {
	g := NewByteGrid(4, 3)
	tests := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, 1, 0, 1},
		{4, 1, 3, 1},
		{9, -5, 3, 0},
		{2, 7, 2, 2},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		x, y := g.Clamp(tt.x, tt.y)
		if x != tt.wx || y != tt.wy {
			t.Fatalf("Clamp(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, x, y, tt.wx, tt.wy)
		}
	}
}

func TestByteGridSetAt(t *testing.T) {
	g := NewByteGrid(3, 2)
	if len(g.Cells()) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(g.Cells()))
	}
	g.Set(2, 1, 200)
	if got := g.At(2, 1); got != 200 {
		t.Fatalf("At(2,1) = %d, want 200", got)
	}
	if got := g.Cells()[g.Index(2, 1)]; got != 200 {
		t.Fatalf("backing slice not updated, got %d", got)
	}
	if g.InBounds(3, 0) || g.InBounds(0, -1) || !g.InBounds(0, 0) {
		t.Fatal("InBounds mismatch")
	}
	g.Clear()
	if g.At(2, 1) != 0 {
		t.Fatal("Clear should zero the grid")
	}
}

func TestNewByteGridMinimumSize(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}
