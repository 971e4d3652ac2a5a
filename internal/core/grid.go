package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clamp pins each coordinate into range independently, so an out-of-range x
// never spills into a neighbouring row.
func (g *ByteGrid) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, g.W-1), clampInt(y, 0, g.H-1)
}

// At returns the value stored at (x, y). Coordinates must be in bounds.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set stores v at (x, y). Coordinates must be in bounds.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
