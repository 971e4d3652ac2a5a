// Package field builds and samples dense scalar intensity grids.
package field

import (
	"fmt"
	"math"

	"tensor-field/internal/core"
)

// Field owns a dense intensity grid. Intensities are immutable after
// construction; only the optional tint grid changes on reads.
type Field struct {
	values    *core.ByteGrid
	tint      *core.ByteGrid
	bounds    Bounds
	weighting Weighting
}

func newField(w, h int, opts BuildOptions) *Field {
	f := &Field{
		values:    core.NewByteGrid(w, h),
		bounds:    opts.Bounds,
		weighting: opts.Weighting,
	}
	if opts.Tint {
		f.tint = core.NewByteGrid(w, h)
	}
	return f
}

// Size returns the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.values.W, H: f.values.H} }

// Cells exposes the intensity buffer. Callers must not modify it.
func (f *Field) Cells() []uint8 { return f.values.Cells() }

// Tint exposes the debug tint buffer, or nil when tinting is disabled.
func (f *Field) Tint() []uint8 {
	if f.tint == nil {
		return nil
	}
	return f.tint.Cells()
}

// ClearTint wipes recorded reads.
func (f *Field) ClearTint() {
	if f.tint != nil {
		f.tint.Clear()
	}
}

// Get returns the intensity at integer coordinates.
func (f *Field) Get(x, y int) (uint8, error) {
	if !f.values.InBounds(x, y) {
		if f.bounds == BoundsReject {
			return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, f.values.W, f.values.H)
		}
		x, y = f.values.Clamp(x, y)
	}
	if f.tint != nil {
		f.tint.Set(x, y, 255)
	}
	return f.values.At(x, y), nil
}

// Quadrangulate evaluates the field at a fractional point by blending its
// four floor/ceil neighbours. Integral points return Get exactly.
func (f *Field) Quadrangulate(p core.Point) (float64, error) {
	if !finite(p.X) || !finite(p.Y) {
		return 0, fmt.Errorf("%w: (%v, %v)", ErrInvalidPoint, p.X, p.Y)
	}
	if math.Floor(p.X) == p.X && math.Floor(p.Y) == p.Y {
		v, err := f.Get(cellIndex(p.X, f.values.W), cellIndex(p.Y, f.values.H))
		return float64(v), err
	}

	neighbours, weights := f.neighbourWeights(p)
	total := 0.0
	for i, n := range neighbours {
		v, err := f.Get(cellIndex(n.X, f.values.W), cellIndex(n.Y, f.values.H))
		if err != nil {
			return 0, err
		}
		total += float64(v) * weights[i]
	}
	return total, nil
}

// neighbourWeights returns the four floor/ceil neighbours of a non-integral
// point and their weights, which sum to 1.
func (f *Field) neighbourWeights(p core.Point) ([4]core.Point, [4]float64) {
	fx, cx := math.Floor(p.X), math.Ceil(p.X)
	fy, cy := math.Floor(p.Y), math.Ceil(p.Y)
	neighbours := [4]core.Point{
		{X: fx, Y: fy},
		{X: cx, Y: fy},
		{X: fx, Y: cy},
		{X: cx, Y: cy},
	}

	var dist, weights [4]float64
	for i, n := range neighbours {
		dist[i] = distance(n, p)
	}

	switch f.weighting {
	case WeightingInverse:
		sum := 0.0
		for i, d := range dist {
			if d == 0 {
				weights = [4]float64{}
				weights[i] = 1
				return neighbours, weights
			}
			sum += 1 / d
		}
		for i, d := range dist {
			weights[i] = (1 / d) / sum
		}
	default:
		sum := dist[0] + dist[1] + dist[2] + dist[3]
		for i, d := range dist {
			weights[i] = d / sum
		}
	}
	return neighbours, weights
}

// cellIndex converts a finite integral coordinate to int without overflowing on
// huge values; anything past the edge stays past the edge.
func cellIndex(v float64, n int) int {
	if v < -1 {
		return -1
	}
	if v > float64(n) {
		return n
	}
	return int(v)
}
