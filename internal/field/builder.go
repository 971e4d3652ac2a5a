package field

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"slices"

	"tensor-field/internal/core"
)

type candidate struct {
	dist float64
	idx  int
}

// Build interpolates a dense field from sparse samples. Each cell blends its
// opts.Nearest closest samples, weighting each by 1 - d/Σd, and divides the
// blend by Nearest-1 even when fewer samples exist. With Nearest == 1 the
// closest sample's value is used as is. Equidistant samples keep their input
// order.
func Build(samples []core.Sample, width, height int, opts BuildOptions) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if err := validateSamples(samples); err != nil {
		return nil, err
	}

	f := newField(width, height, opts)
	scratch := make([]candidate, len(samples))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			cell := core.Point{X: float64(i), Y: float64(j)}
			f.values.Set(i, j, clampByte(blend(samples, cell, opts.Nearest, scratch)))
		}
	}
	return f, nil
}

// FromGrid wraps a dense row-major grid. Values are floored and clamped into
// [0,255].
func FromGrid(values []float64, width, height int, opts BuildOptions) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrGridSize, len(values), width, height)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f := newField(width, height, opts)
	cells := f.values.Cells()
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: grid value %d is %v", ErrInvalidSample, i, v)
		}
		cells[i] = clampByte(math.Floor(v))
	}
	return f, nil
}

// Uniform returns a field where every cell holds value.
func Uniform(width, height int, value uint8, opts BuildOptions) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f := newField(width, height, opts)
	cells := f.values.Cells()
	for i := range cells {
		cells[i] = value
	}
	return f, nil
}

// FromImage reads the red channel of img as a dense field.
func FromImage(img image.Image, opts BuildOptions) (*Field, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f := newField(b.Dx(), b.Dy(), opts)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			f.values.Set(x-b.Min.X, y-b.Min.Y, uint8(r>>8))
		}
	}
	return f, nil
}

func validateSamples(samples []core.Sample) error {
	seen := make(map[core.Point]int, len(samples))
	for i, s := range samples {
		if !finite(s.X) || !finite(s.Y) || !finite(s.Value) {
			return fmt.Errorf("%w: sample %d is (%v, %v, %v)", ErrInvalidSample, i, s.X, s.Y, s.Value)
		}
		p := s.Point()
		if j, ok := seen[p]; ok {
			return fmt.Errorf("%w: samples %d and %d at (%g, %g)", ErrDuplicateSample, j, i, s.X, s.Y)
		}
		seen[p] = i
	}
	return nil
}

func blend(samples []core.Sample, cell core.Point, n int, scratch []candidate) float64 {
	for i, s := range samples {
		scratch[i] = candidate{dist: distance(s.Point(), cell), idx: i}
	}
	slices.SortStableFunc(scratch, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})
	if n == 1 {
		return samples[scratch[0].idx].Value
	}
	nearest := scratch[:min(n, len(samples))]

	sum := 0.0
	for _, c := range nearest {
		sum += c.dist
	}
	// Only a lone sample under the cell gets here; its weight is 1 - 0/0.
	if sum == 0 {
		return 0
	}

	acc := 0.0
	for _, c := range nearest {
		acc += (1 - c.dist/sum) * samples[c.idx].Value
	}
	return math.Floor(acc / float64(n-1))
}

func distance(a, b core.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
