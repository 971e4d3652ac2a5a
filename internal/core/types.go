package core

import "sort"

// Size describes the dimensions of a field grid.
type Size struct {
	W int
	H int
}

// Point is a continuous 2D coordinate in grid space.
type Point struct {
	X, Y float64
}

// Sample is a sparse field input: a location tagged with an intensity.
type Sample struct {
	X, Y  float64
	Value float64
}

// Point returns the sample location.
func (s Sample) Point() Point { return Point{X: s.X, Y: s.Y} }

// Sim defines the contract the host loop drives once per frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered factories in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
