package field

import (
	"fmt"
	"strings"
)

// DefaultNearest is the number of samples blended per cell.
const DefaultNearest = 3

// Bounds selects how lookups outside the grid are handled.
type Bounds uint8

const (
	// BoundsClamp pins x and y into range independently.
	BoundsClamp Bounds = iota
	// BoundsReject fails the lookup with ErrOutOfBounds.
	BoundsReject
)

// Weighting selects the neighbour weighting used by Quadrangulate.
type Weighting uint8

const (
	// WeightingProportional weights each neighbour by its share of the summed
	// distances, so farther neighbours count more.
	WeightingProportional Weighting = iota
	// WeightingInverse normalises 1/distance, the conventional choice.
	WeightingInverse
)

// BuildOptions tunes field construction and lookups.
type BuildOptions struct {
	Nearest   int
	Bounds    Bounds
	Weighting Weighting
	// Tint records every cell read by Get in a separate debug grid.
	Tint bool
}

// DefaultBuildOptions returns the standard options.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Nearest: DefaultNearest}
}

func (o BuildOptions) validate() error {
	if o.Nearest < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNearest, o.Nearest)
	}
	return nil
}

// ParseBounds maps "clamp" or "reject" to a Bounds value.
func ParseBounds(s string) (Bounds, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return BoundsClamp, nil
	case "reject":
		return BoundsReject, nil
	default:
		return BoundsClamp, fmt.Errorf("field: unknown bounds mode %q", s)
	}
}

// ParseWeighting maps "proportional" or "inverse" to a Weighting value.
func ParseWeighting(s string) (Weighting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "proportional":
		return WeightingProportional, nil
	case "inverse":
		return WeightingInverse, nil
	default:
		return WeightingProportional, fmt.Errorf("field: unknown weighting %q", s)
	}
}

func (b Bounds) String() string {
	if b == BoundsReject {
		return "reject"
	}
	return "clamp"
}

func (w Weighting) String() string {
	if w == WeightingInverse {
		return "inverse"
	}
	return "proportional"
}
