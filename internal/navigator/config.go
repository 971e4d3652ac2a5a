package navigator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AngleMode selects how SelectAngle turns the second point into a heading.
type AngleMode uint8

const (
	// AngleAtan2 uses the two-argument arctangent of the offset.
	AngleAtan2 AngleMode = iota
	// AngleTangent applies tan to the slope and shifts by π for leftward
	// offsets. Headings differ from AngleAtan2 except near zero slope.
	AngleTangent
)

func (m AngleMode) String() string {
	if m == AngleTangent {
		return "tangent"
	}
	return "atan2"
}

// ParseAngleMode maps "atan2" or "tangent" to an AngleMode.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "atan2":
		return AngleAtan2, nil
	case "tangent", "tan":
		return AngleTangent, nil
	default:
		return AngleAtan2, fmt.Errorf("%w: unknown angle mode %q", ErrInvalidConfig, s)
	}
}

// Config holds the stepping tunables.
type Config struct {
	// Velocity divides each turn; larger values turn more slowly.
	Velocity float64
	// StepSize is the distance advanced per tick.
	StepSize  float64
	AngleMode AngleMode
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	return Config{Velocity: 10, StepSize: 1, AngleMode: AngleAtan2}
}

// Validate rejects non-positive or non-finite tunables.
func (c Config) Validate() error {
	if !(c.Velocity > 0) || math.IsInf(c.Velocity, 0) {
		return fmt.Errorf("%w: velocity must be positive, got %v", ErrInvalidConfig, c.Velocity)
	}
	if !(c.StepSize > 0) || math.IsInf(c.StepSize, 0) {
		return fmt.Errorf("%w: step size must be positive, got %v", ErrInvalidConfig, c.StepSize)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable entries are reported rather than skipped.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["velocity"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: velocity %q", ErrInvalidConfig, v)
		}
		c.Velocity = parsed
	}
	if v, ok := cfg["step"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: step %q", ErrInvalidConfig, v)
		}
		c.StepSize = parsed
	}
	if v, ok := cfg["angle"]; ok {
		mode, err := ParseAngleMode(v)
		if err != nil {
			return c, err
		}
		c.AngleMode = mode
	}
	return c, c.Validate()
}
