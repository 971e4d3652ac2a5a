// Package navigator steers a single agent through a scalar field.
//
// The agent is a three-state machine. Transitions are pure functions over a
// Context value; Agent owns one Context and exposes a mutation API for hosts.
package navigator

import (
	"errors"
	"fmt"

	"tensor-field/internal/core"
)

// State enumerates the agent lifecycle.
type State string

const (
	// SelectingPoint waits for the start position.
	SelectingPoint State = "selecting_point"
	// SelectingAngle waits for the point that fixes the initial heading.
	SelectingAngle State = "selecting_angle"
	// Running advances the agent once per tick.
	Running State = "running"
)

var (
	// ErrInvalidTransition is returned when an operation is not valid in the
	// current state.
	ErrInvalidTransition = errors.New("navigator: invalid transition")
	// ErrInvalidConfig is returned for non-positive or non-finite tunables.
	ErrInvalidConfig = errors.New("navigator: invalid config")
	// ErrInvalidPoint is returned for selection points with NaN or Inf
	// coordinates.
	ErrInvalidPoint = errors.New("navigator: invalid point")
)

// Context is the complete agent state. Position is meaningful only when
// HasPosition is set, Angle only when HasAngle is set. HasAngle holds exactly
// while Running.
type Context struct {
	State State

	Position    core.Point
	HasPosition bool

	Angle    float64
	HasAngle bool

	// Ticks counts steps taken since the last SelectAngle.
	Ticks int
}

// NewContext returns a context waiting for its start point.
func NewContext() Context {
	return Context{State: SelectingPoint}
}

// Location returns the position and whether it is defined.
func (c Context) Location() (core.Point, bool) {
	return c.Position, c.HasPosition
}

// Heading returns the angle in radians and whether it is defined.
func (c Context) Heading() (float64, bool) {
	return c.Angle, c.HasAngle
}

func invalid(op string, from State) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, from)
}
