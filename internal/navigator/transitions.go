package navigator

import (
	"fmt"
	"math"

	"tensor-field/internal/core"
)

// SelectStart records p as the start position and waits for a heading.
func SelectStart(ctx Context, p core.Point) (Context, error) {
	if ctx.State != SelectingPoint {
		return ctx, invalid("select start", ctx.State)
	}
	if !finitePoint(p) {
		return ctx, fmt.Errorf("%w: (%v, %v)", ErrInvalidPoint, p.X, p.Y)
	}
	next := ctx
	next.Position = p
	next.HasPosition = true
	next.State = SelectingAngle
	return next, nil
}

// SelectAngle derives the heading from the start position towards p and
// starts running. The y difference is taken as start minus target, so the
// heading is measured with y pointing up.
func SelectAngle(ctx Context, p core.Point, mode AngleMode) (Context, error) {
	if ctx.State != SelectingAngle || !ctx.HasPosition {
		return ctx, invalid("select angle", ctx.State)
	}
	if !finitePoint(p) {
		return ctx, fmt.Errorf("%w: (%v, %v)", ErrInvalidPoint, p.X, p.Y)
	}
	dx := p.X - ctx.Position.X
	dy := ctx.Position.Y - p.Y

	next := ctx
	next.Angle = headingFor(dx, dy, mode)
	next.HasAngle = true
	next.Ticks = 0
	next.State = Running
	return next, nil
}

// Reset returns the agent to SelectingPoint and drops the heading. The last
// position is kept so a marker stays where the agent stopped. Resetting an
// agent that is already selecting a point is a no-op.
func Reset(ctx Context) Context {
	if ctx.State == SelectingPoint {
		return ctx
	}
	next := ctx
	next.State = SelectingPoint
	next.Angle = 0
	next.HasAngle = false
	return next
}

func headingFor(dx, dy float64, mode AngleMode) float64 {
	if mode == AngleTangent {
		if dx == 0 {
			return math.Pi / 2
		}
		slope := dy / dx
		if dx < 0 {
			return math.Tan(slope) + math.Pi*sign(slope)
		}
		return math.Tan(slope)
	}
	if dx == 0 && dy == 0 {
		return math.Pi / 2
	}
	return math.Atan2(dy, dx)
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func finitePoint(p core.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
