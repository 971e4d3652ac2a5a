package navigator

import (
	"fmt"
	"math"

	"tensor-field/internal/core"
)

// Sampler evaluates the field at a fractional point.
type Sampler interface {
	Quadrangulate(p core.Point) (float64, error)
}

// Turn maps an intensity to a heading change: mid-range is straight ahead,
// 0 is -π and 255 is +π.
func Turn(value float64) float64 {
	return math.Pi * (value/127.5 - 1)
}

// Tick advances a running context by one step: sample the field at the
// current position, bend the heading by Turn/velocity, then move StepSize
// along the new heading. On error the input context is returned unchanged.
func Tick(ctx Context, field Sampler, cfg Config) (Context, error) {
	if ctx.State != Running || !ctx.HasPosition || !ctx.HasAngle {
		return ctx, invalid("tick", ctx.State)
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}
	v, err := field.Quadrangulate(ctx.Position)
	if err != nil {
		return ctx, fmt.Errorf("navigator: sample at (%g, %g): %w", ctx.Position.X, ctx.Position.Y, err)
	}

	next := ctx
	next.Angle += Turn(v) / cfg.Velocity
	next.Position = core.Point{
		X: ctx.Position.X + math.Cos(next.Angle)*cfg.StepSize,
		Y: ctx.Position.Y + math.Sin(next.Angle)*cfg.StepSize,
	}
	next.Ticks++
	return next, nil
}
