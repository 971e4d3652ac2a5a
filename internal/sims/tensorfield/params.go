package tensorfield

import (
	"math"
	"strconv"

	"tensor-field/internal/core"
)

var controls = []core.ParameterControl{
	{Key: "velocity", Label: "Velocity", Type: core.ParamTypeFloat, Step: 1, Min: 0.5, Max: 200, HasMin: true, HasMax: true},
	{Key: "step", Label: "Step size", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 20, HasMin: true, HasMax: true},
}

// Parameters reports the field, the navigator tunables and the live agent.
func (w *World) Parameters() core.ParameterSnapshot {
	size := w.field.Size()
	nav := w.agent.Config()
	ctx := w.agent.Context()

	agent := []core.Parameter{
		stringParam("state", "State", string(ctx.State)),
		intParam("ticks", "Ticks", ctx.Ticks),
	}
	if pos, ok := ctx.Location(); ok {
		agent = append(agent,
			floatParam("x", "X", pos.X),
			floatParam("y", "Y", pos.Y),
		)
	}
	if angle, ok := ctx.Heading(); ok {
		agent = append(agent, floatParam("angle", "Angle (deg)", math.Floor(angle*180/math.Pi)))
	}

	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				stringParam("preset", "Preset", string(w.cfg.Preset)),
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("nearest", "Nearest", w.cfg.Field.Nearest),
				stringParam("bounds", "Bounds", w.cfg.Field.Bounds.String()),
				stringParam("weighting", "Weighting", w.cfg.Field.Weighting.String()),
				boolParam("tint", "Tint", w.cfg.Field.Tint),
			},
		},
		{
			Name: "Navigator",
			Params: []core.Parameter{
				floatParam("velocity", "Velocity", nav.Velocity),
				floatParam("step", "Step size", nav.StepSize),
				stringParam("angle_mode", "Angle mode", nav.AngleMode.String()),
			},
		},
		{Name: "Agent", Params: agent},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetFloatParameter updates velocity or step size, clamped into the control
// range. It takes effect on the next tick.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	cfg := w.agent.Config()
	switch key {
	case "velocity":
		cfg.Velocity = controls[0].Bound(value)
	case "step":
		cfg.StepSize = controls[1].Bound(value)
	default:
		return false
	}
	if err := w.agent.SetConfig(cfg); err != nil {
		return false
	}
	w.cfg.Navigator = cfg
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
