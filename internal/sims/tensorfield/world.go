// Package tensorfield hosts a scalar field and the agent navigating it as a
// core.Sim, so the windowed host can drive it one tick per frame.
package tensorfield

import (
	"fmt"

	"tensor-field/internal/control"
	"tensor-field/internal/core"
	"tensor-field/internal/field"
	"tensor-field/internal/logging"
	"tensor-field/internal/navigator"
)

// World couples a field with one agent, its loop and its click controller.
type World struct {
	cfg   Config
	field *field.Field
	agent *navigator.Agent
	loop  *navigator.Loop
	ctrl  *control.Controller

	// halted is set when a tick fails; the next click clears it.
	halted bool
	err    error
}

// NewWithConfig builds the field and an agent waiting for its start point.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f, err := BuildField(cfg, cfg.Seed)
	if err != nil {
		return nil, err
	}
	agent, err := navigator.NewAgent(cfg.Navigator)
	if err != nil {
		return nil, err
	}
	ctrl, err := control.New(agent)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:   cfg,
		field: f,
		agent: agent,
		loop:  navigator.NewLoop(agent, f),
		ctrl:  ctrl,
	}
	size := f.Size()
	logging.Info().
		Add(logging.Str("preset", string(cfg.Preset))).
		Add(logging.Int("width", size.W)).
		Add(logging.Int("height", size.H)).
		Msg("field built")
	return w, nil
}

// Name returns the preset identifier.
func (w *World) Name() string { return string(w.cfg.Preset) }

// Size returns the field dimensions.
func (w *World) Size() core.Size { return w.field.Size() }

// Cells exposes the field intensities.
func (w *World) Cells() []uint8 { return w.field.Cells() }

// Tint exposes the debug tint buffer, nil when disabled.
func (w *World) Tint() []uint8 { return w.field.Tint() }

// Field returns the sampled field.
func (w *World) Field() *field.Field { return w.field }

// Agent returns the navigator agent.
func (w *World) Agent() *navigator.Agent { return w.agent }

// Trail returns the positions visited since the last reset.
func (w *World) Trail() []core.Point { return w.loop.Trail() }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Err returns the error that halted the last run, if any.
func (w *World) Err() error { return w.err }

// Reset rebuilds the field and returns the agent to SelectingPoint. Only the
// random preset depends on seed.
func (w *World) Reset(seed int64) {
	f, err := BuildField(w.cfg, seed)
	if err != nil {
		logging.Error().Add(logging.Err(err)).Msg("field rebuild failed")
	} else {
		w.cfg.Seed = seed
		w.field = f
		w.loop = navigator.NewLoop(w.agent, f)
	}
	if err := w.ctrl.Reset(); err != nil {
		logging.Warn().Add(logging.Err(err)).Msg("reset rejected")
	}
	w.loop.ClearTrail()
	w.field.ClearTint()
	w.halted = false
	w.err = nil
}

// Step advances a running agent by one tick.
func (w *World) Step() {
	if w.halted {
		return
	}
	if _, err := w.loop.Frame(); err != nil {
		w.halted = true
		w.err = err
		ctx := w.agent.Context()
		logging.Warn().
			Add(logging.Err(err)).
			Add(logging.Point("pos", ctx.Position.X, ctx.Position.Y)).
			Add(logging.Float("angle", ctx.Angle, 3)).
			Add(logging.Ticks(ctx.Ticks)).
			Msg("run halted")
	}
}

// Click forwards a press at p to the controller. The press that places a new
// start point also clears the previous trail and tint.
func (w *World) Click(p core.Point) error {
	from := w.agent.State()
	if from == navigator.SelectingPoint {
		w.loop.ClearTrail()
		w.field.ClearTint()
	}
	if err := w.ctrl.Click(p); err != nil {
		return err
	}
	if from == navigator.Running {
		logging.Info().Add(logging.Ticks(w.agent.Context().Ticks)).Msg("run stopped")
	}
	w.halted = false
	w.err = nil
	return nil
}

// ResetAgent returns the agent to SelectingPoint without rebuilding the field.
func (w *World) ResetAgent() error {
	w.halted = false
	w.err = nil
	return w.ctrl.Reset()
}

// Sample evaluates the field at p.
func (w *World) Sample(p core.Point) (float64, error) {
	return w.field.Quadrangulate(p)
}

func factory(preset Preset) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(preset, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", preset, err)
		}
		w, err := NewWithConfig(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", preset, err)
		}
		return w, nil
	}
}

func init() {
	for _, p := range []Preset{PresetRadial, PresetRandom, PresetUniform, PresetImage} {
		core.Register(string(p), factory(p))
	}
}
