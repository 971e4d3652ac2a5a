package navigator

import "tensor-field/internal/core"

// Agent owns a single Context and applies transitions to it in place.
// It is not safe for concurrent use.
type Agent struct {
	ctx Context
	cfg Config
}

// NewAgent validates cfg and returns an agent waiting for its start point.
func NewAgent(cfg Config) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Agent{ctx: NewContext(), cfg: cfg}, nil
}

// Context returns a copy of the current state.
func (a *Agent) Context() Context { return a.ctx }

// State returns the current lifecycle state.
func (a *Agent) State() State { return a.ctx.State }

// Config returns the active tunables.
func (a *Agent) Config() Config { return a.cfg }

// SetConfig replaces the tunables. Invalid configs are rejected and the old
// config is kept.
func (a *Agent) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// SelectStart stores the start position.
func (a *Agent) SelectStart(p core.Point) error {
	next, err := SelectStart(a.ctx, p)
	if err != nil {
		return err
	}
	a.ctx = next
	return nil
}

// SelectAngle fixes the heading and starts running.
func (a *Agent) SelectAngle(p core.Point) error {
	next, err := SelectAngle(a.ctx, p, a.cfg.AngleMode)
	if err != nil {
		return err
	}
	a.ctx = next
	return nil
}

// Reset returns to SelectingPoint.
func (a *Agent) Reset() { a.ctx = Reset(a.ctx) }

// Tick advances one step against field.
func (a *Agent) Tick(field Sampler) error {
	next, err := Tick(a.ctx, field, a.cfg)
	if err != nil {
		return err
	}
	a.ctx = next
	return nil
}
