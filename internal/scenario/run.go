package scenario

import (
	"context"
	"fmt"
	"time"

	"tensor-field/internal/control"
	"tensor-field/internal/core"
	"tensor-field/internal/field"
	"tensor-field/internal/navigator"
)

// Result is the outcome of a headless run.
type Result struct {
	Field *field.Field
	Trail []core.Point
	Final navigator.Context
	Ticks int
	// Err is the sampling error that stopped the run early, if any.
	Err error
}

// Run builds the field, places the agent with two clicks and drives it for
// up to s.Ticks frames read from frames. A sampling error ends the run and
// is reported in Result.Err; setup errors and context cancellation are
// returned.
func Run(ctx context.Context, s *Scenario, frames <-chan time.Time) (*Result, error) {
	f, err := s.BuildField()
	if err != nil {
		return nil, fmt.Errorf("scenario: build field: %w", err)
	}
	nav, err := s.NavigatorConfig()
	if err != nil {
		return nil, err
	}
	agent, err := navigator.NewAgent(nav)
	if err != nil {
		return nil, err
	}
	ctrl, err := control.New(agent)
	if err != nil {
		return nil, err
	}
	defer ctrl.Stop()

	if err := ctrl.Click(s.Start.Core()); err != nil {
		return nil, fmt.Errorf("scenario: start: %w", err)
	}
	if err := ctrl.Click(s.Target.Core()); err != nil {
		return nil, fmt.Errorf("scenario: target: %w", err)
	}

	loop := navigator.NewLoop(agent, f)
	res := &Result{Field: f}
	ticks, err := loop.Run(ctx, frames, s.Ticks)
	res.Ticks = ticks
	res.Trail = loop.Trail()
	res.Final = agent.Context()
	if err != nil {
		if ctx.Err() != nil {
			return res, err
		}
		res.Err = err
	}
	return res, nil
}

// Immediate returns a frame channel that is always ready until ctx is done.
func Immediate(ctx context.Context) <-chan time.Time {
	frames := make(chan time.Time)
	go func() {
		defer close(frames)
		for {
			select {
			case <-ctx.Done():
				return
			case frames <- time.Now():
			}
		}
	}()
	return frames
}
