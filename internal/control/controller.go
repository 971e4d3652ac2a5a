package control

import (
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/statekit"

	"tensor-field/internal/core"
	"tensor-field/internal/logging"
	"tensor-field/internal/navigator"
)

// Controller feeds pointer events to an Agent through the input chart.
type Controller struct {
	interp *statekit.Interpreter[*machineContext]
	mctx   *machineContext
	agent  *navigator.Agent
}

// New starts a controller for agent.
func New(agent *navigator.Agent) (*Controller, error) {
	machine, err := NewMachine()
	if err != nil {
		return nil, fmt.Errorf("control: build machine: %w", err)
	}
	mctx := &machineContext{agent: agent}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **machineContext) {
		*c = mctx
	})
	interp.Start()
	c := &Controller{interp: interp, mctx: mctx, agent: agent}
	if err := c.sync(); err != nil {
		return nil, err
	}
	return c, nil
}

// Agent returns the controlled agent.
func (c *Controller) Agent() *navigator.Agent { return c.agent }

// State reports the agent state.
func (c *Controller) State() navigator.State { return c.agent.State() }

// Click interprets a press at p according to the current state: the first
// press places the agent, the second sets its heading, the third resets it.
func (c *Controller) Click(p core.Point) error {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("%w: (%v, %v)", navigator.ErrInvalidPoint, p.X, p.Y)
	}
	return c.send(statekit.Event{Type: EventClick, Payload: p})
}

// Reset returns the agent to SelectingPoint. It is a no-op there.
func (c *Controller) Reset() error {
	if c.agent.State() == navigator.SelectingPoint {
		return c.sync()
	}
	return c.send(statekit.Event{Type: EventReset})
}

// Stop halts the interpreter.
func (c *Controller) Stop() { c.interp.Stop() }

func (c *Controller) send(event statekit.Event) error {
	if err := c.sync(); err != nil {
		return err
	}
	from := c.agent.State()
	c.mctx.err = nil
	c.interp.Send(event)
	err := c.mctx.err
	c.mctx.err = nil

	if syncErr := c.sync(); syncErr != nil && err == nil {
		err = syncErr
	}
	if err != nil {
		logging.Warn().
			Add(logging.Str("event", string(event.Type))).
			Add(logging.State(string(from))).
			Add(logging.Err(err)).
			Msg("input rejected")
		return err
	}
	logging.Debug().
		Add(logging.FromState(string(from))).
		Add(logging.ToState(string(c.agent.State()))).
		Msg("transition")
	return nil
}

// sync realigns the chart with the agent, which is authoritative. They
// diverge when an action fails or the agent is reset outside the controller.
func (c *Controller) sync() error {
	want := statekit.StateID(c.agent.State())
	if c.interp.State().Value == want {
		return nil
	}
	snapshot := statekit.Snapshot[*machineContext]{
		MachineID:    "navigator",
		CurrentState: want,
		Context:      c.mctx,
		CreatedAt:    time.Now(),
	}
	if err := c.interp.Restore(snapshot); err != nil {
		return fmt.Errorf("control: restore %s: %w", want, err)
	}
	return nil
}
