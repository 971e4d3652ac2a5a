// Package control maps pointer input onto the navigator lifecycle using a
// statekit chart: one button cycles select start, select heading and reset.
package control

import (
	"github.com/felixgeelhaar/statekit"

	"tensor-field/internal/core"
	"tensor-field/internal/navigator"
)

// Event names understood by the chart.
const (
	EventClick = "CLICK"
	EventReset = "RESET"
)

const (
	stateSelectingPoint statekit.StateID = statekit.StateID(navigator.SelectingPoint)
	stateSelectingAngle statekit.StateID = statekit.StateID(navigator.SelectingAngle)
	stateRunning        statekit.StateID = statekit.StateID(navigator.Running)
)

// machineContext is what the chart's actions operate on.
type machineContext struct {
	agent *navigator.Agent
	err   error
}

// NewMachine builds the input chart.
func NewMachine() (*statekit.MachineConfig[*machineContext], error) {
	return statekit.NewMachine[*machineContext]("navigator").
		WithInitial(stateSelectingPoint).
		WithContext(&machineContext{}).
		WithAction("selectStart", selectStart).
		WithAction("selectAngle", selectAngle).
		WithAction("reset", reset).
		State(stateSelectingPoint).
			On(EventClick).Target(stateSelectingAngle).Do("selectStart").
			Done().
		State(stateSelectingAngle).
			On(EventClick).Target(stateRunning).Do("selectAngle").
			On(EventReset).Target(stateSelectingPoint).Do("reset").
			Done().
		State(stateRunning).
			On(EventClick).Target(stateSelectingPoint).Do("reset").
			On(EventReset).Target(stateSelectingPoint).Do("reset").
			Done().
		Build()
}

func selectStart(ctx **machineContext, event statekit.Event) {
	c := *ctx
	if c == nil || c.agent == nil {
		return
	}
	p, _ := event.Payload.(core.Point)
	c.err = c.agent.SelectStart(p)
}

func selectAngle(ctx **machineContext, event statekit.Event) {
	c := *ctx
	if c == nil || c.agent == nil {
		return
	}
	p, _ := event.Payload.(core.Point)
	c.err = c.agent.SelectAngle(p)
}

func reset(ctx **machineContext, _ statekit.Event) {
	c := *ctx
	if c == nil || c.agent == nil {
		return
	}
	c.agent.Reset()
}
