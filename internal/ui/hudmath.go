package ui

import (
	"math"
	"strconv"

	"tensor-field/internal/core"
)

const defaultFloatStep = 0.05

// stepFloat returns the value one step from current in direction, bounded by
// the control range, and whether that differs from current.
func stepFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := ctrl.Bound(current + float64(direction)*step)
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// formatFloat prints value with a precision matched to the control step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// statusLines flattens the read-only part of a snapshot into label: value
// lines, skipping keys that already have a control.
func statusLines(snapshot core.ParameterSnapshot, skip map[string]bool) []string {
	var lines []string
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			if skip[p.Key] {
				continue
			}
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
