package ui

import (
	"fmt"
	"math"

	"tensor-field/internal/navigator"
)

// CursorReadout formats the field value under the pointer.
func CursorReadout(x, y int, value uint8) string {
	return fmt.Sprintf("%d, %d . . . %d", x, y, value)
}

// AgentReadout formats the agent position and heading in whole units and
// degrees. It reports false while the agent has no heading.
func AgentReadout(ctx navigator.Context) (string, bool) {
	pos, ok := ctx.Location()
	angle, hasAngle := ctx.Heading()
	if !ok || !hasAngle {
		return "", false
	}
	return fmt.Sprintf("%d, %d - %d",
		int(math.Floor(pos.X)),
		int(math.Floor(pos.Y)),
		int(math.Floor(angle*180/math.Pi))), true
}

// StateHint tells the user what the next click does.
func StateHint(s navigator.State) string {
	switch s {
	case navigator.SelectingPoint:
		return "click to place the agent"
	case navigator.SelectingAngle:
		return "click to set the heading"
	case navigator.Running:
		return "click to stop"
	default:
		return ""
	}
}
