//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tensor-field/internal/core"
	"tensor-field/internal/field"
	"tensor-field/internal/navigator"
)

type agentProvider interface {
	Agent() *navigator.Agent
	Trail() []core.Point
	Field() *field.Field
}

const moteRadius = 4

var (
	trailColor = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	moteColor  = color.RGBA{R: 255, G: 210, B: 0, A: 255}
)

// Overlay draws the agent marker, its trail and the debug readout on top of
// the field.
type Overlay struct {
	sim         core.Sim
	scale       int
	showTrail   bool
	showReadout bool
	readout     string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, showTrail: true, showReadout: true}
}

// Update toggles layers and refreshes the readout.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.showTrail = !o.showTrail
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showReadout = !o.showReadout
	}

	provider, ok := o.sim.(agentProvider)
	if !ok {
		o.readout = ""
		return
	}
	ctx := provider.Agent().Context()
	if line, ok := AgentReadout(ctx); ok && ctx.State == navigator.Running {
		o.readout = line
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := cx/o.scale, cy/o.scale
	size := o.sim.Size()
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		o.readout = StateHint(ctx.State)
		return
	}
	v, err := provider.Field().Get(x, y)
	if err != nil {
		o.readout = StateHint(ctx.State)
		return
	}
	o.readout = CursorReadout(x, y, v) + "   " + StateHint(ctx.State)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(agentProvider)
	if !ok {
		return
	}
	s := float32(o.scale)

	if o.showTrail {
		trail := provider.Trail()
		for i := 1; i < len(trail); i++ {
			a, b := trail[i-1], trail[i]
			if math.IsNaN(a.X) || math.IsNaN(b.X) {
				continue
			}
			vector.StrokeLine(screen, float32(a.X)*s, float32(a.Y)*s, float32(b.X)*s, float32(b.Y)*s, 1, trailColor, true)
		}
	}

	if pos, ok := provider.Agent().Context().Location(); ok {
		vector.DrawFilledCircle(screen, float32(pos.X)*s, float32(pos.Y)*s, moteRadius, moteColor, true)
	}

	if o.showReadout && o.readout != "" {
		ebitenutil.DebugPrintAt(screen, o.readout, 4, 4)
	}
}
