//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"tensor-field/internal/core"
)

// HUD renders the parameter panel to the right of the field view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	controlKeys  map[string]bool
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string
}

type hudControlState struct {
	control    core.ParameterControl
	value      string
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	statusHeight   = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, controlKeys: map[string]bool{}}
	h.title = fmt.Sprintf("%s field", sim.Name())
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeFloat {
				continue
			}
			top := controlsTop + len(h.controls)*lineHeight
			buttonY := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
			minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus})
			h.controlKeys[ctrl.Key] = true
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Contains reports whether a screen x coordinate falls on the panel.
func (h *HUD) Contains(x int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX
}

// Update refreshes the cached snapshot and handles button presses.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		p, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		state.floatValue = v
		state.value = formatFloat(state.control, v)
		state.hasValue = true
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.floatSetter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		direction := 0
		switch {
		case pt.In(state.minusRect):
			direction = -1
		case pt.In(state.plusRect):
			direction = 1
		default:
			continue
		}
		if target, ok := stepFloat(state.control, state.floatValue, direction); ok {
			if h.floatSetter.SetFloatParameter(state.control.Key, target) {
				state.floatValue = target
				state.value = formatFloat(state.control, target)
			}
		}
		return
	}
}

// Draw paints the HUD panel anchored to the right edge of the field view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, headerColor)
	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, y, valueColor)
		_, canDown := stepFloat(state.control, state.floatValue, -1)
		_, canUp := stepFloat(state.control, state.floatValue, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
	}

	y := controlsTop + len(h.controls)*lineHeight + statusHeight
	for _, line := range statusLines(h.snapshot, h.controlKeys) {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += statusHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
