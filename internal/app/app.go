//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tensor-field/internal/core"
	"tensor-field/internal/logging"
	"tensor-field/internal/render"
	"tensor-field/internal/ui"
)

type clicker interface {
	Click(p core.Point) error
}

type agentResetter interface {
	ResetAgent() error
}

type tinter interface {
	Tint() []uint8
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	return &Game{
		sim:     sim,
		painter: render.NewFieldPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		pacer:   core.NewFixedStep(cfg.TPS),
		scale:   scale,
		seed:    cfg.Seed,
	}
}

// Reset rebuilds the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the agent at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if r, ok := g.sim.(agentResetter); ok {
			if err := r.ResetAgent(); err != nil {
				logging.Warn().Add(logging.Err(err)).Msg("reset failed")
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		if tps := g.pacer.TPS() * 2; tps <= ebiten.TPS() {
			g.pacer.SetTPS(tps)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		if tps := g.pacer.TPS() / 2; tps >= 1 {
			g.pacer.SetTPS(tps)
		}
	}

	g.handleClick()
	g.overlay.Update()
	g.hud.Update(g.fieldWidth())

	if g.pacer.ShouldStep() && (!g.paused || g.tickOnce) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	c, ok := g.sim.(clicker)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= g.fieldWidth() {
		return
	}
	p := core.Point{X: float64(mx) / float64(g.scale), Y: float64(my) / float64(g.scale)}
	if err := c.Click(p); err != nil {
		logging.Warn().Add(logging.Err(err)).Msg("click rejected")
	}
}

// Draw renders the field, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	var tint []uint8
	if t, ok := g.sim.(tinter); ok {
		tint = t.Tint()
	}
	g.painter.Blit(screen, g.sim.Cells(), tint, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.fieldWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.fieldWidth() + g.hud.Width(), s.H * g.scale
}

func (g *Game) fieldWidth() int { return g.sim.Size().W * g.scale }
