//go:build ebiten

package app

import (
	"image/color"

	"life-frames/internal/core"
	"life-frames/internal/render"
	"life-frames/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctl     *Controls
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		ctl:      NewControls(sim, tps),
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(hudWidth),
		overlay:  ui.NewOverlay(scale),
		onColor:  render.On,
		offColor: render.Off,
		scale:    scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctl.Rewind(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.ctl.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.ctl.Slower()
	}

	g.overlay.Update()
	if _, err := g.ctl.Tick(g.overlay.Capture); err != nil {
		return err
	}
	g.hud.Update(ui.Snapshot(g.ctl.Sim, g.ctl.Last, g.ctl.Clock.TPS(), g.ctl.Paused()))
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	cur := g.ctl.Sim.Current()
	g.painter.Blit(screen, cur, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, cur)
	size := g.ctl.Sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
