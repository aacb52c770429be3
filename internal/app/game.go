//go:build ebiten

package app

import (
	"image/color"
	"time"

	"morphfill/internal/core"
	"morphfill/internal/render"
	"morphfill/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		ticker:   core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		paused:   cfg.Paused,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.ticker.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.selectCell()
	}

	g.overlay.Update(g.paused)
	if g.hud.Update(g.gridWidth()) {
		g.ticker.Reset()
	}

	if (!g.paused && g.ticker.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) selectCell() {
	selector, ok := g.sim.(core.CellSelector)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	if p, ok := g.overlay.CellAt(mx, my); ok && selector.SelectCell(p.X, p.Y) {
		g.ticker.Reset()
	}
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	if p, ok := g.sim.(paletteProvider); ok {
		g.painter.BlitPalette(screen, g.sim.Cells(), p.Palette(), g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	h := s.H * g.scale
	if g.hudWidth > 0 {
		h = max(h, g.hud.Height())
	}
	return s.W*g.scale + g.hudWidth, h
}
