// Package floodfill drives a clearance-constrained flood fill over a noise
// pattern, one frontier cell per step.
package floodfill

import (
	"image"

	"morphfill/internal/core"
	ff "morphfill/pkg/floodfill"
	"morphfill/pkg/grid"
	"morphfill/pkg/shapes"
)

// Demo owns the pattern and the fill session running over it.
type Demo struct {
	cfg  Config
	seed int64

	src     *grid.Grid
	session *ff.Session
	start   image.Point
	steps   int
	display []uint8
}

// New returns a demo over a size×size pattern using defaults.
func New(size int) *Demo {
	cfg := DefaultConfig()
	cfg.Width = size
	cfg.Height = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a demo configured from the provided options.
func NewWithConfig(cfg Config) *Demo {
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	d := &Demo{cfg: cfg}
	d.session = ff.New(cfg.Conn, cfg.Alg, cfg.Radius)
	d.start = d.configuredStart()
	d.regenerate(cfg.Seed)
	return d
}

func (d *Demo) Name() string { return "floodfill" }

func (d *Demo) Size() core.Size { return core.Size{W: d.cfg.Width, H: d.cfg.Height} }

// Cells exposes the palette-indexed display buffer.
func (d *Demo) Cells() []uint8 { return d.display }

func (d *Demo) Config() Config { return d.cfg }

// Source returns the pattern being filled. Callers must not modify it.
func (d *Demo) Source() *grid.Grid { return d.src }

// Session exposes the running fill for inspection.
func (d *Demo) Session() *ff.Session { return d.session }

// Start returns the seed cell of the current fill.
func (d *Demo) Start() image.Point { return d.start }

// Steps counts the cells processed since the fill was last started.
func (d *Demo) Steps() int { return d.steps }

// Reset regenerates the pattern and restarts the fill from the same seed
// cell. A zero seed selects the configured one.
func (d *Demo) Reset(seed int64) {
	if seed == 0 {
		seed = d.cfg.Seed
	}
	d.regenerate(seed)
}

// Step processes one frontier cell.
func (d *Demo) Step() {
	if d.session.FrontierLen() == 0 {
		return
	}
	d.session.Step()
	d.steps++
	d.rebuildDisplay()
}

// Done reports whether the fill has nothing left to process.
func (d *Demo) Done() bool { return d.session.FrontierLen() == 0 }

// SelectCell restarts the fill from (x, y). It reports false for cells
// outside the pattern.
func (d *Demo) SelectCell(x, y int) bool {
	if !d.src.InBounds(x, y) {
		return false
	}
	d.start = image.Pt(x, y)
	d.restart()
	return true
}

// SafetyPreview returns the clearance disk centered at (x, y) and whether
// it fits in cells matching the value at (x, y).
func (d *Demo) SafetyPreview(x, y int) ([]image.Point, bool) {
	cells := d.session.DiskPositions(x, y)
	if !d.src.InBounds(x, y) {
		return cells, false
	}
	target := d.src.Get(x, y)
	for _, p := range cells {
		if !d.src.InBounds(p.X, p.Y) || d.src.Get(p.X, p.Y) != target {
			return cells, false
		}
	}
	return cells, true
}

func (d *Demo) configuredStart() image.Point {
	x, y := d.cfg.StartX, d.cfg.StartY
	if x < 0 {
		x = d.cfg.Width / 2
	}
	if y < 0 {
		y = d.cfg.Height / 2
	}
	return image.Pt(x, y)
}

func (d *Demo) regenerate(seed int64) {
	d.seed = seed
	d.src = shapes.Noise(d.cfg.Width, d.cfg.Height, d.cfg.NoiseScale, d.cfg.NoiseThreshold, seed)
	d.display = make([]uint8, d.cfg.Width*d.cfg.Height)
	d.restart()
}

func (d *Demo) restart() {
	d.session.Initialize(d.src, d.start.X, d.start.Y)
	d.steps = 0
	d.rebuildDisplay()
}

func init() {
	core.Register("floodfill", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
