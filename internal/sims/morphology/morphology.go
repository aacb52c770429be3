// Package morphology animates a binary morphology operation one cell per
// step, showing the source with the structuring element on the left and the
// output as it is written on the right.
package morphology

import (
	"morphfill/internal/core"
	"morphfill/pkg/grid"
	"morphfill/pkg/morph"
	"morphfill/pkg/shapes"
)

// Demo holds the source image and the sweep over it.
type Demo struct {
	cfg  Config
	seed int64

	src     *grid.Grid
	m       *morph.Morphology
	sweep   *morph.Sweep
	display []uint8
}

// New returns a demo over a size×size image using defaults.
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
	d.regenerate(cfg.Seed)
	return d
}

// Name returns the simulation identifier.
func (d *Demo) Name() string { return "morphology" }

// Size reports the display dimensions: two panels and a one cell gutter.
func (d *Demo) Size() core.Size {
	return core.Size{W: 2*d.cfg.Width + 1, H: d.cfg.Height}
}

// Cells exposes the palette-indexed display buffer.
func (d *Demo) Cells() []uint8 { return d.display }

// Config returns the active configuration.
func (d *Demo) Config() Config { return d.cfg }

// Source returns the input image. Callers must not modify it.
func (d *Demo) Source() *grid.Grid { return d.src }

// Result returns a copy of the output written so far.
func (d *Demo) Result() *grid.Grid { return d.sweep.Result() }

func (d *Demo) Morphology() *morph.Morphology { return d.m }

func (d *Demo) Sweep() *morph.Sweep { return d.sweep }

// Reset regenerates the source image and restarts the sweep. A zero seed
// selects the configured one.
func (d *Demo) Reset(seed int64) {
	if seed == 0 {
		seed = d.cfg.Seed
	}
	d.regenerate(seed)
}

// Step evaluates the next cell of the sweep.
func (d *Demo) Step() {
	if d.sweep.Complete() {
		return
	}
	d.sweep.Step()
	d.rebuildDisplay()
}

// Done reports whether every output cell has been evaluated.
func (d *Demo) Done() bool { return d.sweep.Complete() }

func (d *Demo) shapeParams() shapes.Params {
	p := shapes.DefaultParams(min(d.cfg.Width, d.cfg.Height))
	p.W, p.H = d.cfg.Width, d.cfg.Height
	p.NoiseScale = d.cfg.NoiseScale
	p.NoiseThreshold = d.cfg.NoiseThreshold
	p.Seed = d.seed
	return p
}

func (d *Demo) regenerate(seed int64) {
	d.seed = seed
	d.src = shapes.Generate(d.cfg.Shape, d.shapeParams())
	d.restart()
}

// restart rebuilds the morphology from the config and rewinds the sweep
// over the current source.
func (d *Demo) restart() {
	se := morph.NewElementOfKind(d.cfg.Element, d.cfg.ElementSize)
	d.m = morph.New(se, d.cfg.Op, d.cfg.Boundary)
	d.sweep = morph.NewSweep(d.m, d.src)
	size := d.Size()
	d.display = make([]uint8, size.W*size.H)
	d.rebuildDisplay()
}

func init() {
	core.Register("morphology", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
