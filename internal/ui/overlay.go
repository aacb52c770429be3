//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"morphfill/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type previewProvider interface {
	SafetyPreview(x, y int) ([]image.Point, bool)
}

type startProvider interface {
	Start() image.Point
}

// Overlay draws hover feedback, the clearance preview and a status line on
// top of the base simulation.
type Overlay struct {
	sim   core.Sim
	scale int

	hover    image.Point
	hasHover bool

	showPreview bool
	showStatus  bool
	paused      bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, showPreview: true, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell and the overlay toggles: 1 switches the
// clearance preview, 2 the status line.
func (o *Overlay) Update(paused bool) {
	o.paused = paused
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPreview = !o.showPreview
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStatus = !o.showStatus
	}
	mx, my := ebiten.CursorPosition()
	o.hover, o.hasHover = o.CellAt(mx, my)
}

// CellAt maps screen coordinates to a grid cell.
func (o *Overlay) CellAt(sx, sy int) (image.Point, bool) {
	size := o.sim.Size()
	if sx < 0 || sy < 0 {
		return image.Point{}, false
	}
	p := image.Pt(sx/o.scale, sy/o.scale)
	return p, p.X < size.W && p.Y < size.H
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showPreview && o.hasHover {
		if provider, ok := o.sim.(previewProvider); ok {
			cells, safe := provider.SafetyPreview(o.hover.X, o.hover.Y)
			tint := color.RGBA{R: 100, G: 255, B: 100, A: 140}
			if !safe {
				tint = color.RGBA{R: 255, G: 100, B: 100, A: 140}
			}
			for _, c := range cells {
				o.fillCell(screen, c, tint)
			}
		}
	}
	if provider, ok := o.sim.(startProvider); ok {
		o.outlineCell(screen, provider.Start(), colornames.Yellow)
	}
	if o.hasHover {
		o.outlineCell(screen, o.hover, colornames.Lightgray)
	}
	if o.showStatus {
		line := StatusLine(o.sim, o.paused)
		h := o.sim.Size().H * o.scale
		o.fillRect(screen, image.Rect(0, h-statusHeight, screen.Bounds().Dx(), h), color.RGBA{A: 170})
		text.Draw(screen, line, basicfont.Face7x13, 4, h-5, color.White)
	}
}

func (o *Overlay) cellRect(p image.Point) image.Rectangle {
	return image.Rect(p.X*o.scale, p.Y*o.scale, (p.X+1)*o.scale, (p.Y+1)*o.scale)
}

func (o *Overlay) fillCell(screen *ebiten.Image, p image.Point, col color.RGBA) {
	size := o.sim.Size()
	if p.X < 0 || p.Y < 0 || p.X >= size.W || p.Y >= size.H {
		return
	}
	o.fillRect(screen, o.cellRect(p), col)
}

func (o *Overlay) outlineCell(screen *ebiten.Image, p image.Point, col color.RGBA) {
	r := o.cellRect(p)
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	o.fillRect(screen, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	o.fillRect(screen, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

const statusHeight = 18
