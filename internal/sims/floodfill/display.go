package floodfill

import (
	"image/color"

	"golang.org/x/image/colornames"

	ff "morphfill/pkg/floodfill"
)

const (
	displayObstacle uint8 = iota
	displayOpen
	displayQueued
	displayProcessed
	displayBoundary
	displayUnsafe
	displayCurrent

	displayValues
)

var fillPalette = []color.RGBA{
	displayObstacle:  {R: 60, G: 40, B: 40, A: 255},
	displayOpen:      {R: 150, G: 150, B: 150, A: 255},
	displayQueued:    colornames.Orange,
	displayProcessed: colornames.Mediumseagreen,
	displayBoundary:  colornames.Darkslateblue,
	displayUnsafe:    colornames.Tomato,
	displayCurrent:   colornames.Yellow,
}

// Palette returns the colors for the display values.
func (d *Demo) Palette() []color.RGBA { return fillPalette }

func encodeState(state ff.PixelState, fg bool) uint8 {
	switch state {
	case ff.InQueue:
		return displayQueued
	case ff.Processed:
		return displayProcessed
	case ff.Boundary:
		return displayBoundary
	case ff.Unsafe:
		return displayUnsafe
	}
	if fg {
		return displayOpen
	}
	return displayObstacle
}

func (d *Demo) rebuildDisplay() {
	w, h := d.cfg.Width, d.cfg.Height
	if len(d.display) != w*h {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.display[y*w+x] = encodeState(d.session.State(x, y), d.src.Get(x, y))
		}
	}
	if p, ok := d.session.Current(); ok && d.src.InBounds(p.X, p.Y) {
		d.display[p.Y*w+p.X] = displayCurrent
	}
}

// Glyphs maps each display value to a rune for text rendering.
func (d *Demo) Glyphs() string { return "#.*o=x@" }
