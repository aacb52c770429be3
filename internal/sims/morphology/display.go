package morphology

import (
	"image/color"

	"golang.org/x/image/colornames"

	"morphfill/pkg/morph"
)

const (
	displayGutter uint8 = iota
	displayBackground
	displayForeground
	displayCoverage
	displayCoverageEdge
	displayCenter
	displayPending
	displayResultOn
	displayResultOff

	displayValues
)

var palettes = buildPalettes()

// Palette returns the colors for the display values. The result colors
// depend on the active operation.
func (d *Demo) Palette() []color.RGBA {
	op := d.m.Operation()
	if int(op) >= len(palettes) {
		op = morph.Erosion
	}
	return palettes[op]
}

func buildPalettes() [][]color.RGBA {
	out := make([][]color.RGBA, len(morph.Operations))
	for _, op := range morph.Operations {
		p := make([]color.RGBA, displayValues)
		p[displayGutter] = color.RGBA{R: 20, G: 20, B: 25, A: 255}
		p[displayBackground] = color.RGBA{R: 50, G: 50, B: 50, A: 255}
		p[displayForeground] = colornames.White
		p[displayCoverage] = colornames.Orange
		p[displayCoverageEdge] = colornames.Mediumpurple
		p[displayCenter] = colornames.Tomato
		p[displayPending] = color.RGBA{R: 35, G: 35, B: 35, A: 255}
		p[displayResultOn], p[displayResultOff] = resultColors(op)
		out[op] = p
	}
	return out
}

func resultColors(op morph.Operation) (on, off color.RGBA) {
	switch op {
	case morph.Erosion:
		return colornames.Springgreen, color.RGBA{R: 100, G: 50, B: 50, A: 255}
	case morph.Dilation:
		return colornames.Cornflowerblue, color.RGBA{R: 40, G: 40, B: 50, A: 255}
	default:
		return colornames.Gold, color.RGBA{R: 35, G: 35, B: 35, A: 255}
	}
}

// nearEdge reports whether the element centered at (x, y) reaches past the
// image border.
func (d *Demo) nearEdge(x, y int) bool {
	c := d.m.Element().Center
	return x < c.X || x >= d.cfg.Width-c.X || y < c.Y || y >= d.cfg.Height-c.Y
}

func (d *Demo) rebuildDisplay() {
	w, h := d.cfg.Width, d.cfg.Height
	stride := 2*w + 1
	if len(d.display) != stride*h {
		return
	}

	cursor, active := d.sweep.Cursor()
	covered := make([]bool, w*h)
	edge := false
	if active {
		for _, p := range d.m.CoveredPositions(cursor.X, cursor.Y) {
			if d.src.InBounds(p.X, p.Y) {
				covered[d.src.Index(p.X, p.Y)] = true
			}
		}
		edge = d.nearEdge(cursor.X, cursor.Y)
	}

	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			var v uint8
			switch {
			case active && x == cursor.X && y == cursor.Y:
				v = displayCenter
			case covered[y*w+x] && edge:
				v = displayCoverageEdge
			case covered[y*w+x]:
				v = displayCoverage
			case d.src.Get(x, y):
				v = displayForeground
			default:
				v = displayBackground
			}
			d.display[row+x] = v

			out := displayPending
			if d.sweep.Evaluated(x, y) {
				out = displayResultOff
				if d.sweep.Value(x, y) {
					out = displayResultOn
				}
			}
			d.display[row+w+1+x] = out
		}
		d.display[row+w] = displayGutter
	}
}

// Glyphs maps each display value to a rune for text rendering.
func (d *Demo) Glyphs() string { return " .#++@.o-" }
