// Package shapes generates the demo input grids: simple filled figures and
// thresholded fractal noise. Every generator is deterministic.
package shapes

import (
	"strings"

	"github.com/pkg/errors"

	"morphfill/pkg/grid"
)

// Kind names one of the generators.
type Kind uint8

const (
	KindRectangle Kind = iota
	KindCross
	KindLShape
	KindCircle
	KindNoise
)

// Kinds lists every generator in selector order.
var Kinds = []Kind{KindRectangle, KindCross, KindLShape, KindCircle, KindNoise}

var ErrUnknownKind = errors.New("shapes: unknown shape")

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rect"
	case KindCross:
		return "cross"
	case KindLShape:
		return "lshape"
	case KindCircle:
		return "circle"
	case KindNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// ParseKind maps a shape name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	switch name {
	case "rectangle", "square":
		return KindRectangle, nil
	case "l", "l-shape":
		return KindLShape, nil
	case "disk":
		return KindCircle, nil
	}
	return KindRectangle, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Params carries the inputs of every generator; each Kind reads only the
// fields it needs.
type Params struct {
	W, H      int
	Margin    int
	Thickness int
	Radius    int

	NoiseScale     float64
	NoiseThreshold float64
	Seed           int64
}

// DefaultParams returns the demo defaults for a size×size grid.
func DefaultParams(size int) Params {
	return Params{
		W:              size,
		H:              size,
		Margin:         2,
		Thickness:      3,
		Radius:         size / 3,
		NoiseScale:     0.2,
		NoiseThreshold: 0.45,
		Seed:           42,
	}
}

// Generate builds the grid for kind. Unknown kinds yield an empty grid of
// the requested size.
func Generate(kind Kind, p Params) *grid.Grid {
	switch kind {
	case KindRectangle:
		return Rectangle(p.W, p.H, p.Margin)
	case KindCross:
		return Cross(p.W, p.H, p.Thickness)
	case KindLShape:
		return LShape(p.W, p.H)
	case KindCircle:
		return Circle(p.W, p.H, p.Radius)
	case KindNoise:
		return Noise(p.W, p.H, p.NoiseScale, p.NoiseThreshold, p.Seed)
	default:
		return grid.New(p.W, p.H, false)
	}
}

func fillRect(g *grid.Grid, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Set(x, y, true)
		}
	}
}

// Rectangle fills margin <= x < w-margin, margin <= y < h-margin.
func Rectangle(w, h, margin int) *grid.Grid {
	g := grid.New(w, h, false)
	fillRect(g, margin, margin, w-margin, h-margin)
	return g
}

// Cross draws a horizontal and a vertical bar of the given thickness through
// the center, each inset two cells from the edges.
func Cross(w, h, thickness int) *grid.Grid {
	g := grid.New(w, h, false)
	cx, cy, half := w/2, h/2, thickness/2
	fillRect(g, 2, cy-half, w-2, cy+half+1)
	fillRect(g, cx-half, 2, cx+half+1, h-2)
	return g
}

// LShape draws a left vertical arm and a bottom horizontal arm with a two
// cell margin.
func LShape(w, h int) *grid.Grid {
	const margin = 2
	t := max(2, min(w, h)/4)
	g := grid.New(w, h, false)
	fillRect(g, margin, margin, margin+t, h-margin)
	fillRect(g, margin, h-margin-t, w-margin, h-margin)
	return g
}

// Circle fills every cell within radius of (w/2, h/2).
func Circle(w, h, radius int) *grid.Grid {
	g := grid.New(w, h, false)
	cx, cy, r2 := w/2, h/2, radius*radius
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				g.Set(x, y, true)
			}
		}
	}
	return g
}

// Noise thresholds three octaves of seeded gradient noise sampled at
// (x*scale, y*scale). Cells strictly above threshold are foreground.
func Noise(w, h int, scale, threshold float64, seed int64) *grid.Grid {
	g := grid.New(w, h, false)
	n := newPerlin(seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if n.fbm(float64(x)*scale, float64(y)*scale, 3) > threshold {
				g.Set(x, y, true)
			}
		}
	}
	return g
}
