package floodfill

import (
	"image"

	"morphfill/pkg/grid"
)

// diskOffsets lists every integer offset within distance r of the origin,
// rows top to bottom. A non-positive radius yields only the origin.
func diskOffsets(r int) []image.Point {
	if r <= 0 {
		return []image.Point{{0, 0}}
	}
	out := make([]image.Point, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				out = append(out, image.Pt(dx, dy))
			}
		}
	}
	return out
}

// diskFits reports whether every disk cell around (x, y) is in bounds and
// equal to target.
func diskFits(g *grid.Grid, disk []image.Point, target bool, x, y int) bool {
	for _, d := range disk {
		px, py := x+d.X, y+d.Y
		if !g.InBounds(px, py) || g.Get(px, py) != target {
			return false
		}
	}
	return true
}

// safetyMask marks the cells matching target whose disk fits.
func safetyMask(g *grid.Grid, disk []image.Point, target bool) *grid.Grid {
	mask := grid.New(g.Width(), g.Height(), false)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) == target && diskFits(g, disk, target, x, y) {
				mask.Set(x, y, true)
			}
		}
	}
	return mask
}
