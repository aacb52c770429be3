// Package grid provides the two-valued raster shared by the morphology and
// flood-fill engines, plus a generic row-major table sized to match it.
package grid

import (
	"image"

	"github.com/boljen/go-bitmap"
)

// Grid stores a W×H binary image in row-major order. Reads outside the grid
// return false and writes outside the grid are dropped.
type Grid struct {
	w, h int
	bits bitmap.Bitmap
}

// New allocates a grid with every cell set to fill. Negative dimensions are
// treated as zero.
func New(w, h int, fill bool) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, bits: bitmap.New(w * h)}
	if fill {
		g.Fill(true)
	}
	return g
}

// FromRows builds a grid from strings where '#' or '1' marks foreground.
// Rows shorter than the first row are padded with background.
func FromRows(rows ...string) *Grid {
	if len(rows) == 0 {
		return New(0, 0, false)
	}
	g := New(len(rows[0]), len(rows), false)
	for y, row := range rows {
		for x := 0; x < len(row) && x < g.w; x++ {
			if row[x] == '#' || row[x] == '1' {
				g.Set(x, y, true)
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.w * g.h }

// Bounds returns the grid rectangle anchored at the origin.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.w, g.h) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear index for (x, y). It does not check bounds.
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Coordinate converts a linear index back to (x, y).
func (g *Grid) Coordinate(i int) (int, int) {
	if g.w == 0 {
		return 0, 0
	}
	return i % g.w, i / g.w
}

// Get returns the value at (x, y), or false when out of bounds.
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.bits.Get(y*g.w + x)
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, v bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.bits.Set(y*g.w+x, v)
}

// Fill sets every cell to v.
func (g *Grid) Fill(v bool) {
	var b byte
	if v {
		b = 0xff
	}
	data := g.bits.Data(false)
	for i := range data {
		data[i] = b
	}
}

// Clear sets every cell to background.
func (g *Grid) Clear() { g.Fill(false) }

// Count returns the number of foreground cells.
func (g *Grid) Count() int {
	n := 0
	total := g.w * g.h
	for i := 0; i < total; i++ {
		if g.bits.Get(i) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, bits: bitmap.Bitmap(g.bits.Data(true))}
}

// Equal reports whether both grids have the same size and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	total := g.w * g.h
	for i := 0; i < total; i++ {
		if g.bits.Get(i) != o.bits.Get(i) {
			return false
		}
	}
	return true
}

// Wrap applies toroidal wrapping to the provided coordinates. The grid must
// have a non-zero area.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Clamp moves the coordinates onto the nearest edge cell. The grid must have
// a non-zero area.
func (g *Grid) Clamp(x, y int) (int, int) {
	return clamp(x, 0, g.w-1), clamp(y, 0, g.h-1)
}

// String renders the grid with '#' for foreground and '.' for background,
// one row per line.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.w+1)*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.bits.Get(y*g.w + x) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
