// Package render turns palette-indexed sim cells into pixels or text.
package render

import (
	"image/color"
	"strings"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	onPx := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	offPx := [4]byte{uint8(rOff >> 8), uint8(gOff >> 8), uint8(bOff >> 8), uint8(aOff >> 8)}
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last color. When the palette
// is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Text renders cells as rows of w runes, picking glyphs[value]. Values past
// the end of glyphs render as '?'.
func Text(cells []uint8, w int, glyphs string) string {
	if w <= 0 {
		return ""
	}
	table := []rune(glyphs)
	var b strings.Builder
	b.Grow(len(cells) + len(cells)/w)
	for i, c := range cells {
		if int(c) < len(table) {
			b.WriteRune(table[c])
		} else {
			b.WriteByte('?')
		}
		if (i+1)%w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
