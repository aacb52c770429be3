package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, []byte{255, 255, 255, 255, 10, 20, 30, 255}, buf)
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)
	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}, buf)

	for i := range buf {
		buf[i] = 9
	}
	fillPaletteRGBA(buf, []uint8{0, 1, 2}, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

func TestText(t *testing.T) {
	got := Text([]uint8{0, 1, 2, 1, 0, 5}, 3, ".#o")
	assert.Equal(t, ".#o\n#.?\n", got)
	assert.Equal(t, "", Text([]uint8{1}, 0, ".#"))
}
