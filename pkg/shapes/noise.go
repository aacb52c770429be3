package shapes

import (
	"math"

	"morphfill/pkg/core"
)

// perlin is 2D gradient noise over a seeded permutation table.
type perlin struct {
	p [512]int
}

func newPerlin(seed int64) *perlin {
	n := &perlin{}
	perm := core.NewRNG(seed).Permutation(256)
	for i, v := range perm {
		n.p[i] = v
		n.p[256+i] = v
	}
	return n
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func grad(hash int, x, y float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// at returns noise at (x, y) normalised to roughly [0, 1].
func (n *perlin) at(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi, yi := int(fx)&255, int(fy)&255
	x -= fx
	y -= fy
	u, v := fade(x), fade(y)

	p := &n.p
	aa := p[p[xi]+yi]
	ab := p[p[xi]+yi+1]
	ba := p[p[xi+1]+yi]
	bb := p[p[xi+1]+yi+1]

	res := lerp(
		lerp(grad(aa, x, y), grad(ba, x-1, y), u),
		lerp(grad(ab, x, y-1), grad(bb, x-1, y-1), u),
		v,
	)
	return (res + 1) / 2
}

// fbm sums octaves of noise with halving amplitude and doubling frequency.
func (n *perlin) fbm(x, y float64, octaves int) float64 {
	value, amp, freq := 0.0, 0.5, 1.0
	for i := 0; i < octaves; i++ {
		value += amp * n.at(x*freq, y*freq)
		amp *= 0.5
		freq *= 2
	}
	return value
}
