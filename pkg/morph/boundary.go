package morph

import (
	"strings"

	"github.com/pkg/errors"

	"morphfill/pkg/grid"
)

// BoundaryMode decides what a morphology read outside the grid returns.
type BoundaryMode uint8

const (
	// BoundaryZero treats outside cells as background.
	BoundaryZero BoundaryMode = iota
	// BoundaryOne treats outside cells as foreground.
	BoundaryOne
	// BoundaryExtend clamps to the nearest edge cell.
	BoundaryExtend
	// BoundaryWrap wraps toroidally.
	BoundaryWrap
)

// ErrUnknownBoundary is returned when a boundary mode name is not recognised.
var ErrUnknownBoundary = errors.New("morph: unknown boundary mode")

// BoundaryModes lists every mode in declaration order.
var BoundaryModes = []BoundaryMode{BoundaryZero, BoundaryOne, BoundaryExtend, BoundaryWrap}

func (m BoundaryMode) String() string {
	switch m {
	case BoundaryZero:
		return "zero"
	case BoundaryOne:
		return "one"
	case BoundaryExtend:
		return "extend"
	case BoundaryWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParseBoundaryMode maps a mode name to a BoundaryMode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range BoundaryModes {
		if m.String() == name {
			return m, nil
		}
	}
	switch name {
	case "clamp", "replicate":
		return BoundaryExtend, nil
	case "periodic", "torus":
		return BoundaryWrap, nil
	}
	return BoundaryZero, errors.Wrapf(ErrUnknownBoundary, "%q", s)
}

// read resolves (x, y) against g under mode m. In-bounds coordinates are
// read directly regardless of the mode.
func (m BoundaryMode) read(g *grid.Grid, x, y int) bool {
	if g.InBounds(x, y) {
		return g.Get(x, y)
	}
	switch m {
	case BoundaryOne:
		return true
	case BoundaryExtend:
		if g.Len() == 0 {
			return false
		}
		return g.Get(g.Clamp(x, y))
	case BoundaryWrap:
		if g.Len() == 0 {
			return false
		}
		return g.Get(g.Wrap(x, y))
	default:
		return false
	}
}
