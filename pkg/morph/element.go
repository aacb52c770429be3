package morph

import (
	"image"
	"strings"

	"github.com/pkg/errors"
)

// ElementKind selects one of the built-in structuring element shapes.
type ElementKind uint8

const (
	ElementSquare ElementKind = iota
	ElementCross
)

// ErrUnknownElement is returned when an element kind name is not recognised.
var ErrUnknownElement = errors.New("morph: unknown structuring element")

func (k ElementKind) String() string {
	switch k {
	case ElementSquare:
		return "square"
	case ElementCross:
		return "cross"
	default:
		return "unknown"
	}
}

// ParseElementKind maps "square" or "cross" to an ElementKind.
func ParseElementKind(s string) (ElementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "box", "rect":
		return ElementSquare, nil
	case "cross", "plus":
		return ElementCross, nil
	}
	return ElementSquare, errors.Wrapf(ErrUnknownElement, "%q", s)
}

// Element is a structuring element: an ordered set of offsets relative to a
// center cell. Width and Height describe the nominal bounding box only.
type Element struct {
	Width, Height int
	Center        image.Point

	offsets []image.Point
}

// NewElement builds a custom element. The offsets are copied.
func NewElement(w, h int, center image.Point, offsets []image.Point) Element {
	return Element{
		Width:   w,
		Height:  h,
		Center:  center,
		offsets: append([]image.Point(nil), offsets...),
	}
}

// NewElementOfKind builds a square or cross element of the given size.
func NewElementOfKind(kind ElementKind, size int) Element {
	if kind == ElementCross {
		return Cross(size)
	}
	return Square(size)
}

// Square returns a size×size element centered at (size/2, size/2). Sizes
// below one produce the single-offset identity element.
func Square(size int) Element {
	if size < 1 {
		size = 1
	}
	c := size / 2
	e := Element{Width: size, Height: size, Center: image.Pt(c, c)}
	e.offsets = make([]image.Point, 0, (2*c+1)*(2*c+1))
	for dy := -c; dy <= c; dy++ {
		for dx := -c; dx <= c; dx++ {
			e.offsets = append(e.offsets, image.Pt(dx, dy))
		}
	}
	return e
}

// Cross returns a one-cell-wide plus shape: the center first, then the
// horizontal arm, then the vertical arm.
func Cross(size int) Element {
	if size < 1 {
		size = 1
	}
	c := size / 2
	e := Element{Width: size, Height: size, Center: image.Pt(c, c)}
	e.offsets = make([]image.Point, 0, 4*c+1)
	e.offsets = append(e.offsets, image.Pt(0, 0))
	for dx := -c; dx <= c; dx++ {
		if dx != 0 {
			e.offsets = append(e.offsets, image.Pt(dx, 0))
		}
	}
	for dy := -c; dy <= c; dy++ {
		if dy != 0 {
			e.offsets = append(e.offsets, image.Pt(0, dy))
		}
	}
	return e
}

// Offsets returns a copy of the element offsets in evaluation order.
func (e Element) Offsets() []image.Point {
	return append([]image.Point(nil), e.offsets...)
}

// Len returns the number of offsets.
func (e Element) Len() int { return len(e.offsets) }
