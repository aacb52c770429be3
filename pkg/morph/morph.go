// Package morph implements binary morphology over grid.Grid: erosion,
// dilation and the boundary and gradient operations derived from them.
//
// A Morphology evaluates each output cell independently, so Apply and
// EvaluateCell always agree and a caller may animate the operation one cell
// at a time (see Sweep).
package morph

import (
	"image"
	"strings"

	"github.com/pkg/errors"

	"morphfill/pkg/grid"
)

// Operation selects the per-cell formula.
type Operation uint8

const (
	// Erosion keeps a cell iff every covered cell is foreground.
	Erosion Operation = iota
	// Dilation sets a cell iff any covered cell is foreground.
	Dilation
	// InnerBoundary is original AND NOT eroded.
	InnerBoundary
	// OuterBoundary is dilated AND NOT original.
	OuterBoundary
	// Gradient is dilated XOR eroded.
	Gradient

	numOperations
)

// ErrUnknownOperation is returned when an operation name is not recognised.
var ErrUnknownOperation = errors.New("morph: unknown operation")

// Operations lists every operation in declaration order.
var Operations = []Operation{Erosion, Dilation, InnerBoundary, OuterBoundary, Gradient}

type evalFunc func(m *Morphology, g *grid.Grid, x, y int) bool

var evaluators = [...]evalFunc{
	Erosion:  func(m *Morphology, g *grid.Grid, x, y int) bool { return m.erodes(g, x, y) },
	Dilation: func(m *Morphology, g *grid.Grid, x, y int) bool { return m.dilates(g, x, y) },
	InnerBoundary: func(m *Morphology, g *grid.Grid, x, y int) bool {
		return g.Get(x, y) && !m.erodes(g, x, y)
	},
	OuterBoundary: func(m *Morphology, g *grid.Grid, x, y int) bool {
		return m.dilates(g, x, y) && !g.Get(x, y)
	},
	Gradient: func(m *Morphology, g *grid.Grid, x, y int) bool {
		return m.dilates(g, x, y) != m.erodes(g, x, y)
	},
}

// Fails to compile unless there is exactly one evaluator per operation.
var (
	_ [len(evaluators) - int(numOperations)]struct{}
	_ [int(numOperations) - len(evaluators)]struct{}
)

func (op Operation) String() string {
	switch op {
	case Erosion:
		return "erosion"
	case Dilation:
		return "dilation"
	case InnerBoundary:
		return "inner"
	case OuterBoundary:
		return "outer"
	case Gradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// ParseOperation maps an operation name to an Operation.
func ParseOperation(s string) (Operation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, op := range Operations {
		if op.String() == name {
			return op, nil
		}
	}
	switch name {
	case "erode":
		return Erosion, nil
	case "dilate":
		return Dilation, nil
	case "inner-boundary", "inner_boundary":
		return InnerBoundary, nil
	case "outer-boundary", "outer_boundary":
		return OuterBoundary, nil
	}
	return Erosion, errors.Wrapf(ErrUnknownOperation, "%q", s)
}

// Morphology applies one operation with a fixed structuring element. The
// zero Operation and BoundaryMode are Erosion and BoundaryZero.
type Morphology struct {
	se       Element
	op       Operation
	boundary BoundaryMode
}

// New returns a Morphology for the given element, operation and mode.
func New(se Element, op Operation, mode BoundaryMode) *Morphology {
	return &Morphology{se: se, op: op, boundary: mode}
}

// Element returns the structuring element.
func (m *Morphology) Element() Element { return m.se }

// Operation returns the configured operation.
func (m *Morphology) Operation() Operation { return m.op }

// BoundaryMode returns the configured boundary mode.
func (m *Morphology) BoundaryMode() BoundaryMode { return m.boundary }

// SetOperation changes the operation without touching the element.
func (m *Morphology) SetOperation(op Operation) { m.op = op }

// SetBoundaryMode changes the boundary mode without touching the element.
func (m *Morphology) SetBoundaryMode(mode BoundaryMode) { m.boundary = mode }

// Apply evaluates the operation at every cell of g and returns a new grid of
// the same size. g is not modified.
func (m *Morphology) Apply(g *grid.Grid) *grid.Grid {
	out := grid.New(g.Width(), g.Height(), false)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out.Set(x, y, m.EvaluateCell(g, x, y))
		}
	}
	return out
}

// EvaluateCell returns the output value of the operation at (x, y).
func (m *Morphology) EvaluateCell(g *grid.Grid, x, y int) bool {
	if m.op >= numOperations {
		return g.Get(x, y)
	}
	return evaluators[m.op](m, g, x, y)
}

// ReadWithBoundary resolves a possibly out-of-bounds coordinate using the
// configured boundary mode.
func (m *Morphology) ReadWithBoundary(g *grid.Grid, x, y int) bool {
	return m.boundary.read(g, x, y)
}

// CoveredPositions returns the absolute cells the element occupies when
// centered at (x, y), in offset order. Positions may lie outside any grid.
func (m *Morphology) CoveredPositions(x, y int) []image.Point {
	out := make([]image.Point, len(m.se.offsets))
	for i, d := range m.se.offsets {
		out[i] = image.Pt(x+d.X, y+d.Y)
	}
	return out
}

func (m *Morphology) erodes(g *grid.Grid, x, y int) bool {
	for _, d := range m.se.offsets {
		if !m.boundary.read(g, x+d.X, y+d.Y) {
			return false
		}
	}
	return true
}

func (m *Morphology) dilates(g *grid.Grid, x, y int) bool {
	for _, d := range m.se.offsets {
		if m.boundary.read(g, x+d.X, y+d.Y) {
			return true
		}
	}
	return false
}
