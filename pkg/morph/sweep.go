package morph

import (
	"image"

	"morphfill/pkg/grid"
)

// Sweep evaluates a Morphology one cell per Step in row-major order. The
// morphology is read at every step, so SetOperation or SetBoundaryMode
// between steps affects only the cells that are still pending.
type Sweep struct {
	m   *Morphology
	src *grid.Grid
	out *grid.Grid

	next int
}

// NewSweep prepares a sweep of m over src. The output starts as background.
func NewSweep(m *Morphology, src *grid.Grid) *Sweep {
	return &Sweep{m: m, src: src, out: grid.New(src.Width(), src.Height(), false)}
}

// Reset rewinds the sweep and clears the output.
func (s *Sweep) Reset() {
	s.next = 0
	s.out.Clear()
}

// Step evaluates the next pending cell. It reports whether cells remain.
func (s *Sweep) Step() bool {
	total := s.src.Len()
	if s.next >= total {
		return false
	}
	x, y := s.src.Coordinate(s.next)
	s.out.Set(x, y, s.m.EvaluateCell(s.src, x, y))
	s.next++
	return s.next < total
}

// Run evaluates every pending cell and returns how many were evaluated.
func (s *Sweep) Run() int {
	n := 0
	for s.next < s.src.Len() {
		s.Step()
		n++
	}
	return n
}

// Cursor returns the next cell to be evaluated. ok is false once the sweep
// is complete.
func (s *Sweep) Cursor() (p image.Point, ok bool) {
	if s.Complete() {
		return image.Point{}, false
	}
	x, y := s.src.Coordinate(s.next)
	return image.Pt(x, y), true
}

// Evaluated reports whether (x, y) has already been written.
func (s *Sweep) Evaluated(x, y int) bool {
	return s.src.InBounds(x, y) && s.src.Index(x, y) < s.next
}

// Steps returns how many cells have been evaluated since the last Reset.
func (s *Sweep) Steps() int { return s.next }

// Complete reports whether every cell has been evaluated.
func (s *Sweep) Complete() bool { return s.next >= s.src.Len() }

// Progress returns the evaluated fraction in [0, 1].
func (s *Sweep) Progress() float64 {
	total := s.src.Len()
	if total == 0 {
		return 1
	}
	return float64(s.next) / float64(total)
}

// Result returns a copy of the output written so far.
func (s *Sweep) Result() *grid.Grid { return s.out.Clone() }

// Value returns the output at (x, y) without copying the grid.
func (s *Sweep) Value(x, y int) bool { return s.out.Get(x, y) }
