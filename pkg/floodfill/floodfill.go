// Package floodfill grows a region from a seed cell one step at a time,
// admitting only cells where a disk of the configured safety radius fits
// entirely inside the region.
//
// A Session precomputes its safety mask during Initialize, so every cell's
// safe or unsafe classification is readable before the first Step.
package floodfill

import (
	"image"

	"morphfill/pkg/grid"
)

// Session is a steppable clearance-constrained flood fill. It borrows the
// source grid read-only from Initialize until the next Initialize; the grid
// must not change in between.
type Session struct {
	conn   Connectivity
	alg    Algorithm
	radius int

	neighbors []image.Point
	disk      []image.Point

	src    *grid.Grid
	target bool
	seed   image.Point

	result *grid.Grid
	safe   *grid.Grid
	states *grid.Cells[PixelState]
	front  frontier

	filled  int
	unsafe  int
	current image.Point
	stepped bool

	initialized bool
}

// New returns an uninitialized session. A negative radius is treated as 0.
func New(conn Connectivity, alg Algorithm, radius int) *Session {
	s := &Session{conn: conn, alg: alg}
	s.neighbors = conn.Offsets()
	s.setRadius(radius)
	s.reset(nil)
	return s
}

// Initialize discards all progress and prepares a fill of g from (x, y).
// An out-of-bounds seed leaves the session uninitialized. The seed value
// becomes the target; the seed is queued only if it is safe, otherwise it
// is marked Unsafe and nothing will ever be filled.
func (s *Session) Initialize(g *grid.Grid, x, y int) {
	s.reset(g)
	if g == nil || !g.InBounds(x, y) {
		return
	}
	s.target = g.Get(x, y)
	s.seed = image.Pt(x, y)
	s.safe = safetyMask(g, s.disk, s.target)
	s.initialized = true

	if !s.safe.Get(x, y) {
		s.states.Set(x, y, Unsafe)
		s.unsafe++
		return
	}
	s.states.Set(x, y, InQueue)
	s.front.push(s.seed)
}

func (s *Session) reset(g *grid.Grid) {
	w, h := 0, 0
	if g != nil {
		w, h = g.Width(), g.Height()
	}
	s.src = g
	s.target = false
	s.seed = image.Point{}
	s.result = grid.New(w, h, false)
	s.safe = grid.New(w, h, false)
	s.states = grid.NewCells[PixelState](w, h)
	s.front.clear()
	s.filled = 0
	s.unsafe = 0
	s.current = image.Point{}
	s.stepped = false
	s.initialized = false
}

// Step processes one frontier cell and classifies its unvisited neighbours.
// It reports whether work remains; an uninitialized or finished session
// returns false without doing anything.
func (s *Session) Step() bool {
	if !s.initialized {
		return false
	}
	p, ok := s.front.pop(s.alg)
	if !ok {
		return false
	}
	s.states.Set(p.X, p.Y, Processed)
	s.result.Set(p.X, p.Y, true)
	s.filled++
	s.current = p
	s.stepped = true

	for _, d := range s.neighbors {
		nx, ny := p.X+d.X, p.Y+d.Y
		if !s.src.InBounds(nx, ny) || s.states.At(nx, ny) != Unvisited {
			continue
		}
		switch {
		case s.src.Get(nx, ny) != s.target:
			s.states.Set(nx, ny, Boundary)
		case !s.safe.Get(nx, ny):
			s.states.Set(nx, ny, Unsafe)
			s.unsafe++
		default:
			s.states.Set(nx, ny, InQueue)
			s.front.push(image.Pt(nx, ny))
		}
	}
	return s.front.len() > 0
}

// Run steps until the frontier is empty and returns the number of cells
// processed by this call.
func (s *Session) Run() int {
	n := 0
	for s.initialized && s.front.len() > 0 {
		s.Step()
		n++
	}
	return n
}

// IsComplete reports whether the session was initialized and has drained
// its frontier.
func (s *Session) IsComplete() bool { return s.initialized && s.front.len() == 0 }

func (s *Session) Initialized() bool { return s.initialized }

// State returns the state of (x, y); cells outside the grid are Unvisited.
func (s *Session) State(x, y int) PixelState { return s.states.At(x, y) }

// Frontier returns the pending cells from front to back.
func (s *Session) Frontier() []image.Point { return s.front.positions() }

func (s *Session) FrontierLen() int { return s.front.len() }

func (s *Session) FilledCount() int { return s.filled }

func (s *Session) UnsafeCount() int { return s.unsafe }

// Current returns the most recently processed cell. ok is false until the
// first successful Step after Initialize.
func (s *Session) Current() (p image.Point, ok bool) { return s.current, s.stepped }

// Result returns a copy of the filled cells.
func (s *Session) Result() *grid.Grid { return s.result.Clone() }

// SafetyMask returns a copy of the precomputed safety mask.
func (s *Session) SafetyMask() *grid.Grid { return s.safe.Clone() }

// Target returns the value captured at the seed.
func (s *Session) Target() bool { return s.target }

func (s *Session) Seed() image.Point { return s.seed }

func (s *Session) Connectivity() Connectivity { return s.conn }

func (s *Session) Algorithm() Algorithm { return s.alg }

func (s *Session) SafetyRadius() int { return s.radius }

// NeighborOffsets returns a copy of the active neighbour offsets.
func (s *Session) NeighborOffsets() []image.Point {
	return append([]image.Point(nil), s.neighbors...)
}

// DiskOffsets returns a copy of the clearance disk offsets.
func (s *Session) DiskOffsets() []image.Point {
	return append([]image.Point(nil), s.disk...)
}

// DiskPositions returns the absolute cells of the disk centered at (x, y).
func (s *Session) DiskPositions(x, y int) []image.Point {
	out := make([]image.Point, len(s.disk))
	for i, d := range s.disk {
		out[i] = image.Pt(x+d.X, y+d.Y)
	}
	return out
}

// DiskFits reports whether the disk centered at (x, y) lies entirely in
// cells matching the target. It is false before a successful Initialize.
func (s *Session) DiskFits(x, y int) bool {
	if !s.initialized {
		return false
	}
	return diskFits(s.src, s.disk, s.target, x, y)
}

// SetConnectivity changes the neighbour offsets used by later steps.
func (s *Session) SetConnectivity(c Connectivity) {
	s.conn = c
	s.neighbors = c.Offsets()
}

// SetAlgorithm changes which frontier end later steps pop from.
func (s *Session) SetAlgorithm(a Algorithm) { s.alg = a }

// SetSafetyRadius rebuilds the disk and drops all progress, leaving the
// session uninitialized. Call Initialize again to restart the fill.
func (s *Session) SetSafetyRadius(r int) {
	s.setRadius(r)
	s.reset(s.src)
}

func (s *Session) setRadius(r int) {
	if r < 0 {
		r = 0
	}
	s.radius = r
	s.disk = diskOffsets(r)
}
