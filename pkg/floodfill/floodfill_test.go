package floodfill_test

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"morphfill/pkg/floodfill"
	"morphfill/pkg/grid"
)

func randomGrid(r *rand.Rand, w, h int, density float64) *grid.Grid {
	g := grid.New(w, h, false)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, r.Float64() < density)
		}
	}
	return g
}

func states(s *floodfill.Session, w, h int) []floodfill.PixelState {
	out := make([]floodfill.PixelState, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, s.State(x, y))
		}
	}
	return out
}

type SessionSuite struct {
	suite.Suite
	full *grid.Grid
}

func (s *SessionSuite) SetupTest() {
	s.full = grid.New(5, 5, true)
}

func (s *SessionSuite) TestZeroRadiusFillsEverything() {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	fs.Initialize(s.full, 2, 2)
	s.Require().True(fs.Initialized())
	s.Equal(floodfill.InQueue, fs.State(2, 2))

	fs.Run()
	s.True(fs.IsComplete())
	s.Equal(25, fs.FilledCount())
	s.Equal(0, fs.UnsafeCount())
	s.True(s.full.Equal(fs.Result()))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			s.Equal(floodfill.Processed, fs.State(x, y))
		}
	}
}

func (s *SessionSuite) TestUnsafeCornerSeed() {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 1)
	fs.Initialize(s.full, 0, 0)
	s.Require().True(fs.Initialized())
	s.Equal(floodfill.Unsafe, fs.State(0, 0))
	s.Equal(1, fs.UnsafeCount())
	s.Equal(0, fs.FrontierLen())
	s.True(fs.IsComplete())
	s.False(fs.Step())
	s.Equal(0, fs.FilledCount())

	mask := fs.SafetyMask()
	s.Equal(9, mask.Count())
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			s.True(mask.Get(x, y), "(%d,%d) should be safe", x, y)
		}
	}
}

func (s *SessionSuite) TestRadiusOneFromInterior() {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 1)
	fs.Initialize(s.full, 2, 2)
	fs.Run()

	s.Equal(9, fs.FilledCount())
	s.Equal(12, fs.UnsafeCount())
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			interior := x >= 1 && x <= 3 && y >= 1 && y <= 3
			corner := (x == 0 || x == 4) && (y == 0 || y == 4)
			switch {
			case interior:
				s.Equal(floodfill.Processed, fs.State(x, y))
			case corner:
				s.Equal(floodfill.Unvisited, fs.State(x, y))
			default:
				s.Equal(floodfill.Unsafe, fs.State(x, y))
			}
		}
	}
}

func (s *SessionSuite) TestEightConnectivityReachesCorners() {
	fs := floodfill.New(floodfill.Eight, floodfill.BFS, 1)
	fs.Initialize(s.full, 2, 2)
	fs.Run()
	s.Equal(9, fs.FilledCount())
	s.Equal(16, fs.UnsafeCount())
	s.Equal(floodfill.Unsafe, fs.State(0, 0))
}

func (s *SessionSuite) TestOutOfBoundsSeed() {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	fs.Initialize(s.full, 5, 0)
	s.False(fs.Initialized())
	s.False(fs.IsComplete())
	s.False(fs.Step())
	s.Equal(0, fs.Run())
	s.Equal(0, fs.FilledCount())
	s.Equal(0, fs.Result().Count())
	s.Equal(floodfill.Unvisited, fs.State(0, 0))
}

func (s *SessionSuite) TestSetSafetyRadiusResets() {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	fs.Initialize(s.full, 2, 2)
	fs.Step()
	fs.SetSafetyRadius(2)

	s.False(fs.Initialized())
	s.Equal(0, fs.FilledCount())
	s.Equal(0, fs.FrontierLen())
	s.Equal(2, fs.SafetyRadius())
	s.Len(fs.DiskOffsets(), 13)

	fs.Initialize(s.full, 2, 2)
	s.Equal(1, fs.SafetyMask().Count())
	fs.Run()
	s.Equal(1, fs.FilledCount())
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestHoleStaysUnvisited(t *testing.T) {
	g := grid.FromRows(
		".......",
		".#####.",
		".##.##.",
		".#####.",
		".......",
	)
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	fs.Initialize(g, 0, 0)
	require.False(t, fs.Target())
	fs.Run()

	assert.Equal(t, floodfill.Unvisited, fs.State(3, 2))
	assert.False(t, fs.Result().Get(3, 2))
	assert.Equal(t, 20, fs.FilledCount())
	assert.Equal(t, floodfill.Boundary, fs.State(1, 1))
	assert.Equal(t, floodfill.Unvisited, fs.State(2, 2))
}

func TestStepOrder(t *testing.T) {
	g := grid.New(3, 3, true)

	bfs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	bfs.Initialize(g, 1, 1)
	require.True(t, bfs.Step())
	p, ok := bfs.Current()
	require.True(t, ok)
	assert.Equal(t, image.Pt(1, 1), p)
	assert.Equal(t, []image.Point{{1, 0}, {1, 2}, {0, 1}, {2, 1}}, bfs.Frontier())
	bfs.Step()
	p, _ = bfs.Current()
	assert.Equal(t, image.Pt(1, 0), p)

	dfs := floodfill.New(floodfill.Four, floodfill.DFS, 0)
	dfs.Initialize(g, 1, 1)
	dfs.Step()
	dfs.Step()
	p, _ = dfs.Current()
	assert.Equal(t, image.Pt(2, 1), p)
}

func TestCurrentBeforeStep(t *testing.T) {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	_, ok := fs.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, fs.Result().Len())
	assert.False(t, fs.DiskFits(0, 0))
}

func TestTermination(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	for trial := 0; trial < 30; trial++ {
		w, h := 1+r.IntN(12), 1+r.IntN(12)
		g := randomGrid(r, w, h, 0.6)
		for _, conn := range []floodfill.Connectivity{floodfill.Four, floodfill.Eight} {
			for _, alg := range []floodfill.Algorithm{floodfill.BFS, floodfill.DFS} {
				fs := floodfill.New(conn, alg, r.IntN(3))
				fs.Initialize(g, r.IntN(w), r.IntN(h))
				steps := 0
				for fs.Step() {
					steps++
					require.LessOrEqual(t, steps, w*h)
				}
				require.True(t, fs.IsComplete())

				processed := 0
				for _, st := range states(fs, w, h) {
					require.True(t, st == floodfill.Unvisited || st.Terminal(), st.String())
					if st == floodfill.Processed {
						processed++
					}
				}
				require.Equal(t, processed, fs.FilledCount())
				require.Equal(t, processed, fs.Result().Count())
			}
		}
	}
}

func TestSafetyMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 2))
	for trial := 0; trial < 20; trial++ {
		w, h := 4+r.IntN(10), 4+r.IntN(10)
		g := randomGrid(r, w, h, 0.75)
		x, y := r.IntN(w), r.IntN(h)
		var prev *grid.Grid
		for radius := 0; radius <= 4; radius++ {
			fs := floodfill.New(floodfill.Eight, floodfill.BFS, radius)
			fs.Initialize(g, x, y)
			fs.Run()
			res := fs.Result()
			if prev != nil {
				for yy := 0; yy < h; yy++ {
					for xx := 0; xx < w; xx++ {
						if res.Get(xx, yy) {
							require.True(t, prev.Get(xx, yy), "radius %d grew at (%d,%d)", radius, xx, yy)
						}
					}
				}
			}
			prev = res
		}
	}
}

func TestReinitializeIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	g := randomGrid(r, 9, 7, 0.7)
	fs := floodfill.New(floodfill.Four, floodfill.DFS, 1)

	fs.Initialize(g, 4, 3)
	fs.Run()
	first := states(fs, 9, 7)
	firstFilled, firstUnsafe := fs.FilledCount(), fs.UnsafeCount()

	fs.Initialize(g, 4, 3)
	fs.Run()
	assert.Equal(t, first, states(fs, 9, 7))
	assert.Equal(t, firstFilled, fs.FilledCount())
	assert.Equal(t, firstUnsafe, fs.UnsafeCount())
}

func TestDiskOffsets(t *testing.T) {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 1)
	assert.Equal(t, []image.Point{{0, -1}, {-1, 0}, {0, 0}, {1, 0}, {0, 1}}, fs.DiskOffsets())

	fs.SetSafetyRadius(2)
	offs := fs.DiskOffsets()
	assert.Len(t, offs, 13)
	assert.NotContains(t, offs, image.Pt(2, 2))
	assert.Contains(t, offs, image.Pt(0, 2))

	fs.SetSafetyRadius(-4)
	assert.Equal(t, 0, fs.SafetyRadius())
	assert.Equal(t, []image.Point{{0, 0}}, fs.DiskOffsets())
	assert.Equal(t, []image.Point{{3, 4}}, fs.DiskPositions(3, 4))
}

func TestDiskFits(t *testing.T) {
	g := grid.New(5, 5, true)
	g.Set(4, 2, false)
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 1)
	fs.Initialize(g, 2, 2)
	assert.True(t, fs.DiskFits(2, 2))
	assert.False(t, fs.DiskFits(3, 2))
	assert.False(t, fs.DiskFits(0, 2))
	assert.False(t, fs.SafetyMask().Get(3, 2))
}

func TestSetConnectivity(t *testing.T) {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	assert.Len(t, fs.NeighborOffsets(), 4)
	fs.SetConnectivity(floodfill.Eight)
	offs := fs.NeighborOffsets()
	require.Len(t, offs, 8)
	assert.Equal(t, image.Pt(-1, -1), offs[4])
	assert.Equal(t, floodfill.Eight, fs.Connectivity())

	g := grid.FromRows(
		"#..",
		".#.",
		"..#",
	)
	fs.Initialize(g, 0, 0)
	fs.Run()
	assert.Equal(t, 3, fs.FilledCount())

	fs.SetConnectivity(floodfill.Four)
	fs.Initialize(g, 0, 0)
	fs.Run()
	assert.Equal(t, 1, fs.FilledCount())
}

func TestDegenerateGrids(t *testing.T) {
	fs := floodfill.New(floodfill.Four, floodfill.BFS, 0)
	fs.Initialize(grid.New(0, 0, false), 0, 0)
	assert.False(t, fs.Initialized())

	fs.Initialize(grid.New(1, 1, false), 0, 0)
	assert.Equal(t, 1, fs.Run())
	assert.Equal(t, 1, fs.FilledCount())

	fs.SetSafetyRadius(1)
	fs.Initialize(grid.New(1, 1, false), 0, 0)
	assert.Equal(t, 0, fs.Run())
	assert.Equal(t, floodfill.Unsafe, fs.State(0, 0))
}

func TestParse(t *testing.T) {
	c, err := floodfill.ParseConnectivity("8")
	require.NoError(t, err)
	assert.Equal(t, floodfill.Eight, c)
	a, err := floodfill.ParseAlgorithm("DFS")
	require.NoError(t, err)
	assert.Equal(t, floodfill.DFS, a)

	_, err = floodfill.ParseConnectivity("6")
	assert.ErrorIs(t, err, floodfill.ErrUnknownConnectivity)
	_, err = floodfill.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, floodfill.ErrUnknownAlgorithm)
}

func TestPixelStateTerminal(t *testing.T) {
	assert.False(t, floodfill.Unvisited.Terminal())
	assert.False(t, floodfill.InQueue.Terminal())
	assert.True(t, floodfill.Processed.Terminal())
	assert.True(t, floodfill.Boundary.Terminal())
	assert.True(t, floodfill.Unsafe.Terminal())
}
