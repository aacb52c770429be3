package floodfill

import (
	"image"
	"strings"

	"github.com/pkg/errors"
)

// Connectivity selects which neighbours are adjacent during the fill.
type Connectivity uint8

const (
	Four  Connectivity = 4
	Eight Connectivity = 8
)

var (
	ErrUnknownConnectivity = errors.New("floodfill: unknown connectivity")
	ErrUnknownAlgorithm    = errors.New("floodfill: unknown algorithm")
)

var (
	cardinal = []image.Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonal = []image.Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// Offsets returns the neighbour offsets in visiting order: north, south,
// west, east, then for Eight the four diagonals.
func (c Connectivity) Offsets() []image.Point {
	out := make([]image.Point, 0, 8)
	out = append(out, cardinal...)
	if c == Eight {
		out = append(out, diagonal...)
	}
	return out
}

func (c Connectivity) String() string {
	if c == Eight {
		return "8"
	}
	return "4"
}

// ParseConnectivity accepts "4", "four", "8" or "eight".
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "four":
		return Four, nil
	case "8", "eight":
		return Eight, nil
	}
	return Four, errors.Wrapf(ErrUnknownConnectivity, "%q", s)
}

// Algorithm selects the end of the frontier that Step pops from.
type Algorithm uint8

const (
	// BFS pops the oldest frontier entry.
	BFS Algorithm = iota
	// DFS pops the newest frontier entry.
	DFS
)

func (a Algorithm) String() string {
	if a == DFS {
		return "dfs"
	}
	return "bfs"
}

// ParseAlgorithm accepts "bfs" or "dfs".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth":
		return BFS, nil
	case "dfs", "depth":
		return DFS, nil
	}
	return BFS, errors.Wrapf(ErrUnknownAlgorithm, "%q", s)
}

// PixelState is the per-cell progress of a session.
type PixelState uint8

const (
	Unvisited PixelState = iota
	InQueue
	Processed
	Boundary
	Unsafe
)

func (s PixelState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case InQueue:
		return "queued"
	case Processed:
		return "processed"
	case Boundary:
		return "boundary"
	case Unsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}

// Terminal reports whether a cell in this state will never change again
// before the next Initialize.
func (s PixelState) Terminal() bool {
	return s == Processed || s == Boundary || s == Unsafe
}
