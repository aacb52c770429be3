package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a steppable grid demo must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Completer is implemented by sims that reach a final state. Step is a no-op
// once Done reports true.
type Completer interface {
	Done() bool
}

// CellSelector is implemented by sims that react to a picked grid cell.
type CellSelector interface {
	SelectCell(x, y int) bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

// ErrUnknownSim is returned by Lookup for unregistered names.
var ErrUnknownSim = errors.New("unknown sim")

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup constructs the named sim from cfg.
func Lookup(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSim, "%q (have %v)", name, Names())
	}
	return f(cfg), nil
}
