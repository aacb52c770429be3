package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morphfill/internal/core"
)

type fakeSim struct {
	ints   map[string]int
	floats map[string]float64
}

func newFakeSim() *fakeSim {
	return &fakeSim{
		ints:   map[string]int{"radius": 2, "alg": 0},
		floats: map[string]float64{"scale": 0.2},
	}
}

func (f *fakeSim) Name() string { return "fake" }
func (f *fakeSim) Size() core.Size { return core.Size{W: 4, H: 4} }
func (f *fakeSim) Reset(int64) {}
func (f *fakeSim) Step() {}
func (f *fakeSim) Cells() []uint8 { return make([]uint8, 16) }

func (f *fakeSim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Fill", Params: []core.Parameter{
			core.IntParam("radius", "Radius", f.ints["radius"]),
			core.IntParam("alg", "Search", f.ints["alg"]),
			core.FloatParam("scale", "Scale", f.floats["scale"]),
		}},
		{Name: "Progress", Params: []core.Parameter{
			core.IntParam("filled", "Filled", 7),
			core.BoolParam("done", "Done", false),
		}},
	}}
}

func (f *fakeSim) SetIntParameter(key string, v int) bool {
	if _, ok := f.ints[key]; !ok {
		return false
	}
	f.ints[key] = v
	return true
}

func (f *fakeSim) SetFloatParameter(key string, v float64) bool {
	if _, ok := f.floats[key]; !ok {
		return false
	}
	f.floats[key] = v
	return true
}

func TestControlIntClamping(t *testing.T) {
	sim := newFakeSim()
	states := newControlStates([]core.ParameterControl{
		{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 3, HasMin: true, HasMax: true},
	})
	s := &states[0]
	s.refresh(sim.Parameters())
	require.True(t, s.hasValue)
	assert.Equal(t, "2", s.value)

	assert.True(t, s.adjust(1, sim, sim))
	assert.Equal(t, 3, sim.ints["radius"])
	assert.False(t, s.canAdjust(1, sim, sim))
	assert.False(t, s.adjust(1, sim, sim))
	assert.True(t, s.canAdjust(-1, sim, sim))
	assert.False(t, s.canAdjust(-1, nil, sim))
}

func TestControlChoices(t *testing.T) {
	sim := newFakeSim()
	states := newControlStates([]core.ParameterControl{core.ChoiceControl("alg", "Search", "bfs", "dfs")})
	s := &states[0]
	s.refresh(sim.Parameters())
	assert.Equal(t, "bfs", s.value)
	require.True(t, s.adjust(1, sim, sim))
	assert.Equal(t, "dfs", s.value)
	assert.Equal(t, 1, sim.ints["alg"])
	assert.False(t, s.canAdjust(1, sim, sim))
}

func TestControlFloat(t *testing.T) {
	sim := newFakeSim()
	states := newControlStates([]core.ParameterControl{
		{Key: "scale", Label: "Scale", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.1, Max: 0.4, HasMin: true, HasMax: true},
	})
	s := &states[0]
	s.refresh(sim.Parameters())
	assert.Equal(t, "0.20", s.value)
	require.True(t, s.adjust(-1, sim, sim))
	assert.InDelta(t, 0.15, sim.floats["scale"], 1e-9)
	assert.False(t, s.adjust(1, sim, nil))
}

func TestControlMissingParameter(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{Key: "nope", Type: core.ParamTypeInt}})
	s := &states[0]
	s.refresh(newFakeSim().Parameters())
	assert.False(t, s.hasValue)
	assert.Equal(t, "--", s.value)
	assert.False(t, s.canAdjust(1, nil, nil))
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "fake  filled 7  done false  [paused]", StatusLine(newFakeSim(), true))
	assert.Equal(t, "", StatusLine(nil, false))
}
