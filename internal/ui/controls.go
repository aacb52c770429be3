package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"morphfill/internal/core"
)

// controlState tracks one HUD row: the control, its last known value and
// the button rectangles laid out for it.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl, value: "--"}
	}
	return out
}

// refresh reads the control's current value from the snapshot.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = s.formatInt(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

func (s *controlState) formatInt(v int) string {
	if v >= 0 && v < len(s.control.Choices) {
		return s.control.Choices[v]
	}
	return strconv.Itoa(v)
}

// nextInt returns the clamped integer one step in direction and whether it
// differs from the current value.
func (s *controlState) nextInt(direction int) (int, bool) {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	target := s.intValue + direction*step
	if s.control.HasMin {
		target = max(target, int(math.Round(s.control.Min)))
	}
	if s.control.HasMax {
		target = min(target, int(math.Round(s.control.Max)))
	}
	return target, target != s.intValue
}

// nextFloat is nextInt for float controls.
func (s *controlState) nextFloat(direction int) (float64, bool) {
	step := s.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin && target < s.control.Min {
		target = s.control.Min
	}
	if s.control.HasMax && target > s.control.Max {
		target = s.control.Max
	}
	return target, math.Abs(target-s.floatValue) >= 1e-9
}

// adjust applies one step through the matching setter. It reports whether
// the sim accepted the change.
func (s *controlState) adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		target, ok := s.nextInt(direction)
		if !ok || ints == nil || !ints.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = s.formatInt(target)
		return true
	case core.ParamTypeFloat:
		target, ok := s.nextFloat(direction)
		if !ok || floats == nil || !floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
		return true
	}
	return false
}

// canAdjust reports whether a step in direction would change the value.
func (s *controlState) canAdjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		_, ok := s.nextInt(direction)
		return ok && ints != nil
	case core.ParamTypeFloat:
		_, ok := s.nextFloat(direction)
		return ok && floats != nil
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// StatusLine summarises the sim's "Progress" parameter group on one line.
func StatusLine(sim core.Sim, paused bool) string {
	if sim == nil {
		return ""
	}
	parts := []string{sim.Name()}
	if provider, ok := sim.(interface {
		Parameters() core.ParameterSnapshot
	}); ok {
		for _, g := range provider.Parameters().Groups {
			if g.Name != "Progress" {
				continue
			}
			for _, p := range g.Params {
				parts = append(parts, strings.ToLower(p.Label)+" "+p.Value)
			}
		}
	}
	if paused {
		parts = append(parts, "[paused]")
	}
	return strings.Join(parts, "  ")
}
