package morphology

import (
	"morphfill/internal/core"
	"morphfill/pkg/morph"
	"morphfill/pkg/shapes"
)

const (
	minSize        = 8
	maxSize        = 64
	maxElementSize = 15
)

func (d *Demo) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Image",
			Params: []core.Parameter{
				core.IntParam("size", "Size", d.cfg.Width),
				core.IntParam("w", "Width", d.cfg.Width),
				core.IntParam("h", "Height", d.cfg.Height),
				core.IntParam("shape", "Shape", int(d.cfg.Shape)),
				core.Int64Param("seed", "Seed", d.seed),
				core.FloatParam("noise_scale", "Noise scale", d.cfg.NoiseScale),
				core.FloatParam("noise_threshold", "Noise threshold", d.cfg.NoiseThreshold),
			},
		},
		{
			Name: "Structuring Element",
			Params: []core.Parameter{
				core.IntParam("se", "Element", int(d.cfg.Element)),
				core.IntParam("se_size", "Element size", d.cfg.ElementSize),
			},
		},
		{
			Name: "Operation",
			Params: []core.Parameter{
				core.IntParam("op", "Operation", int(d.m.Operation())),
				core.IntParam("boundary", "Boundary", int(d.m.BoundaryMode())),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("evaluated", "Evaluated", d.sweep.Steps()),
				core.IntParam("fg_before", "Foreground before", d.src.Count()),
				core.IntParam("fg_after", "Foreground after", d.sweep.Result().Count()),
				core.BoolParam("done", "Done", d.sweep.Complete()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (d *Demo) ParameterControls() []core.ParameterControl {
	shapeNames := make([]string, len(shapes.Kinds))
	for i, k := range shapes.Kinds {
		shapeNames[i] = k.String()
	}
	opNames := make([]string, len(morph.Operations))
	for i, op := range morph.Operations {
		opNames[i] = op.String()
	}
	modeNames := make([]string, len(morph.BoundaryModes))
	for i, m := range morph.BoundaryModes {
		modeNames[i] = m.String()
	}
	return []core.ParameterControl{
		core.ChoiceControl("op", "Operation", opNames...),
		core.ChoiceControl("boundary", "Boundary", modeNames...),
		core.ChoiceControl("se", "Element", morph.ElementSquare.String(), morph.ElementCross.String()),
		{Key: "se_size", Label: "Element size", Type: core.ParamTypeInt, Step: 2, Min: 1, Max: maxElementSize, HasMin: true, HasMax: true},
		core.ChoiceControl("shape", "Shape", shapeNames...),
		{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 1, Min: minSize, Max: maxSize, HasMin: true, HasMax: true},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
		{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.05, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "noise_threshold", Label: "Noise threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.2, Max: 0.8, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer change. Operation and boundary changes
// restart the sweep over the same image; the rest regenerate the image.
func (d *Demo) SetIntParameter(key string, value int) bool {
	switch key {
	case "op":
		if value < 0 || value >= len(morph.Operations) {
			return false
		}
		d.cfg.Op = morph.Operations[value]
		d.restart()
	case "boundary":
		if value < 0 || value >= len(morph.BoundaryModes) {
			return false
		}
		d.cfg.Boundary = morph.BoundaryModes[value]
		d.restart()
	case "se":
		if value != int(morph.ElementSquare) && value != int(morph.ElementCross) {
			return false
		}
		d.cfg.Element = morph.ElementKind(value)
		d.restart()
	case "se_size":
		if value < 1 || value > maxElementSize {
			return false
		}
		d.cfg.ElementSize = value
		d.restart()
	case "shape":
		if value < 0 || value >= len(shapes.Kinds) {
			return false
		}
		d.cfg.Shape = shapes.Kinds[value]
		d.regenerate(d.seed)
	case "size":
		if value < minSize || value > maxSize {
			return false
		}
		d.cfg.Width, d.cfg.Height = value, value
		d.regenerate(d.seed)
	case "seed":
		d.cfg.Seed = int64(value)
		d.regenerate(int64(value))
	default:
		return false
	}
	return true
}

// SetFloatParameter applies a noise change and regenerates the image.
func (d *Demo) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "noise_scale":
		if value <= 0 {
			return false
		}
		d.cfg.NoiseScale = value
	case "noise_threshold":
		d.cfg.NoiseThreshold = value
	default:
		return false
	}
	d.regenerate(d.seed)
	return true
}
