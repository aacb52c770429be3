package floodfill

import (
	"morphfill/internal/core"
	ff "morphfill/pkg/floodfill"
)

const (
	minSize   = 10
	maxSize   = 50
	maxRadius = 5
)

var connectivities = []ff.Connectivity{ff.Four, ff.Eight}

func connIndex(c ff.Connectivity) int {
	if c == ff.Eight {
		return 1
	}
	return 0
}

func (d *Demo) Parameters() core.ParameterSnapshot {
	s := d.session
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Pattern",
			Params: []core.Parameter{
				core.IntParam("size", "Size", d.cfg.Width),
				core.IntParam("w", "Width", d.cfg.Width),
				core.IntParam("h", "Height", d.cfg.Height),
				core.Int64Param("seed", "Seed", d.seed),
				core.FloatParam("noise_scale", "Noise scale", d.cfg.NoiseScale),
				core.FloatParam("noise_threshold", "Density", d.cfg.NoiseThreshold),
			},
		},
		{
			Name: "Fill",
			Params: []core.Parameter{
				core.IntParam("radius", "Radius", s.SafetyRadius()),
				core.IntParam("conn", "Neighbors", connIndex(s.Connectivity())),
				core.IntParam("alg", "Search", int(s.Algorithm())),
				core.IntParam("x", "Start X", d.start.X),
				core.IntParam("y", "Start Y", d.start.Y),
				core.BoolParam("target", "Target", s.Target()),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", d.steps),
				core.IntParam("filled", "Filled", s.FilledCount()),
				core.IntParam("unsafe", "Unsafe", s.UnsafeCount()),
				core.IntParam("frontier", "Frontier", s.FrontierLen()),
				core.IntParam("safe", "Safe cells", s.SafetyMask().Count()),
				core.BoolParam("done", "Done", d.Done()),
			},
		},
	}}
}

func (d *Demo) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxRadius, HasMin: true, HasMax: true},
		core.ChoiceControl("conn", "Neighbors", ff.Four.String(), ff.Eight.String()),
		core.ChoiceControl("alg", "Search", ff.BFS.String(), ff.DFS.String()),
		{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 1, Min: minSize, Max: maxSize, HasMin: true, HasMax: true},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
		{Key: "noise_threshold", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.3, Max: 0.7, HasMin: true, HasMax: true},
		{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 0.02, Min: 0.1, Max: 0.4, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer change. Fill settings restart the fill
// from the same seed cell; pattern settings regenerate the pattern first.
func (d *Demo) SetIntParameter(key string, value int) bool {
	switch key {
	case "radius":
		if value < 0 || value > maxRadius {
			return false
		}
		d.cfg.Radius = value
		d.session.SetSafetyRadius(value)
		d.restart()
	case "conn":
		if value < 0 || value >= len(connectivities) {
			return false
		}
		d.cfg.Conn = connectivities[value]
		d.session.SetConnectivity(d.cfg.Conn)
		d.restart()
	case "alg":
		if value != int(ff.BFS) && value != int(ff.DFS) {
			return false
		}
		d.cfg.Alg = ff.Algorithm(value)
		d.session.SetAlgorithm(d.cfg.Alg)
		d.restart()
	case "size":
		if value < minSize || value > maxSize {
			return false
		}
		d.cfg.Width, d.cfg.Height = value, value
		d.start = d.configuredStart()
		d.regenerate(d.seed)
	case "seed":
		d.cfg.Seed = int64(value)
		d.regenerate(int64(value))
	default:
		return false
	}
	return true
}

// SetFloatParameter applies a noise change and regenerates the pattern.
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
