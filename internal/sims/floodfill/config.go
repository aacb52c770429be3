package floodfill

import (
	"strconv"

	ff "morphfill/pkg/floodfill"
)

// Config controls the noise pattern and the fill parameters.
type Config struct {
	Width  int
	Height int

	NoiseScale     float64
	NoiseThreshold float64
	Seed           int64

	Radius int
	Conn   ff.Connectivity
	Alg    ff.Algorithm

	// StartX and StartY pick the seed cell; negative values mean the center.
	StartX int
	StartY int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          24,
		Height:         24,
		NoiseScale:     0.2,
		NoiseThreshold: 0.45,
		Seed:           42,
		Radius:         2,
		Conn:           ff.Four,
		Alg:            ff.BFS,
		StartX:         -1,
		StartY:         -1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width, c.Height = parsed, parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["noise_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.NoiseThreshold = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["conn"]; ok {
		if parsed, err := ff.ParseConnectivity(v); err == nil {
			c.Conn = parsed
		}
	}
	if v, ok := cfg["alg"]; ok {
		if parsed, err := ff.ParseAlgorithm(v); err == nil {
			c.Alg = parsed
		}
	}
	if v, ok := cfg["x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartX = parsed
		}
	}
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartY = parsed
		}
	}
	return c
}
