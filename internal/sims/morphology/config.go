package morphology

import (
	"strconv"

	"morphfill/pkg/morph"
	"morphfill/pkg/shapes"
)

// Config controls the source image and the morphology applied to it.
type Config struct {
	Width  int
	Height int

	Shape          shapes.Kind
	NoiseScale     float64
	NoiseThreshold float64
	Seed           int64

	Element     morph.ElementKind
	ElementSize int
	Op          morph.Operation
	Boundary    morph.BoundaryMode
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          20,
		Height:         20,
		Shape:          shapes.KindNoise,
		NoiseScale:     0.2,
		NoiseThreshold: 0.45,
		Seed:           42,
		Element:        morph.ElementSquare,
		ElementSize:    3,
		Op:             morph.Erosion,
		Boundary:       morph.BoundaryZero,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse keep their defaults.
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
	if v, ok := cfg["shape"]; ok {
		if parsed, err := shapes.ParseKind(v); err == nil {
			c.Shape = parsed
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
	if v, ok := cfg["se"]; ok {
		if parsed, err := morph.ParseElementKind(v); err == nil {
			c.Element = parsed
		}
	}
	if v, ok := cfg["se_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ElementSize = parsed
		}
	}
	if v, ok := cfg["op"]; ok {
		if parsed, err := morph.ParseOperation(v); err == nil {
			c.Op = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := morph.ParseBoundaryMode(v); err == nil {
			c.Boundary = parsed
		}
	}
	return c
}
