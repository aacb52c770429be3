package app

import (
	"flag"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Settings collects repeated -set key=value flags into a sim config map.
type Settings map[string]string

// String implements flag.Value.
func (s Settings) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + s[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (s Settings) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return errors.Errorf("expected key=value, got %q", v)
	}
	s[key] = strings.TrimSpace(value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Paused   bool
	HUDWidth int
	Settings Settings
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "floodfill", Scale: 18, TPS: 30, Seed: 42, HUDWidth: 260, Settings: Settings{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (floodfill, morphology)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Var(c.Settings, "set", "sim option as key=value (repeatable)")
}

// Validate reports settings that cannot produce a window.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}
