package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "morphology", "-scale", "4", "-set", "op=dilation", "-set", "se_size=5", "-paused"})
	require.NoError(t, err)

	assert.Equal(t, "morphology", cfg.Sim)
	assert.Equal(t, 4, cfg.Scale)
	assert.True(t, cfg.Paused)
	assert.Equal(t, Settings{"op": "dilation", "se_size": "5"}, cfg.Settings)
	assert.Equal(t, "op=dilation,se_size=5", cfg.Settings.String())
	assert.NoError(t, cfg.Validate())
}

func TestSettingsRejectsMalformed(t *testing.T) {
	s := Settings{}
	assert.Error(t, s.Set("novalue"))
	assert.Error(t, s.Set("=3"))
	require.NoError(t, s.Set(" radius = 3 "))
	assert.Equal(t, "3", s["radius"])
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Scale = 0
	assert.Error(t, cfg.Validate())
	cfg = NewConfig()
	cfg.TPS = -1
	assert.Error(t, cfg.Validate())
}
