package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1000, cfg.Search.Tries)
	assert.Equal(t, 20, cfg.Search.Depth)
	assert.Equal(t, uint8(42), cfg.Number.Target)
	assert.Equal(t, -1.0, cfg.Number.Penalty)
	assert.Equal(t, 5.0, cfg.Number.Reward)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"valid default config", func(*Config) {}, ""},
		{"zero budget is valid", func(c *Config) { c.Search.Tries, c.Search.Depth = 0, 0 }, ""},
		{"negative tries", func(c *Config) { c.Search.Tries = -1 }, "search.tries"},
		{"negative depth", func(c *Config) { c.Search.Depth = -1 }, "search.depth"},
		{"negative max rounds", func(c *Config) { c.Drive.MaxRounds = -1 }, "drive.max_rounds"},
		{"unknown start", func(c *Config) { c.Number.Start = "lucky" }, "number.start"},
		{"empty vector", func(c *Config) { c.Vector.Dim = 0 }, "vector.dim"},
		{"inverted bounds", func(c *Config) { c.Vector.Lower = 10 }, "vector.lower"},
		{"zero step", func(c *Config) { c.Vector.Step = 0 }, "vector.step"},
		{"small mayfly population", func(c *Config) { c.Vector.MayflyIters, c.Vector.MayflyPop = 10, 5 }, "vector.mayfly_pop"},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "up.yaml")
	data := `
seed: 7
search:
  tries: 50
  depth: 5
number:
  target: 100
  start: fixed
  fixed: 90
vector:
  dim: 2
  center: [1, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.Search.Tries)
	assert.Equal(t, 5, cfg.Search.Depth)
	assert.Equal(t, uint8(100), cfg.Number.Target)
	assert.Equal(t, "fixed", cfg.Number.Start)
	assert.Equal(t, uint8(90), cfg.Number.Fixed)
	assert.Equal(t, []float64{1, 2}, cfg.Vector.Center)
	// Untouched values keep their defaults
	assert.Equal(t, 5.0, cfg.Number.Reward)
	assert.Equal(t, 0.5, cfg.Vector.Step)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [not, a, map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "up.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  tries: 50\n"), 0644))

	t.Setenv("UP_TRIES", "7")
	t.Setenv("UP_DEPTH", "3")
	t.Setenv("UP_SEED", "99")
	t.Setenv("UP_MAX_ROUNDS", "4")
	t.Setenv("UP_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Search.Tries)
	assert.Equal(t, 3, cfg.Search.Depth)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 4, cfg.Drive.MaxRounds)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("UP_TRIES", "-5")

	_, err := Load("")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "search.tries", verr.Field)
}
