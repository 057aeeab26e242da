// Package config loads run settings for the utilityprog commands.
//
// Priority is env > file > defaults. Command-line flags are applied on top by
// the caller.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all run settings.
type Config struct {
	// Seed initializes the random source; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	Search SearchConfig `yaml:"search"`
	Drive  DriveConfig  `yaml:"drive"`
	Number NumberConfig `yaml:"number"`
	Vector VectorConfig `yaml:"vector"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig contains the optimizer budget per call.
type SearchConfig struct {
	Tries int `yaml:"tries"`
	Depth int `yaml:"depth"`
}

// DriveConfig controls the fixed-point loop.
type DriveConfig struct {
	// MaxRounds caps the number of optimizer calls (0 = until fixed point).
	MaxRounds int     `yaml:"max_rounds"`
	Patience  int     `yaml:"patience"`
	Threshold float64 `yaml:"threshold"`
}

// NumberConfig contains settings of the number demo.
type NumberConfig struct {
	Target  uint8   `yaml:"target"`
	Penalty float64 `yaml:"penalty"`
	Reward  float64 `yaml:"reward"`
	// Start picks the generator: "random", "fixed" or "any".
	Start string `yaml:"start"`
	Fixed uint8  `yaml:"fixed"`
}

// VectorConfig contains settings of the vector domain.
type VectorConfig struct {
	Dim    int       `yaml:"dim"`
	Lower  float64   `yaml:"lower"`
	Upper  float64   `yaml:"upper"`
	Step   float64   `yaml:"step"`
	Center []float64 `yaml:"center"`
	// Seeding with mayfly is skipped when MayflyIters is 0.
	MayflyIters int `yaml:"mayfly_iters"`
	MayflyPop   int `yaml:"mayfly_pop"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration. The search budget and the
// number demo weights favor a prime next to 42.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Tries: 1000,
			Depth: 20,
		},
		Drive: DriveConfig{
			MaxRounds: 0,
			Patience:  0,
			Threshold: 0.001,
		},
		Number: NumberConfig{
			Target:  42,
			Penalty: -1,
			Reward:  5,
			Start:   "any",
			Fixed:   0,
		},
		Vector: VectorConfig{
			Dim:         4,
			Lower:       -10,
			Upper:       10,
			Step:        0.5,
			MayflyIters: 0,
			MayflyPop:   20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration with priority: env > file > defaults.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("UP_TRIES"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.Tries = i
		}
	}
	if v := os.Getenv("UP_DEPTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.Depth = i
		}
	}
	if v := os.Getenv("UP_MAX_ROUNDS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Drive.MaxRounds = i
		}
	}
	if v := os.Getenv("UP_SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = i
		}
	}
	if v := os.Getenv("UP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks the configuration. Zero tries or depth is valid and makes
// every search a no-op.
func (c Config) Validate() error {
	if c.Search.Tries < 0 {
		return &ValidationError{Field: "search.tries", Reason: "cannot be negative"}
	}
	if c.Search.Depth < 0 {
		return &ValidationError{Field: "search.depth", Reason: "cannot be negative"}
	}
	if c.Drive.MaxRounds < 0 {
		return &ValidationError{Field: "drive.max_rounds", Reason: "cannot be negative"}
	}
	if c.Drive.Patience < 0 {
		return &ValidationError{Field: "drive.patience", Reason: "cannot be negative"}
	}
	switch c.Number.Start {
	case "random", "fixed", "any":
	default:
		return &ValidationError{Field: "number.start", Reason: fmt.Sprintf("unknown generator %q", c.Number.Start)}
	}
	if c.Vector.Dim < 1 {
		return &ValidationError{Field: "vector.dim", Reason: "must be positive"}
	}
	if c.Vector.Lower >= c.Vector.Upper {
		return &ValidationError{Field: "vector.lower", Reason: "must be below vector.upper"}
	}
	if c.Vector.Step <= 0 {
		return &ValidationError{Field: "vector.step", Reason: "must be positive"}
	}
	if c.Vector.MayflyIters < 0 {
		return &ValidationError{Field: "vector.mayfly_iters", Reason: "cannot be negative"}
	}
	if c.Vector.MayflyIters > 0 && c.Vector.MayflyPop < 20 {
		return &ValidationError{Field: "vector.mayfly_pop", Reason: "must be at least 20"}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "log.level", Reason: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	return nil
}

// ValidationError represents an invalid configuration value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}
