// SPDX-License-Identifier: MIT

// Package config holds the densefill tool configuration, loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densefill/scatter"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the densefill configuration.
type Config struct {
	Threads        int     `yaml:"threads"`
	MaxWorkers     int     `yaml:"max_workers"`
	GOMAXPROCSCap  bool    `yaml:"gomaxprocs_cap"`
	ValidateNaNInf bool    `yaml:"validate_nan_inf"`
	Logging        Logging `yaml:"logging"`
	Bench          Bench   `yaml:"bench"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// Bench configures the synthetic benchmark command.
type Bench struct {
	Entries int   `yaml:"entries"`
	Rows    int   `yaml:"rows"`
	Cols    int   `yaml:"cols"`
	Seed    int64 `yaml:"seed"`
	Rounds  int   `yaml:"rounds"`
	Hints   []int `yaml:"hints"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Threads: runtime.NumCPU(),
		Logging: Logging{
			Level: "info",
		},
		Bench: Bench{
			Entries: 1 << 20,
			Rows:    2048,
			Cols:    2048,
			Seed:    1,
			Rounds:  5,
			Hints:   []int{1, 2, 4, 8},
		},
	}
}

// Load reads configuration from path. Keys absent from the file keep their
// Default() values. The result is validated.
func Load(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		path = abs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads=%d: %w", c.Threads, ErrInvalidConfig)
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("max_workers=%d: %w", c.MaxWorkers, ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	b := c.Bench
	if b.Entries < 0 || b.Rows < 1 || b.Cols < 1 || b.Rounds < 1 {
		return fmt.Errorf("bench: entries=%d rows=%d cols=%d rounds=%d: %w",
			b.Entries, b.Rows, b.Cols, b.Rounds, ErrInvalidConfig)
	}
	if int64(b.Entries) > int64(b.Rows)*int64(b.Cols) {
		return fmt.Errorf("bench: %d entries do not fit %dx%d unique cells: %w",
			b.Entries, b.Rows, b.Cols, ErrInvalidConfig)
	}
	for _, h := range b.Hints {
		if h < 1 {
			return fmt.Errorf("bench: hint %d: %w", h, ErrInvalidConfig)
		}
	}

	return nil
}

// Level parses Logging.Level ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// Options translates the kernel settings into scatter options.
func (c *Config) Options() []scatter.Option {
	var opts []scatter.Option
	if c.MaxWorkers > 0 {
		opts = append(opts, scatter.WithMaxWorkers(c.MaxWorkers))
	}
	if c.GOMAXPROCSCap {
		opts = append(opts, scatter.WithGOMAXPROCSCap())
	}
	if c.ValidateNaNInf {
		opts = append(opts, scatter.WithValidateNaNInf())
	}

	return opts
}
