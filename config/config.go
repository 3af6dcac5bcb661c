// Package config holds the suite-wide defaults the CLI reads: favicon size
// ladder, palette length, diff context and mock-data settings. Values come
// from built-in defaults, then an optional YAML file, then SMITH_* env
// variables, each layer overriding the last.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"smithkit/favicon"
	"smithkit/ico"
	"smithkit/palette"
	"smithkit/textdiff"
)

// Config is the full settings tree.
type Config struct {
	Favicon FaviconConfig `yaml:"favicon"`
	Palette PaletteConfig `yaml:"palette"`
	Diff    DiffConfig    `yaml:"diff"`
	Mock    MockConfig    `yaml:"mock"`
}

type FaviconConfig struct {
	Sizes []int `yaml:"sizes"`
}

type PaletteConfig struct {
	Colors int `yaml:"colors"`
}

type DiffConfig struct {
	Context int `yaml:"context"`
}

type MockConfig struct {
	Rows int   `yaml:"rows"`
	Seed int64 `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Favicon: FaviconConfig{Sizes: append([]int(nil), favicon.DefaultSizes...)},
		Palette: PaletteConfig{Colors: 6},
		Diff:    DiffConfig{Context: textdiff.DefaultContext},
		Mock:    MockConfig{Rows: 10, Seed: 1},
	}
}

// Load reads path over the defaults. A missing file is not an error; an
// unreadable or malformed one is. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SMITH_* variables:
// SMITH_FAVICON_SIZES (comma separated), SMITH_PALETTE_COLORS,
// SMITH_DIFF_CONTEXT, SMITH_MOCK_ROWS, SMITH_MOCK_SEED.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SMITH_FAVICON_SIZES"); v != "" {
		sizes, err := parseSizes(v)
		if err != nil {
			return err
		}
		c.Favicon.Sizes = sizes
	}
	if v := os.Getenv("SMITH_PALETTE_COLORS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: SMITH_PALETTE_COLORS: %w", err)
		}
		c.Palette.Colors = n
	}
	if v := os.Getenv("SMITH_DIFF_CONTEXT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: SMITH_DIFF_CONTEXT: %w", err)
		}
		c.Diff.Context = n
	}
	if v := os.Getenv("SMITH_MOCK_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: SMITH_MOCK_ROWS: %w", err)
		}
		c.Mock.Rows = n
	}
	if v := os.Getenv("SMITH_MOCK_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: SMITH_MOCK_SEED: %w", err)
		}
		c.Mock.Seed = n
	}
	return c.validate()
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("config: favicon size %q: %w", p, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func (c *Config) validate() error {
	if len(c.Favicon.Sizes) == 0 {
		return fmt.Errorf("config: favicon sizes must not be empty")
	}
	for _, s := range c.Favicon.Sizes {
		if s < 1 || s > ico.MaxSize {
			return fmt.Errorf("config: favicon size %d outside [1,%d]", s, ico.MaxSize)
		}
	}
	if c.Palette.Colors < 1 || c.Palette.Colors > palette.MaxColors {
		return fmt.Errorf("config: palette colors %d outside [1,%d]", c.Palette.Colors, palette.MaxColors)
	}
	if c.Diff.Context < 0 {
		return fmt.Errorf("config: diff context must not be negative")
	}
	if c.Mock.Rows < 0 {
		return fmt.Errorf("config: mock rows must not be negative")
	}
	return nil
}
