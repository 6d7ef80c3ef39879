// Package config loads the termfloat configuration: surface defaults and
// the named window templates the host clones windows from.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/termfloat/internal/window"
)

// Config is the effective configuration.
type Config struct {
	// DefaultTheme names the preset applied to templates without one.
	DefaultTheme string `yaml:"default_theme"`
	// ThemesDir holds user theme files; empty disables loading.
	ThemesDir string `yaml:"themes_dir"`
	// StackBaseline seeds the stacking counter.
	StackBaseline int `yaml:"stack_baseline"`
	// MinWindowWidth/MinWindowHeight apply to templates without their own.
	MinWindowWidth  int `yaml:"min_window_width"`
	MinWindowHeight int `yaml:"min_window_height"`
	// Templates are the named chrome definitions windows are cloned from.
	Templates map[string]window.Template `yaml:"templates"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultTheme:    "default",
		StackBaseline:   100,
		MinWindowWidth:  12,
		MinWindowHeight: 5,
		Templates: map[string]window.Template{
			"default": {
				Title:  "Window",
				Width:  44,
				Height: 14,
				Top:    2,
				Left:   4,
			},
		},
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "termfloat", "config.yaml"), nil
}

// Load reads the configuration from path. A missing file yields the
// defaults; a malformed or invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the loaded values and normalizes the templates.
func (c *Config) Validate() error {
	if c.StackBaseline < 0 {
		return fmt.Errorf("stack_baseline must not be negative, got %d", c.StackBaseline)
	}
	if c.MinWindowWidth < 2 {
		return fmt.Errorf("min_window_width must be at least 2, got %d", c.MinWindowWidth)
	}
	if c.MinWindowHeight < 2 {
		return fmt.Errorf("min_window_height must be at least 2, got %d", c.MinWindowHeight)
	}
	for name, tmpl := range c.Templates {
		tmpl.Normalize(c.MinWindowWidth, c.MinWindowHeight)
		if tmpl.Theme == "" {
			tmpl.Theme = c.DefaultTheme
		}
		if tmpl.Width < tmpl.MinWidth || tmpl.Height < tmpl.MinHeight {
			return fmt.Errorf("template %q is smaller than its minimum size", name)
		}
		c.Templates[name] = tmpl
	}
	return nil
}

// Template returns the named template, falling back to the default
// template when the name is unknown.
func (c *Config) Template(name string) window.Template {
	if tmpl, ok := c.Templates[name]; ok {
		return tmpl
	}
	if tmpl, ok := c.Templates["default"]; ok {
		return tmpl
	}
	tmpl := Default().Templates["default"]
	tmpl.Normalize(c.MinWindowWidth, c.MinWindowHeight)
	tmpl.Theme = c.DefaultTheme
	return tmpl
}
