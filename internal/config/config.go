// Package config loads editor configuration from a TOML file and
// watches it for changes. A missing file is not an error: defaults
// apply.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the editor configuration.
type Config struct {
	Canvas   CanvasConfig   `toml:"canvas"`
	Grid     GridConfig     `toml:"grid"`
	Zoom     ZoomConfig     `toml:"zoom"`
	History  HistoryConfig  `toml:"history"`
	Autosave AutosaveConfig `toml:"autosave"`
}

// CanvasConfig sizes the canvas and its boundaries.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// GridConfig configures the layout grid.
type GridConfig struct {
	Enabled    bool    `toml:"enabled"`
	Visible    bool    `toml:"visible"`
	Size       float64 `toml:"size"`
	SnapToGrid bool    `toml:"snap_to_grid"`
}

// ZoomConfig sets the initial zoom level.
type ZoomConfig struct {
	Initial float64 `toml:"initial"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// AutosaveConfig drives the external persistence collaborator.
type AutosaveConfig struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Canvas:   CanvasConfig{Width: 1920, Height: 1080},
		Grid:     GridConfig{Enabled: true, Visible: true, Size: 10},
		Zoom:     ZoomConfig{Initial: 1.0},
		History:  HistoryConfig{MaxEntries: 50},
		Autosave: AutosaveConfig{Enabled: true, DebounceMS: 1000},
	}
}

// Load reads configuration from path, layered over defaults. A missing
// file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to path as TOML.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// normalize repairs out-of-range values rather than rejecting the
// file: a config typo should not brick the editor.
func (c *Config) normalize() {
	def := Default()
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = def.Canvas.Width
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = def.Canvas.Height
	}
	if c.Grid.Size <= 0 {
		c.Grid.Size = def.Grid.Size
	}
	if c.Zoom.Initial <= 0 {
		c.Zoom.Initial = def.Zoom.Initial
	}
	if c.History.MaxEntries < 1 {
		c.History.MaxEntries = def.History.MaxEntries
	}
	if c.Autosave.DebounceMS < 0 {
		c.Autosave.DebounceMS = def.Autosave.DebounceMS
	}
}
