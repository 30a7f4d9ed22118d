// Package config resolves render settings from an optional JSON file, CLI
// flag overrides and defaults, in that order of precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Config holds all configurable render settings.
type Config struct {
	MeshPath  string `json:"mesh"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`

	Size      int     `json:"size"`
	Margin    int     `json:"margin"`
	Frames    int     `json:"frames"`
	Radius    float64 `json:"radius"`    // 0 = auto from mesh bounds
	Elevation float64 `json:"elevation"` // degrees from the +Z pole

	Workers int `json:"workers"`

	Sheet     bool `json:"sheet"`
	SheetCols int  `json:"sheet_cols"`
	SheetCell int  `json:"sheet_cell"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	MeshPath  string
	OutputDir string
	Format    string
	Size      int
	Frames    int
	Radius    float64
	Elevation float64
	Workers   int
	Sheet     bool
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values for Resolve to fill.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides, then fills remaining zero values with
// defaults. CLI flags win when set (non-zero/non-empty); Radius stays 0
// when unset, meaning auto-derive from the mesh at render time.
func (c *Config) Resolve(flags Flags) {
	if flags.MeshPath != "" {
		c.MeshPath = flags.MeshPath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Radius > 0 {
		c.Radius = flags.Radius
	}
	if flags.Elevation != 0 {
		c.Elevation = flags.Elevation
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Sheet {
		c.Sheet = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	c.Format = strings.ToLower(c.Format)
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Margin <= 0 {
		c.Margin = 16
	}
	if c.Frames <= 0 {
		c.Frames = 8
	}
	if c.Elevation == 0 {
		c.Elevation = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.SheetCols <= 0 {
		c.SheetCols = 4
	}
	if c.SheetCell <= 0 {
		c.SheetCell = 128
	}
}
