package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds render settings for the command-line front ends.
type Config struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"` // "png" or "webp"
	Workers   int    `json:"workers"`
	OutputDir string `json:"output_dir"`
}

// Flags carries CLI flag values that override the config file.
type Flags struct {
	Width     int
	Height    int
	Format    string
	Workers   int
	OutputDir string
}

// Default returns the settings used when no config file or flags are given.
func Default() Config {
	return Config{
		Width:     800,
		Height:    600,
		Format:    "png",
		Workers:   0, // one per CPU
		OutputDir: "output",
	}
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values; call Resolve afterwards to fill in defaults.
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

// Resolve applies CLI flags over the config and fills remaining empty
// fields with defaults. Flags win when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}

	def := Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
}
