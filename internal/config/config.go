// Package config loads optional CLI defaults from a YAML file.
// Explicit command-line flags always override config values.
package config

import (
	"errors"
	"fmt"
	"os"

	"obsidian2latex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds CLI defaults.
type Config struct {
	FiguresDir  string `yaml:"figuresDir"`  // Figures directory (default "figures")
	LevelAdjust int    `yaml:"levelAdjust"` // Header level adjustment (default 0)
	Overwrite   string `yaml:"overwrite"`   // "overwrite", "backup", or "skip"
	LogFile     string `yaml:"logFile"`     // Log file path (empty = stderr only)
	Verbose     bool   `yaml:"verbose"`     // Debug-level logging
}

// Default returns the neutral configuration matching the CLI flag defaults.
func Default() *Config {
	return &Config{
		FiguresDir:  "figures",
		LevelAdjust: 0,
		Overwrite:   "overwrite",
		LogFile:     "",
		Verbose:     false,
	}
}

// Load reads a config file. Unknown fields are rejected so typos surface
// instead of being silently ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
