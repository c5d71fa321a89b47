// Package config loads the editor configuration from a YAML file and can
// watch it for live changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the editor configuration record. All lengths are world units
// (centimeters), angles are degrees.
type Config struct {
	GridSize         float64   `yaml:"grid_size"`
	SnapToGrid       bool      `yaml:"snap_to_grid"`
	SnapAngles       []float64 `yaml:"snap_angles"`
	DefaultThickness float64   `yaml:"default_thickness"`
	ShowGrid         bool      `yaml:"show_grid"`
	ShowMeasurements bool      `yaml:"show_measurements"`
	ShowAngles       bool      `yaml:"show_angles"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		GridSize:         10,
		SnapToGrid:       true,
		SnapAngles:       []float64{0, 45, 90, 135, 180, -135, -90, -45},
		DefaultThickness: 10,
		ShowGrid:         true,
		ShowMeasurements: true,
		ShowAngles:       true,
	}
}

// Load reads and parses a config file. Unset fields keep their zero values;
// callers that want defaults for missing files should check os.IsNotExist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if cfg.GridSize <= 0 {
		return Config{}, fmt.Errorf("config: %s: grid_size must be positive", path)
	}
	return cfg, nil
}
