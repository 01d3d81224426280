// Package config holds the optional YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trivote-org/trivote/survey"
)

// Config is the run configuration. Every field has a baked-in default; a
// config file only needs the keys it wants to change.
type Config struct {
	Votes       int         `yaml:"votes"`
	OutputDir   string      `yaml:"output_dir"`
	MetaColumns int         `yaml:"meta_columns"`
	Log         LogConfig   `yaml:"log"`
	Chart       ChartConfig `yaml:"chart"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ChartConfig adjusts figure rendering.
type ChartConfig struct {
	Width  int               `yaml:"width"`
	Colors map[string]string `yaml:"colors"` // answer label → hex
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Votes:       3,
		OutputDir:   "plots",
		MetaColumns: survey.DefaultMetaColumns,
		Log:         LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file and applies it on top of the defaults, so
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
