package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the command settings. Values come from an optional YAML
// file and are overridden by explicitly set flags.
type Config struct {
	Engine      string `yaml:"engine" validate:"oneof=tree flat"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat   string `yaml:"log_format" validate:"oneof=text json"`
	MaxSteps    int    `yaml:"max_steps" validate:"gte=0"`
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Engine:    "tree",
		LogLevel:  "info",
		LogFormat: "text",
		MaxSteps:  0,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
