// Package config loads the run configuration for the docmine CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds one extraction run's configuration.
type Config struct {
	// Snapshot is the declaration-tree snapshot file produced by the
	// documentation front end.
	Snapshot string `yaml:"snapshot"`
	// Classes are the qualified names of the types to extract. Empty means
	// every type in the snapshot.
	Classes []string `yaml:"classes"`
	// Output is the artifact directory. Empty writes artifacts to stdout.
	Output string `yaml:"output"`
}

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads a YAML config file. An empty path returns defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive an extraction run.
func (c *Config) Validate() error {
	if c.Snapshot == "" {
		return fmt.Errorf("%w: snapshot file is required", ErrInvalidConfig)
	}
	for _, class := range c.Classes {
		if class == "" {
			return fmt.Errorf("%w: empty class name", ErrInvalidConfig)
		}
	}
	return nil
}
