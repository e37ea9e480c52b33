// Package config loads the user defaults for the spektro tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-level defaults. BasePath is the archive root; the
// catalog database lives inside it unless Database points elsewhere.
type Config struct {
	BasePath string `yaml:"base_path"`
	Database string `yaml:"database,omitempty"`
}

// Default returns the configuration used when no config file exists: the
// archive rooted in the working directory.
func Default() *Config {
	c := &Config{BasePath: "."}
	c.applyDefaults()
	return c
}

// Load reads a YAML config file. A missing file yields the defaults; a
// malformed file is an error.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if c.BasePath == "" {
		c.BasePath = "."
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Database == "" {
		c.Database = filepath.Join(c.BasePath, "spektro.db")
	}
}
