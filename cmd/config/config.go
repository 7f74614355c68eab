// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".dupnames.yaml"

// Config mirrors the scan flags; flags set on the command line win.
type Config struct {
	Ignore IgnoreConfig `yaml:"ignore"`
	Output string       `yaml:"output"`
}

// IgnoreConfig holds ignore pattern settings
type IgnoreConfig struct {
	Mode     string   `yaml:"mode"`
	Patterns []string `yaml:"patterns"`
	Files    []string `yaml:"files"`
	Defaults bool     `yaml:"defaults"`
}

func Default() *Config {
	return &Config{
		Ignore: IgnoreConfig{Mode: "substring"},
		Output: "text",
	}
}

// Load reads the config at path. An empty path means DefaultFile, which may
// be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
