// Package config handles loading scan configuration from .worldscoutrc
// files. Both YAML (.worldscoutrc.yaml) and TOML (.worldscoutrc.toml) are
// supported; when both exist in the same directory the YAML file wins.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config file names, in lookup order.
const (
	YAMLConfigFileName = ".worldscoutrc.yaml"
	TOMLConfigFileName = ".worldscoutrc.toml"
)

// Config represents the complete configuration structure.
type Config struct {
	// Roots are extra search roots scanned in addition to CLI arguments
	// or platform defaults.
	Roots []string `yaml:"roots" toml:"roots"`

	// Exclude holds glob patterns for directories to prune, matched
	// against the root-relative path.
	Exclude []string `yaml:"exclude" toml:"exclude"`

	// Exhaustive adds the volume root to the default search roots.
	Exhaustive bool `yaml:"exhaustive" toml:"exhaustive"`

	// FollowSymlinks enables descending through directory symlinks.
	FollowSymlinks bool `yaml:"follow_symlinks" toml:"follow_symlinks"`

	// Concurrency overrides the number of parallel root traversals.
	// Zero means use the walker default.
	Concurrency int `yaml:"concurrency" toml:"concurrency"`
}

// Load reads configuration from the current directory.
// Returns an empty config if no config file exists (not an error).
func Load() (*Config, error) {
	return FindAndLoad(".")
}

// LoadFrom reads configuration from a specific path, choosing the decoder
// by file extension. Returns an empty config if the file doesn't exist.
// Returns an error only if the file exists but cannot be parsed.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// FindAndLoad searches for a config file starting from the given directory
// and walking up to parent directories until it finds one or reaches root.
// The start directory is made absolute first; a relative start like "."
// would otherwise end the walk immediately, since Dir(".") is ".".
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		for _, name := range []string{YAMLConfigFileName, TOMLConfigFileName} {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return LoadFrom(configPath)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, no config found
			return &Config{}, nil
		}
		dir = parent
	}
}

// IsEmpty returns true if the config sets nothing.
func (c *Config) IsEmpty() bool {
	return len(c.Roots) == 0 &&
		len(c.Exclude) == 0 &&
		!c.Exhaustive &&
		!c.FollowSymlinks &&
		c.Concurrency == 0
}

// Merge combines another config into this one. Lists are additive; booleans
// stay set once either side sets them; Concurrency is taken from other only
// when this config leaves it at zero.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	c.Roots = append(c.Roots, other.Roots...)
	c.Exclude = append(c.Exclude, other.Exclude...)
	c.Exhaustive = c.Exhaustive || other.Exhaustive
	c.FollowSymlinks = c.FollowSymlinks || other.FollowSymlinks
	if c.Concurrency == 0 {
		c.Concurrency = other.Concurrency
	}
}
