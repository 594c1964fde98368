// Package config loads secretfinder settings from struct-tag defaults, an
// optional YAML or JSON file and SECRETFINDER_* environment variables, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/vitalvas/secretfinder/shamir"
	"github.com/vitalvas/secretfinder/xlogger"
)

// EnvPrefix prefixes every environment override, e.g. SECRETFINDER_SEARCH_WORKERS.
const EnvPrefix = "SECRETFINDER"

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Search bounds the subset search.
type Search struct {
	// Workers is the number of concurrent search chunks; 1 searches sequentially.
	Workers int `yaml:"workers" json:"workers" default:"1"`
	// MaxSubsets refuses inputs with more than this many k-subsets; 0 disables the check.
	MaxSubsets uint64 `yaml:"max_subsets" json:"max_subsets"`
	// Timeout stops a search running longer than this; 0 disables the limit.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// Config is the application configuration.
type Config struct {
	Output string         `yaml:"output" json:"output" default:"text"`
	Search Search         `yaml:"search" json:"search"`
	Logger xlogger.Config `yaml:"logger" json:"logger"`
}

// Load builds the configuration. An empty path or a missing file leaves the
// defaults in place.
func Load(path string) (*Config, error) {
	conf := &Config{}

	if err := applyDefaultTags(reflect.ValueOf(conf).Elem()); err != nil {
		return nil, fmt.Errorf("failed to apply default tags: %w", err)
	}

	if path != "" {
		if err := loadFromFile(conf, path); err != nil {
			return nil, fmt.Errorf("failed to load file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(reflect.ValueOf(conf).Elem(), EnvPrefix); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unsupported output %q", c.Output)
	}

	if c.Search.Workers < 1 {
		return fmt.Errorf("search workers must be at least 1, got %d", c.Search.Workers)
	}

	if c.Search.Timeout < 0 {
		return fmt.Errorf("search timeout must not be negative, got %s", c.Search.Timeout)
	}

	return nil
}

// SearchOptions translates the search settings for shamir.Search.
func (c *Config) SearchOptions() []shamir.SearchOption {
	return []shamir.SearchOption{
		shamir.WithWorkers(c.Search.Workers),
		shamir.WithMaxSubsets(c.Search.MaxSubsets),
	}
}
