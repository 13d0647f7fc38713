// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of a growth run.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Find modes.
const (
	FindAny = "any"
	FindAll = "all"
)

// Config is the process configuration.
type Config struct {
	Start   int           `yaml:"start"`
	End     int           `yaml:"end"`
	Find    string        `yaml:"find"`
	Seed    int64         `yaml:"seed"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StoreConfig selects the path catalog. An empty Path with InMemory false
// disables persistence.
type StoreConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// Enabled reports whether a catalog should be opened.
func (s StoreConfig) Enabled() bool { return s.InMemory || s.Path != "" }

// LogConfig configures slog.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// MetricsConfig toggles the Prometheus recorder and its scrape endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads path, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Start == 0 {
		cfg.Start = 1
	}
	if cfg.End == 0 {
		cfg.End = 100
	}
	if cfg.Find == "" {
		cfg.Find = FindAny
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = "127.0.0.1:9464"
	}
}

// Validate checks ranges and enumerations, collecting every problem.
func Validate(cfg *Config) error {
	var errs []string
	if cfg.Start < 1 {
		errs = append(errs, fmt.Sprintf("start must be ≥ 1, got %d", cfg.Start))
	}
	if cfg.End < cfg.Start {
		errs = append(errs, fmt.Sprintf("end (%d) must not be below start (%d)", cfg.End, cfg.Start))
	}
	if cfg.Find != FindAny && cfg.Find != FindAll {
		errs = append(errs, fmt.Sprintf("find must be %q or %q, got %q", FindAny, FindAll, cfg.Find))
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", cfg.Log.Format))
	}
	if cfg.Store.InMemory && cfg.Store.Path != "" {
		errs = append(errs, "store.path and store.in_memory are exclusive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: unknown level %q", s)
	}

	return l, nil
}
