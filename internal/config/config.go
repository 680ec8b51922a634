// Package config loads cmd/numconv's settings from an optional YAML file
// with environment variable overrides, the same two-layer scheme this
// codebase uses for its other command-line entry points.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const envPrefix = "NUMCONV_"

// Config holds cmd/numconv's tunables. The zero value is not valid; use
// Default or Load.
type Config struct {
	DefaultRadix int    `yaml:"default_radix"`
	LogLevel     string `yaml:"log_level"`
	MetricsAddr  string `yaml:"metrics_addr"`
	CacheSize    int    `yaml:"cache_size"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		DefaultRadix: 10,
		LogLevel:     "info",
		MetricsAddr:  "",
		CacheSize:    4096,
	}
}

// Load reads path (if non-empty) as YAML over the defaults, applies
// NUMCONV_-prefixed environment overrides, validates the result, and
// returns it. A non-existent path is not an error when path == "" (the
// caller didn't ask for a file); a missing file the caller named explicitly
// is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(envPrefix + "DEFAULT_RADIX"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sDEFAULT_RADIX: %w", envPrefix, err)
		}
		cfg.DefaultRadix = n
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "METRICS_ADDR"); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := os.LookupEnv(envPrefix + "CACHE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sCACHE_SIZE: %w", envPrefix, err)
		}
		cfg.CacheSize = n
	}
	return nil
}

// Validate rejects radixes the CORE's Stringify would treat as undefined
// input, per SPEC_FULL.md's radix constraint of 2 <= B <= 36. This
// validation belongs to the ambient config layer, not the CORE, which has
// no recoverable error surface of its own.
func (c *Config) Validate() error {
	if c.DefaultRadix < 2 || c.DefaultRadix > 36 {
		return fmt.Errorf("config: default_radix %d out of range [2, 36]", c.DefaultRadix)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache_size %d must be non-negative", c.CacheSize)
	}
	return nil
}
