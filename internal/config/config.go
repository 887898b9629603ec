//
// Copyright 2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines configuration for the sampledata CLI.
type Config struct {
	CacheDir          string            `yaml:"cache_dir"`
	Catalog           string            `yaml:"catalog"`
	InactivityTimeout time.Duration     `yaml:"inactivity_timeout"`
	Headers           map[string]string `yaml:"headers"`
	Verbose           bool              `yaml:"verbose"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	cacheDir := filepath.Join(os.TempDir(), "sampledata")
	if dir, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(dir, "sampledata")
	}
	return Config{
		CacheDir:          cacheDir,
		InactivityTimeout: 60 * time.Second,
	}
}

// yamlConfig is used for YAML unmarshaling with a string timeout.
type yamlConfig struct {
	CacheDir          string            `yaml:"cache_dir"`
	Catalog           string            `yaml:"catalog"`
	InactivityTimeout string            `yaml:"inactivity_timeout"`
	Headers           map[string]string `yaml:"headers"`
	Verbose           bool              `yaml:"verbose"`
}

// LoadFromFile loads configuration from a YAML file. Fields missing from
// the file keep their default value.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()
	if yc.CacheDir != "" {
		cfg.CacheDir = yc.CacheDir
	}
	if yc.Catalog != "" {
		cfg.Catalog = yc.Catalog
	}
	if yc.InactivityTimeout != "" {
		d, err := time.ParseDuration(yc.InactivityTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse inactivity_timeout: %w", err)
		}
		cfg.InactivityTimeout = d
	}
	cfg.Headers = yc.Headers
	cfg.Verbose = yc.Verbose
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("SAMPLEDATA_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("SAMPLEDATA_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("SAMPLEDATA_INACTIVITY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SAMPLEDATA_INACTIVITY_TIMEOUT: %w", err)
		}
		c.InactivityTimeout = d
	}
	if v := os.Getenv("SAMPLEDATA_VERBOSE"); v != "" {
		c.Verbose = v == "true" || v == "1"
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.CacheDir == "" {
		return errors.New("config: cache_dir is required")
	}
	if c.InactivityTimeout < 0 {
		return errors.New("config: inactivity_timeout must not be negative")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.CacheDir != "" {
		c.CacheDir = override.CacheDir
	}
	if override.Catalog != "" {
		c.Catalog = override.Catalog
	}
	if override.InactivityTimeout != 0 {
		c.InactivityTimeout = override.InactivityTimeout
	}
	if len(override.Headers) > 0 {
		merged := make(map[string]string, len(c.Headers)+len(override.Headers))
		for k, v := range c.Headers {
			merged[k] = v
		}
		for k, v := range override.Headers {
			merged[k] = v
		}
		c.Headers = merged
	}
	if override.Verbose {
		c.Verbose = true
	}
	return c
}
