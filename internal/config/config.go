// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for lh-extract.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Environment variables
//  2. Configuration file (--config, or the first one found in standard locations)
//  3. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .lh-extract.yaml (current directory)
//   - .lh-extract.yml (current directory)
//   - ~/.lh-extract/config.yaml
//   - ~/.lh-extract/config.yml
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".lh-extract.yaml",
			".lh-extract.yml",
			filepath.Join(os.Getenv("HOME"), ".lh-extract", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".lh-extract", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("LIGHTHOUSE_ENDPOINT"); endpoint != "" {
		cfg.Lighthouse.Endpoint = endpoint
	}
	if timeout := os.Getenv("LHEXTRACT_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Lighthouse.Timeout = d
		}
	}
	if pageSize := os.Getenv("LHEXTRACT_PAGE_SIZE"); pageSize != "" {
		if size, err := parsePositiveInt(pageSize); err == nil {
			cfg.Lighthouse.PageSize = size
		}
	}
	if level := os.Getenv("LHEXTRACT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(level))
	}
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// BaseURL returns the API root for account by filling in the endpoint template.
func (c *Config) BaseURL(account string) string {
	return strings.TrimRight(strings.ReplaceAll(c.Lighthouse.Endpoint, "{account}", account), "/")
}

// Validate checks if the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Lighthouse.Endpoint == "" {
		return fmt.Errorf("lighthouse endpoint cannot be empty")
	}
	if c.Lighthouse.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got: %d", c.Lighthouse.PageSize)
	}
	if c.Lighthouse.Timeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got: %s", c.Lighthouse.Timeout)
	}
	switch c.Log.Level {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
