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

// Package config provides configuration management for qiita-checker with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. A .env file in the
// working directory is loaded best-effort before environment variables
// are read.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	qerrors "github.com/sotoiwa/qiita-checker/internal/errors"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .qiita-checker.yaml (current directory)
//   - .qiita-checker.yml (current directory)
//   - ~/.qiita-checker/config.yaml
//   - ~/.qiita-checker/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env if present so overrides below can see it
	_ = godotenv.Load()

	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".qiita-checker.yaml",
			".qiita-checker.yml",
			filepath.Join(os.Getenv("HOME"), ".qiita-checker", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".qiita-checker", "config.yml"),
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

	// Apply environment variable overrides
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
	if endpoint := os.Getenv("QIITA_API_ENDPOINT"); endpoint != "" {
		cfg.Qiita.APIEndpoint = endpoint
	}
	if pageSize := os.Getenv("QIITA_PAGE_SIZE"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil && size > 0 {
			cfg.Defaults.PageSize = size
		}
	}
}

// Token reads the access token from the configured environment variable.
// Its absence is a fatal configuration error.
func (c *Config) Token() (string, error) {
	token, ok := os.LookupEnv(c.Qiita.TokenEnv)
	if !ok || token == "" {
		return "", fmt.Errorf("environment variable %s: %w", c.Qiita.TokenEnv, qerrors.ErrMissingToken)
	}
	return token, nil
}

// ResolveOutputPath resolves the destination path for file output. An empty
// filename means stdout and resolves to the empty string. When the sandbox
// marker environment variable is set (presence only, value ignored), any
// directory component the user supplied is discarded and the basename is
// placed under the sandbox directory. Otherwise the path is used exactly
// as given.
func (c *Config) ResolveOutputPath(filename string) string {
	if filename == "" {
		return ""
	}

	if _, ok := os.LookupEnv(c.Sandbox.MarkerEnv); ok {
		return filepath.Join(c.Sandbox.Dir, filepath.Base(filename))
	}

	return filename
}

// Validate checks if the configuration contains valid values. This should
// be called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Qiita.APIEndpoint == "" {
		return fmt.Errorf("qiita API endpoint cannot be empty")
	}
	if c.Defaults.PageSize < 0 {
		return fmt.Errorf("page size must not be negative, got: %d", c.Defaults.PageSize)
	}
	if c.Defaults.PageSize > 100 {
		return fmt.Errorf("page size %d exceeds Qiita API limit of 100", c.Defaults.PageSize)
	}
	switch c.Defaults.OutputFormat {
	case "text", "csv", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be one of text, csv, json", c.Defaults.OutputFormat)
	}
	return nil
}
