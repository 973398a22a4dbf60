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

// Package config types define the configuration structures used throughout
// qiita-checker. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for qiita-checker.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Qiita    QiitaConfig    `yaml:"qiita"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Sandbox  SandboxConfig  `yaml:"sandbox"`
}

// QiitaConfig contains Qiita-specific settings including the API endpoint
// and authentication configuration. A custom endpoint allows pointing the
// tool at a Qiita Team domain.
type QiitaConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
	TokenEnv    string `yaml:"token_env"`
}

// DefaultsConfig contains default settings that apply to every run unless
// overridden by command-line flags.
type DefaultsConfig struct {
	// PageSize is sent as the per_page query parameter on the first list
	// request. Zero leaves the parameter off so the API default applies.
	PageSize     int    `yaml:"page_size"`
	OutputFormat string `yaml:"output_format"`
}

// SandboxConfig controls output path sandboxing for containerized runs.
// When the marker environment variable is set (its value is ignored), any
// output filename is reduced to its basename and placed under Dir.
type SandboxConfig struct {
	MarkerEnv string `yaml:"marker_env"`
	Dir       string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults target public qiita.com but can be overridden
// for Qiita Team deployments.
func DefaultConfig() *Config {
	return &Config{
		Qiita: QiitaConfig{
			APIEndpoint: "https://qiita.com/api/v2",
			TokenEnv:    "QIITA_TOKEN",
		},
		Defaults: DefaultsConfig{
			PageSize:     0,
			OutputFormat: "text",
		},
		Sandbox: SandboxConfig{
			MarkerEnv: "IS_DOCKER",
			Dir:       "/tmp",
		},
	}
}
