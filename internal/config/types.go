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
// sirseer-scout. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import "time"

// Config represents the complete configuration for sirseer-scout.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	GitHub   GitHubConfig   `yaml:"github"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Retry    RetryConfig    `yaml:"retry"`
}

// GitHubConfig contains GitHub-specific settings including the API endpoint
// and authentication configuration. A custom endpoint allows the tool to
// work against GitHub Enterprise deployments and test servers.
type GitHubConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
	TokenEnv    string `yaml:"token_env"`
}

// DefaultsConfig contains default settings that apply to every run unless
// overridden by command-line flags. These control pagination and where
// report artifacts are written.
type DefaultsConfig struct {
	PageSize    int    `yaml:"page_size"`
	PageDelayMS int    `yaml:"page_delay_ms"`
	OutputDir   string `yaml:"output_dir"`
}

// RetryConfig controls how failed API requests are retried. MaxAttempts
// bounds retries for genuine failures only; waits for a depleted rate-limit
// window never count against it.
type RetryConfig struct {
	MaxAttempts    int `yaml:"max_attempts"`
	BaseDelayMS    int `yaml:"base_delay_ms"`
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// PageDelay returns the pause inserted between listing pages.
func (d DefaultsConfig) PageDelay() time.Duration {
	return time.Duration(d.PageDelayMS) * time.Millisecond
}

// BaseDelay returns the base pause used for flat retries and as the seed
// of the exponential backoff sequence.
func (r RetryConfig) BaseDelay() time.Duration {
	return time.Duration(r.BaseDelayMS) * time.Millisecond
}

// Timeout returns the per-request HTTP timeout.
func (r RetryConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults are tuned for public GitHub.com usage but can
// be overridden for GitHub Enterprise or special requirements.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: "https://api.github.com",
			TokenEnv:    "GITHUB_TOKEN",
		},
		Defaults: DefaultsConfig{
			PageSize:    100,
			PageDelayMS: 100,
			OutputDir:   ".",
		},
		Retry: RetryConfig{
			MaxAttempts:    3,
			BaseDelayMS:    1000,
			TimeoutSeconds: 10,
		},
	}
}
