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
// lh-extract. These types represent settings that can be loaded from
// YAML configuration files or environment variables.
package config

import "time"

// Config represents the complete configuration for lh-extract.
// The four per-run values (account, token, project, milestone) are not
// part of it; they always come from the command line.
type Config struct {
	Lighthouse LighthouseConfig `yaml:"lighthouse"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// LighthouseConfig contains API settings. Endpoint is a URL template in
// which {account} is replaced by the account subdomain.
type LighthouseConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	PageSize int           `yaml:"page_size"`
}

// OutputConfig controls the CSV rendering.
type OutputConfig struct {
	IncludeHeader bool `yaml:"include_header"`
	DynamicNotes  bool `yaml:"dynamic_notes"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config matching the hosted Lighthouse service:
// 30 tickets per search page and a 10 second request timeout.
func DefaultConfig() *Config {
	return &Config{
		Lighthouse: LighthouseConfig{
			Endpoint: "https://{account}.lighthouseapp.com",
			Timeout:  10 * time.Second,
			PageSize: 30,
		},
		Output: OutputConfig{
			IncludeHeader: true,
			DynamicNotes:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
