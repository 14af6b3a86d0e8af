/*
Copyright 2025 The plantfinance Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config provides configuration management for the plantfinance tooling.
//
// Runtime settings are resolved with viper from, in decreasing priority:
//
//  1. Command-line flags
//  2. Environment variables prefixed with PLANTFINANCE_ (dashes become underscores)
//  3. An optional config file (--config)
//  4. Default values
//
// Financial defaults for plants (fixed charge rate, financing parameters,
// wake loss, machine rating) live in a ConfigMap-shaped file, see
// ParseFinanceDefaultsConfigMap.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "PLANTFINANCE"

// Flag names, also used as viper keys.
const (
	FlagConfig          = "config"
	FlagLogLevel        = "log-level"
	FlagDevelopment     = "development"
	FlagVerbose         = "verbose"
	FlagWorkers         = "workers"
	FlagOutput          = "output"
	FlagDefaults        = "defaults"
	FlagMetricsTextfile = "metrics-textfile"
	FlagPrintMetrics    = "print-metrics"
)

// Output formats
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config holds the runtime settings of the command-line tooling.
type Config struct {
	ConfigFile      string `mapstructure:"config"`
	LogLevel        int    `mapstructure:"log-level"`
	Development     bool   `mapstructure:"development"`
	Verbose         bool   `mapstructure:"verbose"`
	Workers         int    `mapstructure:"workers"`
	Output          string `mapstructure:"output"`
	DefaultsFile    string `mapstructure:"defaults"`
	MetricsTextfile string `mapstructure:"metrics-textfile"`
	PrintMetrics    bool   `mapstructure:"print-metrics"`
}

// AddFlags registers the runtime flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a config file (yaml, json or toml)")
	fs.Int(FlagLogLevel, 0, "log verbosity (0=info, 1=debug, 2=trace)")
	fs.Bool(FlagDevelopment, false, "use human-readable development logging")
	fs.BoolP(FlagVerbose, "v", false, "print the diagnostic report of every evaluation to stderr")
	fs.Int(FlagWorkers, runtime.NumCPU(), "maximum number of concurrent evaluations")
	fs.StringP(FlagOutput, "o", OutputYAML, "output format: yaml or json")
	fs.String(FlagDefaults, "", "path to a ConfigMap manifest with plant finance defaults")
	fs.String(FlagMetricsTextfile, "", "write Prometheus metrics to this file after the run")
	fs.Bool(FlagPrintMetrics, false, "print Prometheus metrics to stderr after the run")
}

// Load resolves the configuration from flags, environment and config file.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if file := v.GetString(FlagConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.LogLevel < 0 {
		return fmt.Errorf("log-level must be >= 0, got %d", c.LogLevel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	switch c.Output {
	case OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", c.Output, OutputYAML, OutputJSON)
	}
	return nil
}
