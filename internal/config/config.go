// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: CLI flags > environment variables > config file > embedded > defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the output setting.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Environment variables read by applyEnvOverrides.
const (
	EnvOutput      = "SYSINFO_OUTPUT"
	EnvLogLevel    = "SYSINFO_LOG_LEVEL"
	EnvCPUInterval = "SYSINFO_CPU_INTERVAL"
	EnvParallel    = "SYSINFO_PARALLEL"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "500ms", "1s", "2s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all tool configuration.
type Config struct {
	Output     string           `yaml:"output"`
	Collection CollectionConfig `yaml:"collection"`
	Disk       DiskConfig       `yaml:"disk"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CollectionConfig holds metric collection settings.
type CollectionConfig struct {
	CPUInterval Duration `yaml:"cpu_interval"`
	Parallel    bool     `yaml:"parallel"`
}

// DiskConfig holds disk collector settings.
type DiskConfig struct {
	AllPartitions bool `yaml:"all_partitions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputTable,
		Collection: CollectionConfig{
			CPUInterval: Duration{time.Second},
			Parallel:    false,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// CLIOverrides holds values from command-line flags.
// Zero values are treated as "not set" and skipped.
type CLIOverrides struct {
	Output        string
	LogLevel      string
	CPUInterval   time.Duration
	Parallel      bool
	AllPartitions bool
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadLayered loads configuration with the full precedence chain:
// CLI flags > env vars > external YAML file > embedded bytes > defaults.
//
// An optional configPath argument controls external-file discovery:
//   - omitted        → auto-discover via Locate()
//   - explicit value → use that path ("" means no external file)
//
// An explicitly named file that cannot be read is an error; an
// auto-discovered one that disappears is ignored.
func LoadLayered(cli CLIOverrides, embedded []byte, configPath ...string) (*Config, error) {
	cfg := DefaultConfig()

	if len(embedded) > 0 {
		if err := yaml.Unmarshal(embedded, cfg); err != nil {
			return nil, fmt.Errorf("parsing embedded config: %w", err)
		}
	}

	explicit := len(configPath) > 0
	var filePath string
	if explicit {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
			}
		case explicit:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if cli.Output != "" {
		cfg.Output = cli.Output
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.CPUInterval != 0 {
		cfg.Collection.CPUInterval = Duration{cli.CPUInterval}
	}
	if cli.Parallel {
		cfg.Collection.Parallel = true
	}
	if cli.AllPartitions {
		cfg.Disk.AllPartitions = true
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	if output := os.Getenv(EnvOutput); output != "" {
		cfg.Output = output
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if interval := os.Getenv(EnvCPUInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvCPUInterval, interval, err)
		}
		cfg.Collection.CPUInterval = Duration{d}
	}
	if parallel := os.Getenv(EnvParallel); parallel != "" {
		b, err := strconv.ParseBool(parallel)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvParallel, parallel, err)
		}
		cfg.Collection.Parallel = b
	}
	return nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", c.Output)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Logging.Level)
	}
	if c.Collection.CPUInterval.Duration <= 0 {
		return fmt.Errorf("cpu interval must be positive (got %s)", c.Collection.CPUInterval.Duration)
	}
	return nil
}
