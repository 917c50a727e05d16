package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLayered_CLIOverridesEverything(t *testing.T) {
	embedded := []byte("output: yaml\nlogging:\n  level: info")
	t.Setenv(EnvOutput, "json")
	cli := CLIOverrides{Output: "table", LogLevel: "debug", CPUInterval: 250 * time.Millisecond}

	cfg, err := LoadLayered(cli, embedded, "")
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Collection.CPUInterval.Duration)
}

func TestLoadLayered_EnvOverridesEmbed(t *testing.T) {
	embedded := []byte("output: yaml\nlogging:\n  level: info")
	t.Setenv(EnvOutput, "json")
	t.Setenv(EnvParallel, "true")

	cfg, err := LoadLayered(CLIOverrides{}, embedded, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Collection.Parallel)
}

func TestLoadLayered_FileOverridesEmbed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"collection:\n  cpu_interval: 2s\ndisk:\n  all_partitions: true\n"), 0644))

	cfg, err := LoadLayered(CLIOverrides{}, []byte("collection:\n  cpu_interval: 500ms"), path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Collection.CPUInterval.Duration)
	assert.True(t, cfg.Disk.AllPartitions)
	assert.Equal(t, OutputTable, cfg.Output)
}

func TestLoadLayered_DefaultsWhenEmpty(t *testing.T) {
	cfg, err := LoadLayered(CLIOverrides{}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Collection.CPUInterval.Duration)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Collection.Parallel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadLayered_MissingExplicitFile(t *testing.T) {
	_, err := LoadLayered(CLIOverrides{}, nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadLayered_InvalidInputs(t *testing.T) {
	_, err := LoadLayered(CLIOverrides{}, []byte("collection:\n  cpu_interval: soon"), "")
	assert.ErrorContains(t, err, "invalid duration")

	t.Setenv(EnvCPUInterval, "fast")
	_, err = LoadLayered(CLIOverrides{}, nil, "")
	assert.ErrorContains(t, err, EnvCPUInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json output", mutate: func(c *Config) { c.Output = "JSON" }},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.Collection.CPUInterval = Duration{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
