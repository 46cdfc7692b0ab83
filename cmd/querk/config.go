package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/querk/executor"
	"github.com/katalvlaran/querk/logging"
)

// Config is the YAML configuration of the querk tool. Command line flags
// override values read from the file.
type Config struct {
	Executor ExecutorConfig `yaml:"executor"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ExecutorConfig tunes the kernel executor.
type ExecutorConfig struct {
	// Workers is the number of chunks evaluated concurrently; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// ChunkSize is the number of nodes per chunk.
	ChunkSize int `yaml:"chunk_size"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics; empty disables it.
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Executor: ExecutorConfig{
			Workers:   0,
			ChunkSize: executor.DefaultChunkSize,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// loadConfig reads path over DefaultConfig. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Executor.Workers < 0 {
		return fmt.Errorf("executor.workers must be >= 0, got %d", c.Executor.Workers)
	}
	if c.Executor.ChunkSize < 1 {
		return fmt.Errorf("executor.chunk_size must be >= 1, got %d", c.Executor.ChunkSize)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// executorOptions turns the executor section into executor options.
func (c Config) executorOptions() []executor.Option {
	opts := []executor.Option{executor.WithChunkSize(c.Executor.ChunkSize)}
	if c.Executor.Workers > 0 {
		opts = append(opts, executor.WithWorkers(c.Executor.Workers))
	}
	return opts
}
