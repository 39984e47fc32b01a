package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultNumJobs        = 10_000_000
	defaultConcurrentJobs = 4
)

var errInvalidConfig = errors.New("invalid configuration")

// Config is the eqjobs configuration.
type Config struct {
	// NumJobs is the number of inputs to compute.
	NumJobs int `yaml:"num_jobs"`
	// ConcurrentJobs is the number of parallel workers, 0 means the number of cpu cores.
	ConcurrentJobs int `yaml:"concurrent_jobs"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel slog.Level `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		NumJobs:        defaultNumJobs,
		ConcurrentJobs: defaultConcurrentJobs,
		LogLevel:       slog.LevelInfo,
	}
}

// LoadConfig reads a YAML configuration file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports whether the configuration can be run.
func (cfg Config) Validate() error {
	if cfg.NumJobs < 1 {
		return fmt.Errorf("%w: num_jobs must be positive, got %d", errInvalidConfig, cfg.NumJobs)
	}

	if cfg.ConcurrentJobs < 0 {
		return fmt.Errorf("%w: concurrent_jobs cannot be negative, got %d", errInvalidConfig, cfg.ConcurrentJobs)
	}

	return nil
}
