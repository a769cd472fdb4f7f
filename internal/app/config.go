package app

import (
	"errors"
)

// Config captures runtime parameters for a run.
type Config struct {
	WorkDir string
	Include []string
	Exclude []string
	Verify  bool
	Debug   bool
	Version string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with defaults and applies provided options.
func NewConfig(workDir string, opts ...ConfigOption) (Config, error) {
	if workDir == "" {
		return Config{}, errors.New("working directory must be provided")
	}

	cfg := Config{
		WorkDir: workDir,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}

// WithInclude restricts checkout to paths matching any of the patterns.
func WithInclude(patterns []string) ConfigOption {
	return func(cfg *Config) {
		cfg.Include = append([]string{}, patterns...)
	}
}

// WithExclude skips paths matching any of the patterns.
func WithExclude(patterns []string) ConfigOption {
	return func(cfg *Config) {
		cfg.Exclude = append([]string{}, patterns...)
	}
}

// WithVerify toggles checksum verification before linking objects.
func WithVerify(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Verify = enabled
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
