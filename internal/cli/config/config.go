// Package config provides configuration management for the carnet CLI.
// Precedence (highest to lowest): flags > env vars > config file >
// defaults.
package config

import (
	"context"
	"log/slog"
)

// Config holds all CLI configuration options.
type Config struct {
	// DBPath is the contacts database file. Relative paths resolve
	// against the working directory.
	DBPath string `koanf:"db_path"`

	// OutputFormat selects the renderer for tabular commands:
	// table, json, csv, md, or yaml.
	OutputFormat string `koanf:"output"`

	Verbose bool `koanf:"verbose"`
}

// Default configuration values. The database filename matches the
// historical default so existing address books keep working.
const (
	DefaultDBFile = "carnet_adresses.db"
	DefaultOutput = "table"
)

// loggerKey is used to store the logger in the command context.
type loggerKey struct{}

// configKey is used to store the loaded config in the command context.
type configKey struct{}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context, falling
// back to a discard logger.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// WithConfig returns a context carrying the loaded configuration.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the configuration from the command context,
// falling back to defaults when the root command has not run.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return &Config{DBPath: DefaultDBFile, OutputFormat: DefaultOutput}
}
