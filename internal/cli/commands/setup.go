// Package commands implements the carnet subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/carnet/internal/cli/config"
	"github.com/leapstack-labs/carnet/internal/store"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Store  *store.SQLiteStore
}

// NewCommandContext creates a CommandContext with an open store.
// Returns the context and a cleanup function that must be called
// (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = st.Close()
	}

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Store:  st,
	}, cleanup, nil
}

// NewCommandContextWithoutStore creates a CommandContext without
// opening the database. Useful for commands that manage their own
// connection or need none.
func NewCommandContextWithoutStore(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    config.FromContext(cmd.Context()),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// resolveFormat picks the output format: per-command flag first, then
// the configured default.
func resolveFormat(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return config.DefaultOutput
}
