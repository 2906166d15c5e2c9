package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/carnet/internal/tui"
)

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive address book",
		Long: `Open the full-screen terminal UI.

This is also what plain 'carnet' does. The list, entry form, search,
and delete confirmation all live in one session; every change is
committed to the database as it happens.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunUI(cmd)
		},
	}
}

// RunUI starts the interactive session. The bare 'carnet' invocation
// routes here as well.
func RunUI(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(cmdCtx.Store, cmdCtx.Logger)
}
