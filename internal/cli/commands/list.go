package commands

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Long: `List every contact ordered by last name, then first name.

An empty address book renders an empty listing, not an error.`,
		Example: `  carnet list
  carnet list --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			contacts, err := cmdCtx.Store.ListAll()
			if err != nil {
				return err
			}

			return renderContacts(cmd.OutOrStdout(), contacts, resolveFormat(format, cmdCtx.Cfg))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, csv, md, yaml")

	return cmd
}
