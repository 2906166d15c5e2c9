package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search contacts",
		Long: `Search contacts by last name, phone, or email.

The query matches as a case-insensitive substring of any of the three
fields. Results are ordered by last name, then first name.`,
		Example: `  carnet search dupont
  carnet search 0102 --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			contacts, err := cmdCtx.Store.Find(args[0])
			if err != nil {
				return err
			}
			if len(contacts) == 0 {
				return fmt.Errorf("no contact matches %q", args[0])
			}

			return renderContacts(cmd.OutOrStdout(), contacts, resolveFormat(format, cmdCtx.Cfg))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, csv, md, yaml")

	return cmd
}
