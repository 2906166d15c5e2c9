package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/carnet/internal/contact"
)

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid contact id %q", arg)
	}
	if err := contact.ValidateID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one contact by id",
		Example: `  carnet show 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			rec, err := cmdCtx.Store.GetByID(id)
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("no contact with id %d", id)
			}

			return renderContacts(cmd.OutOrStdout(), []contact.Contact{*rec}, resolveFormat(format, cmdCtx.Cfg))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, csv, md, yaml")

	return cmd
}
