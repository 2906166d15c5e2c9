package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/carnet/internal/contact"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand() *cobra.Command {
	var rec *contact.Contact

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a contact's fields",
		Long: `Replace every field of the contact with the given id.

Update is a full replacement, not a merge: omitted optional flags
clear the corresponding fields.`,
		Example: `  carnet update 3 --last Dupont --first Jeanne`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			rec.ID = id
			rec.Normalize()
			if err := rec.Validate(); err != nil {
				return err
			}

			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			matched, err := cmdCtx.Store.Update(*rec)
			if err != nil {
				return err
			}
			if !matched {
				return fmt.Errorf("no contact with id %d", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated contact %d: %s\n", id, rec.DisplayName())
			return nil
		},
	}

	rec = contactFlags(cmd)
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("first")

	return cmd
}
