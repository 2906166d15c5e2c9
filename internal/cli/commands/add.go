package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/carnet/internal/contact"
)

// contactFlags registers the shared contact field flags on cmd and
// returns the backing record.
func contactFlags(cmd *cobra.Command) *contact.Contact {
	c := &contact.Contact{}
	cmd.Flags().StringVar(&c.LastName, "last", "", "Last name (required)")
	cmd.Flags().StringVar(&c.FirstName, "first", "", "First name (required)")
	cmd.Flags().StringVar(&c.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&c.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&c.Address, "address", "", "Postal address")
	return c
}

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	var rec *contact.Contact

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Example: `  carnet add --last Dupont --first Jean --phone 0102030405 \
      --email jean.dupont@example.com --address "1 rue X"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec.Normalize()
			if err := rec.Validate(); err != nil {
				return err
			}

			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := cmdCtx.Store.Create(*rec)
			if err != nil {
				return err
			}

			cmdCtx.Logger.Debug("contact created", "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Added contact %d: %s\n", id, rec.DisplayName())
			return nil
		},
	}

	rec = contactFlags(cmd)
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("first")

	return cmd
}
