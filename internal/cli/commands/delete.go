package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a contact",
		Long: `Delete the contact with the given id.

On a terminal the command shows the contact and asks for confirmation
unless --yes is given. Declining leaves the address book untouched.`,
		Example: `  carnet delete 3
  carnet delete 3 --yes`,
		Args: cobra.ExactArgs(1),
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

			if !yes && isTerminal(os.Stdin) {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete %s (id %d)? [y/N] ", rec.DisplayName(), id)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			removed, err := cmdCtx.Store.Delete(id)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no contact with id %d", id)
			}

			cmdCtx.Logger.Debug("contact deleted", "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted contact %d: %s\n", id, rec.DisplayName())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
