package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/carnet/internal/impex"
)

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	var formatFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import contacts from a file",
		Long: `Import contacts from a CSV, JSON, or YAML file.

Every record is validated before insertion; invalid records are
skipped and reported, valid ones are added as new contacts. The
format is detected from the file extension unless --format is given.`,
		Example: `  carnet import contacts.csv
  carnet import backup.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			format, err := exportFormat(path, formatFlag)
			if err != nil {
				return err
			}

			records, result, err := impex.ImportFile(path, format)
			if err != nil {
				return err
			}

			for _, rowErr := range result.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", rowErr)
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d of %d records would be imported\n",
					result.Imported, result.Total)
				return nil
			}

			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, rec := range records {
				if _, err := cmdCtx.Store.Create(rec); err != nil {
					return fmt.Errorf("failed to import %s: %w", rec.DisplayName(), err)
				}
			}

			cmdCtx.Logger.Debug("contacts imported", "path", path, "imported", result.Imported, "skipped", result.Skipped)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d contacts from %s", result.Imported, path)
			if result.Skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d skipped)", result.Skipped)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "File format: csv, json, yaml (default: from extension)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without importing anything")

	return cmd
}
