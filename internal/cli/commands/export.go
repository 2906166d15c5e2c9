package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/carnet/internal/impex"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export all contacts to a file",
		Long: `Export the whole address book to a CSV, JSON, or YAML file.

The format is detected from the file extension unless --format is
given.`,
		Example: `  carnet export contacts.csv
  carnet export backup.yaml
  carnet export out.txt --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			format, err := exportFormat(path, formatFlag)
			if err != nil {
				return err
			}

			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			contacts, err := cmdCtx.Store.ListAll()
			if err != nil {
				return err
			}

			if err := impex.ExportFile(path, format, contacts); err != nil {
				return err
			}

			cmdCtx.Logger.Debug("contacts exported", "path", path, "format", format, "count", len(contacts))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contacts to %s\n", len(contacts), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "File format: csv, json, yaml (default: from extension)")

	return cmd
}

func exportFormat(path, flag string) (impex.Format, error) {
	if flag != "" {
		return impex.ParseFormat(flag)
	}
	return impex.DetectFormat(path)
}
