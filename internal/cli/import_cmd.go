package cli

import (
	"fmt"

	"github.com/alexanderramin/renoboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import sections and entities from a JSON or YAML file",
		Long: `Import sections and entities in one transaction.

The format is chosen by extension (.json, .yaml, .yml). Dates are stored
exactly as written; entities whose dates cannot be read are imported and
listed so they can be fixed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
