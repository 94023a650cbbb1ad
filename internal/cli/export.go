package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// newExportCmd writes the full store as JSON lines, one flat row per item.
// The output is stable (creation order) so it diffs cleanly between runs.
func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export every packing, category, and item as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Export.Export(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, row := range rows {
				if err := enc.Encode(row); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
