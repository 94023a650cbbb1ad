// Package cli implements the packbuddy command tree. It is the user-facing
// layer: it parses input, enforces entry-form rules (like end date not
// before start date), and renders output. All data access goes through the
// service layer — no SQL and no business rules live here.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jvieri/pack-buddy/internal/service"
)

// App bundles the services the commands operate on. It is constructed in
// main and threaded through every command, so tests can wire an App against
// a throwaway database.
type App struct {
	Packings   *service.PackingService
	Categories *service.CategoryService
	Items      *service.ItemService
	Export     *service.ExportService
}

// NewRootCmd builds the packbuddy root command with all subcommands attached.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "packbuddy",
		Short:         "Manage trip packing checklists",
		Long:          "Pack Buddy keeps packing checklists for your trips: packings contain categories, categories contain items.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPackingCmd(app),
		newCategoryCmd(app),
		newItemCmd(app),
		newExportCmd(app),
		newTemplatesCmd(),
	)

	return root
}
