package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jvieri/pack-buddy/internal/domain"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the categories of a packing",
	}
	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategoryListCmd(app),
		newCategoryEditCmd(app),
		newCategoryToggleCmd(app),
		newCategoryDeleteCmd(app),
		newCategorySeedCmd(app),
	)
	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var (
		title  string
		symbol string
	)

	cmd := &cobra.Command{
		Use:   "add <packing-id>",
		Short: "Add a category to a packing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packingID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid packing id %q", args[0])
			}

			category, err := app.Categories.Create(cmd.Context(), domain.Category{
				PackingID: packingID,
				Title:     title,
				Symbol:    symbol,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created category %s (%s)\n", category.Title, category.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "category title (required)")
	cmd.Flags().StringVar(&symbol, "symbol", "folder", "icon symbol (e.g. tshirt, doc, suitcase)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <packing-id>",
		Short: "List the categories of a packing with item counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packingID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid packing id %q", args[0])
			}

			categories, err := app.Categories.ListByPacking(cmd.Context(), packingID)
			if err != nil {
				return err
			}
			for _, c := range categories {
				counts, err := app.Items.Counts(cmd.Context(), c.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s] %-20s %d/%d\n",
					c.ID, c.Symbol, c.Title, counts.Done, counts.Total)
			}
			return nil
		},
	}
}

func newCategoryEditCmd(app *App) *cobra.Command {
	var (
		title  string
		symbol string
	)

	cmd := &cobra.Command{
		Use:   "edit <category-id>",
		Short: "Rename a category or change its symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			category, err := app.Categories.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				category.Title = title
			}
			if cmd.Flags().Changed("symbol") {
				category.Symbol = symbol
			}

			if _, err := app.Categories.Update(cmd.Context(), category); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated category %s\n", category.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&symbol, "symbol", "", "new icon symbol")

	return cmd
}

func newCategoryToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <category-id>",
		Short: "Expand or collapse a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			category, err := app.Categories.ToggleOpen(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "collapsed"
			if category.Open {
				state = "open"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category %s is now %s\n", category.Title, state)
			return nil
		},
	}
}

func newCategoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			if err := app.Categories.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted category %s\n", id)
			return nil
		},
	}
}

func newCategorySeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <packing-id> <template>...",
		Short: "Seed categories from built-in templates",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			packingID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid packing id %q", args[0])
			}
			created, err := app.Categories.SeedTemplates(cmd.Context(), packingID, args[1:])
			if err != nil {
				return err
			}
			for _, c := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "seeded category %s (%s)\n", c.Title, c.ID)
			}
			return nil
		},
	}
}

// newTemplatesCmd lists the built-in templates and their starter items.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the built-in seeding templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range domain.DefaultTemplates() {
				items := domain.TemplateItems(t.Title)
				fmt.Fprintf(out, "%-16s [%s]  %s\n", t.Title, t.Icon, strings.Join(items, ", "))
			}
			return nil
		},
	}
}
