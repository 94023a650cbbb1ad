package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jvieri/pack-buddy/internal/domain"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the checklist items of a category",
	}
	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemDoneCmd(app),
		newItemEditCmd(app),
		newItemDeleteCmd(app),
	)
	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category-id> <title>",
		Short: "Add a checklist item to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			item, err := app.Items.Create(cmd.Context(), domain.Item{
				CategoryID: categoryID,
				Title:      args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created item %s (%s)\n", item.Title, item.ID)
			return nil
		},
	}
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <category-id>",
		Short: "List the items of a category in creation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			items, err := app.Items.ListByCategory(cmd.Context(), categoryID)
			if err != nil {
				return err
			}
			for _, it := range items {
				check := " "
				if it.Done {
					check = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-24s %s\n", check, it.Title, it.ID)
			}
			return nil
		},
	}
}

func newItemDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <item-id>",
		Short: "Toggle an item's packed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			item, err := app.Items.ToggleDone(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "not packed"
			if item.Done {
				state = "packed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "item %s is now %s\n", item.Title, state)
			return nil
		},
	}
}

func newItemEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <item-id> <title>",
		Short: "Rename a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			item, err := app.Items.UpdateTitle(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed item to %s\n", item.Title)
			return nil
		},
	}
}

func newItemDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			if err := app.Items.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted item %s\n", id)
			return nil
		},
	}
}
