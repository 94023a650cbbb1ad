package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jvieri/pack-buddy/internal/domain"
)

// dateLayout is the format for dates entered on the command line.
const dateLayout = "2006-01-02"

func newPackingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packing",
		Short: "Create, list, search, and delete packings",
	}
	cmd.AddCommand(
		newPackingAddCmd(app),
		newPackingListCmd(app),
		newPackingSearchCmd(app),
		newPackingShowCmd(app),
		newPackingEditCmd(app),
		newPackingDeleteCmd(app),
	)
	return cmd
}

func newPackingAddCmd(app *App) *cobra.Command {
	var (
		title     string
		location  string
		start     string
		end       string
		color     string
		templates []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new packing, optionally seeded from templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse(dateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid --start date %q: use YYYY-MM-DD", start)
			}
			endDate, err := time.Parse(dateLayout, end)
			if err != nil {
				return fmt.Errorf("invalid --end date %q: use YYYY-MM-DD", end)
			}
			// Date ordering is an entry-form rule, checked here rather than in
			// the data layer.
			if endDate.Before(startDate) {
				return fmt.Errorf("end date %s is before start date %s", end, start)
			}

			packing, err := app.Packings.Create(cmd.Context(), domain.Packing{
				Title:     title,
				Location:  location,
				StartDate: startDate,
				EndDate:   endDate,
				Color:     domain.Color(color),
			})
			if err != nil {
				return err
			}

			if len(templates) > 0 {
				if _, err := app.Categories.SeedTemplates(cmd.Context(), packing.ID, templates); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created packing %s (%s)\n", packing.Title, packing.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "packing title (required)")
	cmd.Flags().StringVar(&location, "location", "", "trip location (required; e.g. one of: Beach, City, Mountain, Forest, Desert, Countryside, Island)")
	cmd.Flags().StringVar(&start, "start", "", "start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "end date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&color, "color", "", "palette color (red, orange, yellow, green, blue, pink, purple); random when omitted")
	cmd.Flags().StringSliceVar(&templates, "template", nil, "seed a category from a built-in template (repeatable)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newPackingListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all packings in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			packings, err := app.Packings.List(cmd.Context())
			if err != nil {
				return err
			}
			return printPackings(cmd, app, packings)
		},
	}
}

func newPackingSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find packings whose title contains the query (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packings, err := app.Packings.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printPackings(cmd, app, packings)
		},
	}
}

func newPackingShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <packing-id>",
		Short: "Show one packing with its categories and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid packing id %q", args[0])
			}

			packing, err := app.Packings.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			stats, err := app.Packings.Stats(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s — %s, %s to %s (%d nights, %d/%d packed)\n",
				packing.Title, packing.Location,
				packing.StartDate.Format(dateLayout), packing.EndDate.Format(dateLayout),
				packing.Nights(), stats.Done, stats.Total)

			categories, err := app.Categories.ListByPacking(cmd.Context(), id)
			if err != nil {
				return err
			}
			for _, c := range categories {
				counts, err := app.Items.Counts(cmd.Context(), c.ID)
				if err != nil {
					return err
				}
				marker := "+"
				if c.Open {
					marker = "-"
				}
				fmt.Fprintf(out, "%s [%s] %s (%d/%d)  %s\n", marker, c.Symbol, c.Title, counts.Done, counts.Total, c.ID)

				if !c.Open {
					continue
				}
				items, err := app.Items.ListByCategory(cmd.Context(), c.ID)
				if err != nil {
					return err
				}
				for _, it := range items {
					check := " "
					if it.Done {
						check = "x"
					}
					fmt.Fprintf(out, "    [%s] %s  %s\n", check, it.Title, it.ID)
				}
			}
			return nil
		},
	}
}

func newPackingEditCmd(app *App) *cobra.Command {
	var (
		title    string
		location string
		start    string
		end      string
		color    string
	)

	cmd := &cobra.Command{
		Use:   "edit <packing-id>",
		Short: "Edit fields of an existing packing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid packing id %q", args[0])
			}

			packing, err := app.Packings.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				packing.Title = title
			}
			if cmd.Flags().Changed("location") {
				packing.Location = location
			}
			if cmd.Flags().Changed("start") {
				if packing.StartDate, err = time.Parse(dateLayout, start); err != nil {
					return fmt.Errorf("invalid --start date %q: use YYYY-MM-DD", start)
				}
			}
			if cmd.Flags().Changed("end") {
				if packing.EndDate, err = time.Parse(dateLayout, end); err != nil {
					return fmt.Errorf("invalid --end date %q: use YYYY-MM-DD", end)
				}
			}
			if cmd.Flags().Changed("color") {
				packing.Color = domain.Color(color)
			}
			if packing.EndDate.Before(packing.StartDate) {
				return fmt.Errorf("end date is before start date")
			}

			if _, err := app.Packings.Update(cmd.Context(), packing); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated packing %s\n", packing.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&location, "location", "", "new location")
	cmd.Flags().StringVar(&start, "start", "", "new start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "new end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&color, "color", "", "new palette color")

	return cmd
}

func newPackingDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <packing-id>",
		Short: "Delete a packing and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid packing id %q", args[0])
			}
			if err := app.Packings.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted packing %s\n", id)
			return nil
		},
	}
}

// printPackings renders one line per packing with its completion summary.
func printPackings(cmd *cobra.Command, app *App, packings []domain.Packing) error {
	out := cmd.OutOrStdout()
	for _, p := range packings {
		stats, err := app.Packings.Stats(cmd.Context(), p.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %-20s %-12s %s to %s  %2d nights  %3.0f%% packed  %s\n",
			p.ID, p.Title, p.Location,
			p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout),
			p.Nights(), stats.Percentage()*100, p.Color)
	}
	return nil
}
