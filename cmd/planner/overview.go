package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/overview"
)

func overviewCmd() *cobra.Command {
	var (
		opts  overview.Options
		group string
		sort  string
		pages int
		types bool
	)
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Search, filter and group activities across every trip",
		Long: `Overview loads activities across all trips, nine at a time, then applies
the search, type filter and grouping locally.

Example:
  planner overview --search hanoi --group date
  planner overview --type museum --sort -price --pages 3`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			feed := overview.NewFeed(app.api, sort, overview.WithLogger(app.log))
			for i := 0; i < pages && feed.HasMore(); i++ {
				if err := feed.LoadMore(app.ctx); err != nil {
					app.notes.Error("Failed to fetch activities")
					return err
				}
			}
			items := feed.Items()

			if types {
				fmt.Fprintln(app.out, strings.Join(overview.Types(items), "\n"))
				return nil
			}

			opts.Group = overview.GroupBy(group)
			res := overview.Apply(items, opts)
			if ok, err := app.printJSON(res); ok {
				return err
			}
			if res.Empty {
				fmt.Fprintln(app.out, "No activities found.")
				return nil
			}
			for _, g := range res.Groups {
				key := g.Key
				if key == "" {
					key = "(none)"
				}
				fmt.Fprintf(app.out, "== %s ==\n", key)
				for _, a := range g.Items {
					fmt.Fprintf(app.out, "  %s  %-28s %-20s %s\n", fmtDate(&a.Date), a.Title, a.Location, a.Type)
				}
			}
			if feed.HasMore() {
				fmt.Fprintln(app.out, "(more activities available; raise --pages)")
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Search, "search", "", "match title or location, ignoring case")
	f.StringVar(&opts.Type, "type", overview.AllTypes, "activity type, or all")
	f.StringVar(&group, "group", string(overview.GroupNone), "group by none, date or location")
	f.StringVar(&sort, "sort", "date", "order column; prefix with - for descending")
	f.IntVar(&pages, "pages", 1, "number of pages to load")
	f.BoolVar(&types, "types", false, "list the activity types instead")
	return cmd
}
