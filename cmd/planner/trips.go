package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

func tripsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "trips", Short: "List, create and delete trips"}

	var page, limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List trips, newest first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			trips, p, err := app.api.ListTrips(app.ctx, page, limit)
			if err != nil {
				return err
			}
			if ok, err := app.printJSON(trips); ok {
				return err
			}
			tw := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDESTINATION\tSTART\tEND")
			for _, t := range trips {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Destination, fmtDate(&t.StartDate), fmtDate(t.EndDate))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "page %d (%d total)\n", p.Page, p.Total)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page")
	list.Flags().IntVar(&limit, "limit", 20, "trips per page (max 100)")

	var t struct {
		name, destination, start, end, notes string
		lat, lng                             float64
	}
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a trip",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			req := api.TripRequest{
				Name:        t.name,
				Destination: changed(c, "destination", t.destination),
				Notes:       changed(c, "notes", t.notes),
				Latitude:    changed(c, "lat", t.lat),
				Longitude:   changed(c, "lng", t.lng),
			}
			if t.start != "" {
				d, err := parseDate(t.start)
				if err != nil {
					return err
				}
				req.StartDate = openapi_types.Date{Time: d}
			}
			if t.end != "" {
				d, err := parseDate(t.end)
				if err != nil {
					return err
				}
				req.EndDate = &openapi_types.Date{Time: d}
			}

			trip, err := app.api.CreateTrip(app.ctx, req)
			if err != nil {
				return err
			}
			app.notes.Success("Trip added successfully")
			if ok, err := app.printJSON(trip); ok {
				return err
			}
			fmt.Fprintln(app.out, trip.ID)
			return nil
		},
	}
	f := create.Flags()
	f.StringVar(&t.name, "name", "", "trip name")
	f.StringVar(&t.destination, "destination", "", "destination")
	f.StringVar(&t.start, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&t.end, "end", "", "end date (YYYY-MM-DD)")
	f.StringVar(&t.notes, "notes", "", "notes")
	f.Float64Var(&t.lat, "lat", 0, "latitude of the destination")
	f.Float64Var(&t.lng, "lng", 0, "longitude of the destination")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show one trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			trip, err := app.api.GetTrip(app.ctx, id)
			if err != nil {
				return err
			}
			if ok, err := app.printJSON(trip); ok {
				return err
			}
			printTrip(trip)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a trip and everything planned for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			if err := app.api.DeleteTrip(app.ctx, id); err != nil {
				app.notes.Error("Failed to remove trip")
				return err
			}
			app.notes.Success("Trip removed successfully")
			return nil
		},
	}

	cmd.AddCommand(list, create, show, del)
	return cmd
}

func printTrip(t domain.Trip) {
	fmt.Fprintf(app.out, "%s\n  id:          %s\n  destination: %s\n  dates:       %s to %s\n",
		t.Name, t.ID, t.Destination, fmtDate(&t.StartDate), fmtDate(t.EndDate))
	if t.Latitude != nil && t.Longitude != nil {
		fmt.Fprintf(app.out, "  location:    %.4f, %.4f\n", *t.Latitude, *t.Longitude)
	}
	if t.Notes != "" {
		fmt.Fprintf(app.out, "  notes:       %s\n", t.Notes)
	}
}
