package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/resource"
)

func activitiesCmd() *cobra.Command {
	e := &entity[domain.Activity, domain.ActivityPatch]{
		use:   "activities",
		short: "Manage a trip's activities",
		manager: func() *resource.ActivityManager {
			return resource.NewActivityManager(app.api.Activities(), app.notes, app.log)
		},
		header: []string{"ID", "DATE", "TITLE", "LOCATION", "TYPE", "PRICE"},
		row: func(a domain.Activity) []string {
			return []string{a.ID.String(), fmtDate(&a.Date), a.Title, a.Location, a.Type, strconv.FormatFloat(a.Price, 'f', 2, 64)}
		},
	}
	cmd := e.parent()

	var a struct {
		title, description, date, start, end, location, typ, image string
		price                                                      float64
	}
	fields := func(c *cobra.Command) {
		f := c.Flags()
		f.StringVar(&a.title, "title", "", "title")
		f.StringVar(&a.description, "description", "", "description")
		f.StringVar(&a.date, "date", "", "date (YYYY-MM-DD)")
		f.StringVar(&a.start, "start", "", "start time (HH:MM)")
		f.StringVar(&a.end, "end", "", "end time (HH:MM)")
		f.StringVar(&a.location, "location", "", "location")
		f.StringVar(&a.typ, "type", "", "activity type, e.g. museum")
		f.StringVar(&a.image, "image", "", "image URL")
		f.Float64Var(&a.price, "price", 0, "price")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an activity",
		Args:  cobra.NoArgs,
		RunE: e.after(func(m *resource.ActivityManager) error {
			var date time.Time
			if a.date != "" {
				d, err := parseDate(a.date)
				if err != nil {
					return err
				}
				date = d
			}
			_, err := m.Create(app.ctx, domain.Activity{
				Title:       a.title,
				Description: a.description,
				Date:        date,
				StartTime:   a.start,
				EndTime:     a.end,
				Location:    a.location,
				Price:       a.price,
				Type:        a.typ,
				ImageURL:    a.image,
			})
			return err
		}),
	}
	fields(add)

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of an activity",
		Args:  cobra.ExactArgs(1),
		RunE: e.onItem(func(c *cobra.Command, m *resource.ActivityManager, id uuid.UUID) error {
			p := domain.ActivityPatch{
				Title:       changed(c, "title", a.title),
				Description: changed(c, "description", a.description),
				StartTime:   changed(c, "start", a.start),
				EndTime:     changed(c, "end", a.end),
				Location:    changed(c, "location", a.location),
				Price:       changed(c, "price", a.price),
				Type:        changed(c, "type", a.typ),
				ImageURL:    changed(c, "image", a.image),
			}
			if c.Flags().Changed("date") {
				d, err := parseDate(a.date)
				if err != nil {
					return err
				}
				p.Date = &d
			}
			m.Edit(id)
			return m.Update(app.ctx, id, p)
		}),
	}
	fields(update)

	cmd.AddCommand(add, update)
	return cmd
}

func expensesCmd() *cobra.Command {
	e := &entity[domain.Expense, domain.ExpensePatch]{
		use:   "expenses",
		short: "Track a trip's expenses",
		manager: func() *resource.ExpenseManager {
			return resource.NewExpenseManager(app.api.Expenses(), app.notes, app.log)
		},
		header: []string{"ID", "DESCRIPTION", "CATEGORY", "AMOUNT"},
		row: func(x domain.Expense) []string {
			return []string{x.ID.String(), x.Description, x.Category, strconv.FormatFloat(x.Amount, 'f', 2, 64)}
		},
	}
	cmd := e.parent()

	var description, amount, category string
	add := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: e.after(func(m *resource.ExpenseManager) error {
			_, err := resource.AddExpense(app.ctx, m, description, amount, category)
			return err
		}),
	}
	add.Flags().StringVar(&description, "description", "", "what the money was spent on")
	add.Flags().StringVar(&amount, "amount", "", "amount, e.g. 12.50")
	add.Flags().StringVar(&category, "category", "", "category, e.g. Food")

	budget := &cobra.Command{
		Use:   "budget",
		Short: "Show the total spent and the per-category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			m, err := e.open()
			if err != nil {
				return err
			}
			b := resource.Budget(m)
			if ok, err := app.printJSON(b); ok {
				return err
			}
			for _, ct := range b.ByCategory {
				fmt.Fprintf(app.out, "%-16s %10.2f  (%d)\n", ct.Category, ct.Total, ct.Count)
			}
			fmt.Fprintf(app.out, "%-16s %10.2f\n", "Total", b.Total)
			return nil
		},
	}

	cmd.AddCommand(add, budget)
	return cmd
}

func packingCmd() *cobra.Command {
	e := &entity[domain.PackingItem, domain.PackingItemPatch]{
		use:   "packing",
		short: "Keep a trip's packing list",
		manager: func() *resource.PackingItemManager {
			return resource.NewPackingItemManager(app.api.PackingItems(), app.notes, app.log)
		},
		header: []string{"ID", "PACKED", "ITEM"},
		row: func(p domain.PackingItem) []string {
			mark := "[ ]"
			if p.Packed {
				mark = "[x]"
			}
			return []string{p.ID.String(), mark, p.Text}
		},
	}
	cmd := e.parent()

	var text string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the packing list",
		Args:  cobra.NoArgs,
		RunE: e.after(func(m *resource.PackingItemManager) error {
			_, err := m.Create(app.ctx, domain.PackingItem{Text: text})
			return err
		}),
	}
	add.Flags().StringVar(&text, "text", "", "item text")

	toggle := &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip the packed mark of an item",
		Args:  cobra.ExactArgs(1),
		RunE: e.onItem(func(_ *cobra.Command, m *resource.PackingItemManager, id uuid.UUID) error {
			return resource.TogglePacked(app.ctx, m, id)
		}),
	}

	cmd.AddCommand(add, toggle)
	return cmd
}

func flightsCmd() *cobra.Command {
	e := &entity[domain.Flight, domain.FlightPatch]{
		use:   "flights",
		short: "Manage a trip's flights",
		manager: func() *resource.FlightManager {
			return resource.NewFlightManager(app.api.Flights(), app.notes, app.log)
		},
		header: []string{"ID", "AIRLINE", "FLIGHT", "FROM", "DEPARTS", "TO", "ARRIVES"},
		row: func(f domain.Flight) []string {
			return []string{
				f.ID.String(), f.Airline, f.FlightNumber,
				f.DepartureAirport, fmtDate(f.DepartureDate) + " " + f.DepartureTime,
				f.ArrivalAirport, fmtDate(f.ArrivalDate) + " " + f.ArrivalTime,
			}
		},
	}
	cmd := e.parent()

	var f struct{ airline, number, from, to, depDate, depTime, arrDate, arrTime string }
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a flight",
		Args:  cobra.NoArgs,
		RunE: e.after(func(m *resource.FlightManager) error {
			dep, err := optDate(f.depDate)
			if err != nil {
				return err
			}
			arr, err := optDate(f.arrDate)
			if err != nil {
				return err
			}
			_, err = m.Create(app.ctx, domain.Flight{
				Airline:          f.airline,
				FlightNumber:     f.number,
				DepartureDate:    dep,
				DepartureTime:    f.depTime,
				ArrivalDate:      arr,
				ArrivalTime:      f.arrTime,
				DepartureAirport: f.from,
				ArrivalAirport:   f.to,
			})
			return err
		}),
	}
	flightFields := func(c *cobra.Command) {
		fl := c.Flags()
		fl.StringVar(&f.airline, "airline", "", "airline")
		fl.StringVar(&f.number, "number", "", "flight number")
		fl.StringVar(&f.from, "from", "", "departure airport")
		fl.StringVar(&f.to, "to", "", "arrival airport")
		fl.StringVar(&f.depDate, "departure-date", "", "departure date (YYYY-MM-DD)")
		fl.StringVar(&f.depTime, "departure-time", "", "departure time (HH:MM)")
		fl.StringVar(&f.arrDate, "arrival-date", "", "arrival date (YYYY-MM-DD)")
		fl.StringVar(&f.arrTime, "arrival-time", "", "arrival time (HH:MM)")
	}
	flightFields(add)

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a flight",
		Args:  cobra.ExactArgs(1),
		RunE: e.onItem(func(c *cobra.Command, m *resource.FlightManager, id uuid.UUID) error {
			p := domain.FlightPatch{
				Airline:          changed(c, "airline", f.airline),
				FlightNumber:     changed(c, "number", f.number),
				DepartureAirport: changed(c, "from", f.from),
				ArrivalAirport:   changed(c, "to", f.to),
				DepartureTime:    changed(c, "departure-time", f.depTime),
				ArrivalTime:      changed(c, "arrival-time", f.arrTime),
			}
			var err error
			if c.Flags().Changed("departure-date") {
				if p.DepartureDate, err = optDate(f.depDate); err != nil {
					return err
				}
			}
			if c.Flags().Changed("arrival-date") {
				if p.ArrivalDate, err = optDate(f.arrDate); err != nil {
					return err
				}
			}
			m.Edit(id)
			return m.Update(app.ctx, id, p)
		}),
	}
	flightFields(update)

	cmd.AddCommand(add, update)
	return cmd
}

func hotelsCmd() *cobra.Command {
	e := &entity[domain.Hotel, domain.HotelPatch]{
		use:   "hotels",
		short: "Manage a trip's hotels",
		manager: func() *resource.HotelManager {
			return resource.NewHotelManager(app.api.Hotels(), app.notes, app.log)
		},
		header: []string{"ID", "NAME", "CHECK-IN", "CHECK-OUT", "RESERVATION"},
		row: func(h domain.Hotel) []string {
			return []string{h.ID.String(), h.Name, fmtDate(h.CheckInDate), fmtDate(h.CheckOutDate), h.ReservationNumber}
		},
	}
	cmd := e.parent()

	var h struct{ name, address, in, out, reservation, notes string }
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a hotel stay",
		Args:  cobra.NoArgs,
		RunE: e.after(func(m *resource.HotelManager) error {
			in, err := optDate(h.in)
			if err != nil {
				return err
			}
			out, err := optDate(h.out)
			if err != nil {
				return err
			}
			_, err = m.Create(app.ctx, domain.Hotel{
				Name:              h.name,
				Address:           h.address,
				CheckInDate:       in,
				CheckOutDate:      out,
				ReservationNumber: h.reservation,
				Notes:             h.notes,
			})
			return err
		}),
	}
	hotelFields := func(c *cobra.Command) {
		fl := c.Flags()
		fl.StringVar(&h.name, "name", "", "hotel name")
		fl.StringVar(&h.address, "address", "", "address")
		fl.StringVar(&h.in, "check-in", "", "check-in date (YYYY-MM-DD)")
		fl.StringVar(&h.out, "check-out", "", "check-out date (YYYY-MM-DD)")
		fl.StringVar(&h.reservation, "reservation", "", "reservation number")
		fl.StringVar(&h.notes, "notes", "", "notes")
	}
	hotelFields(add)

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a hotel stay",
		Args:  cobra.ExactArgs(1),
		RunE: e.onItem(func(c *cobra.Command, m *resource.HotelManager, id uuid.UUID) error {
			p := domain.HotelPatch{
				Name:              changed(c, "name", h.name),
				Address:           changed(c, "address", h.address),
				ReservationNumber: changed(c, "reservation", h.reservation),
				Notes:             changed(c, "notes", h.notes),
			}
			var err error
			if c.Flags().Changed("check-in") {
				if p.CheckInDate, err = optDate(h.in); err != nil {
					return err
				}
			}
			if c.Flags().Changed("check-out") {
				if p.CheckOutDate, err = optDate(h.out); err != nil {
					return err
				}
			}
			m.Edit(id)
			return m.Update(app.ctx, id, p)
		}),
	}
	hotelFields(update)

	cmd.AddCommand(add, update)
	return cmd
}
