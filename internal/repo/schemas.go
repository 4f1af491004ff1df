package repo

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ActivitySchema maps domain.Activity onto the activities table.
var ActivitySchema = Schema[domain.Activity]{
	Table: "activities",
	Columns: []string{
		"id", "trip_id", "title", "description", "date", "start_time", "end_time",
		"location", "price", "type", "image_url", "created_at", "updated_at",
	},
	Writable: []string{
		"trip_id", "title", "description", "date", "start_time", "end_time",
		"location", "price", "type", "image_url",
	},
	OrderBy: "date",
	Touch:   true,
	Values: func(a domain.Activity) map[string]any {
		return map[string]any{
			"trip_id":     a.TripID,
			"title":       a.Title,
			"description": a.Description,
			"date":        a.Date,
			"start_time":  a.StartTime,
			"end_time":    a.EndTime,
			"location":    a.Location,
			"price":       a.Price,
			"type":        a.Type,
			"image_url":   a.ImageURL,
		}
	},
	Scan: func(s scanner) (domain.Activity, error) {
		var (
			a      domain.Activity
			id     pgtype.UUID
			tripID pgtype.UUID
			date   pgtype.Date
		)
		err := s.Scan(&id, &tripID, &a.Title, &a.Description, &date, &a.StartTime, &a.EndTime,
			&a.Location, &a.Price, &a.Type, &a.ImageURL, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return domain.Activity{}, err
		}
		a.ID = uuid.UUID(id.Bytes)
		a.TripID = uuid.UUID(tripID.Bytes)
		a.Date = date.Time
		return a, nil
	},
}

// ExpenseSchema maps domain.Expense onto the expenses table.
var ExpenseSchema = Schema[domain.Expense]{
	Table:    "expenses",
	Columns:  []string{"id", "trip_id", "description", "amount", "category", "created_at"},
	Writable: []string{"trip_id", "description", "amount", "category"},
	OrderBy:  "created_at",
	Values: func(e domain.Expense) map[string]any {
		return map[string]any{
			"trip_id":     e.TripID,
			"description": e.Description,
			"amount":      e.Amount,
			"category":    e.Category,
		}
	},
	Scan: func(s scanner) (domain.Expense, error) {
		var (
			e      domain.Expense
			id     pgtype.UUID
			tripID pgtype.UUID
		)
		if err := s.Scan(&id, &tripID, &e.Description, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return domain.Expense{}, err
		}
		e.ID = uuid.UUID(id.Bytes)
		e.TripID = uuid.UUID(tripID.Bytes)
		return e, nil
	},
}

// PackingItemSchema maps domain.PackingItem onto the packing_items table.
var PackingItemSchema = Schema[domain.PackingItem]{
	Table:    "packing_items",
	Columns:  []string{"id", "trip_id", "text", "packed", "created_at"},
	Writable: []string{"trip_id", "text", "packed"},
	OrderBy:  "created_at",
	Values: func(p domain.PackingItem) map[string]any {
		return map[string]any{"trip_id": p.TripID, "text": p.Text, "packed": p.Packed}
	},
	Scan: func(s scanner) (domain.PackingItem, error) {
		var (
			p      domain.PackingItem
			id     pgtype.UUID
			tripID pgtype.UUID
		)
		if err := s.Scan(&id, &tripID, &p.Text, &p.Packed, &p.CreatedAt); err != nil {
			return domain.PackingItem{}, err
		}
		p.ID = uuid.UUID(id.Bytes)
		p.TripID = uuid.UUID(tripID.Bytes)
		return p, nil
	},
}

// FlightSchema maps domain.Flight onto the flights table.
var FlightSchema = Schema[domain.Flight]{
	Table: "flights",
	Columns: []string{
		"id", "trip_id", "airline", "flight_number", "departure_date", "departure_time",
		"arrival_date", "arrival_time", "departure_airport", "arrival_airport",
	},
	Writable: []string{
		"trip_id", "airline", "flight_number", "departure_date", "departure_time",
		"arrival_date", "arrival_time", "departure_airport", "arrival_airport",
	},
	OrderBy: "departure_date",
	Values: func(f domain.Flight) map[string]any {
		return map[string]any{
			"trip_id":           f.TripID,
			"airline":           f.Airline,
			"flight_number":     f.FlightNumber,
			"departure_date":    f.DepartureDate, // nil becomes NULL
			"departure_time":    f.DepartureTime,
			"arrival_date":      f.ArrivalDate,
			"arrival_time":      f.ArrivalTime,
			"departure_airport": f.DepartureAirport,
			"arrival_airport":   f.ArrivalAirport,
		}
	},
	Scan: func(s scanner) (domain.Flight, error) {
		var (
			f          domain.Flight
			id, tripID pgtype.UUID
			dep, arr   pgtype.Date
		)
		err := s.Scan(&id, &tripID, &f.Airline, &f.FlightNumber, &dep, &f.DepartureTime,
			&arr, &f.ArrivalTime, &f.DepartureAirport, &f.ArrivalAirport)
		if err != nil {
			return domain.Flight{}, err
		}
		f.ID = uuid.UUID(id.Bytes)
		f.TripID = uuid.UUID(tripID.Bytes)
		f.DepartureDate = datePtr(dep)
		f.ArrivalDate = datePtr(arr)
		return f, nil
	},
}

// HotelSchema maps domain.Hotel onto the hotels table.
var HotelSchema = Schema[domain.Hotel]{
	Table: "hotels",
	Columns: []string{
		"id", "trip_id", "name", "address", "check_in_date", "check_out_date",
		"reservation_number", "notes",
	},
	Writable: []string{
		"trip_id", "name", "address", "check_in_date", "check_out_date",
		"reservation_number", "notes",
	},
	OrderBy: "check_in_date",
	Values: func(h domain.Hotel) map[string]any {
		return map[string]any{
			"trip_id":            h.TripID,
			"name":               h.Name,
			"address":            h.Address,
			"check_in_date":      h.CheckInDate,
			"check_out_date":     h.CheckOutDate,
			"reservation_number": h.ReservationNumber,
			"notes":              h.Notes,
		}
	},
	Scan: func(s scanner) (domain.Hotel, error) {
		var (
			h          domain.Hotel
			id, tripID pgtype.UUID
			in, out    pgtype.Date
		)
		err := s.Scan(&id, &tripID, &h.Name, &h.Address, &in, &out, &h.ReservationNumber, &h.Notes)
		if err != nil {
			return domain.Hotel{}, err
		}
		h.ID = uuid.UUID(id.Bytes)
		h.TripID = uuid.UUID(tripID.Bytes)
		h.CheckInDate = datePtr(in)
		h.CheckOutDate = datePtr(out)
		return h, nil
	},
}

// NewActivityTable, NewExpenseTable, ... construct the per-entity stores.

func NewActivityTable(db db) *Table[domain.Activity] { return NewTable(db, ActivitySchema) }

func NewExpenseTable(db db) *Table[domain.Expense] { return NewTable(db, ExpenseSchema) }

func NewPackingItemTable(db db) *Table[domain.PackingItem] { return NewTable(db, PackingItemSchema) }

func NewFlightTable(db db) *Table[domain.Flight] { return NewTable(db, FlightSchema) }

func NewHotelTable(db db) *Table[domain.Hotel] { return NewTable(db, HotelSchema) }
