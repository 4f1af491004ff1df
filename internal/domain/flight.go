package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flight is a booked flight leg. All fields are optional; no validation rules
// apply.
type Flight struct {
	ID               uuid.UUID
	TripID           uuid.UUID
	Airline          string
	FlightNumber     string
	DepartureDate    *time.Time
	DepartureTime    string
	ArrivalDate      *time.Time
	ArrivalTime      string
	DepartureAirport string
	ArrivalAirport   string
}

func (f Flight) RecordID() uuid.UUID { return f.ID }
func (f Flight) ParentID() uuid.UUID { return f.TripID }

func (f Flight) WithRecordID(id uuid.UUID) Flight {
	f.ID = id
	return f
}

func (f Flight) WithParentID(tripID uuid.UUID) Flight {
	f.TripID = tripID
	return f
}

// ValidateFlight accepts every flight.
func ValidateFlight(Flight) []string { return nil }

// FlightPatch is a partial update of a Flight.
type FlightPatch struct {
	Airline          *string
	FlightNumber     *string
	DepartureDate    *time.Time
	DepartureTime    *string
	ArrivalDate      *time.Time
	ArrivalTime      *string
	DepartureAirport *string
	ArrivalAirport   *string
}

func (p FlightPatch) Apply(f Flight) Flight {
	setIf(&f.Airline, p.Airline)
	setIf(&f.FlightNumber, p.FlightNumber)
	if p.DepartureDate != nil {
		d := *p.DepartureDate
		f.DepartureDate = &d
	}
	setIf(&f.DepartureTime, p.DepartureTime)
	if p.ArrivalDate != nil {
		d := *p.ArrivalDate
		f.ArrivalDate = &d
	}
	setIf(&f.ArrivalTime, p.ArrivalTime)
	setIf(&f.DepartureAirport, p.DepartureAirport)
	setIf(&f.ArrivalAirport, p.ArrivalAirport)
	return f
}

func (p FlightPatch) Fields() map[string]any {
	f := map[string]any{}
	putIf(f, "airline", p.Airline)
	putIf(f, "flight_number", p.FlightNumber)
	putIf(f, "departure_date", p.DepartureDate)
	putIf(f, "departure_time", p.DepartureTime)
	putIf(f, "arrival_date", p.ArrivalDate)
	putIf(f, "arrival_time", p.ArrivalTime)
	putIf(f, "departure_airport", p.DepartureAirport)
	putIf(f, "arrival_airport", p.ArrivalAirport)
	return f
}
