package api

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Flight is the JSON representation of a flight leg.
type Flight struct {
	Id               uuid.UUID           `json:"id"`
	TripId           uuid.UUID           `json:"trip_id"`
	Airline          string              `json:"airline"`
	FlightNumber     string              `json:"flight_number"`
	DepartureDate    *openapi_types.Date `json:"departure_date,omitempty"`
	DepartureTime    string              `json:"departure_time"`
	ArrivalDate      *openapi_types.Date `json:"arrival_date,omitempty"`
	ArrivalTime      string              `json:"arrival_time"`
	DepartureAirport string              `json:"departure_airport"`
	ArrivalAirport   string              `json:"arrival_airport"`
}

func FromFlight(f domain.Flight) Flight {
	return Flight{
		Id:               f.ID,
		TripId:           f.TripID,
		Airline:          f.Airline,
		FlightNumber:     f.FlightNumber,
		DepartureDate:    toDatePtr(f.DepartureDate),
		DepartureTime:    f.DepartureTime,
		ArrivalDate:      toDatePtr(f.ArrivalDate),
		ArrivalTime:      f.ArrivalTime,
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
	}
}

func (f Flight) ToDomain() domain.Flight {
	return domain.Flight{
		ID:               f.Id,
		TripID:           f.TripId,
		Airline:          f.Airline,
		FlightNumber:     f.FlightNumber,
		DepartureDate:    fromDatePtr(f.DepartureDate),
		DepartureTime:    f.DepartureTime,
		ArrivalDate:      fromDatePtr(f.ArrivalDate),
		ArrivalTime:      f.ArrivalTime,
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
	}
}

// FlightPatch is the body of PATCH /flights/{id}.
type FlightPatch struct {
	Airline          *string             `json:"airline,omitempty"`
	FlightNumber     *string             `json:"flight_number,omitempty"`
	DepartureDate    *openapi_types.Date `json:"departure_date,omitempty"`
	DepartureTime    *string             `json:"departure_time,omitempty"`
	ArrivalDate      *openapi_types.Date `json:"arrival_date,omitempty"`
	ArrivalTime      *string             `json:"arrival_time,omitempty"`
	DepartureAirport *string             `json:"departure_airport,omitempty"`
	ArrivalAirport   *string             `json:"arrival_airport,omitempty"`
}

func (p FlightPatch) ToDomain() domain.FlightPatch {
	return domain.FlightPatch{
		Airline:          p.Airline,
		FlightNumber:     p.FlightNumber,
		DepartureDate:    fromDatePtr(p.DepartureDate),
		DepartureTime:    p.DepartureTime,
		ArrivalDate:      fromDatePtr(p.ArrivalDate),
		ArrivalTime:      p.ArrivalTime,
		DepartureAirport: p.DepartureAirport,
		ArrivalAirport:   p.ArrivalAirport,
	}
}
