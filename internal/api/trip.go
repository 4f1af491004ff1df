package api

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Trip is the JSON representation of a trip.
type Trip struct {
	Id          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Destination *string             `json:"destination,omitempty"`
	StartDate   openapi_types.Date  `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Latitude    *float64            `json:"latitude,omitempty"`
	Longitude   *float64            `json:"longitude,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TripRequest is the body of POST /trips and PUT /trips/{tripId}.
type TripRequest struct {
	Name        string              `json:"name"`
	Destination *string             `json:"destination,omitempty"`
	StartDate   openapi_types.Date  `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Latitude    *float64            `json:"latitude,omitempty"`
	Longitude   *float64            `json:"longitude,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

// ToDomain converts the request into a domain.Trip with the given id.
func (r TripRequest) ToDomain(id uuid.UUID) domain.Trip {
	return domain.Trip{
		ID:          id,
		Name:        r.Name,
		Destination: deref(r.Destination),
		StartDate:   r.StartDate.Time,
		EndDate:     fromDatePtr(r.EndDate),
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Notes:       deref(r.Notes),
	}
}

// FromTrip converts a domain.Trip into its JSON representation.
func FromTrip(t domain.Trip) Trip {
	resp := Trip{
		Id:        t.ID,
		Name:      t.Name,
		StartDate: toDate(t.StartDate),
		EndDate:   toDatePtr(t.EndDate),
		Latitude:  t.Latitude,
		Longitude: t.Longitude,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Destination != "" {
		resp.Destination = &t.Destination
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	return resp
}

// ToDomain converts a JSON trip back into a domain.Trip.
func (t Trip) ToDomain() domain.Trip {
	return domain.Trip{
		ID:          t.Id,
		Name:        t.Name,
		Destination: deref(t.Destination),
		StartDate:   t.StartDate.Time,
		EndDate:     fromDatePtr(t.EndDate),
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
		Notes:       deref(t.Notes),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
