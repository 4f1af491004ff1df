package api

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Hotel is the JSON representation of a hotel reservation.
type Hotel struct {
	Id                uuid.UUID           `json:"id"`
	TripId            uuid.UUID           `json:"trip_id"`
	Name              string              `json:"name"`
	Address           string              `json:"address"`
	CheckInDate       *openapi_types.Date `json:"check_in_date,omitempty"`
	CheckOutDate      *openapi_types.Date `json:"check_out_date,omitempty"`
	ReservationNumber string              `json:"reservation_number"`
	Notes             string              `json:"notes"`
}

func FromHotel(h domain.Hotel) Hotel {
	return Hotel{
		Id:                h.ID,
		TripId:            h.TripID,
		Name:              h.Name,
		Address:           h.Address,
		CheckInDate:       toDatePtr(h.CheckInDate),
		CheckOutDate:      toDatePtr(h.CheckOutDate),
		ReservationNumber: h.ReservationNumber,
		Notes:             h.Notes,
	}
}

func (h Hotel) ToDomain() domain.Hotel {
	return domain.Hotel{
		ID:                h.Id,
		TripID:            h.TripId,
		Name:              h.Name,
		Address:           h.Address,
		CheckInDate:       fromDatePtr(h.CheckInDate),
		CheckOutDate:      fromDatePtr(h.CheckOutDate),
		ReservationNumber: h.ReservationNumber,
		Notes:             h.Notes,
	}
}

// HotelPatch is the body of PATCH /hotels/{id}.
type HotelPatch struct {
	Name              *string             `json:"name,omitempty"`
	Address           *string             `json:"address,omitempty"`
	CheckInDate       *openapi_types.Date `json:"check_in_date,omitempty"`
	CheckOutDate      *openapi_types.Date `json:"check_out_date,omitempty"`
	ReservationNumber *string             `json:"reservation_number,omitempty"`
	Notes             *string             `json:"notes,omitempty"`
}

func (p HotelPatch) ToDomain() domain.HotelPatch {
	return domain.HotelPatch{
		Name:              p.Name,
		Address:           p.Address,
		CheckInDate:       fromDatePtr(p.CheckInDate),
		CheckOutDate:      fromDatePtr(p.CheckOutDate),
		ReservationNumber: p.ReservationNumber,
		Notes:             p.Notes,
	}
}
