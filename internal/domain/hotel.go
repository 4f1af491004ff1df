package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hotel is a lodging reservation. All fields are optional; no validation
// rules apply.
type Hotel struct {
	ID                uuid.UUID
	TripID            uuid.UUID
	Name              string
	Address           string
	CheckInDate       *time.Time
	CheckOutDate      *time.Time
	ReservationNumber string
	Notes             string
}

func (h Hotel) RecordID() uuid.UUID { return h.ID }
func (h Hotel) ParentID() uuid.UUID { return h.TripID }

func (h Hotel) WithRecordID(id uuid.UUID) Hotel {
	h.ID = id
	return h
}

func (h Hotel) WithParentID(tripID uuid.UUID) Hotel {
	h.TripID = tripID
	return h
}

// ValidateHotel accepts every hotel.
func ValidateHotel(Hotel) []string { return nil }

// HotelPatch is a partial update of a Hotel.
type HotelPatch struct {
	Name              *string
	Address           *string
	CheckInDate       *time.Time
	CheckOutDate      *time.Time
	ReservationNumber *string
	Notes             *string
}

func (p HotelPatch) Apply(h Hotel) Hotel {
	setIf(&h.Name, p.Name)
	setIf(&h.Address, p.Address)
	if p.CheckInDate != nil {
		d := *p.CheckInDate
		h.CheckInDate = &d
	}
	if p.CheckOutDate != nil {
		d := *p.CheckOutDate
		h.CheckOutDate = &d
	}
	setIf(&h.ReservationNumber, p.ReservationNumber)
	setIf(&h.Notes, p.Notes)
	return h
}

func (p HotelPatch) Fields() map[string]any {
	f := map[string]any{}
	putIf(f, "name", p.Name)
	putIf(f, "address", p.Address)
	putIf(f, "check_in_date", p.CheckInDate)
	putIf(f, "check_out_date", p.CheckOutDate)
	putIf(f, "reservation_number", p.ReservationNumber)
	putIf(f, "notes", p.Notes)
	return f
}
