package api

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Activity is the JSON representation of an activity. On create the id and
// trip_id fields are ignored.
type Activity struct {
	Id          uuid.UUID           `json:"id"`
	TripId      uuid.UUID           `json:"trip_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        *openapi_types.Date `json:"date,omitempty"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	Location    string              `json:"location"`
	Price       float64             `json:"price"`
	Type        string              `json:"type"`
	ImageUrl    string              `json:"image_url"`
	CreatedAt   *time.Time          `json:"created_at,omitempty"`
	UpdatedAt   *time.Time          `json:"updated_at,omitempty"`
}

// FromActivity converts a domain.Activity into its JSON representation.
func FromActivity(a domain.Activity) Activity {
	out := Activity{
		Id:          a.ID,
		TripId:      a.TripID,
		Title:       a.Title,
		Description: a.Description,
		Date:        toDatePtr(&a.Date),
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Location:    a.Location,
		Price:       a.Price,
		Type:        a.Type,
		ImageUrl:    a.ImageURL,
	}
	if !a.CreatedAt.IsZero() {
		out.CreatedAt = &a.CreatedAt
	}
	if !a.UpdatedAt.IsZero() {
		out.UpdatedAt = &a.UpdatedAt
	}
	return out
}

// ToDomain converts the JSON activity into a domain.Activity.
func (a Activity) ToDomain() domain.Activity {
	out := domain.Activity{
		ID:          a.Id,
		TripID:      a.TripId,
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Location:    a.Location,
		Price:       a.Price,
		Type:        a.Type,
		ImageURL:    a.ImageUrl,
		CreatedAt:   deref(a.CreatedAt),
		UpdatedAt:   deref(a.UpdatedAt),
	}
	if a.Date != nil {
		out.Date = a.Date.Time
	}
	return out
}

// ActivityPatch is the body of PATCH /activities/{id}. Absent fields are left
// unchanged.
type ActivityPatch struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Date        *openapi_types.Date `json:"date,omitempty"`
	StartTime   *string             `json:"start_time,omitempty"`
	EndTime     *string             `json:"end_time,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Price       *float64            `json:"price,omitempty"`
	Type        *string             `json:"type,omitempty"`
	ImageUrl    *string             `json:"image_url,omitempty"`
}

func (p ActivityPatch) ToDomain() domain.ActivityPatch {
	return domain.ActivityPatch{
		Title:       p.Title,
		Description: p.Description,
		Date:        fromDatePtr(p.Date),
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Location:    p.Location,
		Price:       p.Price,
		Type:        p.Type,
		ImageURL:    p.ImageUrl,
	}
}
