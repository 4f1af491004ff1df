package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Activity is a scheduled thing to do on a trip. Type and ImageURL feed the
// activity overview; Title doubles as the overview's display name.
type Activity struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Title       string
	Description string
	Date        time.Time // zero when not yet chosen
	StartTime   string    // "15:04", free text allowed
	EndTime     string
	Location    string
	Price       float64
	Type        string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a Activity) RecordID() uuid.UUID { return a.ID }
func (a Activity) ParentID() uuid.UUID { return a.TripID }

func (a Activity) WithRecordID(id uuid.UUID) Activity {
	a.ID = id
	return a
}

func (a Activity) WithParentID(tripID uuid.UUID) Activity {
	a.TripID = tripID
	return a
}

// ValidateActivity returns every rule the activity violates.
//   - Title must be non-empty after trimming.
//   - Date must be set.
//   - Price must not be negative.
func ValidateActivity(a Activity) []string {
	var msgs []string
	if strings.TrimSpace(a.Title) == "" {
		msgs = append(msgs, "Title is required")
	}
	if a.Date.IsZero() {
		msgs = append(msgs, "Date is required")
	}
	if a.Price < 0 {
		msgs = append(msgs, "Price cannot be negative")
	}
	return msgs
}

// ActivityPatch is a partial update of an Activity. Nil fields are left alone.
type ActivityPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Location    *string
	Price       *float64
	Type        *string
	ImageURL    *string
}

func (p ActivityPatch) Apply(a Activity) Activity {
	setIf(&a.Title, p.Title)
	setIf(&a.Description, p.Description)
	setIf(&a.Date, p.Date)
	setIf(&a.StartTime, p.StartTime)
	setIf(&a.EndTime, p.EndTime)
	setIf(&a.Location, p.Location)
	setIf(&a.Price, p.Price)
	setIf(&a.Type, p.Type)
	setIf(&a.ImageURL, p.ImageURL)
	return a
}

func (p ActivityPatch) Fields() map[string]any {
	f := map[string]any{}
	putIf(f, "title", p.Title)
	putIf(f, "description", p.Description)
	putIf(f, "date", p.Date)
	putIf(f, "start_time", p.StartTime)
	putIf(f, "end_time", p.EndTime)
	putIf(f, "location", p.Location)
	putIf(f, "price", p.Price)
	putIf(f, "type", p.Type)
	putIf(f, "image_url", p.ImageURL)
	return f
}

// setIf copies *src into *dst when src is non-nil.
func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// putIf stores *v under key when v is non-nil.
func putIf[V any](m map[string]any, key string, v *V) {
	if v != nil {
		m[key] = *v
	}
}
