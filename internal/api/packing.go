package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// PackingItem is the JSON representation of a packing list entry.
type PackingItem struct {
	Id        uuid.UUID  `json:"id"`
	TripId    uuid.UUID  `json:"trip_id"`
	Text      string     `json:"text"`
	Packed    bool       `json:"packed"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func FromPackingItem(p domain.PackingItem) PackingItem {
	out := PackingItem{Id: p.ID, TripId: p.TripID, Text: p.Text, Packed: p.Packed}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = &p.CreatedAt
	}
	return out
}

func (p PackingItem) ToDomain() domain.PackingItem {
	return domain.PackingItem{
		ID:        p.Id,
		TripID:    p.TripId,
		Text:      p.Text,
		Packed:    p.Packed,
		CreatedAt: deref(p.CreatedAt),
	}
}

// PackingItemPatch is the body of PATCH /packing-items/{id}.
type PackingItemPatch struct {
	Text   *string `json:"text,omitempty"`
	Packed *bool   `json:"packed,omitempty"`
}

func (p PackingItemPatch) ToDomain() domain.PackingItemPatch {
	return domain.PackingItemPatch{Text: p.Text, Packed: p.Packed}
}
