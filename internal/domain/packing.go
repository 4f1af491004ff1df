package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PackingItem is one line of a trip's packing list.
type PackingItem struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Text      string
	Packed    bool
	CreatedAt time.Time
}

func (p PackingItem) RecordID() uuid.UUID { return p.ID }
func (p PackingItem) ParentID() uuid.UUID { return p.TripID }

func (p PackingItem) WithRecordID(id uuid.UUID) PackingItem {
	p.ID = id
	return p
}

func (p PackingItem) WithParentID(tripID uuid.UUID) PackingItem {
	p.TripID = tripID
	return p
}

// Normalize trims surrounding whitespace from the item text.
func (p PackingItem) Normalize() PackingItem {
	p.Text = strings.TrimSpace(p.Text)
	return p
}

// ValidatePackingItem requires non-empty text after trimming.
func ValidatePackingItem(p PackingItem) []string {
	if strings.TrimSpace(p.Text) == "" {
		return []string{"Item text is required"}
	}
	return nil
}

// PackingItemPatch is a partial update of a PackingItem. Toggling an item is
// a patch with only Packed set.
type PackingItemPatch struct {
	Text   *string
	Packed *bool
}

// Normalize trims surrounding whitespace from a patched text.
func (p PackingItemPatch) Normalize() PackingItemPatch {
	if p.Text != nil {
		text := strings.TrimSpace(*p.Text)
		p.Text = &text
	}
	return p
}

func (p PackingItemPatch) Apply(item PackingItem) PackingItem {
	setIf(&item.Text, p.Text)
	setIf(&item.Packed, p.Packed)
	return item
}

func (p PackingItemPatch) Fields() map[string]any {
	f := map[string]any{}
	putIf(f, "text", p.Text)
	putIf(f, "packed", p.Packed)
	return f
}
