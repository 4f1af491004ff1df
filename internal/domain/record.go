package domain

import "github.com/google/uuid"

// Record is implemented by every trip-owned entity. Methods use value
// receivers and return modified copies so generic code never aliases
// caller-owned values.
type Record[T any] interface {
	RecordID() uuid.UUID
	ParentID() uuid.UUID
	WithRecordID(id uuid.UUID) T
	WithParentID(tripID uuid.UUID) T
}

// Patch is a partial update for T. Apply merges the set fields over a copy of
// the current value; Fields returns the column/value pairs to persist.
type Patch[T any] interface {
	Apply(current T) T
	Fields() map[string]any
}

// Normalizer is implemented by entities and patches that clean up user input
// before validation (e.g. trimming whitespace).
type Normalizer[T any] interface {
	Normalize() T
}

// Normalize returns v.Normalize() when T implements Normalizer, v otherwise.
func Normalize[T any](v T) T {
	if n, ok := any(v).(Normalizer[T]); ok {
		return n.Normalize()
	}
	return v
}
