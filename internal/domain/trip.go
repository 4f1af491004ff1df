// Package domain contains the core data types for the trip planner.
// This package has no dependencies beyond google/uuid and is imported by
// every other internal package (repo, service, handler, resource, overview).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate; activities, expenses, packing items,
// flights and hotels all belong to exactly one trip.
type Trip struct {
	ID          uuid.UUID
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     *time.Time // nil when the trip has no fixed end
	Latitude    *float64
	Longitude   *float64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
