// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server (or on a resource router built from it)
// and are mounted on a chi router by Handler. Methods are split into
// domain-specific files (health.go, trip.go, resource.go, etc.) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// TripServicer defines the business operations the trip handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceServicer defines the operations shared by every trip-owned entity.
// *service.Resource satisfies it.
type ResourceServicer[T any, P any] interface {
	Create(ctx context.Context, tripID uuid.UUID, item T) (T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	List(ctx context.Context, tripID uuid.UUID, p service.ListParams) ([]T, int64, error)
	ListAll(ctx context.Context, tripID uuid.UUID) ([]T, error)
	Update(ctx context.Context, id uuid.UUID, patch P) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Chatter answers a single chat message.
type Chatter interface {
	Configured() bool
	Complete(ctx context.Context, message string) (string, error)
}

// Deps lists the services the Server delegates to. A nil service leaves its
// routes unmounted, which keeps focused handler tests small.
type Deps struct {
	Trips        TripServicer
	Activities   ResourceServicer[domain.Activity, domain.ActivityPatch]
	Expenses     ResourceServicer[domain.Expense, domain.ExpensePatch]
	PackingItems ResourceServicer[domain.PackingItem, domain.PackingItemPatch]
	Flights      ResourceServicer[domain.Flight, domain.FlightPatch]
	Hotels       ResourceServicer[domain.Hotel, domain.HotelPatch]
	Chat         Chatter
	// Now is the clock used for weather forecasts. Defaults to time.Now.
	Now func() time.Time
}

// Server holds every dependency of the HTTP handlers.
// Wire it in main.go via handler.Handler(server).
type Server struct {
	deps Deps
}

// NewServer constructs the Server with all its dependencies.
func NewServer(deps Deps) *Server {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Server{deps: deps}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Deps{})
}
