package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Store is the record store contract the resource service depends on.
// *repo.Table satisfies it.
type Store[T any] interface {
	Select(ctx context.Context, q domain.Query) ([]T, int64, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Insert(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListParams selects one page of a trip's entities.
type ListParams struct {
	Page    domain.PaginationParams
	OrderBy string
	Desc    bool
	// Eq holds extra equality filters (e.g. type=museum) on top of the trip scope.
	Eq map[string]any
}

// Resource implements the business rules shared by every trip-owned entity:
// the parent trip must exist, candidates are validated before any store call,
// and deletes are idempotent.
type Resource[T domain.Record[T], P domain.Patch[T]] struct {
	name     string
	trips    repo.TripRepo
	store    Store[T]
	validate func(T) []string
}

// NewResource constructs a Resource service. name is used in error wrapping
// ("service.Resource[activities].Create").
func NewResource[T domain.Record[T], P domain.Patch[T]](name string, trips repo.TripRepo, store Store[T], validate func(T) []string) *Resource[T, P] {
	return &Resource[T, P]{name: name, trips: trips, store: store, validate: validate}
}

// Create validates the candidate, verifies the parent trip exists, then
// persists it. The store assigns the id.
// Returns domain.ErrValidation (as *domain.ValidationError) for invalid input,
// domain.ErrNotFound if the trip does not exist.
func (s *Resource[T, P]) Create(ctx context.Context, tripID uuid.UUID, item T) (T, error) {
	var zero T
	op := s.op("Create")

	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	item = domain.Normalize(item.WithParentID(tripID).WithRecordID(uuid.Nil))
	if err := domain.NewValidationError(s.validate(item)); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.store.Insert(ctx, item)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// Get returns one entity by id.
func (s *Resource[T, P]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return item, fmt.Errorf("%s: %w", s.op("Get"), err)
	}
	return item, nil
}

// List returns one page of entities and the total count. A nil tripID lists
// across all trips; otherwise the trip must exist.
func (s *Resource[T, P]) List(ctx context.Context, tripID uuid.UUID, p ListParams) ([]T, int64, error) {
	op := s.op("List")

	q := domain.Query{Eq: map[string]any{}, OrderBy: p.OrderBy, Desc: p.Desc}
	for k, v := range p.Eq {
		q.Eq[k] = v
	}
	if tripID != uuid.Nil {
		if _, err := s.trips.GetByID(ctx, tripID); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		q.Eq["trip_id"] = tripID
	}
	q = q.ForPage(p.Page.Page, p.Page.Limit)

	items, total, err := s.store.Select(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, total, nil
}

// ListAll returns every entity of a trip in natural order.
func (s *Resource[T, P]) ListAll(ctx context.Context, tripID uuid.UUID) ([]T, error) {
	items, _, err := s.List(ctx, tripID, ListParams{})
	return items, err
}

// Update merges patch over the stored entity, validates the merged result and
// persists only the patched fields. Nothing is written when validation fails.
func (s *Resource[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (T, error) {
	var zero T
	op := s.op("Update")

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	patch = domain.Normalize(patch)
	if err := domain.NewValidationError(s.validate(patch.Apply(current))); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.store.Update(ctx, id, patch.Fields())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Delete removes an entity. Deleting an id that does not exist succeeds.
func (s *Resource[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", s.op("Delete"), err)
	}
	return nil
}

func (s *Resource[T, P]) op(method string) string {
	return "service.Resource[" + s.name + "]." + method
}

// Per-entity services, wired in cmd/api.
type (
	ActivityService    = Resource[domain.Activity, domain.ActivityPatch]
	ExpenseService     = Resource[domain.Expense, domain.ExpensePatch]
	PackingItemService = Resource[domain.PackingItem, domain.PackingItemPatch]
	FlightService      = Resource[domain.Flight, domain.FlightPatch]
	HotelService       = Resource[domain.Hotel, domain.HotelPatch]
)

func NewActivityService(trips repo.TripRepo, store Store[domain.Activity]) *ActivityService {
	return NewResource[domain.Activity, domain.ActivityPatch]("activities", trips, store, domain.ValidateActivity)
}

func NewExpenseService(trips repo.TripRepo, store Store[domain.Expense]) *ExpenseService {
	return NewResource[domain.Expense, domain.ExpensePatch]("expenses", trips, store, domain.ValidateExpense)
}

func NewPackingItemService(trips repo.TripRepo, store Store[domain.PackingItem]) *PackingItemService {
	return NewResource[domain.PackingItem, domain.PackingItemPatch]("packing_items", trips, store, domain.ValidatePackingItem)
}

func NewFlightService(trips repo.TripRepo, store Store[domain.Flight]) *FlightService {
	return NewResource[domain.Flight, domain.FlightPatch]("flights", trips, store, domain.ValidateFlight)
}

func NewHotelService(trips repo.TripRepo, store Store[domain.Hotel]) *HotelService {
	return NewResource[domain.Hotel, domain.HotelPatch]("hotels", trips, store, domain.ValidateHotel)
}
