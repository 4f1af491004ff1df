// Package resource implements the Resource Manager: the client-side owner of
// one entity type's collection for a trip. It validates input before any store
// call, mirrors store rows locally, reconciles after each mutation and reports
// every outcome as a transient notification.
package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Store is the record store contract a Manager depends on. The HTTP client
// and *repo.Table both satisfy it.
type Store[T any] interface {
	Select(ctx context.Context, q domain.Query) ([]T, int64, error)
	Insert(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Notifier receives the outcome of every operation. *notify.Notifier
// satisfies it.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Policy selects how a Manager reconciles local state with the store.
type Policy int

const (
	// Confirmed mutations call the store first and refresh afterwards; the
	// local collection changes only once the store has answered.
	Confirmed Policy = iota
	// Optimistic mutations change the local collection first, then persist.
	// There is no refresh; a failed persist rolls the local change back.
	Optimistic
)

// Config describes one entity type to a Manager.
type Config[T any] struct {
	// Noun names one entity in notifications ("Activity", "Item").
	Noun string
	// Collection names the collection in fetch failures ("activities", "packing list").
	Collection string
	// PageSize is the number of rows per page. Zero fetches every row.
	PageSize int
	// OrderBy is the natural order column. Empty uses the store default.
	OrderBy string
	Policy  Policy
	// Validate returns every rule the entity violates. Nil accepts everything.
	Validate func(T) []string
}

// Manager owns the local collection of one entity type for one trip.
// It is safe for concurrent use; concurrent mutations each refresh on
// completion and the last refresh to finish determines the collection.
type Manager[T domain.Record[T], P domain.Patch[T]] struct {
	cfg    Config[T]
	store  Store[T]
	notify Notifier
	log    *slog.Logger
	newID  func() (uuid.UUID, error)

	mu      sync.Mutex
	parent  uuid.UUID
	items   []T
	pager   Pager
	editing uuid.UUID
}

// NewManager constructs a Manager. A nil logger uses slog.Default().
func NewManager[T domain.Record[T], P domain.Patch[T]](cfg Config[T], store Store[T], n Notifier, log *slog.Logger) *Manager[T, P] {
	if log == nil {
		log = slog.Default()
	}
	return &Manager[T, P]{
		cfg:    cfg,
		store:  store,
		notify: n,
		log:    log.With("resource", cfg.Collection),
		newID:  uuid.NewV7,
		pager:  Pager{Size: cfg.PageSize, Current: 1},
	}
}

// Items returns a copy of the local collection.
func (m *Manager[T, P]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// Pagination returns the current pagination state.
func (m *Manager[T, P]) Pagination() Pager {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pager
}

// Parent returns the trip the manager is bound to.
func (m *Manager[T, P]) Parent() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.parent
}

// Edit marks id as the entity currently being edited.
func (m *Manager[T, P]) Edit(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editing = id
}

// Editing returns the id being edited and whether there is one.
func (m *Manager[T, P]) Editing() (uuid.UUID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editing, m.editing != uuid.Nil
}

// CancelEdit clears the editing marker.
func (m *Manager[T, P]) CancelEdit() { m.Edit(uuid.Nil) }

// SetParent binds the manager to a trip and loads its first page.
func (m *Manager[T, P]) SetParent(ctx context.Context, parentID uuid.UUID) error {
	m.mu.Lock()
	m.parent = parentID
	m.items = nil
	m.editing = uuid.Nil
	m.pager = Pager{Size: m.cfg.PageSize, Current: 1}
	m.mu.Unlock()

	_, _, err := m.List(ctx, parentID, 1)
	return err
}

// List fetches one page of the parent's entities in natural order and
// replaces the local collection with it. On failure the local collection is
// kept, the error is logged and notified, and a *domain.FetchError returned.
func (m *Manager[T, P]) List(ctx context.Context, parentID uuid.UUID, page int) ([]T, int64, error) {
	q := domain.ByTrip(parentID)
	q.OrderBy = m.cfg.OrderBy
	q = q.ForPage(page, m.cfg.PageSize)

	items, total, err := m.store.Select(ctx, q)
	if err != nil {
		m.log.ErrorContext(ctx, "fetch failed", "trip_id", parentID, "page", page, "error", err)
		m.notify.Error("Failed to fetch " + m.cfg.Collection)
		return nil, 0, &domain.FetchError{Resource: m.cfg.Collection, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.parent != parentID {
		// The manager moved to another trip while this fetch was in flight.
		return slices.Clone(items), total, nil
	}
	m.items = items
	m.pager.Total = total
	m.pager.Current = max(page, 1)
	return slices.Clone(items), total, nil
}

// Refresh re-fetches the current page.
func (m *Manager[T, P]) Refresh(ctx context.Context) error {
	m.mu.Lock()
	parent, page := m.parent, m.pager.Current
	m.mu.Unlock()

	_, _, err := m.List(ctx, parent, page)
	return err
}

// GoTo navigates to page, clamped to [1, TotalPages].
func (m *Manager[T, P]) GoTo(ctx context.Context, page int) error {
	m.mu.Lock()
	parent, page := m.parent, m.pager.Clamp(page)
	m.mu.Unlock()

	_, _, err := m.List(ctx, parent, page)
	return err
}

// Next navigates to the following page, staying on the last page.
func (m *Manager[T, P]) Next(ctx context.Context) error {
	return m.GoTo(ctx, m.Pagination().Current+1)
}

// Prev navigates to the preceding page, staying on the first page.
func (m *Manager[T, P]) Prev(ctx context.Context) error {
	return m.GoTo(ctx, m.Pagination().Current-1)
}

// Seek returns the entity with the given id, navigating to the page that
// holds it when it is not on the current one. The manager stays on that page
// so Update and Remove can act on it. Returns domain.ErrNotFound when no page
// holds id.
func (m *Manager[T, P]) Seek(ctx context.Context, id uuid.UUID) (T, error) {
	if it, ok := m.local(id); ok {
		return it, nil
	}
	p := m.Pagination()
	for page := 1; page <= p.TotalPages(); page++ {
		if page == p.Current {
			continue
		}
		if err := m.GoTo(ctx, page); err != nil {
			var zero T
			return zero, err
		}
		if it, ok := m.local(id); ok {
			return it, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("resource.Manager.Seek: %w", domain.ErrNotFound)
}

func (m *Manager[T, P]) local(id uuid.UUID) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		return m.items[i], true
	}
	var zero T
	return zero, false
}

// Create validates candidate and adds it to the parent trip.
// Invalid input is rejected with a *domain.ValidationError before any store
// call. Store failures return a *domain.PersistError and leave the local
// collection as it was.
func (m *Manager[T, P]) Create(ctx context.Context, candidate T) (T, error) {
	var zero T
	parent := m.Parent()
	candidate = domain.Normalize(candidate.WithParentID(parent).WithRecordID(uuid.Nil))

	if err := m.validate(candidate); err != nil {
		return zero, err
	}

	if m.cfg.Policy == Optimistic {
		return m.createOptimistic(ctx, candidate)
	}

	created, err := m.store.Insert(ctx, candidate)
	if err != nil {
		return zero, m.persistFailed(ctx, "add", uuid.Nil, err)
	}

	m.mu.Lock()
	m.items = append(m.items, created)
	m.mu.Unlock()
	m.notify.Success(m.cfg.Noun + " added successfully")

	// A failed refresh is notified by List; the insert itself succeeded.
	_ = m.Refresh(ctx)
	return created, nil
}

func (m *Manager[T, P]) createOptimistic(ctx context.Context, candidate T) (T, error) {
	var zero T
	tempID, err := m.newID()
	if err != nil {
		return zero, fmt.Errorf("resource.Manager.Create: %w", err)
	}
	local := candidate.WithRecordID(tempID)

	m.mu.Lock()
	m.items = append(m.items, local)
	m.pager.Total++
	m.mu.Unlock()

	created, err := m.store.Insert(ctx, candidate)
	if err != nil {
		m.mu.Lock()
		m.items = slices.DeleteFunc(m.items, func(it T) bool { return it.RecordID() == tempID })
		m.pager.Total--
		m.mu.Unlock()
		return zero, m.persistFailed(ctx, "add", tempID, err)
	}

	m.mu.Lock()
	if i := m.index(tempID); i >= 0 {
		m.items[i] = created
	}
	m.mu.Unlock()
	return created, nil
}

// Update merges patch over the local copy of id, validates the merged result
// and persists the patch. The editing marker is cleared on success.
// Returns domain.ErrNotFound when id is not in the local collection.
func (m *Manager[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) error {
	m.mu.Lock()
	i := m.index(id)
	if i < 0 {
		m.mu.Unlock()
		return fmt.Errorf("resource.Manager.Update: %w", domain.ErrNotFound)
	}
	current := m.items[i]
	m.mu.Unlock()

	patch = domain.Normalize(patch)
	merged := patch.Apply(current)
	if err := m.validate(merged); err != nil {
		return err
	}

	if m.cfg.Policy == Optimistic {
		m.replace(id, merged)
		m.clearEditing(id)
		if _, err := m.store.Update(ctx, id, patch.Fields()); err != nil {
			m.replace(id, current)
			return m.persistFailed(ctx, "update", id, err)
		}
		return nil
	}

	if _, err := m.store.Update(ctx, id, patch.Fields()); err != nil {
		return m.persistFailed(ctx, "update", id, err)
	}
	m.clearEditing(id)
	m.notify.Success(m.cfg.Noun + " updated successfully")
	_ = m.Refresh(ctx)
	return nil
}

// Remove deletes id. Removing an id the store no longer has succeeds.
func (m *Manager[T, P]) Remove(ctx context.Context, id uuid.UUID) error {
	if m.cfg.Policy == Optimistic {
		m.mu.Lock()
		i := m.index(id)
		var removed T
		if i >= 0 {
			removed = m.items[i]
			m.items = slices.Delete(m.items, i, i+1)
			m.pager.Total--
		}
		m.mu.Unlock()

		if err := m.store.Delete(ctx, id); err != nil {
			if i >= 0 {
				m.mu.Lock()
				m.items = slices.Insert(m.items, min(i, len(m.items)), removed)
				m.pager.Total++
				m.mu.Unlock()
			}
			return m.persistFailed(ctx, "remove", id, err)
		}
		return nil
	}

	if err := m.store.Delete(ctx, id); err != nil {
		return m.persistFailed(ctx, "remove", id, err)
	}
	m.mu.Lock()
	m.items = slices.DeleteFunc(m.items, func(it T) bool { return it.RecordID() == id })
	m.mu.Unlock()
	m.notify.Success(m.cfg.Noun + " removed successfully")
	_ = m.Refresh(ctx)
	return nil
}

// validate runs the configured rules and notifies the joined messages.
func (m *Manager[T, P]) validate(item T) error {
	if m.cfg.Validate == nil {
		return nil
	}
	err := domain.NewValidationError(m.cfg.Validate(item))
	if err != nil {
		var verr *domain.ValidationError
		errors.As(err, &verr)
		m.notify.Error(strings.Join(verr.Messages, ", "))
	}
	return err
}

func (m *Manager[T, P]) persistFailed(ctx context.Context, op string, id uuid.UUID, err error) error {
	m.log.ErrorContext(ctx, op+" failed", "id", id, "error", err)
	m.notify.Error("Failed to " + op + " " + strings.ToLower(m.cfg.Noun))
	return &domain.PersistError{Op: op, Resource: m.cfg.Collection, Err: err}
}

func (m *Manager[T, P]) replace(id uuid.UUID, item T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		m.items[i] = item
	}
}

func (m *Manager[T, P]) clearEditing(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editing == id {
		m.editing = uuid.Nil
	}
}

// index returns the position of id in the local collection, or -1.
// Callers hold m.mu.
func (m *Manager[T, P]) index(id uuid.UUID) int {
	return slices.IndexFunc(m.items, func(it T) bool { return it.RecordID() == id })
}
