package resource_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/resource"
)

// memStore is an in-memory resource.Store that keeps insertion order.
// Set the fail* fields to make the next calls of that kind fail.
type memStore[T domain.Record[T]] struct {
	mu    sync.Mutex
	rows  []T
	apply func(T, map[string]any) T

	failSelect, failInsert, failUpdate, failDelete error

	selects, inserts, updates, deletes int
	onInsert                           func(T)
}

func (s *memStore[T]) Select(_ context.Context, q domain.Query) ([]T, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selects++
	if s.failSelect != nil {
		return nil, 0, s.failSelect
	}
	var match []T
	for _, r := range s.rows {
		if trip, ok := q.Eq["trip_id"]; ok && r.ParentID() != trip {
			continue
		}
		match = append(match, r)
	}
	total := int64(len(match))
	if q.Offset > len(match) {
		return []T{}, total, nil
	}
	match = match[q.Offset:]
	if q.Limit > 0 && q.Limit < len(match) {
		match = match[:q.Limit]
	}
	return append([]T{}, match...), total, nil
}

func (s *memStore[T]) Insert(_ context.Context, item T) (T, error) {
	if s.onInsert != nil {
		s.onInsert(item)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	if s.failInsert != nil {
		var zero T
		return zero, s.failInsert
	}
	item = item.WithRecordID(uuid.New())
	s.rows = append(s.rows, item)
	return item, nil
}

func (s *memStore[T]) Update(_ context.Context, id uuid.UUID, fields map[string]any) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	var zero T
	if s.failUpdate != nil {
		return zero, s.failUpdate
	}
	for i, r := range s.rows {
		if r.RecordID() == id {
			if s.apply != nil {
				s.rows[i] = s.apply(r, fields)
			}
			return s.rows[i], nil
		}
	}
	return zero, domain.ErrNotFound
}

func (s *memStore[T]) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.failDelete != nil {
		return s.failDelete
	}
	for i, r := range s.rows {
		if r.RecordID() == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	return nil
}

// notes records notifications.
type notes struct {
	mu              sync.Mutex
	success, errors []string
}

func (n *notes) Success(m string) { n.mu.Lock(); n.success = append(n.success, m); n.mu.Unlock() }
func (n *notes) Error(m string)   { n.mu.Lock(); n.errors = append(n.errors, m); n.mu.Unlock() }

func applyActivity(a domain.Activity, f map[string]any) domain.Activity {
	if v, ok := f["title"]; ok {
		a.Title = v.(string)
	}
	if v, ok := f["price"]; ok {
		a.Price = v.(float64)
	}
	return a
}

func newActivities(t *testing.T, trip uuid.UUID) (*resource.ActivityManager, *memStore[domain.Activity], *notes) {
	t.Helper()
	store := &memStore[domain.Activity]{apply: applyActivity}
	n := &notes{}
	m := resource.NewActivityManager(store, n, nil)
	require.NoError(t, m.SetParent(context.Background(), trip))
	return m, store, n
}

func museum() domain.Activity {
	return domain.Activity{
		Title: "Museum",
		Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Price: 10,
	}
}

func strPtr(s string) *string { return &s }

// ---- Create ----------------------------------------------------------------

func TestManager_Create_AddsOneEntryWithStoreID(t *testing.T) {
	trip := uuid.New()
	m, _, n := newActivities(t, trip)

	created, err := m.Create(context.Background(), museum())

	require.NoError(t, err)
	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.NotEqual(t, uuid.Nil, items[0].ID)
	assert.Equal(t, trip, items[0].TripID)
	assert.Equal(t, []string{"Activity added successfully"}, n.success)
}

func TestManager_Create_ValidationBlocksStoreCall(t *testing.T) {
	m, store, n := newActivities(t, uuid.New())

	_, err := m.Create(context.Background(), domain.Activity{Title: "   ", Price: -1})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Title is required", "Date is required", "Price cannot be negative"}, verr.Messages)
	assert.Zero(t, store.inserts)
	assert.Equal(t, []string{"Title is required, Date is required, Price cannot be negative"}, n.errors)
	assert.Empty(t, m.Items())
}

func TestManager_Create_StoreFailureKeepsLocalState(t *testing.T) {
	m, store, n := newActivities(t, uuid.New())
	_, err := m.Create(context.Background(), museum())
	require.NoError(t, err)

	store.failInsert = errors.New("connection refused")
	_, err = m.Create(context.Background(), museum())

	var perr *domain.PersistError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "add", perr.Op)
	assert.Len(t, m.Items(), 1)
	assert.Equal(t, []string{"Failed to add activity"}, n.errors)
}

func TestManager_Create_PackingTextIsTrimmed(t *testing.T) {
	store := &memStore[domain.PackingItem]{}
	m := resource.NewPackingItemManager(store, &notes{}, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))

	_, err := m.Create(context.Background(), domain.PackingItem{Text: "  hat "})
	require.NoError(t, err)
	_, err = m.Create(context.Background(), domain.PackingItem{Text: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "hat", m.Items()[0].Text)
	assert.Equal(t, 1, store.inserts)
}

func TestManager_Update_PackingTextIsTrimmed(t *testing.T) {
	store := &memStore[domain.PackingItem]{apply: func(p domain.PackingItem, f map[string]any) domain.PackingItem {
		if v, ok := f["text"]; ok {
			p.Text = v.(string)
		}
		return p
	}}
	m := resource.NewPackingItemManager(store, &notes{}, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))
	item, err := m.Create(context.Background(), domain.PackingItem{Text: "socks"})
	require.NoError(t, err)

	text := "  wool socks  "
	require.NoError(t, m.Update(context.Background(), item.ID, domain.PackingItemPatch{Text: &text}))

	assert.Equal(t, "wool socks", store.rows[0].Text)
	assert.Equal(t, "wool socks", m.Items()[0].Text)
}

// ---- Expenses --------------------------------------------------------------

func TestAddExpense_AmountParsing(t *testing.T) {
	for _, bad := range []string{"abc", ""} {
		t.Run("rejects "+bad, func(t *testing.T) {
			store := &memStore[domain.Expense]{}
			n := &notes{}
			m := resource.NewExpenseManager(store, n, nil)
			require.NoError(t, m.SetParent(context.Background(), uuid.New()))

			_, err := resource.AddExpense(context.Background(), m, "Taxi", bad, "Transport")

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, store.inserts)
			assert.Equal(t, []string{domain.MsgInvalidAmount}, n.errors)
		})
	}

	store := &memStore[domain.Expense]{}
	m := resource.NewExpenseManager(store, &notes{}, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))

	got, err := resource.AddExpense(context.Background(), m, "Dinner", "12.50", "Food")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.Amount)

	// Negative expenses are accepted; only activity prices are sign-checked.
	got, err = resource.AddExpense(context.Background(), m, "Taxi", "-5", "Transport")
	require.NoError(t, err)
	assert.Equal(t, -5.0, got.Amount)

	b := resource.Budget(m)
	assert.Equal(t, 7.5, b.Total)
	assert.Len(t, b.ByCategory, 2)
}

// ---- Remove ----------------------------------------------------------------

func TestManager_Remove_Idempotent(t *testing.T) {
	m, _, n := newActivities(t, uuid.New())
	created, err := m.Create(context.Background(), museum())
	require.NoError(t, err)

	require.NoError(t, m.Remove(context.Background(), created.ID))
	require.NoError(t, m.Remove(context.Background(), created.ID))

	assert.Empty(t, m.Items())
	assert.Equal(t, []string{"Activity added successfully", "Activity removed successfully", "Activity removed successfully"}, n.success)
}

func TestManager_Remove_StoreFailure(t *testing.T) {
	m, store, n := newActivities(t, uuid.New())
	created, err := m.Create(context.Background(), museum())
	require.NoError(t, err)

	store.failDelete = errors.New("timeout")
	err = m.Remove(context.Background(), created.ID)

	var perr *domain.PersistError
	require.ErrorAs(t, err, &perr)
	assert.Len(t, m.Items(), 1)
	assert.Equal(t, []string{"Failed to remove activity"}, n.errors)
}

// ---- Update ----------------------------------------------------------------

func TestManager_Update_MergesPersistsAndClearsEditing(t *testing.T) {
	m, store, n := newActivities(t, uuid.New())
	created, err := m.Create(context.Background(), museum())
	require.NoError(t, err)
	m.Edit(created.ID)

	err = m.Update(context.Background(), created.ID, domain.ActivityPatch{Title: strPtr("Art Museum")})

	require.NoError(t, err)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, "Art Museum", m.Items()[0].Title)
	_, editing := m.Editing()
	assert.False(t, editing)
	assert.Contains(t, n.success, "Activity updated successfully")
}

func TestManager_Update_InvalidMergeIsRejected(t *testing.T) {
	m, store, _ := newActivities(t, uuid.New())
	created, err := m.Create(context.Background(), museum())
	require.NoError(t, err)
	m.Edit(created.ID)

	price := -3.0
	err = m.Update(context.Background(), created.ID, domain.ActivityPatch{Price: &price})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, store.updates)
	assert.Equal(t, 10.0, m.Items()[0].Price)
	id, editing := m.Editing()
	assert.True(t, editing)
	assert.Equal(t, created.ID, id)
}

func TestManager_Update_UnknownID(t *testing.T) {
	m, _, _ := newActivities(t, uuid.New())

	err := m.Update(context.Background(), uuid.New(), domain.ActivityPatch{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManager_Update_StoreFailureLeavesLocalCopy(t *testing.T) {
	m, store, n := newActivities(t, uuid.New())
	created, err := m.Create(context.Background(), museum())
	require.NoError(t, err)

	store.failUpdate = errors.New("boom")
	err = m.Update(context.Background(), created.ID, domain.ActivityPatch{Title: strPtr("Changed")})

	var perr *domain.PersistError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Museum", m.Items()[0].Title)
	assert.Equal(t, []string{"Failed to update activity"}, n.errors)
}

func TestTogglePacked(t *testing.T) {
	store := &memStore[domain.PackingItem]{apply: func(p domain.PackingItem, f map[string]any) domain.PackingItem {
		if v, ok := f["packed"]; ok {
			p.Packed = v.(bool)
		}
		return p
	}}
	m := resource.NewPackingItemManager(store, &notes{}, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))
	item, err := m.Create(context.Background(), domain.PackingItem{Text: "passport"})
	require.NoError(t, err)

	require.NoError(t, resource.TogglePacked(context.Background(), m, item.ID))
	assert.True(t, m.Items()[0].Packed)
	require.NoError(t, resource.TogglePacked(context.Background(), m, item.ID))
	assert.False(t, m.Items()[0].Packed)

	assert.ErrorIs(t, resource.TogglePacked(context.Background(), m, uuid.New()), domain.ErrNotFound)
}

// ---- List and pagination ---------------------------------------------------

func TestManager_Pagination_ClampsNavigation(t *testing.T) {
	trip := uuid.New()
	m, _, _ := newActivities(t, trip)
	for range 12 {
		_, err := m.Create(context.Background(), museum())
		require.NoError(t, err)
	}
	require.NoError(t, m.GoTo(context.Background(), 1))

	p := m.Pagination()
	assert.Equal(t, int64(12), p.Total)
	assert.Equal(t, 3, p.TotalPages())
	assert.Len(t, m.Items(), 5)

	require.NoError(t, m.Next(context.Background()))
	require.NoError(t, m.Next(context.Background()))
	require.NoError(t, m.Next(context.Background())) // beyond the last page
	assert.Equal(t, 3, m.Pagination().Current)
	assert.Len(t, m.Items(), 2)

	require.NoError(t, m.GoTo(context.Background(), -4))
	assert.Equal(t, 1, m.Pagination().Current)
	require.NoError(t, m.Prev(context.Background()))
	assert.Equal(t, 1, m.Pagination().Current)
}

func TestManager_Seek_FindsLaterPage(t *testing.T) {
	m, _, _ := newActivities(t, uuid.New())
	var last domain.Activity
	for i := range 12 {
		a := museum()
		a.Title = fmt.Sprintf("Museum %d", i)
		created, err := m.Create(context.Background(), a)
		require.NoError(t, err)
		last = created
	}
	require.NoError(t, m.GoTo(context.Background(), 1))

	got, err := m.Seek(context.Background(), last.ID)
	require.NoError(t, err)
	assert.Equal(t, "Museum 11", got.Title)
	assert.Equal(t, 3, m.Pagination().Current)

	title := "Closed"
	require.NoError(t, m.Update(context.Background(), last.ID, domain.ActivityPatch{Title: &title}))
	assert.Equal(t, "Closed", m.Items()[1].Title)

	_, err = m.Seek(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManager_SetParent_ResetsToFirstPage(t *testing.T) {
	trip := uuid.New()
	m, _, _ := newActivities(t, trip)
	for range 7 {
		_, err := m.Create(context.Background(), museum())
		require.NoError(t, err)
	}
	require.NoError(t, m.GoTo(context.Background(), 2))

	other := uuid.New()
	require.NoError(t, m.SetParent(context.Background(), other))

	assert.Equal(t, other, m.Parent())
	assert.Equal(t, resource.Pager{Size: resource.ActivityPageSize, Current: 1, Total: 0}, m.Pagination())
	assert.Empty(t, m.Items())
}

func TestManager_List_FailurePreservesCollection(t *testing.T) {
	trip := uuid.New()
	m, store, n := newActivities(t, trip)
	_, err := m.Create(context.Background(), museum())
	require.NoError(t, err)

	store.failSelect = errors.New("network down")
	err = m.Refresh(context.Background())

	var ferr *domain.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Len(t, m.Items(), 1)
	assert.Equal(t, []string{"Failed to fetch activities"}, n.errors)
}

func TestManager_Unpaged(t *testing.T) {
	store := &memStore[domain.Expense]{}
	m := resource.NewExpenseManager(store, &notes{}, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))
	for range 30 {
		_, err := m.Create(context.Background(), domain.Expense{Description: "x", Amount: 1})
		require.NoError(t, err)
	}

	assert.Len(t, m.Items(), 30)
	assert.Equal(t, 1, m.Pagination().TotalPages())
}

// ---- Optimistic policy -----------------------------------------------------

func TestManager_Optimistic_CreateShowsLocalItemBeforePersist(t *testing.T) {
	store := &memStore[domain.Flight]{}
	m := resource.NewFlightManager(store, &notes{}, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))
	selects := store.selects

	var seen []domain.Flight
	store.onInsert = func(f domain.Flight) {
		seen = m.Items()
		assert.Equal(t, uuid.Nil, f.ID, "temporary ids are not sent to the store")
	}

	created, err := m.Create(context.Background(), domain.Flight{Airline: "Vietjet", FlightNumber: "VJ123"})

	require.NoError(t, err)
	require.Len(t, seen, 1)
	tempID := seen[0].ID
	assert.EqualValues(t, 7, tempID.Version())
	assert.NotEqual(t, tempID, created.ID)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, created.ID, m.Items()[0].ID)
	assert.Equal(t, selects, store.selects, "optimistic mutations do not refresh")
}

func TestManager_Optimistic_CreateFailureRollsBack(t *testing.T) {
	store := &memStore[domain.Hotel]{failInsert: errors.New("503")}
	n := &notes{}
	m := resource.NewHotelManager(store, n, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))

	_, err := m.Create(context.Background(), domain.Hotel{Name: "Hanoi La Siesta"})

	var perr *domain.PersistError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, m.Items())
	assert.Zero(t, m.Pagination().Total)
	assert.Equal(t, []string{"Failed to add hotel"}, n.errors)
}

func TestManager_Optimistic_UpdateAndRemoveRollBack(t *testing.T) {
	store := &memStore[domain.Hotel]{}
	n := &notes{}
	m := resource.NewHotelManager(store, n, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))
	a, err := m.Create(context.Background(), domain.Hotel{Name: "A"})
	require.NoError(t, err)
	_, err = m.Create(context.Background(), domain.Hotel{Name: "B"})
	require.NoError(t, err)

	store.failUpdate = errors.New("nope")
	err = m.Update(context.Background(), a.ID, domain.HotelPatch{Name: strPtr("A2")})
	assert.Error(t, err)
	assert.Equal(t, "A", m.Items()[0].Name)

	store.failDelete = errors.New("nope")
	err = m.Remove(context.Background(), a.ID)
	assert.Error(t, err)
	require.Len(t, m.Items(), 2)
	assert.Equal(t, "A", m.Items()[0].Name, "removed item is restored at its position")

	assert.Equal(t, []string{"Failed to update hotel", "Failed to remove hotel"}, n.errors)
	assert.Empty(t, n.success)
}

func TestManager_Optimistic_UpdateAppliesLocally(t *testing.T) {
	store := &memStore[domain.Flight]{}
	m := resource.NewFlightManager(store, &notes{}, nil)
	require.NoError(t, m.SetParent(context.Background(), uuid.New()))
	f, err := m.Create(context.Background(), domain.Flight{Airline: "Vietjet"})
	require.NoError(t, err)
	m.Edit(f.ID)

	dep := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.Update(context.Background(), f.ID, domain.FlightPatch{DepartureDate: &dep}))

	got := m.Items()[0]
	require.NotNil(t, got.DepartureDate)
	assert.Equal(t, dep, *got.DepartureDate)
	_, editing := m.Editing()
	assert.False(t, editing)
}
