package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// mockStore is a hand-written test double for service.Store.
type mockStore[T any] struct {
	sel    func(ctx context.Context, q domain.Query) ([]T, int64, error)
	get    func(ctx context.Context, id uuid.UUID) (T, error)
	insert func(ctx context.Context, item T) (T, error)
	update func(ctx context.Context, id uuid.UUID, fields map[string]any) (T, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStore[T]) Select(ctx context.Context, q domain.Query) ([]T, int64, error) {
	return m.sel(ctx, q)
}
func (m *mockStore[T]) Get(ctx context.Context, id uuid.UUID) (T, error) { return m.get(ctx, id) }
func (m *mockStore[T]) Insert(ctx context.Context, item T) (T, error) {
	return m.insert(ctx, item)
}
func (m *mockStore[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (T, error) {
	return m.update(ctx, id, fields)
}
func (m *mockStore[T]) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ service.Store[domain.Activity] = (*mockStore[domain.Activity])(nil)

// ---- helpers ---------------------------------------------------------------

func tripExists() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id, Name: "Vietnam Loop"}, nil
		},
	}
}

func tripMissing() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

func validActivity() domain.Activity {
	return domain.Activity{
		Title:    "Ha Long Bay cruise",
		Date:     time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Location: "Ha Long",
		Price:    120,
		Type:     "tour",
	}
}

func strPtr(s string) *string { return &s }

// ---- Create tests ----------------------------------------------------------

func TestResource_Create_SetsTripAndClearsID(t *testing.T) {
	tripID := uuid.New()
	var inserted domain.Activity
	store := &mockStore[domain.Activity]{
		insert: func(_ context.Context, a domain.Activity) (domain.Activity, error) {
			inserted = a
			a.ID = uuid.New()
			return a, nil
		},
	}
	svc := service.NewActivityService(tripExists(), store)

	in := validActivity()
	in.ID = uuid.New() // client-supplied ids are ignored
	got, err := svc.Create(context.Background(), tripID, in)

	require.NoError(t, err)
	assert.Equal(t, tripID, inserted.TripID)
	assert.Equal(t, uuid.Nil, inserted.ID)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestResource_Create_ValidationCollectsAllMessages(t *testing.T) {
	store := &mockStore[domain.Activity]{
		insert: func(_ context.Context, _ domain.Activity) (domain.Activity, error) {
			t.Fatal("store must not be called for invalid input")
			return domain.Activity{}, nil
		},
	}
	svc := service.NewActivityService(tripExists(), store)

	_, err := svc.Create(context.Background(), uuid.New(), domain.Activity{Price: -1})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Title is required", "Date is required", "Price cannot be negative"}, verr.Messages)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResource_Create_TripNotFound(t *testing.T) {
	svc := service.NewActivityService(tripMissing(), &mockStore[domain.Activity]{})

	_, err := svc.Create(context.Background(), uuid.New(), validActivity())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResource_Create_NormalizesPackingText(t *testing.T) {
	var inserted domain.PackingItem
	store := &mockStore[domain.PackingItem]{
		insert: func(_ context.Context, p domain.PackingItem) (domain.PackingItem, error) {
			inserted = p
			return p, nil
		},
	}
	svc := service.NewPackingItemService(tripExists(), store)

	_, err := svc.Create(context.Background(), uuid.New(), domain.PackingItem{Text: "  sunscreen  "})

	require.NoError(t, err)
	assert.Equal(t, "sunscreen", inserted.Text)
}

func TestResource_Create_StoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &mockStore[domain.Expense]{
		insert: func(_ context.Context, _ domain.Expense) (domain.Expense, error) {
			return domain.Expense{}, storeErr
		},
	}
	svc := service.NewExpenseService(tripExists(), store)

	_, err := svc.Create(context.Background(), uuid.New(), domain.Expense{Description: "Pho", Amount: 3})

	assert.ErrorIs(t, err, storeErr)
}

// ---- List tests ------------------------------------------------------------

func TestResource_List_ScopesToTripAndPage(t *testing.T) {
	tripID := uuid.New()
	var got domain.Query
	store := &mockStore[domain.Activity]{
		sel: func(_ context.Context, q domain.Query) ([]domain.Activity, int64, error) {
			got = q
			return []domain.Activity{validActivity()}, 11, nil
		},
	}
	svc := service.NewActivityService(tripExists(), store)

	items, total, err := svc.List(context.Background(), tripID, service.ListParams{
		Page:    domain.PaginationParams{Page: 3, Limit: 5},
		OrderBy: "price",
		Eq:      map[string]any{"type": "tour"},
	})

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(11), total)
	assert.Equal(t, tripID, got.Eq["trip_id"])
	assert.Equal(t, "tour", got.Eq["type"])
	assert.Equal(t, "price", got.OrderBy)
	assert.Equal(t, 10, got.Offset)
	assert.Equal(t, 5, got.Limit)
}

func TestResource_List_AcrossTrips(t *testing.T) {
	var got domain.Query
	store := &mockStore[domain.Activity]{
		sel: func(_ context.Context, q domain.Query) ([]domain.Activity, int64, error) {
			got = q
			return nil, 0, nil
		},
	}
	// tripMissing proves the trip lookup is skipped for uuid.Nil.
	svc := service.NewActivityService(tripMissing(), store)

	items, _, err := svc.List(context.Background(), uuid.Nil, service.ListParams{})

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.NotContains(t, got.Eq, "trip_id")
	assert.Zero(t, got.Limit)
}

func TestResource_List_TripNotFound(t *testing.T) {
	svc := service.NewExpenseService(tripMissing(), &mockStore[domain.Expense]{})

	_, _, err := svc.List(context.Background(), uuid.New(), service.ListParams{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResource_ListAll_Unbounded(t *testing.T) {
	store := &mockStore[domain.Expense]{
		sel: func(_ context.Context, q domain.Query) ([]domain.Expense, int64, error) {
			assert.Zero(t, q.Limit)
			return []domain.Expense{{Amount: 1}, {Amount: 2}}, 2, nil
		},
	}
	svc := service.NewExpenseService(tripExists(), store)

	items, err := svc.ListAll(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

// ---- Update tests ----------------------------------------------------------

func TestResource_Update_PersistsOnlyPatchedFields(t *testing.T) {
	id := uuid.New()
	current := validActivity()
	current.ID = id
	var fields map[string]any
	store := &mockStore[domain.Activity]{
		get: func(_ context.Context, _ uuid.UUID) (domain.Activity, error) { return current, nil },
		update: func(_ context.Context, _ uuid.UUID, f map[string]any) (domain.Activity, error) {
			fields = f
			return domain.ActivityPatch{Title: strPtr("Sunset cruise")}.Apply(current), nil
		},
	}
	svc := service.NewActivityService(tripExists(), store)

	got, err := svc.Update(context.Background(), id, domain.ActivityPatch{Title: strPtr("Sunset cruise")})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Sunset cruise"}, fields)
	assert.Equal(t, "Sunset cruise", got.Title)
}

func TestResource_Update_NormalizesPackingText(t *testing.T) {
	var fields map[string]any
	store := &mockStore[domain.PackingItem]{
		get: func(_ context.Context, id uuid.UUID) (domain.PackingItem, error) {
			return domain.PackingItem{ID: id, Text: "socks"}, nil
		},
		update: func(_ context.Context, id uuid.UUID, f map[string]any) (domain.PackingItem, error) {
			fields = f
			return domain.PackingItem{ID: id, Text: f["text"].(string)}, nil
		},
	}
	svc := service.NewPackingItemService(tripExists(), store)

	got, err := svc.Update(context.Background(), uuid.New(), domain.PackingItemPatch{Text: strPtr("  wool socks  ")})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "wool socks"}, fields)
	assert.Equal(t, "wool socks", got.Text)

	_, err = svc.Update(context.Background(), uuid.New(), domain.PackingItemPatch{Text: strPtr("   ")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResource_Update_ValidatesMergedEntity(t *testing.T) {
	store := &mockStore[domain.Activity]{
		get: func(_ context.Context, _ uuid.UUID) (domain.Activity, error) { return validActivity(), nil },
		update: func(_ context.Context, _ uuid.UUID, _ map[string]any) (domain.Activity, error) {
			t.Fatal("store must not be called for invalid input")
			return domain.Activity{}, nil
		},
	}
	svc := service.NewActivityService(tripExists(), store)

	_, err := svc.Update(context.Background(), uuid.New(), domain.ActivityPatch{Title: strPtr(" ")})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResource_Update_NotFound(t *testing.T) {
	store := &mockStore[domain.Hotel]{
		get: func(_ context.Context, _ uuid.UUID) (domain.Hotel, error) {
			return domain.Hotel{}, domain.ErrNotFound
		},
	}
	svc := service.NewHotelService(tripExists(), store)

	_, err := svc.Update(context.Background(), uuid.New(), domain.HotelPatch{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete tests ----------------------------------------------------------

func TestResource_Delete(t *testing.T) {
	var deleted uuid.UUID
	store := &mockStore[domain.Flight]{
		delete: func(_ context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	svc := service.NewFlightService(tripExists(), store)

	id := uuid.New()
	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, id, deleted)
}

func TestResource_Delete_StoreError(t *testing.T) {
	storeErr := errors.New("boom")
	store := &mockStore[domain.Flight]{
		delete: func(_ context.Context, _ uuid.UUID) error { return storeErr },
	}
	svc := service.NewFlightService(tripExists(), store)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "service.Resource[flights].Delete")
}
