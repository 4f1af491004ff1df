package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/testutil"
)

// newTestTx opens a rolled-back transaction on the test database.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	start := time.Date(2024, 10, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 14, 0, 0, 0, 0, time.UTC)
	lat, lng := 21.0278, 105.8342
	return domain.Trip{
		Name:        "Southeast Asia",
		Destination: "Vietnam",
		StartDate:   start,
		EndDate:     &end,
		Latitude:    &lat,
		Longitude:   &lng,
		Notes:       "Test notes",
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	require.NotNil(t, got.EndDate, "EndDate should not be nil")
	assert.True(t, got.EndDate.Equal(*input.EndDate), "EndDate mismatch")
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, *input.Latitude, *got.Latitude, 1e-9)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_NilOptionals(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	input := tripFixture()
	input.EndDate = nil
	input.Latitude = nil
	input.Longitude = nil

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, got.EndDate, "EndDate should be nil when not provided")
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.Longitude)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	id := [16]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

	_, err := r.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListPaged(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	t1 := tripFixture()
	t1.Name = "First Trip"
	t2 := tripFixture()
	t2.Name = "Second Trip"
	t2.StartDate = t1.StartDate.AddDate(10, 0, 0) // far in the future so it sorts first

	_, err := r.Create(ctx, t1)
	require.NoError(t, err)
	_, err = r.Create(ctx, t2)
	require.NoError(t, err)

	trips, total, err := r.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 1})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(2))
	require.Len(t, trips, 1)
	assert.Equal(t, "Second Trip", trips[0].Name, "start_date DESC puts the later trip first")
}

func TestTripRepo_Update(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	created.Name = "Updated Name"
	created.EndDate = nil

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Nil(t, updated.EndDate)
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	ghost := tripFixture()
	ghost.ID = [16]byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
		0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef}

	_, err := r.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")

	assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound)
}
