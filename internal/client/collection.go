package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// Collection is the remote record store of one trip-owned entity type.
// D is the entity's JSON shape.
type Collection[T domain.Record[T], D interface{ ToDomain() T }] struct {
	c    *Client
	path string
	from func(T) D
}

func newCollection[T domain.Record[T], D interface{ ToDomain() T }](c *Client, path string, from func(T) D) *Collection[T, D] {
	return &Collection[T, D]{c: c, path: path, from: from}
}

func (c *Client) Activities() *Collection[domain.Activity, api.Activity] {
	return newCollection(c, "activities", api.FromActivity)
}

func (c *Client) Expenses() *Collection[domain.Expense, api.Expense] {
	return newCollection(c, "expenses", api.FromExpense)
}

func (c *Client) PackingItems() *Collection[domain.PackingItem, api.PackingItem] {
	return newCollection(c, "packing-items", api.FromPackingItem)
}

func (c *Client) Flights() *Collection[domain.Flight, api.Flight] {
	return newCollection(c, "flights", api.FromFlight)
}

func (c *Client) Hotels() *Collection[domain.Hotel, api.Hotel] {
	return newCollection(c, "hotels", api.FromHotel)
}

func (s *Collection[T, D]) op(method string) string {
	return "client.Collection[" + s.path + "]." + method
}

// Select lists the rows of the trip named by q.Eq["trip_id"]. Other Eq
// entries are sent as query filters. A zero Limit reads every page.
func (s *Collection[T, D]) Select(ctx context.Context, q domain.Query) ([]T, int64, error) {
	trip, err := parentOf(q)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w: %w", s.op("Select"), domain.ErrValidation, err)
	}

	if q.Limit > 0 {
		return s.page(ctx, trip, q, q.Offset/q.Limit+1, q.Limit)
	}

	items := []T{}
	for page := 1; ; page++ {
		batch, total, err := s.page(ctx, trip, q, page, MaxPageSize)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, batch...)
		if len(batch) < MaxPageSize || int64(len(items)) >= total {
			return items, total, nil
		}
	}
}

func (s *Collection[T, D]) page(ctx context.Context, trip uuid.UUID, q domain.Query, page, limit int) ([]T, int64, error) {
	query := pageQuery(page, limit, q.OrderBy, q.Desc)
	for k, v := range q.Eq {
		if k == "trip_id" {
			continue
		}
		query.Set(k, fmt.Sprint(v))
	}

	var out api.List[D]
	if err := s.c.do(ctx, http.MethodGet, "/trips/"+trip.String()+"/"+s.path, query, nil, &out); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", s.op("Select"), err)
	}
	items := make([]T, len(out.Data))
	for i, d := range out.Data {
		items[i] = d.ToDomain()
	}
	return items, int64(out.Pagination.Total), nil
}

// Get fetches one row by id.
func (s *Collection[T, D]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var out D
	if err := s.c.do(ctx, http.MethodGet, "/"+s.path+"/"+id.String(), nil, nil, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", s.op("Get"), err)
	}
	return out.ToDomain(), nil
}

// Insert creates item under its parent trip and returns the stored row.
func (s *Collection[T, D]) Insert(ctx context.Context, item T) (T, error) {
	var zero T
	trip := item.ParentID()
	if trip == uuid.Nil {
		return zero, fmt.Errorf("%s: %w: %w", s.op("Insert"), domain.ErrValidation, errTripRequired)
	}

	var out D
	if err := s.c.do(ctx, http.MethodPost, "/trips/"+trip.String()+"/"+s.path, nil, s.from(item), &out); err != nil {
		return zero, fmt.Errorf("%s: %w", s.op("Insert"), err)
	}
	return out.ToDomain(), nil
}

// Update sends fields as a partial update of id.
func (s *Collection[T, D]) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (T, error) {
	var out D
	if err := s.c.do(ctx, http.MethodPatch, "/"+s.path+"/"+id.String(), nil, encodeFields(fields), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", s.op("Update"), err)
	}
	return out.ToDomain(), nil
}

// Delete removes id. A row that is already gone is not an error.
func (s *Collection[T, D]) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.c.do(ctx, http.MethodDelete, "/"+s.path+"/"+id.String(), nil, nil, nil)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", s.op("Delete"), err)
	}
	return nil
}
