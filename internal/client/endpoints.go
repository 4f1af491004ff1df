package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// ListTrips returns one page of trips, newest first.
func (c *Client) ListTrips(ctx context.Context, page, limit int) ([]domain.Trip, api.Pagination, error) {
	var out api.List[api.Trip]
	if err := c.do(ctx, http.MethodGet, "/trips", pageQuery(page, limit, "", false), nil, &out); err != nil {
		return nil, api.Pagination{}, fmt.Errorf("client.Client.ListTrips: %w", err)
	}
	trips := make([]domain.Trip, len(out.Data))
	for i, t := range out.Data {
		trips[i] = t.ToDomain()
	}
	return trips, out.Pagination, nil
}

func (c *Client) GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	var out api.Trip
	if err := c.do(ctx, http.MethodGet, "/trips/"+id.String(), nil, nil, &out); err != nil {
		return domain.Trip{}, fmt.Errorf("client.Client.GetTrip: %w", err)
	}
	return out.ToDomain(), nil
}

func (c *Client) CreateTrip(ctx context.Context, req api.TripRequest) (domain.Trip, error) {
	var out api.Trip
	if err := c.do(ctx, http.MethodPost, "/trips", nil, req, &out); err != nil {
		return domain.Trip{}, fmt.Errorf("client.Client.CreateTrip: %w", err)
	}
	return out.ToDomain(), nil
}

func (c *Client) UpdateTrip(ctx context.Context, id uuid.UUID, req api.TripRequest) (domain.Trip, error) {
	var out api.Trip
	if err := c.do(ctx, http.MethodPut, "/trips/"+id.String(), nil, req, &out); err != nil {
		return domain.Trip{}, fmt.Errorf("client.Client.UpdateTrip: %w", err)
	}
	return out.ToDomain(), nil
}

func (c *Client) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	if err := c.do(ctx, http.MethodDelete, "/trips/"+id.String(), nil, nil, nil); err != nil {
		return fmt.Errorf("client.Client.DeleteTrip: %w", err)
	}
	return nil
}

// FetchActivities loads one page of the cross-trip activity overview.
// A sort with a leading "-" is descending.
func (c *Client) FetchActivities(ctx context.Context, sort string, page, size int) ([]domain.Activity, error) {
	q := pageQuery(page, size, "", false)
	if sort != "" {
		q.Set("sort", sort)
	}
	var out api.List[api.Activity]
	if err := c.do(ctx, http.MethodGet, "/activities", q, nil, &out); err != nil {
		return nil, fmt.Errorf("client.Client.FetchActivities: %w", err)
	}
	items := make([]domain.Activity, len(out.Data))
	for i, a := range out.Data {
		items[i] = a.ToDomain()
	}
	return items, nil
}

// Budget fetches the server-side expense totals of a trip.
func (c *Client) Budget(ctx context.Context, tripID uuid.UUID) (api.Budget, error) {
	var out api.Budget
	if err := c.do(ctx, http.MethodGet, "/trips/"+tripID.String()+"/budget", nil, nil, &out); err != nil {
		return api.Budget{}, fmt.Errorf("client.Client.Budget: %w", err)
	}
	return out, nil
}

// Chat sends one message to the assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out api.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat", nil, api.ChatRequest{Message: message}, &out); err != nil {
		return "", fmt.Errorf("client.Client.Chat: %w", err)
	}
	return out.Message, nil
}

func (c *Client) Currencies(ctx context.Context) ([]string, error) {
	var out api.Currencies
	if err := c.do(ctx, http.MethodGet, "/currency", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("client.Client.Currencies: %w", err)
	}
	return out.Codes, nil
}

// Convert converts amount between two currency codes. Empty codes use the
// server defaults (USD to VND).
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (api.Conversion, error) {
	q := url.Values{"amount": {strconv.FormatFloat(amount, 'f', -1, 64)}}
	if from != "" {
		q.Set("from", strings.ToUpper(from))
	}
	if to != "" {
		q.Set("to", strings.ToUpper(to))
	}
	var out api.Conversion
	if err := c.do(ctx, http.MethodGet, "/currency/convert", q, nil, &out); err != nil {
		return api.Conversion{}, fmt.Errorf("client.Client.Convert: %w", err)
	}
	return out, nil
}

func (c *Client) Weather(ctx context.Context, location string) (api.Forecast, error) {
	var out api.Forecast
	q := url.Values{"location": {location}}
	if err := c.do(ctx, http.MethodGet, "/weather", q, nil, &out); err != nil {
		return api.Forecast{}, fmt.Errorf("client.Client.Weather: %w", err)
	}
	return out, nil
}
