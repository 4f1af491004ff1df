// Package client talks to the trip planner HTTP API. Its collections satisfy
// resource.Store so Resource Managers can run against a remote server, and
// FetchActivities satisfies overview.Fetcher.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// MaxPageSize is the largest page the server returns; unbounded selects are
// read in pages of this size.
const MaxPageSize = 100

// APIError is a non-2xx answer that does not map onto a domain sentinel.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client is an HTTP client for one trip planner server.
type Client struct {
	base *url.URL
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("client.New: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("client.New: base url %q must be absolute", baseURL)
	}
	c := &Client{base: u, http: &http.Client{Timeout: 15 * time.Second}}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// do sends one request and decodes a JSON answer into out when out is
// non-nil. 404 becomes domain.ErrNotFound and 422 a *domain.ValidationError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body api.ErrorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnprocessableEntity:
		msgs := body.Error.Details
		if len(msgs) == 0 && body.Error.Message != "" {
			msgs = []string{body.Error.Message}
		}
		if err := domain.NewValidationError(msgs); err != nil {
			return err
		}
		return domain.ErrValidation
	}
	return &APIError{Status: resp.StatusCode, Code: body.Error.Code, Message: body.Error.Message}
}

// Health calls GET /healthz.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out api.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, nil, &out); err != nil {
		return "", fmt.Errorf("client.Client.Health: %w", err)
	}
	return out.Status, nil
}

// pageQuery renders page, limit and an optional sort column.
func pageQuery(page, limit int, orderBy string, desc bool) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(max(page, 1)))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if orderBy != "" {
		if desc {
			orderBy = "-" + orderBy
		}
		q.Set("sort", orderBy)
	}
	return q
}

// encodeFields renders patch values in their wire form. Dates travel as
// "2006-01-02".
func encodeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.Format(api.DateLayout)
		case *time.Time:
			if t != nil {
				out[k] = t.Format(api.DateLayout)
			}
		default:
			out[k] = v
		}
	}
	return out
}

// errTripRequired is returned by Select and Insert when no trip is given.
var errTripRequired = errors.New("trip_id is required")

func parentOf(q domain.Query) (uuid.UUID, error) {
	switch v := q.Eq["trip_id"].(type) {
	case uuid.UUID:
		if v != uuid.Nil {
			return v, nil
		}
	case string:
		if id, err := uuid.Parse(v); err == nil {
			return id, nil
		}
	}
	return uuid.Nil, errTripRequired
}
