// Package api holds the JSON wire types of the trip planner HTTP API and their
// conversions to and from domain types. The server handlers and the HTTP
// client share these definitions so both sides agree on field names.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorDetail is the payload of every error response.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorResponse wraps ErrorDetail so error bodies read {"error":{...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// List is the envelope of every paginated list endpoint.
type List[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

func toDate(t time.Time) openapi_types.Date { return openapi_types.Date{Time: t} }

// toDatePtr returns nil for a nil or zero time so optional dates are omitted.
func toDatePtr(t *time.Time) *openapi_types.Date {
	if t == nil || t.IsZero() {
		return nil
	}
	d := openapi_types.Date{Time: *t}
	return &d
}

func fromDatePtr(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func deref[V any](p *V) V {
	var zero V
	if p == nil {
		return zero
	}
	return *p
}
