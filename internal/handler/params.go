package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-planner/internal/domain"
)

// pathUUID binds the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid format for parameter %s", name)
	}
	return id, nil
}

// pageParams binds the optional ?page= and ?limit= query parameters.
// Defaults and the limit cap come from domain.NewPaginationParams.
func pageParams(r *http.Request) (domain.PaginationParams, error) {
	var page, limit *int
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		return domain.PaginationParams{}, errors.New("invalid format for parameter page")
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return domain.PaginationParams{}, errors.New("invalid format for parameter limit")
	}
	return domain.NewPaginationParams(page, limit), nil
}

// sortParam reads ?sort=. A leading "-" requests descending order.
func sortParam(r *http.Request) (column string, desc bool, err error) {
	var sort *string
	if err := runtime.BindQueryParameter("form", true, false, "sort", r.URL.Query(), &sort); err != nil {
		return "", false, errors.New("invalid format for parameter sort")
	}
	if sort == nil {
		return "", false, nil
	}
	column = strings.TrimSpace(*sort)
	if rest, ok := strings.CutPrefix(column, "-"); ok {
		return rest, true, nil
	}
	return column, false, nil
}

// decodeBody decodes the JSON request body into dst. Unknown fields are
// rejected so typos surface as 400s rather than silently ignored input.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// writeBodyError answers a decodeBody failure: 413 when the body exceeded the
// configured limit, 400 otherwise.
func writeBodyError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
}
