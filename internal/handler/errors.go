package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// Every violated rule is listed in Details; Message joins them.
func validationBody(err error) api.ErrorResponse {
	msgs := validationMessages(err)
	return api.ErrorResponse{Error: api.ErrorDetail{
		Code:    "validation_error",
		Message: strings.Join(msgs, ", "),
		Details: msgs,
	}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorDetail{Code: "bad_request", Message: message}}
}

func internalBody(message string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorDetail{Code: "internal", Message: message}}
}

// validationMessages extracts the human-readable rules from a validation error.
// e.g. "service.Resource[activities].Create: validation error: Title is required"
// → ["Title is required"]
func validationMessages(err error) []string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages
	}
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	return []string{msg}
}

// writeError maps a service error onto the HTTP error taxonomy:
// not found → 404, validation → 422, anything else → 500 (logged).
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(notFound))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, internalBody("internal server error"))
	}
}
