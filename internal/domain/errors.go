package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service and manager functions when input fails
// business rule validation (e.g. missing title, negative price).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ValidationError carries every rule violation found for a candidate entity.
// It matches ErrValidation under errors.Is, so callers that only care about
// the category keep working.
type ValidationError struct {
	Messages []string
}

// NewValidationError returns a *ValidationError for msgs, or nil when msgs is
// empty so rule functions can be used as `if err := NewValidationError(...)`.
func NewValidationError(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, ", ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FetchError wraps a store or transport failure that happened while reading.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistError wraps a store or transport failure that happened while writing.
// Op is one of "add", "update" or "remove".
type PersistError struct {
	Op       string
	Resource string
	Err      error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// ConfigurationError reports required configuration values that are absent.
// Binaries treat it as fatal at startup; request handlers answer with a fixed
// error body instead.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "required environment variables not set: " + strings.Join(e.Missing, ", ")
}
