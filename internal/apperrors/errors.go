package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that an operation is not applicable in the current
// state (no eligible staff to serve, nothing to correct). These are expected,
// user-facing outcomes and are not retried.
var ErrInvalidState = errors.New("operation not valid in current state")

// ErrConflict indicates a concurrent mutation was detected (duplicate generated
// id, lost row lock). Callers retry the read-modify-write sequence once before
// surfacing it.
var ErrConflict = errors.New("conflicting concurrent modification")

// ErrFatal indicates the archive/delete pair of an end-of-day run partially
// failed and the live and archive stores need manual reconciliation. It halts
// the run and must never be swallowed.
var ErrFatal = errors.New("fatal archival inconsistency")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps a lower-level error with an HTTP-ish status code and a message
// suitable for logging. Repositories use it for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
