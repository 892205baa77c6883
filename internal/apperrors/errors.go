package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not authorized to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the resource is not in the state the operation expects,
// e.g. approving a storage request that is no longer pending.
var ErrConflict = errors.New("state conflict")

// ErrCapacity indicates that a rack allocation would exceed the rack's capacity.
var ErrCapacity = errors.New("rack capacity exceeded")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-like status code alongside the message and cause.
// Repositories wrap data-access failures in an AppError with code 500, which
// callers treat as transient and retriable.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// IsDataAccess reports whether err is a transient data-access failure rather
// than one of the terminal outcome errors.
func IsDataAccess(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code >= 500 && !errors.Is(err, ErrNotFound)
	}
	return false
}

// CapacityError names the first rack whose capacity would be exceeded by an
// approval, so callers can re-prompt rack selection with specifics.
type CapacityError struct {
	RackID    string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("rack %s cannot hold %s more joints (%s available)",
		e.RackID, e.Requested.String(), e.Available.String())
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// NewCapacityError creates a CapacityError for the given rack.
func NewCapacityError(rackID string, requested, available decimal.Decimal) *CapacityError {
	return &CapacityError{RackID: rackID, Requested: requested, Available: available}
}
