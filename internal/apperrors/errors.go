// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is implemented by every domain error so handlers can map
// them onto HTTP responses without switching on concrete types.
type AppError interface {
	error
	Category() string
	HTTPStatus() int
}

// ValidationError is a client-side invariant violation. It blocks
// submission before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ReferentialIntegrityError blocks a deletion (or unlink) because a
// dependent record still references the target.
type ReferentialIntegrityError struct {
	Resource  string
	Dependent string
	Message   string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s still referenced by %s: %s", e.Resource, e.Dependent, e.Message)
}
func (e *ReferentialIntegrityError) Category() string { return "REFERENTIAL_INTEGRITY" }
func (e *ReferentialIntegrityError) HTTPStatus() int  { return http.StatusConflict }

func NewReferentialIntegrityError(resource, dependent, message string) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Resource: resource, Dependent: dependent, Message: message}
}

// NotFoundError reports a missing upstream record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NetworkError wraps an upstream transport or 5xx failure. Cached
// snapshots are kept, not cleared, when one occurs.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string    { return fmt.Sprintf("catalog api: %s: %v", e.Op, e.Err) }
func (e *NetworkError) Category() string { return "NETWORK_ERROR" }
func (e *NetworkError) HTTPStatus() int  { return http.StatusBadGateway }
func (e *NetworkError) Unwrap() error    { return e.Err }

func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// As extracts an AppError from an error chain.
func As(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
