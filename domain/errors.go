package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("entity not found")
	ErrValidation    = errors.New("validation error")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrRepository    = errors.New("repository error")
)

// ValidationError carries the human-readable reason a domain value was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// RepositoryError wraps a storage or transport failure.
type RepositoryError struct {
	Op    string
	Cause error
}

func (e *RepositoryError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrRepository, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRepository, e.Op, e.Cause)
}

func (e *RepositoryError) Unwrap() []error {
	return []error{ErrRepository, e.Cause}
}

func NewRepositoryError(op string, cause error) error {
	return &RepositoryError{Op: op, Cause: cause}
}

// ExternalHTTPError represents an unexpected HTTP status from an upstream source.
type ExternalHTTPError struct {
	StatusCode int
	URL        string
}

func (e *ExternalHTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.URL)
}
