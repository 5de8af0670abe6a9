package errors

import (
	"context"
	stderrors "errors"

	"techpulse/domain"
)

// Classify converts any error into an AppContextError for the given layer.
// Errors that already carry a code keep it; domain sentinels map to their
// category; everything else is UNKNOWN.
func Classify(err error, layer, component, operation string, ctx map[string]any) *AppContextError {
	if err == nil {
		return nil
	}

	var appErr *AppContextError
	if stderrors.As(err, &appErr) {
		return EnrichWithContext(appErr, layer, component, operation, ctx)
	}

	switch {
	case stderrors.Is(err, domain.ErrValidation):
		return NewValidationContextError(validationMessage(err), layer, component, operation, err, ctx)
	case stderrors.Is(err, domain.ErrNotFound):
		return NewNotFoundContextError("resource not found", layer, component, operation, err, ctx)
	case stderrors.Is(err, domain.ErrAlreadyExists):
		return NewConflictContextError("resource already exists", layer, component, operation, err, ctx)
	case stderrors.Is(err, domain.ErrRepository):
		return NewDatabaseContextError("repository failure", layer, component, operation, err, ctx)
	case stderrors.Is(err, context.DeadlineExceeded):
		return NewTimeoutContextError("operation timed out", layer, component, operation, err, ctx)
	default:
		return NewUnknownContextError("internal server error", layer, component, operation, err, ctx)
	}
}

func validationMessage(err error) string {
	var vErr *domain.ValidationError
	if stderrors.As(err, &vErr) {
		return vErr.Error()
	}
	return "invalid input"
}

// IsNotFound reports whether err is a lookup miss at any depth.
func IsNotFound(err error) bool {
	var appErr *AppContextError
	if stderrors.As(err, &appErr) && appErr.Code == CodeNotFound {
		return true
	}
	return stderrors.Is(err, domain.ErrNotFound)
}

// IsValidation reports whether err is a bad-input error at any depth.
func IsValidation(err error) bool {
	var appErr *AppContextError
	if stderrors.As(err, &appErr) && appErr.Code == CodeValidation {
		return true
	}
	return stderrors.Is(err, domain.ErrValidation)
}
