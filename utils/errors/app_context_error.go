package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeConflict    = "CONFLICT_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeExternalAPI = "EXTERNAL_API_ERROR"
	CodeRateLimit   = "RATE_LIMIT_ERROR"
	CodeTimeout     = "TIMEOUT_ERROR"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// AppContextError carries the layer, component and operation an error
// passed through, plus free-form context for server-side logs.
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`
	Component string         `json:"component,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to the coarse categories exposed to clients.
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeExternalAPI:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// HTTPContextResponse is the body sent to clients. It never includes the cause.
type HTTPContextResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	resp := HTTPContextResponse{
		Error:   "error",
		Code:    e.Code,
		Message: e.publicMessage(),
	}
	if id, ok := e.Context["request_id"].(string); ok {
		resp.RequestID = id
	}
	return resp
}

// publicMessage hides internal detail for server-side categories.
func (e *AppContextError) publicMessage() string {
	if e.HTTPStatusCode() >= http.StatusInternalServerError {
		return "internal server error"
	}
	return e.Message
}

func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeRateLimit, CodeTimeout, CodeExternalAPI:
		return true
	default:
		return false
	}
}

func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]any,
) *AppContextError {
	if context == nil {
		context = make(map[string]any)
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext re-labels err for an outer layer and merges additional context.
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]any,
) *AppContextError {
	merged := make(map[string]any, len(err.Context)+len(additionalContext))
	for k, v := range err.Context {
		merged[k] = v
	}
	for k, v := range additionalContext {
		merged[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   merged,
	}
}

func withType(context map[string]any, errorType string) map[string]any {
	if context == nil {
		context = make(map[string]any)
	}
	context["error_type"] = errorType
	return context
}

func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeDatabase, message, layer, component, operation, cause, withType(context, "database"))
}

func NewValidationContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeValidation, message, layer, component, operation, cause, withType(context, "validation"))
}

func NewNotFoundContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeNotFound, message, layer, component, operation, cause, withType(context, "not_found"))
}

func NewConflictContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeConflict, message, layer, component, operation, cause, withType(context, "conflict"))
}

func NewExternalAPIContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeExternalAPI, message, layer, component, operation, cause, withType(context, "external_api"))
}

func NewRateLimitContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeRateLimit, message, layer, component, operation, cause, withType(context, "rate_limit"))
}

func NewTimeoutContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeTimeout, message, layer, component, operation, cause, withType(context, "timeout"))
}

func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, withType(context, "unknown"))
}
