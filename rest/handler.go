package rest

import (
	"github.com/labstack/echo/v4"

	"techpulse/utils/errors"
	"techpulse/utils/logger"
)

// handleError maps err onto its coarse HTTP category and logs the detail.
func handleError(c echo.Context, err error, operation string) error {
	req := c.Request()
	appErr := errors.Classify(err, "rest", "RESTHandler", operation, map[string]any{
		"path":       req.URL.Path,
		"method":     req.Method,
		"request_id": c.Response().Header().Get("X-Request-ID"),
	})

	log := logger.FromContext(req.Context())
	attrs := []any{
		"error", appErr.Error(),
		"error_code", appErr.Code,
		"operation", appErr.Operation,
		"path", req.URL.Path,
		"is_retryable", appErr.IsRetryable(),
	}
	if appErr.HTTPStatusCode() >= 500 {
		log.ErrorContext(req.Context(), "REST handler error", attrs...)
	} else {
		log.WarnContext(req.Context(), "REST handler error", attrs...)
	}

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// bindAndValidate decodes the body into req and runs the registered validator.
// Malformed JSON is reported as a validation error.
func bindAndValidate(c echo.Context, req any, operation string) error {
	if err := c.Bind(req); err != nil {
		return errors.NewValidationContextError("malformed request body", "rest", "RESTHandler", operation, err, nil)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}
