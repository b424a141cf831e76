package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/codelens/internal/api/shared"
	"github.com/phrazzld/codelens/internal/assistant"
	"github.com/phrazzld/codelens/internal/generation"
	"github.com/phrazzld/codelens/internal/platform/logger"
	"github.com/phrazzld/codelens/internal/redact"
)

// User-facing messages for failures that carry no message of their own.
const (
	msgEmptyResponse = "Gemini did not return a valid response. Check API usage or prompt."
	msgTransport     = "Fetch failed: the Gemini API could not be reached."
	msgTimeout       = "The analysis took too long. Please try again."
	msgNotConfigured = "The server is not configured to call Gemini."
	msgInvalidInput  = "Invalid request."
	msgUnexpected    = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var apiErr *generation.APIError

	switch {
	case errors.Is(err, generation.ErrInvalidInput):
		return http.StatusBadRequest

	case generation.IsRateLimited(err):
		return http.StatusTooManyRequests

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.As(err, &apiErr),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrTransportFailure):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly error message for err. Upstream
// API errors keep their "API Error: <status> - <message>" text, redacted.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var vErr *assistant.ValidationError
	var apiErr *generation.APIError

	switch {
	case errors.As(err, &vErr):
		return vErr.Message

	case errors.Is(err, generation.ErrInvalidInput):
		return msgInvalidInput

	case errors.As(err, &apiErr):
		return redact.String(apiErr.Error())

	case errors.Is(err, generation.ErrEmptyResponse):
		return msgEmptyResponse

	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout

	case errors.Is(err, generation.ErrTransportFailure):
		return msgTransport

	case errors.Is(err, generation.ErrInvalidConfig):
		return msgNotConfigured

	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the JSON error response for err and logs the redacted
// details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// SanitizeValidationError turns request validation failures into a short
// message naming the first offending field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation error"
	}

	fe := fieldErrs[0]
	return "Invalid " + fe.Field() + ": " + getValidationTagMessage(fe.Tag())
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

func requestLogger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), fallback)
}
