package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the generation package and its adapters.
var (
	// ErrInvalidConfig is returned when the generator configuration is invalid,
	// for example when no API key is configured.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrInvalidInput is returned when a request is rejected before any call to
	// the language model is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransportFailure is returned when the request could not be delivered
	// (connection refused, DNS failure, timeout). It is never retried.
	ErrTransportFailure = errors.New("request to language model failed")

	// ErrRateLimited marks HTTP 429 responses. Adapters retry it internally and
	// only surface it once their attempts are exhausted.
	ErrRateLimited = errors.New("rate limited by language model")

	// ErrEmptyResponse is returned when the call succeeded but carried no
	// usable text.
	ErrEmptyResponse = errors.New("language model did not return a valid response")
)

// APIError is a non-success HTTP status reported by the language model
// endpoint.
type APIError struct {
	// StatusCode is the HTTP status code of the final attempt.
	StatusCode int

	// Message is the provider-supplied error text, or the generic status text
	// when the provider sent none.
	Message string

	// Attempts is the number of requests made before giving up.
	Attempts int
}

// NewAPIError builds an APIError, falling back to the generic description of
// statusCode when message is empty.
func NewAPIError(statusCode int, message string, attempts int) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if message == "" {
		message = "Unknown Status"
	}
	return &APIError{StatusCode: statusCode, Message: message, Attempts: attempts}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.Message)
}

// Is reports a 429 APIError as ErrRateLimited.
func (e *APIError) Is(target error) bool {
	return target == ErrRateLimited && e.StatusCode == http.StatusTooManyRequests
}

// IsRateLimited reports whether err is, or wraps, a rate-limit failure.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
