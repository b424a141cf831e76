package assistant

import (
	"errors"
	"fmt"

	"github.com/phrazzld/codelens/internal/generation"
)

// MinCodeLength is the minimum snippet length, counted in characters after
// surrounding whitespace is trimmed.
const MinCodeLength = 10

// ShortCodeMessage is shown when the snippet is below MinCodeLength.
const ShortCodeMessage = "Please paste a valid code snippet (at least 10 characters long)."

// ValidationError describes input rejected before any call to the language
// model. It unwraps to generation.ErrInvalidInput.
type ValidationError struct {
	// Field is the offending input field ("code", "language" or "mode").
	Field string
	// Message is safe to show to the user.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns generation.ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return generation.ErrInvalidInput
}

// ServiceError wraps errors from the analysis service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "build_prompt", "generate")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assistant %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("assistant %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Validation errors are returned directly without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
