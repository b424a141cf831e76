package gemini

import (
	"errors"
	"fmt"

	"github.com/phrazzld/codelens/internal/generation"
	"google.golang.org/genai"
)

// classifyError translates an error returned by the genai client into the
// generation package's error vocabulary. Non-2xx responses become
// *generation.APIError; everything else is a transport failure.
func classifyError(err error, attempt int) error {
	if code, message, ok := apiErrorDetails(err); ok {
		return generation.NewAPIError(code, message, attempt)
	}
	return fmt.Errorf("%w: %w", generation.ErrTransportFailure, err)
}

// apiErrorDetails extracts the status code and message from a genai.APIError,
// whichever way the client returned it.
func apiErrorDetails(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return apiErr.Code, apiErr.Message, true
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && apiErrPtr.Code != 0 {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}

	return 0, "", false
}
