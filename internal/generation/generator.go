package generation

import "context"

// Request is the payload sent to the language model: a system instruction that
// sets the model's role and the user query carrying the code snippet.
// It is a value type; build a fresh one for every call.
type Request struct {
	SystemInstruction string
	UserQuery         string
}

// NewRequest returns a Request for the given instruction and query.
func NewRequest(systemInstruction, userQuery string) Request {
	return Request{
		SystemInstruction: systemInstruction,
		UserQuery:         userQuery,
	}
}

// Generator defines the interface for producing Markdown text from a Request.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// Generate sends req to the language model and returns the generated text.
	// Errors wrap one of the sentinels in errors.go or are an *APIError.
	Generate(ctx context.Context, req Request) (string, error)
}
