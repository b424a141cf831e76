package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/codelens/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req generation.Request) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Requests contains all requests passed to Generate calls
		Requests []generation.Request

		// Contexts contains all contexts passed to Generate calls
		Contexts []context.Context
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, req generation.Request) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Requests = append(m.GenerateCalls.Requests, req)
	m.GenerateCalls.Contexts = append(m.GenerateCalls.Contexts, ctx)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}

	return m.Text, m.Err
}

// NewMockGeneratorWithText creates a MockGenerator that returns the specified text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorRateLimited creates a MockGenerator whose every call fails with
// a 429 APIError after the given number of attempts.
func MockGeneratorRateLimited(attempts int) *MockGenerator {
	return &MockGenerator{
		Err: generation.NewAPIError(429, "Resource has been exhausted", attempts),
	}
}

// MockGeneratorWithEmptyResponse creates a MockGenerator that simulates a
// response without any candidate text.
func MockGeneratorWithEmptyResponse() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrEmptyResponse,
	}
}

// CallCount returns the number of Generate calls so far.
func (m *MockGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastRequest returns the most recent request, if any.
func (m *MockGenerator) LastRequest() (generation.Request, bool) {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Requests) == 0 {
		return generation.Request{}, false
	}
	return m.GenerateCalls.Requests[len(m.GenerateCalls.Requests)-1], true
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Requests = nil
	m.GenerateCalls.Contexts = nil
}
