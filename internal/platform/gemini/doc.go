// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API to explain, debug, or refactor code snippets.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's core to Google's external Gemini AI service.
//
// Key components:
//
// 1. Executor:
//   - Implements the generation.Generator interface
//   - Sends the user query as a content part and the system instruction as the
//     separate systemInstruction field of a generateContent call
//   - Extracts the first candidate's first text part
//
// 2. Retry:
//   - Retries only HTTP 429 responses, up to RetryPolicy.MaxAttempts attempts
//   - Waits 2^attempt * BaseDelay plus a random jitter in [0, MaxJitter)
//     between attempts; the wait honours context cancellation
//   - Every other failure (non-2xx status, transport error, empty response)
//     is returned immediately
//   - The status is always the HTTP status line of the response. Error bodies
//     are rewritten into the client's error envelope before decoding, so a
//     429 is retried whatever its body says
//
// The package depends on Google's google.golang.org/genai client library for
// communicating with the Gemini API. The endpoint base URL and API version come
// from config.LLMConfig, so tests can point the executor at a local server.
package gemini
