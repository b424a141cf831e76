// Package generation defines the boundary between the application core and the
// hosted large language model used to explain, debug, or refactor code.
//
// It holds the Request value sent to the model, the Generator interface that
// provider adapters (see internal/platform/gemini) implement, and the sentinel
// errors every adapter wraps so callers can classify failures with errors.Is
// and errors.As.
package generation
