package prompt

import (
	"fmt"
	"strings"

	"github.com/phrazzld/codelens/internal/generation"
)

// Mode selects what the model is asked to do with the snippet.
type Mode string

// Supported modes.
const (
	ModeExplain  Mode = "explain"
	ModeDebug    Mode = "debug"
	ModeRefactor Mode = "refactor"
)

// Modes lists the supported modes in display order.
var Modes = []Mode{ModeExplain, ModeDebug, ModeRefactor}

// IdleLabel is the submit button text when no request is in flight.
const IdleLabel = "Analyze Code with Gemini"

// ParseMode converts s (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown mode %q (want explain, debug or refactor)", generation.ErrInvalidInput, s)
	}
	return m, nil
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeExplain, ModeDebug, ModeRefactor:
		return true
	}
	return false
}

// BusyLabel is the submit button text while a request in mode m is in flight.
func (m Mode) BusyLabel() string {
	switch m {
	case ModeExplain:
		return "Explaining..."
	case ModeDebug:
		return "Debugging..."
	case ModeRefactor:
		return "Refactoring..."
	}
	return "Analyzing..."
}
