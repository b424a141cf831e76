package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/phrazzld/codelens/internal/generation"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templates is parsed once; the embedded files are fixed at build time.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// promptData represents the data passed to the prompt templates
type promptData struct {
	Mode     string
	Language string
	Code     string
}

// SampleSnippet pre-populates the input surface.
const SampleSnippet = `function calculateTotal(items) {
    let total = 0;
    for (let i = 0; i <= items.length; i++) {
        total += items[i].price;
    }
    return total;
}
// Example call: calculateTotal([{price: 10}, {price: 20}])`

// SystemInstruction returns the system instruction for mode and language.
// Unknown modes get a generic assistant instruction.
func SystemInstruction(mode Mode, language string) (string, error) {
	return execute("system.tmpl", promptData{Mode: string(mode), Language: language})
}

// UserQuery returns the user query for mode wrapping code.
func UserQuery(mode Mode, code string) (string, error) {
	return execute("user.tmpl", promptData{Mode: string(mode), Code: code})
}

// Build returns the complete request for analysing code in mode.
func Build(mode Mode, language, code string) (generation.Request, error) {
	system, err := SystemInstruction(mode, language)
	if err != nil {
		return generation.Request{}, err
	}
	query, err := UserQuery(mode, code)
	if err != nil {
		return generation.Request{}, err
	}
	return generation.NewRequest(system, query), nil
}

func execute(name string, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return buf.String(), nil
}
