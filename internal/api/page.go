package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/codelens/internal/api/shared"
	"github.com/phrazzld/codelens/internal/assistant"
	"github.com/phrazzld/codelens/internal/prompt"
)

//go:embed templates/index.html
var pageFS embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFS, "templates/index.html"))

// Languages offered by the language selector, first is the default.
var Languages = []string{
	"JavaScript", "TypeScript", "Python", "Go", "Java", "C#", "C++", "Rust", "Ruby", "PHP", "SQL",
}

type modeOption struct {
	Value string
	Label string
}

type pageData struct {
	Modes         []modeOption
	Languages     []string
	BusyLabels    map[string]string
	IdleLabel     string
	Sample        string
	MinCodeLength int
	MaxCodeLength int
	ShortCodeMsg  string
}

// PageHandler serves the single-page input surface.
type PageHandler struct {
	logger *slog.Logger
	data   pageData
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}

	data := pageData{
		Languages:     Languages,
		BusyLabels:    make(map[string]string, len(prompt.Modes)),
		IdleLabel:     prompt.IdleLabel,
		Sample:        prompt.SampleSnippet,
		MinCodeLength: assistant.MinCodeLength,
		MaxCodeLength: MaxCodeLength,
		ShortCodeMsg:  assistant.ShortCodeMessage,
	}
	for _, m := range prompt.Modes {
		data.Modes = append(data.Modes, modeOption{Value: string(m), Label: modeLabel(m)})
		data.BusyLabels[string(m)] = m.BusyLabel()
	}

	return &PageHandler{
		logger: logger.With("component", "page_handler"),
		data:   data,
	}
}

// Index handles GET / requests
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, h.data); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		requestLogger(r, h.logger).Warn("failed to write page", "error", err)
	}
}

func modeLabel(m prompt.Mode) string {
	switch m {
	case prompt.ModeExplain:
		return "Explain Code"
	case prompt.ModeDebug:
		return "Find & Fix Bugs"
	case prompt.ModeRefactor:
		return "Refactor & Improve"
	}
	return string(m)
}
