package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/codelens/internal/api/shared"
	"github.com/phrazzld/codelens/internal/assistant"
)

// AnalyzeHandler handles analysis requests
type AnalyzeHandler struct {
	service   assistant.Service
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(service assistant.Service, logger *slog.Logger) *AnalyzeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeHandler{
		service:   service,
		validator: validator.New(),
		logger:    logger.With("component", "analyze_handler"),
	}
}

// Analyze handles POST /api/analyze requests
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req AnalyzeRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.service.Analyze(r.Context(), assistant.Input{
		Code:     req.Code,
		Language: req.Language,
		Mode:     req.Mode,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := AnalyzeResponse{
		HTML: result.HTML,
		Mode: string(result.Mode),
	}
	if r.URL.Query().Get("raw") == "1" {
		resp.Markdown = result.Markdown
	}

	log.Debug("analysis response sent", "mode", result.Mode, "html_length", len(result.HTML))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
