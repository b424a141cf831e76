package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/codelens/internal/generation"
	"github.com/phrazzld/codelens/internal/platform/logger"
	"github.com/phrazzld/codelens/internal/prompt"
)

// DefaultLanguage labels the snippet when the caller did not pick one.
const DefaultLanguage = "JavaScript"

// Renderer converts the generated Markdown into an HTML fragment.
type Renderer interface {
	Render(markdown string) string
}

// Input is one analysis request from the input surface.
type Input struct {
	Code     string `json:"code"     validate:"min=10"`
	Language string `json:"language" validate:"max=64"`
	Mode     string `json:"mode"`
}

// Result is a successful analysis.
type Result struct {
	// HTML is the rendered fragment for the display surface.
	HTML string
	// Markdown is the raw model output.
	Markdown string
	Mode     prompt.Mode
}

// Service analyses code snippets.
type Service interface {
	// Analyze validates in, asks the language model for an analysis and
	// renders it. Invalid input yields a *ValidationError and no model call.
	Analyze(ctx context.Context, in Input) (*Result, error)
}

type serviceImpl struct {
	generator generation.Generator
	renderer  Renderer
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewService creates a new Service.
// It returns an error if any of the required dependencies are nil.
func NewService(generator generation.Generator, renderer Renderer, logger *slog.Logger) (Service, error) {
	if generator == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}
	if renderer == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "renderer cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		generator: generator,
		renderer:  renderer,
		validate:  validator.New(),
		logger:    logger.With("component", "assistant"),
	}, nil
}

func (s *serviceImpl) Analyze(ctx context.Context, in Input) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	in, mode, err := s.normalize(in)
	if err != nil {
		log.DebugContext(ctx, "rejected analysis input", "error", err)
		return nil, err
	}

	req, err := prompt.Build(mode, in.Language, in.Code)
	if err != nil {
		return nil, NewServiceError("build_prompt", "failed to build prompt", err)
	}

	log.InfoContext(ctx, "requesting analysis",
		"mode", mode,
		"language", in.Language,
		"code_length", len(in.Code))

	text, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, NewServiceError("generate", "failed to get analysis", err)
	}

	html := s.renderer.Render(text)
	log.InfoContext(ctx, "analysis rendered",
		"mode", mode,
		"markdown_length", len(text),
		"html_length", len(html))

	return &Result{
		HTML:     html,
		Markdown: text,
		Mode:     mode,
	}, nil
}

// normalize trims the input, applies defaults and validates it.
func (s *serviceImpl) normalize(in Input) (Input, prompt.Mode, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Language = strings.TrimSpace(in.Language)
	if in.Language == "" {
		in.Language = DefaultLanguage
	}

	if err := s.validate.Struct(in); err != nil {
		return in, "", toValidationError(err)
	}

	mode := prompt.ModeExplain
	if strings.TrimSpace(in.Mode) != "" {
		m, err := prompt.ParseMode(in.Mode)
		if err != nil {
			return in, "", &ValidationError{Field: "mode", Message: "Please choose explain, debug or refactor."}
		}
		mode = m
	}

	return in, mode, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "input", Message: "Invalid request."}
	}

	switch fieldErrs[0].Field() {
	case "Code":
		return &ValidationError{Field: "code", Message: ShortCodeMessage}
	case "Language":
		return &ValidationError{Field: "language", Message: "Language name is too long."}
	}
	return &ValidationError{Field: strings.ToLower(fieldErrs[0].Field()), Message: "Invalid request."}
}
