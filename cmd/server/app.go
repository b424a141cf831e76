package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/codelens/internal/api/middleware"
	"github.com/phrazzld/codelens/internal/assistant"
	"github.com/phrazzld/codelens/internal/config"
	"github.com/phrazzld/codelens/internal/generation"
	"github.com/phrazzld/codelens/internal/markdown"
	"github.com/phrazzld/codelens/internal/platform/gemini"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator generation.Generator
	renderer  markdown.Renderer
	assistant assistant.Service
	limiter   *apiMiddleware.RateLimiter
}

// newApplication creates a new application instance with all dependencies initialized.
// Executor options are passed through to the Gemini executor, mainly so tests
// can skip real retry waits.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...gemini.Option,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.generator, err = gemini.NewExecutor(
		ctx,
		logger.With("component", "gemini_executor"),
		cfg.LLM,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini executor: %w", err)
	}

	app.renderer, err = markdown.New(cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize markdown renderer: %w", err)
	}
	logger.Info("Markdown renderer initialized",
		"engine", cfg.Render.Engine,
		"sanitize", cfg.Render.Sanitize)

	app.assistant, err = assistant.NewService(app.generator, app.renderer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant service: %w", err)
	}

	app.limiter = apiMiddleware.NewRateLimiter(cfg.Server.RequestsPerMinute)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
