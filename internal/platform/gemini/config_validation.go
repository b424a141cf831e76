package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/phrazzld/codelens/internal/config"
	"github.com/phrazzld/codelens/internal/generation"
)

// validateConfig checks the settings the executor cannot work without.
// Out-of-range retry settings are not fatal; RetryPolicyFromConfig falls back
// to defaults for them and a warning is logged here.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key", "error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: Gemini API key is not configured", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing model name", "error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: invalid base URL %q", generation.ErrInvalidConfig, cfg.BaseURL)
		}
	}

	if cfg.MaxAttempts < 1 {
		logger.WarnContext(ctx, "Invalid MaxAttempts value",
			"value", cfg.MaxAttempts,
			"action", "using default value")
	}

	if cfg.BaseDelayMS < 1 {
		logger.WarnContext(ctx, "Invalid BaseDelayMS value",
			"value", cfg.BaseDelayMS,
			"action", "using default value")
	}

	if cfg.MaxJitterMS < 0 {
		logger.WarnContext(ctx, "Invalid MaxJitterMS value",
			"value", cfg.MaxJitterMS,
			"action", "using default value")
	}

	return nil
}
