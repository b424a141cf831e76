package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/codelens/internal/config"
	"github.com/phrazzld/codelens/internal/generation"
	"google.golang.org/genai"
)

// Executor implements the generation.Generator interface using Google's
// Gemini generateContent endpoint.
type Executor struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string

	policy RetryPolicy
	sleep  Sleeper
	jitter JitterFunc
}

var _ generation.Generator = (*Executor)(nil)

type executorOptions struct {
	httpClient *http.Client
	sleep      Sleeper
	jitter     JitterFunc
	policy     *RetryPolicy
}

// Option customizes an Executor.
type Option func(*executorOptions)

// WithHTTPClient sets the HTTP client used by the underlying genai client.
// Its transport is wrapped so error statuses are read from the response.
func WithHTTPClient(c *http.Client) Option {
	return func(o *executorOptions) { o.httpClient = c }
}

// WithSleeper replaces the wait between retries.
func WithSleeper(s Sleeper) Option {
	return func(o *executorOptions) { o.sleep = s }
}

// WithJitter replaces the random jitter source.
func WithJitter(j JitterFunc) Option {
	return func(o *executorOptions) { o.jitter = j }
}

// WithRetryPolicy overrides the policy derived from config.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *executorOptions) { o.policy = &p }
}

// NewExecutor creates a new Executor with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, endpoint and retry settings
//   - opts: optional overrides, mainly for tests
//
// Returns:
//   - A properly initialized Executor, or an error wrapping
//     generation.ErrInvalidConfig if the configuration is unusable
func NewExecutor(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Executor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	o := executorOptions{
		sleep:  sleepContext,
		jitter: uniformJitter,
	}
	for _, opt := range opts {
		opt(&o)
	}

	policy := RetryPolicyFromConfig(cfg)
	if o.policy != nil {
		policy = *o.policy
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: withStatusTransport(o.httpClient),
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini executor initialized",
		"model", cfg.ModelName,
		"max_attempts", policy.MaxAttempts)

	return &Executor{
		logger: logger,
		client: client,
		model:  cfg.ModelName,
		policy: policy,
		sleep:  o.sleep,
		jitter: o.jitter,
	}, nil
}

// Generate sends req to Gemini and returns the first candidate's text.
//
// HTTP 429 responses are retried with exponential backoff until
// RetryPolicy.MaxAttempts requests have been made; any other failure is
// returned immediately. The identical payload is re-sent on every attempt.
func (e *Executor) Generate(ctx context.Context, req generation.Request) (string, error) {
	contents, genConfig := buildPayload(req)

	for attempt := 1; ; attempt++ {
		e.logger.InfoContext(ctx, "Making Gemini API call",
			"attempt", attempt,
			"max_attempts", e.policy.MaxAttempts)

		text, err := e.generateOnce(ctx, contents, genConfig, attempt)
		if err == nil {
			e.logger.InfoContext(ctx, "Gemini API call successful",
				"attempt", attempt,
				"response_length", len(text))
			return text, nil
		}

		if !generation.IsRateLimited(err) {
			e.logger.ErrorContext(ctx, "Gemini API call failed",
				"attempt", attempt,
				"error", err)
			return "", err
		}

		if attempt >= e.policy.MaxAttempts {
			e.logger.WarnContext(ctx, "Maximum retry attempts reached",
				"max_attempts", e.policy.MaxAttempts)
			return "", err
		}

		delay := e.policy.Delay(attempt, e.jitter)
		e.logger.InfoContext(ctx, "Rate limit exceeded, retrying after delay",
			"attempt", attempt,
			"next_attempt", attempt+1,
			"delay_ms", delay.Milliseconds())

		if err := e.sleep(ctx, delay); err != nil {
			e.logger.WarnContext(ctx, "API call cancelled during retry delay",
				"attempt", attempt,
				"ctx_err", err)
			return "", fmt.Errorf("%w: retry wait interrupted: %w", generation.ErrTransportFailure, err)
		}
	}
}

// generateOnce performs a single generateContent call.
func (e *Executor) generateOnce(
	ctx context.Context,
	contents []*genai.Content,
	genConfig *genai.GenerateContentConfig,
	attempt int,
) (string, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, genConfig)
	if err != nil {
		return "", classifyError(err, attempt)
	}

	text, ok := firstText(resp)
	if !ok {
		return "", fmt.Errorf("%w: check API usage or prompt", generation.ErrEmptyResponse)
	}
	return text, nil
}

// buildPayload maps req onto the generateContent request shape:
// contents[0].parts[0].text carries the user query and
// systemInstruction.parts[0].text carries the system instruction.
func buildPayload(req generation.Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: req.UserQuery}}},
	}

	genConfig := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	return contents, genConfig
}

// firstText returns candidates[0].content.parts[0].text when present and non-empty.
func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", false
	}
	part := candidate.Content.Parts[0]
	if part == nil || part.Text == "" {
		return "", false
	}
	return part.Text, true
}
