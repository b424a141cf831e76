package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/codelens/internal/assistant"
	"github.com/phrazzld/codelens/internal/generation"
	"github.com/phrazzld/codelens/internal/markdown"
	"github.com/phrazzld/codelens/internal/mocks"
	"github.com/phrazzld/codelens/internal/platform/logger"
	"github.com/phrazzld/codelens/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCode = "function add(a, b) { return a + b; }"

func newService(t *testing.T, gen generation.Generator) assistant.Service {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	svc, err := assistant.NewService(gen, markdown.Subset{}, log)
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	t.Parallel()

	_, err := assistant.NewService(nil, markdown.Subset{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator cannot be nil")

	_, err = assistant.NewService(&mocks.MockGenerator{}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renderer cannot be nil")

	svc, err := assistant.NewService(&mocks.MockGenerator{}, markdown.Subset{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestAnalyze_Success(t *testing.T) {
	t.Parallel()

	gen := mocks.NewMockGeneratorWithText("## Summary\n\nAdds **two** numbers.")
	svc := newService(t, gen)

	res, err := svc.Analyze(context.Background(), assistant.Input{
		Code:     "\n  " + validCode + "  \n",
		Language: "JavaScript",
		Mode:     "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, prompt.ModeDebug, res.Mode)
	assert.Equal(t, "## Summary\n\nAdds **two** numbers.", res.Markdown)
	assert.Equal(t, "<h2>Summary</h2><p>Adds <strong>two</strong> numbers.</p>", res.HTML)

	require.Equal(t, 1, gen.CallCount())
	req, ok := gen.LastRequest()
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(req.UserQuery, "---\n"+validCode), "code should be trimmed and appended")
	assert.Contains(t, req.SystemInstruction, "expert debugger")
	assert.Contains(t, req.SystemInstruction, "JavaScript")
}

func TestAnalyze_Defaults(t *testing.T) {
	t.Parallel()

	gen := mocks.NewMockGeneratorWithText("ok")
	svc := newService(t, gen)

	res, err := svc.Analyze(context.Background(), assistant.Input{Code: validCode})
	require.NoError(t, err)
	assert.Equal(t, prompt.ModeExplain, res.Mode)

	req, _ := gen.LastRequest()
	assert.Contains(t, req.SystemInstruction, "professional code explainer")
	assert.Contains(t, req.SystemInstruction, assistant.DefaultLanguage)
}

func TestAnalyze_RejectsInvalidInputWithoutCallingModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   assistant.Input
		field   string
		message string
	}{
		{
			name:    "empty code",
			input:   assistant.Input{Code: ""},
			field:   "code",
			message: assistant.ShortCodeMessage,
		},
		{
			name:    "nine characters",
			input:   assistant.Input{Code: "123456789"},
			field:   "code",
			message: assistant.ShortCodeMessage,
		},
		{
			name:    "short after trimming",
			input:   assistant.Input{Code: "   x = 1;   \n\n\t"},
			field:   "code",
			message: assistant.ShortCodeMessage,
		},
		{
			name:  "unknown mode",
			input: assistant.Input{Code: validCode, Mode: "summarize"},
			field: "mode",
		},
		{
			name:  "language too long",
			input: assistant.Input{Code: validCode, Language: strings.Repeat("x", 65)},
			field: "language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := mocks.NewMockGeneratorWithText("should not be used")
			svc := newService(t, gen)

			res, err := svc.Analyze(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, generation.ErrInvalidInput)

			var vErr *assistant.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			if tt.message != "" {
				assert.Equal(t, tt.message, vErr.Message)
			}

			assert.Equal(t, 0, gen.CallCount(), "no model call for invalid input")
		})
	}
}

func TestAnalyze_TenCharactersIsEnough(t *testing.T) {
	t.Parallel()

	gen := mocks.NewMockGeneratorWithText("fine")
	svc := newService(t, gen)

	_, err := svc.Analyze(context.Background(), assistant.Input{Code: "  1234567890  "})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.CallCount())
}

func TestAnalyze_GeneratorErrors(t *testing.T) {
	t.Parallel()

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.MockGeneratorRateLimited(5))

		res, err := svc.Analyze(context.Background(), assistant.Input{Code: validCode})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, generation.IsRateLimited(err))

		var apiErr *generation.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 429, apiErr.StatusCode)

		var svcErr *assistant.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "generate", svcErr.Operation)
	})

	t.Run("empty response", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.MockGeneratorWithEmptyResponse())

		_, err := svc.Analyze(context.Background(), assistant.Input{Code: validCode})
		assert.ErrorIs(t, err, generation.ErrEmptyResponse)
	})

	t.Run("context passed through", func(t *testing.T) {
		t.Parallel()

		type ctxKey struct{}
		gen := &mocks.MockGenerator{
			GenerateFn: func(ctx context.Context, req generation.Request) (string, error) {
				if ctx.Value(ctxKey{}) != "marker" {
					return "", errors.New("context not propagated")
				}
				return "ok", nil
			},
		}
		svc := newService(t, gen)

		ctx := context.WithValue(context.Background(), ctxKey{}, "marker")
		_, err := svc.Analyze(ctx, assistant.Input{Code: validCode})
		assert.NoError(t, err)
	})
}

func TestNewServiceError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, assistant.NewServiceError("op", "msg", nil))

	vErr := &assistant.ValidationError{Field: "code", Message: "bad"}
	assert.Same(t, vErr, assistant.NewServiceError("op", "msg", vErr))

	err := assistant.NewServiceError("generate", "failed", generation.ErrTransportFailure)
	assert.ErrorIs(t, err, generation.ErrTransportFailure)
	assert.Equal(t, "assistant generate failed: failed: request to language model failed", err.Error())
}
