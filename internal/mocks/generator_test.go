package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/codelens/internal/generation"
	"github.com/phrazzld/codelens/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("Default success case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithText("## Explanation")
		req := generation.NewRequest("be brief", "explain this")

		text, err := mockGen.Generate(context.Background(), req)

		assert.NoError(t, err, "Should not return an error")
		assert.Equal(t, "## Explanation", text)
		assert.Equal(t, 1, mockGen.CallCount(), "Generate should be called once")

		last, ok := mockGen.LastRequest()
		require.True(t, ok)
		assert.Equal(t, req, last, "Should record the request")
	})

	t.Run("Error case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.MockGeneratorRateLimited(5)

		text, err := mockGen.Generate(context.Background(), generation.Request{})

		require.Error(t, err)
		assert.True(t, generation.IsRateLimited(err), "Should be a rate-limit error")
		assert.Empty(t, text)

		var apiErr *generation.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 5, apiErr.Attempts)
	})

	t.Run("Empty response", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.MockGeneratorWithEmptyResponse()
		_, err := mockGen.Generate(context.Background(), generation.Request{})
		assert.ErrorIs(t, err, generation.ErrEmptyResponse)
	})

	t.Run("Custom function", func(t *testing.T) {
		t.Parallel()

		mockGen := &mocks.MockGenerator{
			GenerateFn: func(ctx context.Context, req generation.Request) (string, error) {
				return "echo: " + req.UserQuery, nil
			},
		}

		text, err := mockGen.Generate(context.Background(), generation.NewRequest("", "hi"))
		assert.NoError(t, err)
		assert.Equal(t, "echo: hi", text)
	})

	t.Run("Reset", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithError(errors.New("boom"))
		_, _ = mockGen.Generate(context.Background(), generation.Request{})
		_, _ = mockGen.Generate(context.Background(), generation.Request{})
		assert.Equal(t, 2, mockGen.CallCount())

		mockGen.Reset()
		assert.Equal(t, 0, mockGen.CallCount())
		_, ok := mockGen.LastRequest()
		assert.False(t, ok)
	})
}
