package http_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	payhttp "github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestMapper_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		casing   paykit.CasingPolicy
		status   int
		body     io.Reader
		expected string
	}{
		{
			name:     "no content",
			casing:   paykit.CasingNormalize,
			status:   http.StatusNoContent,
			body:     strings.NewReader("ignored"),
			expected: `{}`,
		},
		{
			name:     "empty body",
			casing:   paykit.CasingNormalize,
			status:   http.StatusOK,
			body:     strings.NewReader(""),
			expected: `{}`,
		},
		{
			name:     "whitespace body",
			casing:   paykit.CasingPreserve,
			status:   http.StatusAccepted,
			body:     strings.NewReader(" \n"),
			expected: `{}`,
		},
		{
			name:     "keys normalized",
			casing:   paykit.CasingNormalize,
			status:   http.StatusOK,
			body:     strings.NewReader(`{"customerId":"c1","tags":["a"],"nested":{"unitAmount":100}}`),
			expected: `{"customer_id":"c1","tags":["a"],"nested":{"unit_amount":100}}`,
		},
		{
			name:     "keys preserved",
			casing:   paykit.CasingPreserve,
			status:   http.StatusCreated,
			body:     strings.NewReader(`{"customerId":"c1"}`),
			expected: `{"customerId":"c1"}`,
		},
		{
			name:     "large integers keep their digits",
			casing:   paykit.CasingNormalize,
			status:   http.StatusOK,
			body:     strings.NewReader(`{"amount":12345678901234567890}`),
			expected: `{"amount":12345678901234567890}`,
		},
		{
			name:     "array body",
			casing:   paykit.CasingNormalize,
			status:   http.StatusOK,
			body:     strings.NewReader(`[{"priceId":"p1"}]`),
			expected: `[{"price_id":"p1"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := payhttp.NewMapper(tt.casing).FromResponse(tt.status, tt.body)
			require.Nil(t, result.Error)
			assert.Equal(t, tt.status, result.StatusCode)
			assert.JSONEq(t, tt.expected, string(result.Data))
		})
	}
}

func TestMapper_InvalidJSON(t *testing.T) {
	t.Parallel()

	for _, casing := range []paykit.CasingPolicy{paykit.CasingNormalize, paykit.CasingPreserve} {
		for _, body := range []string{"not-json", `{"a":1} trailing`, `{"a":`, `{"a":1}}`, `[1]]`, `{"a":1}{"b":2}`} {
			result := payhttp.NewMapper(casing).FromResponse(http.StatusOK, strings.NewReader(body))
			require.NotNil(t, result.Error, "casing=%s body=%q", casing, body)
			assert.Equal(t, paykit.CodeInvalidJSONResponse, result.Error.Code())
			assert.Equal(t, http.StatusOK, result.StatusCode)
			assert.Nil(t, result.Data)
		}
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestMapper_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          int
		body            string
		expectedCode    paykit.ErrorCode
		expectedMessage string
	}{
		{
			name:            "empty object",
			status:          http.StatusNotFound,
			body:            `{}`,
			expectedCode:    paykit.CodeNotFound,
			expectedMessage: "Request failed with status 404",
		},
		{
			name:            "message and code from body",
			status:          http.StatusBadRequest,
			body:            `{"message":"Card declined","code":"card_declined"}`,
			expectedCode:    "card_declined",
			expectedMessage: "Card declined",
		},
		{
			name:            "message only",
			status:          http.StatusConflict,
			body:            `{"message":"Already exists"}`,
			expectedCode:    paykit.CodeConflict,
			expectedMessage: "Already exists",
		},
		{
			name:            "html body",
			status:          http.StatusServiceUnavailable,
			body:            `<html>down</html>`,
			expectedCode:    paykit.CodeUnknownError,
			expectedMessage: "Request failed with status 503",
		},
		{
			name:            "non-string fields ignored",
			status:          http.StatusUnauthorized,
			body:            `{"message":42,"code":["x"]}`,
			expectedCode:    paykit.CodeUnauthorized,
			expectedMessage: "Request failed with status 401",
		},
		{
			name:            "unmapped status",
			status:          http.StatusTeapot,
			body:            ``,
			expectedCode:    paykit.CodeUnknownError,
			expectedMessage: "Request failed with status 418",
		},
		{
			name:            "redirect is not success",
			status:          http.StatusMovedPermanently,
			body:            ``,
			expectedCode:    paykit.CodeUnknownError,
			expectedMessage: "Request failed with status 301",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := payhttp.NewMapper(paykit.CasingNormalize).FromResponse(tt.status, strings.NewReader(tt.body))
			require.NotNil(t, result.Error)
			assert.Equal(t, tt.expectedCode, result.Error.Code())
			assert.Equal(t, tt.expectedMessage, result.Error.Message())
			assert.Equal(t, tt.status, result.StatusCode)
			assert.Equal(t, tt.status, result.Error.StatusCode())
		})
	}
}

func TestMapper_ReadFailure(t *testing.T) {
	t.Parallel()

	t.Run("success status", func(t *testing.T) {
		t.Parallel()

		result := payhttp.NewMapper(paykit.CasingNormalize).FromResponse(http.StatusOK, failingReader{})
		require.NotNil(t, result.Error)
		assert.Equal(t, paykit.CodeNetworkError, result.Error.Code())
		assert.Equal(t, 0, result.StatusCode)
		assert.Contains(t, result.Error.Message(), "connection reset")
	})

	t.Run("error status keeps status", func(t *testing.T) {
		t.Parallel()

		result := payhttp.NewMapper(paykit.CasingNormalize).FromResponse(http.StatusTooManyRequests, failingReader{})
		require.NotNil(t, result.Error)
		assert.Equal(t, paykit.CodeRateLimitExceeded, result.Error.Code())
		assert.Equal(t, "Request failed with status 429", result.Error.Message())
		assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
	})
}
