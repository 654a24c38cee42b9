package paykit_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
	"github.com/stretchr/testify/assert"
)

func TestCodeForStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		expected paykit.ErrorCode
	}{
		{http.StatusBadRequest, paykit.CodeBadRequest},
		{http.StatusUnauthorized, paykit.CodeUnauthorized},
		{http.StatusForbidden, paykit.CodeForbidden},
		{http.StatusNotFound, paykit.CodeNotFound},
		{http.StatusConflict, paykit.CodeConflict},
		{http.StatusUnprocessableEntity, paykit.CodeValidationError},
		{http.StatusTooManyRequests, paykit.CodeRateLimitExceeded},
		{http.StatusInternalServerError, paykit.CodeInternalError},
		{http.StatusBadGateway, paykit.CodeUnknownError},
		{http.StatusServiceUnavailable, paykit.CodeUnknownError},
		{http.StatusTeapot, paykit.CodeUnknownError},
		{http.StatusOK, paykit.CodeUnknownError},
		{0, paykit.CodeUnknownError},
		{-1, paykit.CodeUnknownError},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, paykit.CodeForStatus(tt.status))
		})
	}
}
