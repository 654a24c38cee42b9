package paykit_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResult_Success(t *testing.T) {
	t.Parallel()

	result := paykit.Success(paykit.DeleteResponse{ID: "prod_1", Deleted: true}, http.StatusOK)

	assert.True(t, result.OK())
	assert.NoError(t, result.Err())

	data, err := result.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "prod_1", data.ID)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":"prod_1","deleted":true},"error":null,"statusCode":200}`, string(encoded))
}

func TestResult_Failure(t *testing.T) {
	t.Parallel()

	clientErr := paykit.NewClientError("Not found", paykit.CodeNotFound, http.StatusNotFound)
	result := paykit.Failure[paykit.Product](clientErr)

	assert.False(t, result.OK())
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.True(t, paykit.IsNotFound(result.Err()))

	data, err := result.Unwrap()
	require.Error(t, err)
	assert.Empty(t, data.ID)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"data":null,"error":{"message":"Not found","code":"not_found","statusCode":404},"statusCode":404}`,
		string(encoded),
	)

	out, err := yaml.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(out), "data: null")
	assert.Contains(t, string(out), "code: not_found")
	assert.Contains(t, string(out), "status_code: 404")
}

func TestResult_NetworkFailureHasNoStatus(t *testing.T) {
	t.Parallel()

	result := paykit.Failure[json.RawMessage](paykit.NewClientError("Network request failed: refused", paykit.CodeNetworkError, 0))

	assert.Equal(t, 0, result.StatusCode)
	assert.True(t, paykit.IsNetworkError(result.Err()))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		raw := paykit.Success(json.RawMessage(`{"id":"cus_1","email":"a@example.com"}`), http.StatusCreated)
		result := paykit.Decode[paykit.Customer](raw)

		require.True(t, result.OK())
		assert.Equal(t, http.StatusCreated, result.StatusCode)
		assert.Equal(t, "cus_1", result.Data.ID)
		assert.Equal(t, "a@example.com", result.Data.Email)
	})

	t.Run("failure is carried over", func(t *testing.T) {
		t.Parallel()

		clientErr := paykit.NewClientError("Too many requests", paykit.CodeRateLimitExceeded, http.StatusTooManyRequests)
		result := paykit.Decode[paykit.Customer](paykit.Failure[json.RawMessage](clientErr))

		assert.Same(t, clientErr, result.Error)
		assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		t.Parallel()

		raw := paykit.Success(json.RawMessage(`{"id":42}`), http.StatusOK)
		result := paykit.Decode[paykit.Customer](raw)

		require.NotNil(t, result.Error)
		assert.Equal(t, paykit.CodeInvalidJSONResponse, result.Error.Code())
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Contains(t, result.Error.Message(), "Failed to decode response body")
	})
}
