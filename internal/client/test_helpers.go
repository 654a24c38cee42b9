package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// Test credentials.
const (
	TestProjectKey      = "sk_test_123"
	TestOrganizationKey = "org_test_123"
)

// NewTestClient creates a project client pointed at baseURL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	config, err := paykit.NewConfiguration(paykit.ScopeProject, &paykit.Options{
		APIKey:  TestProjectKey,
		BaseURL: baseURL,
	}, nil)
	require.NoError(t, err)

	client, err := New(config, nil)
	require.NoError(t, err)

	return client
}

// NewTestOrganizationClient creates an organization client pointed at baseURL.
func NewTestOrganizationClient(t *testing.T, baseURL string) *OrganizationClient {
	t.Helper()

	config, err := paykit.NewConfiguration(paykit.ScopeOrganization, &paykit.Options{
		APIKey:  TestOrganizationKey,
		BaseURL: baseURL,
	}, nil)
	require.NoError(t, err)

	client, err := NewOrganization(config, nil)
	require.NoError(t, err)

	return client
}

// TestOperation describes one resource call against a stub server.
// ExpectedPath empty means the call must fail locally without a request.
type TestOperation[C, T any] struct {
	Name           string
	ExpectedMethod string
	ExpectedPath   string
	ExpectedQuery  string
	ExpectedBody   string
	StatusCode     int
	Response       string
	WantCode       paykit.ErrorCode
	Call           func(ctx context.Context, client C) paykit.Result[T]
	Check          func(t *testing.T, data T)
}

// RunOperationTests runs every case against its own httptest server.
func RunOperationTests[C, T any](
	t *testing.T,
	newClient func(t *testing.T, baseURL string) C,
	tests []TestOperation[C, T],
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				calls.Add(1)

				assert.Equal(t, testCase.ExpectedMethod, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)

				body, err := io.ReadAll(request.Body)
				assert.NoError(t, err)

				if testCase.ExpectedBody != "" {
					assert.JSONEq(t, testCase.ExpectedBody, string(body))
				} else {
					assert.Empty(t, body)
				}

				status := testCase.StatusCode
				if status == 0 {
					status = http.StatusOK
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(status)
				_, _ = writer.Write([]byte(testCase.Response))
			}))
			defer server.Close()

			result := testCase.Call(context.Background(), newClient(t, server.URL))

			if testCase.ExpectedPath == "" {
				assert.Equal(t, int32(0), calls.Load())
			} else {
				assert.Equal(t, int32(1), calls.Load())
			}

			if testCase.WantCode != "" {
				require.NotNil(t, result.Error)
				assert.Equal(t, testCase.WantCode, result.Error.Code())

				return
			}

			require.Nil(t, result.Error)

			if testCase.Check != nil {
				testCase.Check(t, result.Data)
			}
		})
	}
}
