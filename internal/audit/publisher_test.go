package audit //nolint:testpackage // pins the clock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(subj string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.subjects = append(f.subjects, subj)
	f.payloads = append(f.payloads, data)

	return nil
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewAuditor(t *testing.T) {
	t.Parallel()

	_, err := NewAuditor(nil, "")
	require.ErrorIs(t, err, ErrNoPublisher)

	auditor, err := NewAuditor(&fakePublisher{}, "")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultAuditSubject, auditor.Subject())

	auditor, err = NewAuditor(&fakePublisher{}, "billing.calls")
	require.NoError(t, err)
	assert.Equal(t, "billing.calls", auditor.Subject())
}

func TestAuditor_ResponseInterceptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resp     *paykit.Response
		expected string
	}{
		{
			name:     "success",
			resp:     &paykit.Response{StatusCode: http.StatusCreated, Duration: 120 * time.Millisecond},
			expected: `{"method":"POST","path":"/v1/customers","status_code":201,"duration_ms":120,"timestamp":"2026-03-01T12:00:00Z"}`,
		},
		{
			name: "failure carries the code",
			resp: &paykit.Response{
				StatusCode: 0,
				Duration:   time.Second,
				Error:      paykit.NewClientError("Request timed out after 1000ms", paykit.CodeTimeoutError, 0),
			},
			expected: `{"method":"POST","path":"/v1/customers","status_code":0,"code":"timeout_error","duration_ms":1000,"timestamp":"2026-03-01T12:00:00Z"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			publisher := &fakePublisher{}
			auditor, err := NewAuditor(publisher, "")
			require.NoError(t, err)

			auditor.now = fixedClock

			req := &paykit.Request{Method: http.MethodPost, Path: "/v1/customers"}
			require.NoError(t, auditor.ResponseInterceptor()(context.Background(), req, tt.resp))

			require.Len(t, publisher.payloads, 1)
			assert.Equal(t, constants.DefaultAuditSubject, publisher.subjects[0])
			assert.JSONEq(t, tt.expected, string(publisher.payloads[0]))

			var event Event
			require.NoError(t, json.Unmarshal(publisher.payloads[0], &event))
			assert.Equal(t, http.MethodPost, event.Method)
		})
	}
}

func TestAuditor_PublishFailure(t *testing.T) {
	t.Parallel()

	errDown := errors.New("connection closed")
	auditor, err := NewAuditor(&fakePublisher{err: errDown}, "calls")
	require.NoError(t, err)

	err = auditor.ResponseInterceptor()(context.Background(), &paykit.Request{}, &paykit.Response{})
	require.ErrorIs(t, err, errDown)
	assert.Contains(t, err.Error(), "calls")
}

func TestAuditor_ThroughChain(t *testing.T) {
	t.Parallel()

	publisher := &fakePublisher{}
	auditor, err := NewAuditor(publisher, "")
	require.NoError(t, err)

	chain := paykit.NewInterceptorChain()
	chain.AddResponseInterceptor(auditor.ResponseInterceptor())

	for range 3 {
		require.NoError(t, chain.ExecuteResponseInterceptors(
			context.Background(),
			&paykit.Request{Method: http.MethodGet, Path: "/v1/prices"},
			&paykit.Response{StatusCode: http.StatusOK},
		))
	}

	assert.Len(t, publisher.payloads, 3)
}
