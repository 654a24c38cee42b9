package payclient //nolint:testpackage // exercises the lookup-injected constructors

import (
	"testing"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) paykit.EnvLookup {
	return func(key string) (string, bool) {
		value, ok := values[key]

		return value, ok
	}
}

func TestNewProjectClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    *paykit.Options
		env     map[string]string
		wantErr error
	}{
		{name: "explicit key", opts: &paykit.Options{APIKey: "sk_test_1"}},
		{name: "key from environment", opts: &paykit.Options{}, env: map[string]string{paykit.EnvAPIKey: "sk_env"}},
		{name: "missing key", opts: &paykit.Options{}, wantErr: paykit.ErrCredentialRequired},
		{name: "organization key", opts: &paykit.Options{APIKey: "org_test_1"}, wantErr: paykit.ErrCredentialScopeMismatch},
		{name: "nil options", wantErr: paykit.ErrOptionsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := newProjectClient(tt.opts, envOf(tt.env))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NotNil(t, client.Products())
			assert.NotNil(t, client.Subscriptions())
		})
	}
}

func TestNewOrganizationClient(t *testing.T) {
	t.Parallel()

	client, err := newOrganizationClient(&paykit.Options{}, envOf(map[string]string{
		paykit.EnvAPIKey:    "sk_env",
		paykit.EnvOrgAPIKey: "org_env",
	}))
	require.NoError(t, err)
	assert.NotNil(t, client.Projects())

	_, err = newOrganizationClient(&paykit.Options{APIKey: "sk_test_1"}, envOf(nil))
	require.ErrorIs(t, err, paykit.ErrCredentialScopeMismatch)
	assert.True(t, paykit.IsConfigurationError(err))
}

func TestNewProjectClient_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(paykit.EnvAPIKey, "sk_from_env")

	client, err := NewProjectClient(&paykit.Options{})
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = NewOrganizationClient(&paykit.Options{APIKey: "sk_from_env"})
	require.ErrorIs(t, err, paykit.ErrCredentialScopeMismatch)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := NewWithAPIKey("sk_test_1")
	require.NoError(t, err)
	assert.NotNil(t, client.Checkout())
}
