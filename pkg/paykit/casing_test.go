package paykit_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeCaseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"customerId", "customer_id"},
		{"productGroupId", "product_group_id"},
		{"already_snake", "already_snake"},
		{"id", "id"},
		{"", ""},
		{"URLPath", "urlpath"},
		{"unitAmount2", "unit_amount2"},
		{"htmlURL", "html_url"},
		{"Name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := paykit.SnakeCaseKey(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, paykit.SnakeCaseKey(got), "must be idempotent")
		})
	}
}

func TestCamelCaseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"customer_id", "customerId"},
		{"product_group_id", "productGroupId"},
		{"alreadyCamel", "alreadyCamel"},
		{"id", "id"},
		{"", ""},
		{"_private", "_private"},
		{"trailing_", "trailing_"},
		{"double__under", "double__under"},
		{"line_2_items", "line_2Items"},
		{"unit_amount2", "unitAmount2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := paykit.CamelCaseKey(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, paykit.CamelCaseKey(got), "must be idempotent")
		})
	}
}

func TestCamelCaseKey_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"customer_id", "success_url", "cancel_at_period_end", "interval_count"} {
		assert.Equal(t, key, paykit.SnakeCaseKey(paykit.CamelCaseKey(key)))
	}
}

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	t.Run("nested document", func(t *testing.T) {
		t.Parallel()

		var input any

		err := json.Unmarshal([]byte(`{"customerId":"c1","tags":["a"],"lineItems":[{"priceId":"p1","quantity":2}],"metadata":null}`), &input)
		require.NoError(t, err)

		out, err := json.Marshal(paykit.ToSnakeCase(input))
		require.NoError(t, err)
		assert.JSONEq(t, `{"customer_id":"c1","tags":["a"],"line_items":[{"price_id":"p1","quantity":2}],"metadata":null}`, string(out))
	})

	t.Run("scalars and nil pass through", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, paykit.ToSnakeCase(nil))
		assert.Equal(t, "someValue", paykit.ToSnakeCase("someValue"))
		assert.Equal(t, 3.5, paykit.ToSnakeCase(3.5))
		assert.Equal(t, true, paykit.ToSnakeCase(true))
	})

	t.Run("arrays keep order and length", func(t *testing.T) {
		t.Parallel()

		input := []any{map[string]any{"aB": 1}, "x", nil, []any{map[string]any{"cD": 2}}}
		out, ok := paykit.ToSnakeCase(input).([]any)
		require.True(t, ok)
		require.Len(t, out, 4)
		assert.Equal(t, map[string]any{"a_b": 1}, out[0])
		assert.Equal(t, "x", out[1])
		assert.Nil(t, out[2])
		assert.Equal(t, []any{map[string]any{"c_d": 2}}, out[3])
	})

	t.Run("input is not modified", func(t *testing.T) {
		t.Parallel()

		input := map[string]any{"customerId": "c1", "nested": map[string]any{"priceId": "p1"}}
		_ = paykit.ToSnakeCase(input)

		assert.Equal(t, map[string]any{"customerId": "c1", "nested": map[string]any{"priceId": "p1"}}, input)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		input := map[string]any{"customerId": "c1", "items": []any{map[string]any{"priceId": "p1"}}}
		once := paykit.ToSnakeCase(input)
		assert.Equal(t, once, paykit.ToSnakeCase(once))
	})
}

func TestToCamelCase(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"customer_id": "c1",
		"line_items":  []any{map[string]any{"price_id": "p1"}},
	}

	out := paykit.ToCamelCase(input)
	assert.Equal(t, map[string]any{
		"customerId": "c1",
		"lineItems":  []any{map[string]any{"priceId": "p1"}},
	}, out)
	assert.Equal(t, out, paykit.ToCamelCase(out))
}

func TestTransformKeys_Collisions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     map[string]any
		transform func(any) any
		expected  map[string]any
	}{
		{
			name:      "snake key wins when normalizing",
			input:     map[string]any{"customerId": "A", "customer_id": "B"},
			transform: paykit.ToSnakeCase,
			expected:  map[string]any{"customer_id": "B"},
		},
		{
			name:      "camel key wins when sending",
			input:     map[string]any{"customerId": "A", "customer_id": "B"},
			transform: paykit.ToCamelCase,
			expected:  map[string]any{"customerId": "A"},
		},
		{
			name:      "smallest source key wins otherwise",
			input:     map[string]any{"customerId": "A", "CustomerId": "C"},
			transform: paykit.ToSnakeCase,
			expected:  map[string]any{"customer_id": "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for range 100 {
				assert.Equal(t, tt.expected, tt.transform(tt.input))
			}
		})
	}
}
