package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

func TestPricesClient(t *testing.T) {
	t.Parallel()

	inactive := false

	RunOperationTests(t, NewTestClient, []TestOperation[*Client, paykit.Price]{
		{
			Name:           "create recurring",
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/v1/prices",
			ExpectedBody:   `{"productId":"prod_1","currency":"usd","unitAmount":1500,"recurring":{"interval":"month","intervalCount":1}}`,
			StatusCode:     http.StatusCreated,
			Response:       `{"id":"price_1","productId":"prod_1","currency":"usd","unitAmount":1500,"type":"recurring","recurring":{"interval":"month","intervalCount":1},"active":true}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.Price] {
				return client.Prices().Create(ctx, &paykit.PriceCreateRequest{
					ProductID:  "prod_1",
					Currency:   "usd",
					UnitAmount: 1500,
					Recurring:  &paykit.PriceRecurring{Interval: "month", IntervalCount: 1},
				})
			},
			Check: func(t *testing.T, price paykit.Price) {
				t.Helper()
				assert.Equal(t, int64(1500), price.UnitAmount)
				assert.Equal(t, paykit.PriceTypeRecurring, price.Type)
				require.NotNil(t, price.Recurring)
				assert.Equal(t, 1, price.Recurring.IntervalCount)
			},
		},
		{
			Name:           "get",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/prices/price_1",
			Response:       `{"id":"price_1","type":"one_time"}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.Price] {
				return client.Prices().Get(ctx, "price_1")
			},
			Check: func(t *testing.T, price paykit.Price) {
				t.Helper()
				assert.Equal(t, paykit.PriceTypeOneTime, price.Type)
				assert.Nil(t, price.Recurring)
			},
		},
		{
			Name:           "deactivate",
			ExpectedMethod: http.MethodPut,
			ExpectedPath:   "/v1/prices/price_1",
			ExpectedBody:   `{"active":false}`,
			Response:       `{"id":"price_1","active":false}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.Price] {
				return client.Prices().Update(ctx, "price_1", &paykit.PriceUpdateRequest{Active: &inactive})
			},
		},
		{
			Name:           "validation error",
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/v1/prices",
			ExpectedBody:   `{"productId":"","currency":"","unitAmount":0}`,
			StatusCode:     http.StatusUnprocessableEntity,
			Response:       `{"message":"currency is required"}`,
			WantCode:       paykit.CodeValidationError,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.Price] {
				return client.Prices().Create(ctx, &paykit.PriceCreateRequest{})
			},
		},
	})

	RunOperationTests(t, NewTestClient, []TestOperation[*Client, paykit.ListResponse[paykit.Price]]{
		{
			Name:           "list expanded",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/prices",
			ExpectedQuery:  "expand=product%2Crecurring",
			Response:       `{"data":[{"id":"price_1"}],"hasMore":false}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.ListResponse[paykit.Price]] {
				return client.Prices().List(ctx, paykit.NewQueryParams().WithExpand("recurring", "product"))
			},
		},
	})
}
