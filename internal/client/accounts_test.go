package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

func TestConnectedAccountsClient(t *testing.T) {
	t.Parallel()

	business := "Acme Ltd"

	RunOperationTests(t, NewTestClient, []TestOperation[*Client, paykit.ConnectedAccount]{
		{
			Name:           "create",
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/v1/accounts",
			ExpectedBody:   `{"type":"express","country":"US","businessName":"Acme"}`,
			StatusCode:     http.StatusCreated,
			Response:       `{"id":"acct_1","type":"express","country":"US","businessName":"Acme","chargesEnabled":false,"detailsSubmitted":false}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.ConnectedAccount] {
				return client.ConnectedAccounts().Create(ctx, &paykit.ConnectedAccountCreateRequest{
					Type:         "express",
					Country:      "US",
					BusinessName: "Acme",
				})
			},
			Check: func(t *testing.T, account paykit.ConnectedAccount) {
				t.Helper()
				assert.Equal(t, "Acme", account.BusinessName)
				assert.False(t, account.ChargesEnabled)
			},
		},
		{
			Name:           "get",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/accounts/acct_1",
			Response:       `{"id":"acct_1","payoutsEnabled":true}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.ConnectedAccount] {
				return client.ConnectedAccounts().Get(ctx, "acct_1")
			},
			Check: func(t *testing.T, account paykit.ConnectedAccount) {
				t.Helper()
				assert.True(t, account.PayoutsEnabled)
			},
		},
		{
			Name:           "update",
			ExpectedMethod: http.MethodPut,
			ExpectedPath:   "/v1/accounts/acct_1",
			ExpectedBody:   `{"businessName":"Acme Ltd"}`,
			Response:       `{"id":"acct_1","businessName":"Acme Ltd"}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.ConnectedAccount] {
				return client.ConnectedAccounts().Update(ctx, "acct_1", &paykit.ConnectedAccountUpdateRequest{BusinessName: &business})
			},
		},
	})

	RunOperationTests(t, NewTestClient, []TestOperation[*Client, paykit.OnboardingLink]{
		{
			Name:           "onboarding link",
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/v1/accounts/acct_1/onboarding_links",
			ExpectedBody:   `{"refreshUrl":"https://shop.test/retry","returnUrl":"https://shop.test/done"}`,
			StatusCode:     http.StatusCreated,
			Response:       `{"url":"https://connect.test/xyz","expiresAt":"2024-01-01T00:05:00Z"}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.OnboardingLink] {
				return client.ConnectedAccounts().CreateOnboardingLink(ctx, "acct_1", &paykit.OnboardingLinkRequest{
					RefreshURL: "https://shop.test/retry",
					ReturnURL:  "https://shop.test/done",
				})
			},
			Check: func(t *testing.T, link paykit.OnboardingLink) {
				t.Helper()
				assert.Equal(t, "https://connect.test/xyz", link.URL)
				assert.Equal(t, 5, link.ExpiresAt.Minute())
			},
		},
		{
			Name:     "onboarding link without id",
			WantCode: paykit.CodeInvalidRequest,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.OnboardingLink] {
				return client.ConnectedAccounts().CreateOnboardingLink(ctx, "", &paykit.OnboardingLinkRequest{})
			},
		},
	})

	RunOperationTests(t, NewTestClient, []TestOperation[*Client, paykit.DeleteResponse]{
		{
			Name:           "delete",
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/v1/accounts/acct_1",
			Response:       `{"id":"acct_1","deleted":true}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.DeleteResponse] {
				return client.ConnectedAccounts().Delete(ctx, "acct_1")
			},
		},
	})

	RunOperationTests(t, NewTestClient, []TestOperation[*Client, paykit.ListResponse[paykit.ConnectedAccount]]{
		{
			Name:           "list",
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/accounts",
			Response:       `{"data":[{"id":"acct_1"},{"id":"acct_2"}],"hasMore":true,"nextCursor":"acct_2"}`,
			Call: func(ctx context.Context, client *Client) paykit.Result[paykit.ListResponse[paykit.ConnectedAccount]] {
				return client.ConnectedAccounts().List(ctx, nil)
			},
			Check: func(t *testing.T, list paykit.ListResponse[paykit.ConnectedAccount]) {
				t.Helper()
				assert.Len(t, list.Data, 2)
				assert.Equal(t, "acct_2", list.NextCursor)
			},
		},
	})
}
