package client

import (
	"context"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const accountsResource = "accounts"

// ConnectedAccountsClient implements paykit.ConnectedAccountsClient.
type ConnectedAccountsClient struct {
	requester http.Requester
}

// NewConnectedAccountsClient creates a new connected accounts client.
func NewConnectedAccountsClient(requester http.Requester) *ConnectedAccountsClient {
	return &ConnectedAccountsClient{
		requester: requester,
	}
}

// Create implements paykit.ConnectedAccountsClient.Create.
func (c *ConnectedAccountsClient) Create(ctx context.Context, request *paykit.ConnectedAccountCreateRequest) paykit.Result[paykit.ConnectedAccount] {
	return paykit.Decode[paykit.ConnectedAccount](c.requester.Post(ctx, collectionPath(accountsResource), request))
}

// Get implements paykit.ConnectedAccountsClient.Get.
func (c *ConnectedAccountsClient) Get(ctx context.Context, id string) paykit.Result[paykit.ConnectedAccount] {
	if id == "" {
		return missingID[paykit.ConnectedAccount]("account")
	}

	return paykit.Decode[paykit.ConnectedAccount](c.requester.Get(ctx, resourcePath(accountsResource, id), nil))
}

// List implements paykit.ConnectedAccountsClient.List.
func (c *ConnectedAccountsClient) List(ctx context.Context, params *paykit.QueryParams) paykit.Result[paykit.ListResponse[paykit.ConnectedAccount]] {
	return paykit.Decode[paykit.ListResponse[paykit.ConnectedAccount]](
		c.requester.Get(ctx, collectionPath(accountsResource), queryValues(params)),
	)
}

// Update implements paykit.ConnectedAccountsClient.Update.
func (c *ConnectedAccountsClient) Update(ctx context.Context, id string, request *paykit.ConnectedAccountUpdateRequest) paykit.Result[paykit.ConnectedAccount] {
	if id == "" {
		return missingID[paykit.ConnectedAccount]("account")
	}

	return paykit.Decode[paykit.ConnectedAccount](c.requester.Put(ctx, resourcePath(accountsResource, id), request))
}

// Delete implements paykit.ConnectedAccountsClient.Delete.
func (c *ConnectedAccountsClient) Delete(ctx context.Context, id string) paykit.Result[paykit.DeleteResponse] {
	if id == "" {
		return missingID[paykit.DeleteResponse]("account")
	}

	return paykit.Decode[paykit.DeleteResponse](c.requester.Delete(ctx, resourcePath(accountsResource, id)))
}

// CreateOnboardingLink implements paykit.ConnectedAccountsClient.CreateOnboardingLink.
func (c *ConnectedAccountsClient) CreateOnboardingLink(ctx context.Context, id string, request *paykit.OnboardingLinkRequest) paykit.Result[paykit.OnboardingLink] {
	if id == "" {
		return missingID[paykit.OnboardingLink]("account")
	}

	return paykit.Decode[paykit.OnboardingLink](
		c.requester.Post(ctx, resourcePath(accountsResource, id, "onboarding_links"), request),
	)
}
