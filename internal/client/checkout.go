package client

import (
	"context"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const checkoutSessionsResource = "checkout/sessions"

// CheckoutClient implements paykit.CheckoutClient.
type CheckoutClient struct {
	requester http.Requester
}

// NewCheckoutClient creates a new checkout client.
func NewCheckoutClient(requester http.Requester) *CheckoutClient {
	return &CheckoutClient{
		requester: requester,
	}
}

// CreateSession implements paykit.CheckoutClient.CreateSession.
func (c *CheckoutClient) CreateSession(ctx context.Context, request *paykit.CheckoutSessionCreateRequest) paykit.Result[paykit.CheckoutSession] {
	return paykit.Decode[paykit.CheckoutSession](c.requester.Post(ctx, collectionPath(checkoutSessionsResource), request))
}

// GetSession implements paykit.CheckoutClient.GetSession.
func (c *CheckoutClient) GetSession(ctx context.Context, id string) paykit.Result[paykit.CheckoutSession] {
	if id == "" {
		return missingID[paykit.CheckoutSession]("checkout session")
	}

	return paykit.Decode[paykit.CheckoutSession](c.requester.Get(ctx, resourcePath(checkoutSessionsResource, id), nil))
}

// ExpireSession implements paykit.CheckoutClient.ExpireSession. An open
// session stops accepting payment immediately.
func (c *CheckoutClient) ExpireSession(ctx context.Context, id string) paykit.Result[paykit.CheckoutSession] {
	if id == "" {
		return missingID[paykit.CheckoutSession]("checkout session")
	}

	return paykit.Decode[paykit.CheckoutSession](c.requester.Post(ctx, resourcePath(checkoutSessionsResource, id, "expire"), nil))
}
