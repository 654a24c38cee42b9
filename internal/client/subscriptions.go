package client

import (
	"context"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const subscriptionsResource = "subscriptions"

// SubscriptionsClient implements paykit.SubscriptionsClient.
type SubscriptionsClient struct {
	requester http.Requester
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(requester http.Requester) *SubscriptionsClient {
	return &SubscriptionsClient{
		requester: requester,
	}
}

// Create implements paykit.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *paykit.SubscriptionCreateRequest) paykit.Result[paykit.Subscription] {
	return paykit.Decode[paykit.Subscription](c.requester.Post(ctx, collectionPath(subscriptionsResource), request))
}

// Get implements paykit.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string) paykit.Result[paykit.Subscription] {
	if id == "" {
		return missingID[paykit.Subscription]("subscription")
	}

	return paykit.Decode[paykit.Subscription](c.requester.Get(ctx, resourcePath(subscriptionsResource, id), nil))
}

// List implements paykit.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, params *paykit.QueryParams) paykit.Result[paykit.ListResponse[paykit.Subscription]] {
	return paykit.Decode[paykit.ListResponse[paykit.Subscription]](
		c.requester.Get(ctx, collectionPath(subscriptionsResource), queryValues(params)),
	)
}

// Update implements paykit.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, id string, request *paykit.SubscriptionUpdateRequest) paykit.Result[paykit.Subscription] {
	if id == "" {
		return missingID[paykit.Subscription]("subscription")
	}

	return paykit.Decode[paykit.Subscription](c.requester.Put(ctx, resourcePath(subscriptionsResource, id), request))
}

// Cancel implements paykit.SubscriptionsClient.Cancel. The server returns the
// canceled subscription rather than a deletion marker.
func (c *SubscriptionsClient) Cancel(ctx context.Context, id string) paykit.Result[paykit.Subscription] {
	if id == "" {
		return missingID[paykit.Subscription]("subscription")
	}

	return paykit.Decode[paykit.Subscription](c.requester.Delete(ctx, resourcePath(subscriptionsResource, id)))
}
