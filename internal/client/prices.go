package client

import (
	"context"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const pricesResource = "prices"

// PricesClient implements paykit.PricesClient. Prices cannot be deleted,
// only deactivated through Update.
type PricesClient struct {
	requester http.Requester
}

// NewPricesClient creates a new prices client.
func NewPricesClient(requester http.Requester) *PricesClient {
	return &PricesClient{
		requester: requester,
	}
}

// Create implements paykit.PricesClient.Create.
func (c *PricesClient) Create(ctx context.Context, request *paykit.PriceCreateRequest) paykit.Result[paykit.Price] {
	return paykit.Decode[paykit.Price](c.requester.Post(ctx, collectionPath(pricesResource), request))
}

// Get implements paykit.PricesClient.Get.
func (c *PricesClient) Get(ctx context.Context, id string) paykit.Result[paykit.Price] {
	if id == "" {
		return missingID[paykit.Price]("price")
	}

	return paykit.Decode[paykit.Price](c.requester.Get(ctx, resourcePath(pricesResource, id), nil))
}

// List implements paykit.PricesClient.List.
func (c *PricesClient) List(ctx context.Context, params *paykit.QueryParams) paykit.Result[paykit.ListResponse[paykit.Price]] {
	return paykit.Decode[paykit.ListResponse[paykit.Price]](
		c.requester.Get(ctx, collectionPath(pricesResource), queryValues(params)),
	)
}

// Update implements paykit.PricesClient.Update.
func (c *PricesClient) Update(ctx context.Context, id string, request *paykit.PriceUpdateRequest) paykit.Result[paykit.Price] {
	if id == "" {
		return missingID[paykit.Price]("price")
	}

	return paykit.Decode[paykit.Price](c.requester.Put(ctx, resourcePath(pricesResource, id), request))
}
