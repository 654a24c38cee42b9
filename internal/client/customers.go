package client

import (
	"context"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const customersResource = "customers"

// CustomersClient implements paykit.CustomersClient.
type CustomersClient struct {
	requester http.Requester
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(requester http.Requester) *CustomersClient {
	return &CustomersClient{
		requester: requester,
	}
}

// Create implements paykit.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *paykit.CustomerCreateRequest) paykit.Result[paykit.Customer] {
	return paykit.Decode[paykit.Customer](c.requester.Post(ctx, collectionPath(customersResource), request))
}

// Get implements paykit.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) paykit.Result[paykit.Customer] {
	if id == "" {
		return missingID[paykit.Customer]("customer")
	}

	return paykit.Decode[paykit.Customer](c.requester.Get(ctx, resourcePath(customersResource, id), nil))
}

// List implements paykit.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *paykit.QueryParams) paykit.Result[paykit.ListResponse[paykit.Customer]] {
	return paykit.Decode[paykit.ListResponse[paykit.Customer]](
		c.requester.Get(ctx, collectionPath(customersResource), queryValues(params)),
	)
}

// Update implements paykit.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, request *paykit.CustomerUpdateRequest) paykit.Result[paykit.Customer] {
	if id == "" {
		return missingID[paykit.Customer]("customer")
	}

	return paykit.Decode[paykit.Customer](c.requester.Put(ctx, resourcePath(customersResource, id), request))
}

// Delete implements paykit.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) paykit.Result[paykit.DeleteResponse] {
	if id == "" {
		return missingID[paykit.DeleteResponse]("customer")
	}

	return paykit.Decode[paykit.DeleteResponse](c.requester.Delete(ctx, resourcePath(customersResource, id)))
}
