package client

import (
	"context"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

const productsResource = "products"

// ProductsClient implements paykit.ProductsClient.
type ProductsClient struct {
	requester http.Requester
}

// NewProductsClient creates a new products client.
func NewProductsClient(requester http.Requester) *ProductsClient {
	return &ProductsClient{
		requester: requester,
	}
}

// Create implements paykit.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, request *paykit.ProductCreateRequest) paykit.Result[paykit.Product] {
	return paykit.Decode[paykit.Product](c.requester.Post(ctx, collectionPath(productsResource), request))
}

// Get implements paykit.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id string) paykit.Result[paykit.Product] {
	if id == "" {
		return missingID[paykit.Product]("product")
	}

	return paykit.Decode[paykit.Product](c.requester.Get(ctx, resourcePath(productsResource, id), nil))
}

// List implements paykit.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, params *paykit.QueryParams) paykit.Result[paykit.ListResponse[paykit.Product]] {
	return paykit.Decode[paykit.ListResponse[paykit.Product]](
		c.requester.Get(ctx, collectionPath(productsResource), queryValues(params)),
	)
}

// Update implements paykit.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, id string, request *paykit.ProductUpdateRequest) paykit.Result[paykit.Product] {
	if id == "" {
		return missingID[paykit.Product]("product")
	}

	return paykit.Decode[paykit.Product](c.requester.Put(ctx, resourcePath(productsResource, id), request))
}

// Delete implements paykit.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, id string) paykit.Result[paykit.DeleteResponse] {
	if id == "" {
		return missingID[paykit.DeleteResponse]("product")
	}

	return paykit.Decode[paykit.DeleteResponse](c.requester.Delete(ctx, resourcePath(productsResource, id)))
}
