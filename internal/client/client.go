package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/fivetwenty-io/paykit/internal/http"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// Static errors for err113 compliance.
var (
	ErrConfigurationRequired = errors.New("configuration is required")
	ErrScopeMismatch         = errors.New("configuration was validated for a different credential scope")
)

// Client implements paykit.Client.
type Client struct {
	httpClient *http.Client
	config     *paykit.Configuration

	// Resource clients
	products          *ProductsClient
	prices            *PricesClient
	checkout          *CheckoutClient
	customers         *CustomersClient
	subscriptions     *SubscriptionsClient
	connectedAccounts *ConnectedAccountsClient
}

// OrganizationClient implements paykit.OrganizationClient.
type OrganizationClient struct {
	httpClient *http.Client
	config     *paykit.Configuration

	projects *ProjectsClient
}

func createHTTPClientOptions(opts *paykit.Options) []http.Option {
	var httpOpts []http.Option

	if opts == nil {
		return httpOpts
	}

	if opts.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(opts.Logger))
	}

	if opts.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if opts.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(opts.UserAgent))
	}

	if opts.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(opts.HTTPClient))
	}

	if opts.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(opts.Interceptors))
	}

	return httpOpts
}

// New creates a project-scoped client from a validated configuration. opts
// supplies the ambient settings (logger, transport, interceptors); its
// connection fields are ignored.
func New(config *paykit.Configuration, opts *paykit.Options) (*Client, error) {
	if config == nil {
		return nil, ErrConfigurationRequired
	}

	if config.Scope() == paykit.ScopeOrganization {
		return nil, ErrScopeMismatch
	}

	client := &Client{
		httpClient: http.NewClient(config, createHTTPClientOptions(opts)...),
		config:     config,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewOrganization creates an organization-admin client from a validated
// configuration.
func NewOrganization(config *paykit.Configuration, opts *paykit.Options) (*OrganizationClient, error) {
	if config == nil {
		return nil, ErrConfigurationRequired
	}

	if config.Scope() == paykit.ScopeProject {
		return nil, ErrScopeMismatch
	}

	httpClient := http.NewClient(config, createHTTPClientOptions(opts)...)

	return &OrganizationClient{
		httpClient: httpClient,
		config:     config,
		projects:   NewProjectsClient(httpClient),
	}, nil
}

func (c *Client) initializeResourceClients() {
	c.products = NewProductsClient(c.httpClient)
	c.prices = NewPricesClient(c.httpClient)
	c.checkout = NewCheckoutClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.connectedAccounts = NewConnectedAccountsClient(c.httpClient)
}

// Configuration returns the configuration the client was built from.
func (c *Client) Configuration() *paykit.Configuration {
	return c.config
}

// Raw performs an arbitrary call and returns the undecoded result.
func (c *Client) Raw(ctx context.Context, method, path string, query url.Values, body interface{}) paykit.Result[json.RawMessage] {
	return c.httpClient.Execute(ctx, &http.Request{Method: method, Path: path, Query: query, Body: body})
}

// Products implements paykit.Client.Products.
func (c *Client) Products() paykit.ProductsClient {
	return c.products
}

// Prices implements paykit.Client.Prices.
func (c *Client) Prices() paykit.PricesClient {
	return c.prices
}

// Checkout implements paykit.Client.Checkout.
func (c *Client) Checkout() paykit.CheckoutClient {
	return c.checkout
}

// Customers implements paykit.Client.Customers.
func (c *Client) Customers() paykit.CustomersClient {
	return c.customers
}

// Subscriptions implements paykit.Client.Subscriptions.
func (c *Client) Subscriptions() paykit.SubscriptionsClient {
	return c.subscriptions
}

// ConnectedAccounts implements paykit.Client.ConnectedAccounts.
func (c *Client) ConnectedAccounts() paykit.ConnectedAccountsClient {
	return c.connectedAccounts
}

// Configuration returns the configuration the client was built from.
func (c *OrganizationClient) Configuration() *paykit.Configuration {
	return c.config
}

// Raw performs an arbitrary call and returns the undecoded result.
func (c *OrganizationClient) Raw(ctx context.Context, method, path string, query url.Values, body interface{}) paykit.Result[json.RawMessage] {
	return c.httpClient.Execute(ctx, &http.Request{Method: method, Path: path, Query: query, Body: body})
}

// Projects implements paykit.OrganizationClient.Projects.
func (c *OrganizationClient) Projects() paykit.ProjectsClient {
	return c.projects
}
