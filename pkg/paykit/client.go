package paykit

import "context"

// ProjectsClient manages projects. It needs an organization-admin key.
type ProjectsClient interface {
	Create(ctx context.Context, request *ProjectCreateRequest) Result[Project]
	Get(ctx context.Context, id string) Result[Project]
	List(ctx context.Context, params *QueryParams) Result[ListResponse[Project]]
	Update(ctx context.Context, id string, request *ProjectUpdateRequest) Result[Project]
	Delete(ctx context.Context, id string) Result[DeleteResponse]
}

// ProductsClient manages products.
type ProductsClient interface {
	Create(ctx context.Context, request *ProductCreateRequest) Result[Product]
	Get(ctx context.Context, id string) Result[Product]
	List(ctx context.Context, params *QueryParams) Result[ListResponse[Product]]
	Update(ctx context.Context, id string, request *ProductUpdateRequest) Result[Product]
	Delete(ctx context.Context, id string) Result[DeleteResponse]
}

// PricesClient manages prices.
type PricesClient interface {
	Create(ctx context.Context, request *PriceCreateRequest) Result[Price]
	Get(ctx context.Context, id string) Result[Price]
	List(ctx context.Context, params *QueryParams) Result[ListResponse[Price]]
	Update(ctx context.Context, id string, request *PriceUpdateRequest) Result[Price]
}

// CheckoutClient manages checkout sessions.
type CheckoutClient interface {
	CreateSession(ctx context.Context, request *CheckoutSessionCreateRequest) Result[CheckoutSession]
	GetSession(ctx context.Context, id string) Result[CheckoutSession]
	ExpireSession(ctx context.Context, id string) Result[CheckoutSession]
}

// CustomersClient manages customers.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerCreateRequest) Result[Customer]
	Get(ctx context.Context, id string) Result[Customer]
	List(ctx context.Context, params *QueryParams) Result[ListResponse[Customer]]
	Update(ctx context.Context, id string, request *CustomerUpdateRequest) Result[Customer]
	Delete(ctx context.Context, id string) Result[DeleteResponse]
}

// SubscriptionsClient manages subscriptions.
type SubscriptionsClient interface {
	Create(ctx context.Context, request *SubscriptionCreateRequest) Result[Subscription]
	Get(ctx context.Context, id string) Result[Subscription]
	List(ctx context.Context, params *QueryParams) Result[ListResponse[Subscription]]
	Update(ctx context.Context, id string, request *SubscriptionUpdateRequest) Result[Subscription]
	Cancel(ctx context.Context, id string) Result[Subscription]
}

// ConnectedAccountsClient manages connected accounts.
type ConnectedAccountsClient interface {
	Create(ctx context.Context, request *ConnectedAccountCreateRequest) Result[ConnectedAccount]
	Get(ctx context.Context, id string) Result[ConnectedAccount]
	List(ctx context.Context, params *QueryParams) Result[ListResponse[ConnectedAccount]]
	Update(ctx context.Context, id string, request *ConnectedAccountUpdateRequest) Result[ConnectedAccount]
	Delete(ctx context.Context, id string) Result[DeleteResponse]
	CreateOnboardingLink(ctx context.Context, id string, request *OnboardingLinkRequest) Result[OnboardingLink]
}

// Client is a project-scoped (tenant) client.
type Client interface {
	Products() ProductsClient
	Prices() PricesClient
	Checkout() CheckoutClient
	Customers() CustomersClient
	Subscriptions() SubscriptionsClient
	ConnectedAccounts() ConnectedAccountsClient
}

// OrganizationClient is an organization-admin client.
type OrganizationClient interface {
	Projects() ProjectsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
