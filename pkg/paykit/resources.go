package paykit

import "time"

// Project is an isolated tenant inside an organization.
type Project struct {
	ID        string    `json:"id"                 yaml:"id"`
	Name      string    `json:"name"               yaml:"name"`
	Mode      string    `json:"mode"               yaml:"mode"`
	Metadata  Metadata  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"         yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at"         yaml:"updated_at"`
}

// ProjectCreateRequest is the payload for creating a project.
type ProjectCreateRequest struct {
	Name     string   `json:"name"               yaml:"name"`
	Mode     string   `json:"mode,omitempty"     yaml:"mode,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ProjectUpdateRequest is the payload for updating a project.
type ProjectUpdateRequest struct {
	Name     *string  `json:"name,omitempty"     yaml:"name,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Product is something a project sells.
type Product struct {
	ID             string    `json:"id"                         yaml:"id"`
	Name           string    `json:"name"                       yaml:"name"`
	Description    string    `json:"description,omitempty"      yaml:"description,omitempty"`
	Active         bool      `json:"active"                     yaml:"active"`
	ProductGroupID string    `json:"product_group_id,omitempty" yaml:"product_group_id,omitempty"`
	DefaultPriceID string    `json:"default_price_id,omitempty" yaml:"default_price_id,omitempty"`
	Metadata       Metadata  `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
	CreatedAt      time.Time `json:"created_at"                 yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"                 yaml:"updated_at"`
}

// ProductCreateRequest is the payload for creating a product.
type ProductCreateRequest struct {
	Name           string   `json:"name"                       yaml:"name"`
	Description    string   `json:"description,omitempty"      yaml:"description,omitempty"`
	Active         *bool    `json:"active,omitempty"           yaml:"active,omitempty"`
	ProductGroupID string   `json:"product_group_id,omitempty" yaml:"product_group_id,omitempty"`
	Metadata       Metadata `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
}

// ProductUpdateRequest is the payload for updating a product.
type ProductUpdateRequest struct {
	Name           *string  `json:"name,omitempty"             yaml:"name,omitempty"`
	Description    *string  `json:"description,omitempty"      yaml:"description,omitempty"`
	Active         *bool    `json:"active,omitempty"           yaml:"active,omitempty"`
	DefaultPriceID *string  `json:"default_price_id,omitempty" yaml:"default_price_id,omitempty"`
	Metadata       Metadata `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
}

// Price types.
const (
	PriceTypeOneTime   = "one_time"
	PriceTypeRecurring = "recurring"
)

// PriceRecurring describes the billing cycle of a recurring price.
type PriceRecurring struct {
	Interval      string `json:"interval"       yaml:"interval"`
	IntervalCount int    `json:"interval_count" yaml:"interval_count"`
}

// Price is an amount charged for a product.
type Price struct {
	ID         string          `json:"id"                  yaml:"id"`
	ProductID  string          `json:"product_id"          yaml:"product_id"`
	Currency   string          `json:"currency"            yaml:"currency"`
	UnitAmount int64           `json:"unit_amount"         yaml:"unit_amount"`
	Type       string          `json:"type"                yaml:"type"`
	Recurring  *PriceRecurring `json:"recurring,omitempty" yaml:"recurring,omitempty"`
	Active     bool            `json:"active"              yaml:"active"`
	Nickname   string          `json:"nickname,omitempty"  yaml:"nickname,omitempty"`
	Metadata   Metadata        `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"          yaml:"created_at"`
}

// PriceCreateRequest is the payload for creating a price.
type PriceCreateRequest struct {
	ProductID  string          `json:"product_id"          yaml:"product_id"`
	Currency   string          `json:"currency"            yaml:"currency"`
	UnitAmount int64           `json:"unit_amount"         yaml:"unit_amount"`
	Recurring  *PriceRecurring `json:"recurring,omitempty" yaml:"recurring,omitempty"`
	Nickname   string          `json:"nickname,omitempty"  yaml:"nickname,omitempty"`
	Metadata   Metadata        `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
}

// PriceUpdateRequest is the payload for updating a price. Amounts are
// immutable; create a new price instead.
type PriceUpdateRequest struct {
	Active   *bool    `json:"active,omitempty"   yaml:"active,omitempty"`
	Nickname *string  `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Checkout session modes.
const (
	CheckoutModePayment      = "payment"
	CheckoutModeSubscription = "subscription"
)

// CheckoutLineItem is one price and quantity in a checkout session.
type CheckoutLineItem struct {
	PriceID  string `json:"price_id" yaml:"price_id"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// CheckoutSession is a hosted payment page.
type CheckoutSession struct {
	ID          string             `json:"id"                    yaml:"id"`
	URL         string             `json:"url"                   yaml:"url"`
	Status      string             `json:"status"                yaml:"status"`
	Mode        string             `json:"mode"                  yaml:"mode"`
	CustomerID  string             `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	LineItems   []CheckoutLineItem `json:"line_items"            yaml:"line_items"`
	SuccessURL  string             `json:"success_url"           yaml:"success_url"`
	CancelURL   string             `json:"cancel_url,omitempty"  yaml:"cancel_url,omitempty"`
	AmountTotal int64              `json:"amount_total"          yaml:"amount_total"`
	Currency    string             `json:"currency"              yaml:"currency"`
	ExpiresAt   time.Time          `json:"expires_at"            yaml:"expires_at"`
	CreatedAt   time.Time          `json:"created_at"            yaml:"created_at"`
}

// CheckoutSessionCreateRequest is the payload for creating a checkout session.
type CheckoutSessionCreateRequest struct {
	Mode       string             `json:"mode"                  yaml:"mode"`
	LineItems  []CheckoutLineItem `json:"line_items"            yaml:"line_items"`
	SuccessURL string             `json:"success_url"           yaml:"success_url"`
	CancelURL  string             `json:"cancel_url,omitempty"  yaml:"cancel_url,omitempty"`
	CustomerID string             `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	Metadata   Metadata           `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// Customer is a buyer known to a project.
type Customer struct {
	ID        string    `json:"id"                 yaml:"id"`
	Email     string    `json:"email"              yaml:"email"`
	Name      string    `json:"name,omitempty"     yaml:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Metadata  Metadata  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"         yaml:"created_at"`
}

// CustomerCreateRequest is the payload for creating a customer.
type CustomerCreateRequest struct {
	Email    string   `json:"email"              yaml:"email"`
	Name     string   `json:"name,omitempty"     yaml:"name,omitempty"`
	Phone    string   `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// CustomerUpdateRequest is the payload for updating a customer.
type CustomerUpdateRequest struct {
	Email    *string  `json:"email,omitempty"    yaml:"email,omitempty"`
	Name     *string  `json:"name,omitempty"     yaml:"name,omitempty"`
	Phone    *string  `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// SubscriptionItem is one price billed by a subscription.
type SubscriptionItem struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	PriceID  string `json:"price_id"     yaml:"price_id"`
	Quantity int    `json:"quantity"     yaml:"quantity"`
}

// Subscription bills a customer on a recurring schedule.
type Subscription struct {
	ID                 string             `json:"id"                    yaml:"id"`
	CustomerID         string             `json:"customer_id"           yaml:"customer_id"`
	Status             string             `json:"status"                yaml:"status"`
	Items              []SubscriptionItem `json:"items"                 yaml:"items"`
	CurrentPeriodStart time.Time          `json:"current_period_start"  yaml:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end"    yaml:"current_period_end"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end"  yaml:"cancel_at_period_end"`
	CanceledAt         *time.Time         `json:"canceled_at,omitempty" yaml:"canceled_at,omitempty"`
	Metadata           Metadata           `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
	CreatedAt          time.Time          `json:"created_at"            yaml:"created_at"`
}

// SubscriptionCreateRequest is the payload for creating a subscription.
type SubscriptionCreateRequest struct {
	CustomerID string             `json:"customer_id"          yaml:"customer_id"`
	Items      []SubscriptionItem `json:"items"                yaml:"items"`
	TrialDays  *int               `json:"trial_days,omitempty" yaml:"trial_days,omitempty"`
	Metadata   Metadata           `json:"metadata,omitempty"   yaml:"metadata,omitempty"`
}

// SubscriptionUpdateRequest is the payload for updating a subscription.
type SubscriptionUpdateRequest struct {
	Items             []SubscriptionItem `json:"items,omitempty"                yaml:"items,omitempty"`
	CancelAtPeriodEnd *bool              `json:"cancel_at_period_end,omitempty" yaml:"cancel_at_period_end,omitempty"`
	Metadata          Metadata           `json:"metadata,omitempty"             yaml:"metadata,omitempty"`
}

// ConnectedAccount is a seller onboarded under a platform project.
type ConnectedAccount struct {
	ID               string    `json:"id"                      yaml:"id"`
	Type             string    `json:"type"                    yaml:"type"`
	Email            string    `json:"email,omitempty"         yaml:"email,omitempty"`
	Country          string    `json:"country"                 yaml:"country"`
	BusinessName     string    `json:"business_name,omitempty" yaml:"business_name,omitempty"`
	ChargesEnabled   bool      `json:"charges_enabled"         yaml:"charges_enabled"`
	PayoutsEnabled   bool      `json:"payouts_enabled"         yaml:"payouts_enabled"`
	DetailsSubmitted bool      `json:"details_submitted"       yaml:"details_submitted"`
	Metadata         Metadata  `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
	CreatedAt        time.Time `json:"created_at"              yaml:"created_at"`
}

// ConnectedAccountCreateRequest is the payload for creating a connected account.
type ConnectedAccountCreateRequest struct {
	Type         string   `json:"type"                    yaml:"type"`
	Country      string   `json:"country"                 yaml:"country"`
	Email        string   `json:"email,omitempty"         yaml:"email,omitempty"`
	BusinessName string   `json:"business_name,omitempty" yaml:"business_name,omitempty"`
	Metadata     Metadata `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
}

// ConnectedAccountUpdateRequest is the payload for updating a connected account.
type ConnectedAccountUpdateRequest struct {
	Email        *string  `json:"email,omitempty"         yaml:"email,omitempty"`
	BusinessName *string  `json:"business_name,omitempty" yaml:"business_name,omitempty"`
	Metadata     Metadata `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
}

// OnboardingLinkRequest is the payload for creating an onboarding link.
type OnboardingLinkRequest struct {
	RefreshURL string `json:"refresh_url" yaml:"refresh_url"`
	ReturnURL  string `json:"return_url"  yaml:"return_url"`
}

// OnboardingLink is a single-use URL that lets an account holder finish
// onboarding.
type OnboardingLink struct {
	URL       string    `json:"url"        yaml:"url"`
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
}
