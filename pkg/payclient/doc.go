// Package payclient provides the primary entry point for constructing PayKit
// API clients that implement the paykit.Client and paykit.OrganizationClient
// interfaces.
//
// It validates configuration and wires the HTTP transport on top of the
// resource interfaces and types defined in the paykit package. Most
// applications should import payclient to build a client, then use the
// returned value to reach resource clients such as Products(), Customers()
// or Subscriptions().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/paykit/pkg/paykit"
//	  "github.com/fivetwenty-io/paykit/pkg/payclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Key read from PAYKIT_API_KEY.
//	  cli, err := payclient.NewProjectClient(&paykit.Options{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or explicit, against a sandbox origin with a shorter deadline.
//	  cli, err = payclient.NewProjectClient(&paykit.Options{
//	    APIKey:  "sk_test_123",
//	    BaseURL: "https://sandbox.paykit.io",
//	    Timeout: 10 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res := cli.Customers().Get(ctx, "cus_123")
//	  if paykit.IsNotFound(res.Err()) { return }
//	}
//
// # Organization keys
//
// NewOrganizationClient accepts only "org_" keys and exposes Projects().
// Passing an organization key to NewProjectClient, or a project key to
// NewOrganizationClient, fails with paykit.ErrCredentialScopeMismatch before
// any request is made.
package payclient
