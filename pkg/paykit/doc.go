// Package paykit provides types, interfaces, and helpers for working with the
// PayKit payment platform API.
//
// # Overview
//
// The paykit package defines the domain types (Product, Price, Customer,
// Subscription, CheckoutSession, ConnectedAccount, Project), the interfaces
// for resource-oriented clients, and the Result type every call returns. A
// concrete implementation is provided by the payclient package, which wires
// configuration, transport and authentication.
//
// Getting a client
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
//	  cli, err := payclient.NewProjectClient(&paykit.Options{APIKey: "sk_test_123"})
//	  if err != nil { log.Fatal(err) }
//
//	  res := cli.Products().List(context.Background(), paykit.NewQueryParams().WithLimit(20))
//	  if res.Error != nil { log.Fatal(res.Error) }
//	  _ = res.Data
//	}
//
// # Results and errors
//
// Calls never return a Go error. Each returns a Result carrying either Data or
// a *ClientError with a stable Code (not_found, rate_limit_exceeded,
// network_error, timeout_error, invalid_json_response, ...) and the HTTP
// status (0 when the server was never reached). Result.Unwrap converts to the
// usual (value, error) pair, and helpers such as IsNotFound and IsTimeout
// branch on the code. Invalid configuration is the one exception: it is
// reported by the constructor as a *ConfigurationError.
//
// # Key casing
//
// Under CasingNormalize (the default) response keys are rewritten to
// snake_case and request body keys to camelCase, so the snake_case field tags
// of this package work against a camelCase wire format. CasingPreserve leaves
// keys untouched. The rewrite is recursive and also applies to Metadata keys.
//
// # Interceptors
//
// InterceptorChain runs hooks around every call. HeaderInterceptor adds
// headers and RateLimitInterceptor paces calls through a rate.Limiter.
// LoggingInterceptor and LoggingResponseInterceptor log, while
// MetricsResponseInterceptor aggregates per-endpoint counters in a
// MetricsCollector.
package paykit
