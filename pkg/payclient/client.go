// Package payclient provides the main entry point for creating PayKit API clients
package payclient

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/paykit/internal/client"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// NewProjectClient creates a tenant client. The API key comes from
// opts.APIKey or, failing that, PAYKIT_API_KEY and must start with "sk_".
// No network I/O happens here.
func NewProjectClient(opts *paykit.Options) (paykit.Client, error) {
	return newProjectClient(opts, os.LookupEnv)
}

// NewOrganizationClient creates an organization-admin client. The API key
// comes from opts.APIKey or, failing that, PAYKIT_ORG_API_KEY and must start
// with "org_".
func NewOrganizationClient(opts *paykit.Options) (paykit.OrganizationClient, error) {
	return newOrganizationClient(opts, os.LookupEnv)
}

// NewWithAPIKey creates a tenant client with default settings.
func NewWithAPIKey(apiKey string) (paykit.Client, error) {
	return NewProjectClient(&paykit.Options{APIKey: apiKey})
}

func newProjectClient(opts *paykit.Options, lookup paykit.EnvLookup) (paykit.Client, error) {
	config, err := paykit.NewConfiguration(paykit.ScopeProject, opts, lookup)
	if err != nil {
		return nil, err
	}

	projectClient, err := client.New(config, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create project client: %w", err)
	}

	return projectClient, nil
}

func newOrganizationClient(opts *paykit.Options, lookup paykit.EnvLookup) (paykit.OrganizationClient, error) {
	config, err := paykit.NewConfiguration(paykit.ScopeOrganization, opts, lookup)
	if err != nil {
		return nil, err
	}

	orgClient, err := client.NewOrganization(config, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization client: %w", err)
	}

	return orgClient, nil
}
